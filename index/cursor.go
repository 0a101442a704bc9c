package index

import (
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/beetlebugorg/geob/geob"
	"github.com/beetlebugorg/geob/geoberr"
)

// Query holds the decoded constraint values for one Filter call.
type Query struct {
	DistanceEQ    *float64
	DistanceLT    *float64
	GeometryEQ    *geob.Value
	GeometryMatch *geob.Value
	IDEQ          *int64
}

func decodeQuery(idxStr string, vals []interface{}) (Query, error) {
	var q Query
	if idxStr == "" {
		return q, nil
	}
	tokens := strings.Split(idxStr, tokArgSep)
	if len(tokens) != len(vals) {
		return q, geoberr.NewDomainError("idxStr/vals length mismatch: %d tokens, %d values", len(tokens), len(vals))
	}
	for i, tok := range tokens {
		switch tok {
		case tokDistanceEQ:
			f, err := asFloat(vals[i])
			if err != nil {
				return q, err
			}
			q.DistanceEQ = &f
		case tokDistanceLT:
			f, err := asFloat(vals[i])
			if err != nil {
				return q, err
			}
			q.DistanceLT = &f
		case tokGeometryEQ:
			v, err := asGeob(vals[i])
			if err != nil {
				return q, err
			}
			q.GeometryEQ = &v
		case tokGeometryMatch:
			v, err := asGeob(vals[i])
			if err != nil {
				return q, err
			}
			q.GeometryMatch = &v
		case tokIDEQ:
			n, err := asInt(vals[i])
			if err != nil {
				return q, err
			}
			q.IDEQ = &n
		default:
			return q, geoberr.NewDomainError("unrecognized idxStr token %q", tok)
		}
	}
	return q, nil
}

func asFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, geoberr.NewDomainError("expected numeric argv, got %T", v)
	}
}

func asInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, geoberr.NewDomainError("expected integer argv, got %T", v)
	}
}

func asGeob(v interface{}) (geob.Value, error) {
	b, ok := v.([]byte)
	if !ok {
		return geob.Value{}, geoberr.NewDomainError("expected blob argv, got %T", v)
	}
	return geob.FromBytes(b)
}

// Cursor implements sqlite3.VTabCursor over a Tree, streaming rowids
// chosen by Filter's iterator-selection priority.
type Cursor struct {
	tree *Tree

	rows   []entry
	pos    int
	idFilt *int64

	// distance is reset by Filter and not otherwise set. When a distance
	// or nearest-neighbor search ran against a point index, Column
	// computes the hidden distance column from refPoint for each row.
	distance      *float64
	refPoint      *[2]float64
	haveDistances bool
}

// Filter selects the iterator by priority: nearest-neighbor (point-typed
// only, ORDER BY distance) > distance_lt (point-typed only) >
// geometry_match envelope > geometry_eq envelope > full scan; an id_eq
// constraint further narrows to that rowid.
func (c *Cursor) Filter(idxNum int, idxStr string, vals []interface{}) error {
	q, err := decodeQuery(idxStr, vals)
	if err != nil {
		return err
	}

	c.idFilt = q.IDEQ
	c.distance = nil
	c.refPoint = nil
	c.haveDistances = false

	switch {
	case idxNum&FlagDistanceNN != 0:
		if !c.tree.IsPoint() {
			return geoberr.NewDomainError("nearest-neighbor search requires a point-typed index")
		}
		if q.GeometryEQ == nil {
			return geoberr.NewDomainError("nearest-neighbor search requires a companion geometry = ? constraint")
		}
		if err := q.GeometryEQ.CheckKind(geob.KindPoint); err != nil {
			return err
		}
		g, _ := q.GeometryEQ.Geometry()
		p, _ := g.AsPoint()
		// No k is known here -- the planner only promised an order, not a
		// row count -- so every entry is returned nearest-first and the
		// host's own LIMIT truncates the stream as it pulls rows.
		c.rows = c.tree.NearestNeighbors(c.tree.Len(), p.X(), p.Y())
		ref := [2]float64{p.X(), p.Y()}
		c.refPoint = &ref
		c.haveDistances = true

	case q.DistanceLT != nil:
		if !c.tree.IsPoint() {
			return geoberr.NewDomainError("distance search requires a point-typed index")
		}
		if q.GeometryEQ == nil {
			return geoberr.NewDomainError("distance search requires a companion geometry = ? constraint")
		}
		if err := q.GeometryEQ.CheckKind(geob.KindPoint); err != nil {
			return err
		}
		g, _ := q.GeometryEQ.Geometry()
		p, _ := g.AsPoint()
		c.rows = c.tree.LocateWithinDistance(p.X(), p.Y(), *q.DistanceLT)
		ref := [2]float64{p.X(), p.Y()}
		c.refPoint = &ref
		c.haveDistances = true

	case q.GeometryMatch != nil:
		gm, err := q.GeometryMatch.Geometry()
		if err != nil {
			return err
		}
		box, ok := geob.BoundingBox(gm)
		if !ok {
			c.rows = nil
		} else {
			c.rows = c.tree.LocateInEnvelope(box)
		}

	case q.GeometryEQ != nil:
		ge, err := q.GeometryEQ.Geometry()
		if err != nil {
			return err
		}
		box, ok := geob.BoundingBox(ge)
		if !ok {
			c.rows = nil
		} else {
			c.rows = c.tree.LocateInEnvelope(box)
		}

	default:
		c.rows = c.tree.All()
	}

	c.pos = 0
	c.skipFiltered()
	return nil
}

func (c *Cursor) skipFiltered() {
	if c.idFilt == nil {
		return
	}
	for c.pos < len(c.rows) && c.rows[c.pos].RowID() != *c.idFilt {
		c.pos++
	}
}

// Next advances to the next row, eagerly skipping any that fail the id_eq
// post-filter so Eof is a simple pointer check.
func (c *Cursor) Next() error {
	c.pos++
	c.skipFiltered()
	return nil
}

// EOF reports whether iteration is exhausted.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.rows)
}

// Rowid returns the current row's rowid.
func (c *Cursor) Rowid() (int64, error) {
	return c.rows[c.pos].RowID(), nil
}

// Column writes column i of the current row into ctx: id (0), geometry
// (1, hidden), distance (2, hidden, point indices only).
func (c *Cursor) Column(ctx *sqlite3.SQLiteContext, i int) error {
	e := c.rows[c.pos]
	switch i {
	case ColID:
		ctx.ResultInt64(e.RowID())
	case ColGeometry:
		switch v := e.(type) {
		case pointEntry:
			ctx.ResultBlob(v.blob)
		case geometryEntry:
			ctx.ResultBlob(v.blob)
		}
	case ColDistance:
		if c.haveDistances && c.refPoint != nil {
			if pe, ok := e.(pointEntry); ok {
				d := geob.HaversineMeters(c.refPoint[0], c.refPoint[1], pe.x, pe.y)
				ctx.ResultDouble(d)
				return nil
			}
		}
		ctx.ResultNull()
	}
	return nil
}

// Close releases the cursor. Rows are plain slices, so there is no
// underlying index resource to leak.
func (c *Cursor) Close() error {
	c.rows = nil
	return nil
}
