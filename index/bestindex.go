package index

import (
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/beetlebugorg/geob/geoberr"
)

// Logical column indices of the SpartialIndex virtual table: id is always
// present, geometry and distance are hidden.
const (
	ColID       = 0
	ColGeometry = 1
	ColDistance = 2
)

// Query-plan flags, one bit per recognized (column, operator) combination,
// plus the nearest-neighbor strategy.
const (
	FlagDistanceEQ = 1 << iota
	FlagDistanceLT
	FlagGeometryEQ
	FlagGeometryMatch
	FlagIDEQ
	FlagDistanceNN
)

// argv token characters, encoded into IdxStr in the order constraints are
// marked Used so Filter can recover which vals[] slot holds which
// predicate regardless of the order the host's query planner presented
// constraints in. go-sqlite3's argvIndex numbering simply counts
// Used==true entries in constraint-array order, an order SQLite -- not
// this module -- controls, so the logical binding between predicate and
// argv slot has to be recovered from IdxStr rather than from position.
const (
	tokDistanceEQ    = "DE"
	tokDistanceLT    = "DL"
	tokGeometryEQ    = "GE"
	tokGeometryMatch = "GM"
	tokIDEQ          = "IE"
	tokArgSep        = ","
)

// bestIndex implements the query-plan compiler: it marks which
// constraints this module can use, assigns each a semantic token so
// Filter can decode argv positionally, and estimates a cost of 1 plus a
// fixed weight per consumed predicate kind (distance 1000, nearest-neighbor
// 800, geometry = ?, geometry MATCH and id = ? 600 each). ob carries the
// host's requested output ordering, consulted only to detect the
// ORDER BY distance shape that unlocks the nearest-neighbor strategy.
func bestIndex(isPoint bool, treeLen int, cst []sqlite3.InfoConstraint, ob []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	used := make([]bool, len(cst))
	var tokens []string
	var flags int

	haveUsableGeometryEQ := false
	haveUnusableDistance := false

	for i, c := range cst {
		switch {
		case c.Column == ColDistance && c.Op == sqlite3.OpEQ:
			if !c.Usable {
				haveUnusableDistance = true
				continue
			}
			used[i] = true
			tokens = append(tokens, tokDistanceEQ)
			flags |= FlagDistanceEQ
		case c.Column == ColDistance && c.Op == sqlite3.OpLT:
			if !c.Usable {
				haveUnusableDistance = true
				continue
			}
			used[i] = true
			tokens = append(tokens, tokDistanceLT)
			flags |= FlagDistanceLT
		case c.Column == ColGeometry && c.Op == sqlite3.OpEQ:
			if !c.Usable {
				continue
			}
			used[i] = true
			tokens = append(tokens, tokGeometryEQ)
			flags |= FlagGeometryEQ
			haveUsableGeometryEQ = true
		case c.Column == ColGeometry && c.Op == sqlite3.OpMATCH:
			if !c.Usable {
				continue
			}
			used[i] = true
			tokens = append(tokens, tokGeometryMatch)
			flags |= FlagGeometryMatch
		case c.Column == ColID && c.Op == sqlite3.OpEQ:
			if !c.Usable {
				continue
			}
			used[i] = true
			tokens = append(tokens, tokIDEQ)
			flags |= FlagIDEQ
		}
	}

	if flags&(FlagDistanceEQ|FlagDistanceLT) != 0 && flags&FlagGeometryEQ == 0 {
		return nil, geoberr.NewDomainError("distance predicate requires a companion geometry = ? constraint")
	}
	if haveUnusableDistance && flags&(FlagDistanceEQ|FlagDistanceLT) == 0 {
		return nil, geoberr.NewDomainError("distance constraint present but not usable, and no usable equivalent was accepted")
	}

	// ST_NearestNeighbors rides the geometry = ? constraint's own argv slot:
	// when the planner asks for rows ordered by the hidden distance column
	// ascending, with no other usable distance predicate already claiming
	// that constraint, this module can stream rows nearest-first straight
	// out of the R*-tree and let the host's own LIMIT stop pulling once it
	// has enough — no row cap is enforced here, only the ordering guarantee
	// that makes a LIMIT upstream equivalent to a top-k query.
	alreadyOrdered := false
	if isPoint && haveUsableGeometryEQ && flags&(FlagDistanceEQ|FlagDistanceLT) == 0 &&
		len(ob) == 1 && ob[0].Column == ColDistance && !ob[0].Desc {
		flags |= FlagDistanceNN
		alreadyOrdered = true
	}

	cost := 1.0
	if flags&(FlagDistanceEQ|FlagDistanceLT) != 0 {
		cost += 1000
	}
	if flags&FlagDistanceNN != 0 {
		cost += 800
	}
	if flags&FlagGeometryEQ != 0 {
		cost += 600
	}
	if flags&FlagGeometryMatch != 0 {
		cost += 600
	}
	if flags&FlagIDEQ != 0 {
		cost += 600
	}

	return &sqlite3.IndexResult{
		Used:           used,
		IdxNum:         flags,
		IdxStr:         strings.Join(tokens, tokArgSep),
		AlreadyOrdered: alreadyOrdered,
		EstimatedCost:  cost,
		EstimatedRows:  int64(treeLen),
	}, nil
}
