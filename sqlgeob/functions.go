package sqlgeob

import (
	"github.com/mattn/go-sqlite3"

	"github.com/beetlebugorg/geob/geob"
	"github.com/beetlebugorg/geob/geoberr"
)

// RegisterFunctions registers the geob scalar SQL functions against conn
// via sqlite3.SQLiteConn.RegisterFunc, the idiomatic go-sqlite3 way to
// expose Go functions to SQL without a C shim per call.
func RegisterFunctions(conn *sqlite3.SQLiteConn) error {
	registrations := []struct {
		name string
		fn   interface{}
	}{
		{"ST_FromText", stFromText},
		{"ST_ToText", stToText},
		{"ST_GetSRID", stGetSRID},
		{"ST_GetType", stGetType},
		{"ST_Transform", stTransform},
		{"ST_Distance", stDistance},
		{"ST_Within", stWithin},
		{"ST_Contains", stContains},
		{"ST_Intersects", stIntersects},
		{"ST_Envelope", stEnvelope},
		{"ST_Area", stArea1},
		{"ST_Area", stArea2},
		{"ST_Perimeter", stPerimeter},
		{"ST_Centroid", stCentroid},
	}
	for _, r := range registrations {
		if err := conn.RegisterFunc(r.name, r.fn, true); err != nil {
			return geoberr.NewExternalError(err, "registering %s", r.name)
		}
	}
	// ST_AddColumn executes DDL against the connection it was called from
	// and so cannot be marked pure/deterministic.
	if err := conn.RegisterFunc("ST_AddColumn", addColumnFunc(conn), false); err != nil {
		return geoberr.NewExternalError(err, "registering ST_AddColumn")
	}
	return nil
}

func stFromText(text string) ([]byte, error) {
	v, err := geob.FromText(text)
	if err != nil {
		return nil, err
	}
	return v.Bytes(), nil
}

func stToText(blob []byte) (string, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func stGetSRID(blob []byte) (int64, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return 0, err
	}
	return int64(v.SRID()), nil
}

func stGetType(blob []byte) (string, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return "", err
	}
	return v.Kind().String(), nil
}

// transformFunc is the geob.Transformer ST_Transform uses. It defaults to
// geob.IdentityTransformer, so a transform between different SRIDs patches
// the SRID field and leaves coordinates unchanged; tests swap it.
var transformFunc geob.Transformer = geob.IdentityTransformer{}

func stTransform(blob []byte, srid int64) ([]byte, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return nil, err
	}
	target := uint32(srid)
	if v.SRID() == target {
		return v.Bytes(), nil
	}
	out, err := v.ProjectInto(target, transformFunc)
	if err != nil {
		return nil, geoberr.NewExternalError(err, "ST_Transform %d -> %d", v.SRID(), target)
	}
	return out.Bytes(), nil
}

func stDistance(blobA, blobB []byte) (float64, error) {
	a, err := geob.FromBytes(blobA)
	if err != nil {
		return 0, err
	}
	b, err := geob.FromBytes(blobB)
	if err != nil {
		return 0, err
	}
	if a.SRID() != b.SRID() {
		return 0, geoberr.NewDomainError("ST_Distance: SRID mismatch (%d != %d)", a.SRID(), b.SRID())
	}
	if err := a.CheckKind(geob.KindPoint); err != nil {
		return 0, err
	}
	if err := b.CheckKind(geob.KindPoint); err != nil {
		return 0, err
	}
	ga, _ := a.Geometry()
	gb, _ := b.Geometry()
	pa, _ := ga.AsPoint()
	pb, _ := gb.AsPoint()
	return geob.HaversineMeters(pa.X(), pa.Y(), pb.X(), pb.Y()), nil
}

func loadPair(blobA, blobB []byte) (geob.GeometryView, geob.GeometryView, error) {
	a, err := geob.FromBytes(blobA)
	if err != nil {
		return geob.GeometryView{}, geob.GeometryView{}, err
	}
	b, err := geob.FromBytes(blobB)
	if err != nil {
		return geob.GeometryView{}, geob.GeometryView{}, err
	}
	if a.SRID() != b.SRID() {
		return geob.GeometryView{}, geob.GeometryView{}, geoberr.NewDomainError(
			"SRID mismatch (%d != %d)", a.SRID(), b.SRID())
	}
	ga, err := a.Geometry()
	if err != nil {
		return geob.GeometryView{}, geob.GeometryView{}, err
	}
	gb, err := b.Geometry()
	if err != nil {
		return geob.GeometryView{}, geob.GeometryView{}, err
	}
	return ga, gb, nil
}

func stWithin(blobA, blobB []byte) (bool, error) {
	ga, gb, err := loadPair(blobA, blobB)
	if err != nil {
		return false, err
	}
	ok, valid := planarWithin(ga, gb)
	if !valid {
		return false, geoberr.NewDomainError("ST_Within: empty geometry has no envelope")
	}
	return ok, nil
}

func stContains(blobA, blobB []byte) (bool, error) {
	ga, gb, err := loadPair(blobA, blobB)
	if err != nil {
		return false, err
	}
	ok, valid := planarContains(ga, gb)
	if !valid {
		return false, geoberr.NewDomainError("ST_Contains: empty geometry has no envelope")
	}
	return ok, nil
}

func stIntersects(blobA, blobB []byte) (bool, error) {
	ga, gb, err := loadPair(blobA, blobB)
	if err != nil {
		return false, err
	}
	ok, valid := planarIntersects(ga, gb)
	if !valid {
		return false, geoberr.NewDomainError("ST_Intersects: empty geometry has no envelope")
	}
	return ok, nil
}

func stEnvelope(blob []byte) (interface{}, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return nil, err
	}
	env, ok := v.Envelope()
	if !ok {
		return nil, nil
	}
	return env.Bytes(), nil
}

func stArea1(blob []byte) (float64, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return 0, err
	}
	g, err := v.Geometry()
	if err != nil {
		return 0, err
	}
	area := geodesicAreaSigned(g)
	if area < 0 {
		area = -area
	}
	return area, nil
}

// stArea2 backs the two-argument ST_Area, which always reports a signed
// result regardless of accurate: accurate selects between the (unavailable
// here) ellipsoidal geodesic area and the Chamberlain-Duquette spherical
// approximation, not between signed and unsigned. Only the one-argument
// form (stArea1) reports an unsigned magnitude.
func stArea2(blob []byte, accurate bool) (float64, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return 0, err
	}
	g, err := v.Geometry()
	if err != nil {
		return 0, err
	}
	return geodesicAreaSigned(g), nil
}

func stPerimeter(blob []byte) (float64, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return 0, err
	}
	g, err := v.Geometry()
	if err != nil {
		return 0, err
	}
	return geodesicPerimeter(g), nil
}

func stCentroid(blob []byte) (interface{}, error) {
	v, err := geob.FromBytes(blob)
	if err != nil {
		return nil, err
	}
	c, ok := v.Centroid()
	if !ok {
		return nil, nil
	}
	return c.Bytes(), nil
}

func addColumnFunc(conn *sqlite3.SQLiteConn) func(table, column string, srid int64) (bool, error) {
	return func(table, column string, srid int64) (bool, error) {
		sql, err := addColumnTriggerSQL(table, column, uint32(srid))
		if err != nil {
			return false, err
		}
		if _, err := conn.Exec(sql, nil); err != nil {
			return false, geoberr.NewExternalError(err, "ST_AddColumn: executing trigger DDL")
		}
		return true, nil
	}
}
