package index

import (
	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/geob/geob"
)

// minSpan pads degenerate (zero-width) rectangles: rtreego.NewRect rejects
// non-positive side lengths, but a Point or a single-vertex geometry has
// zero width/height in one or both axes.
const minSpan = 1e-9

// entry is the sum type the R*-tree holds: exactly one of pointEntry or
// geometryEntry, the variant chosen once at CREATE VIRTUAL TABLE time and
// fixed for the lifetime of the tree.
type entry interface {
	rtreego.Spatial
	RowID() int64
}

// pointEntry indexes a single (x, y) coordinate, used only by a
// "type=point" index — the one variant the cursor's distance search (see
// Tree.LocateWithinDistance) can operate against.
type pointEntry struct {
	rowid int64
	x, y  float64
	blob  []byte
}

func (e pointEntry) RowID() int64 { return e.rowid }

func (e pointEntry) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(rtreego.Point{e.x, e.y}, []float64{minSpan, minSpan})
	return *rect
}

// geometryEntry indexes a geometry's axis-aligned envelope: every typed
// variant other than "point" (linestring, polygon, multipoint,
// multilinestring, multipolygon) plus the untyped "geometry" variant that
// accepts any kind.
type geometryEntry struct {
	rowid int64
	box   geob.Box
	blob  []byte
}

func (e geometryEntry) RowID() int64 { return e.rowid }

func (e geometryEntry) Bounds() rtreego.Rect {
	rect, err := rectFromBox(e.box)
	if err != nil {
		// Degenerate box already padded by rectFromBox; this branch is
		// unreachable in practice.
		return rtreego.Rect{}
	}
	return *rect
}

func rectFromBox(box geob.Box) (*rtreego.Rect, error) {
	w, h := box.Width(), box.Height()
	if w <= 0 {
		w = minSpan
	}
	if h <= 0 {
		h = minSpan
	}
	return rtreego.NewRect(rtreego.Point{box.MinX, box.MinY}, []float64{w, h})
}
