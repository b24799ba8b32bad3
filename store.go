package duskgfx

import "github.com/go-gl/mathgl/mgl32"

// ObjectStore is the structure-of-arrays scene backing: every attribute is
// its own contiguous column, indexed in lockstep by row. Streaming the
// scene into a packed instance buffer touches each column linearly, so SoA
// keeps those reads cache-friendly and close to the instance record's own
// field order.
//
// Objects are append-only for the lifetime of a store: there is no
// deletion, so row indices (and therefore ObjectIds) never move.
type ObjectStore struct {
	positions []mgl32.Vec2
	sizes     []mgl32.Vec2
	colors    []mgl32.Vec4
	rotations []float32
	zIndices  []float32
	rectRadii []mgl32.Vec4

	// RectIds holds the ids of every live rectangle, in insertion order.
	RectIds []ObjectId

	// Dirty is set by every mutating call and cleared by a successful
	// batch prepare.
	Dirty bool
	// ZDirty is a strict refinement of Dirty: set only when a z index
	// changed, cleared alongside Dirty. It gates the batch's resort.
	ZDirty bool
}

// NewObjectStore returns an empty store with columns pre-sized for a modest
// scene, avoiding the first few growth reallocations.
func NewObjectStore() *ObjectStore {
	const initialCapacity = 1024
	return &ObjectStore{
		positions: make([]mgl32.Vec2, 0, initialCapacity),
		sizes:     make([]mgl32.Vec2, 0, initialCapacity),
		colors:    make([]mgl32.Vec4, 0, initialCapacity),
		rotations: make([]float32, 0, initialCapacity),
		zIndices:  make([]float32, 0, initialCapacity),
		rectRadii: make([]mgl32.Vec4, 0, initialCapacity),
		RectIds:   make([]ObjectId, 0, initialCapacity),
	}
}

func (s *ObjectStore) allocCommon() int {
	index := len(s.positions)

	s.positions = append(s.positions, mgl32.Vec2{0, 0})
	s.sizes = append(s.sizes, mgl32.Vec2{100, 100})
	s.colors = append(s.colors, mgl32.Vec4{1, 1, 1, 1})
	s.rotations = append(s.rotations, 0)
	s.zIndices = append(s.zIndices, 0)

	s.Dirty = true
	return index
}

// NewRect appends one row to every column with the documented defaults and
// returns its id. Only Dirty is raised: every new row defaults to z = 0,
// so a fresh rect never changes relative depth order by itself — ZDirty
// is reserved strictly for set_z_index, per the store's invariant that
// z_dirty is true iff the mutation sequence contains at least one
// SetZIndex call.
func (s *ObjectStore) NewRect() ObjectId {
	index := s.allocCommon()
	id := newObjectId(ShapeRect, index)

	s.RectIds = append(s.RectIds, id)
	s.rectRadii = append(s.rectRadii, mgl32.Vec4{0, 0, 0, 0})

	return id
}

// SetPosition moves a rect in logical pixels.
func (s *ObjectStore) SetPosition(id ObjectId, x, y float32) {
	s.positions[id.Index()] = mgl32.Vec2{x, y}
	s.Dirty = true
}

// SetSize resizes a rect in logical pixels.
func (s *ObjectStore) SetSize(id ObjectId, w, h float32) {
	s.sizes[id.Index()] = mgl32.Vec2{w, h}
	s.Dirty = true
}

// SetColor sets RGBA channels, each expected in [0,1] (see Color packing
// for what happens to out-of-range values).
func (s *ObjectStore) SetColor(id ObjectId, r, g, b, a float32) {
	s.colors[id.Index()] = mgl32.Vec4{r, g, b, a}
	s.Dirty = true
}

// SetRotation sets rotation in radians.
func (s *ObjectStore) SetRotation(id ObjectId, radians float32) {
	s.rotations[id.Index()] = radians
	s.Dirty = true
}

// SetZIndex sets depth. Unlike the other setters this also raises ZDirty,
// forcing the next prepare to resort the batch.
func (s *ObjectStore) SetZIndex(id ObjectId, z float32) {
	s.zIndices[id.Index()] = z
	s.Dirty = true
	s.ZDirty = true
}

// SetRounded sets the four corner radii (top-left, top-right, bottom-right,
// bottom-left) for the rect row at id.Index(). An out-of-range index is a
// no-op rather than a panic or error — unlike the other setters, which
// index their column directly and panic on an out-of-range id.
func (s *ObjectStore) SetRounded(id ObjectId, tl, tr, br, bl float32) {
	idx := id.Index()
	if idx < 0 || idx >= len(s.rectRadii) {
		return
	}
	s.rectRadii[idx] = mgl32.Vec4{tl, tr, br, bl}
	s.Dirty = true
}

// clearDirty is invoked by RenderState after a successful prepare. Both
// flags always clear together; there is no partial clear.
func (s *ObjectStore) clearDirty() {
	s.Dirty = false
	s.ZDirty = false
}
