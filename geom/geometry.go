package geom

import (
	"github.com/spf13/cast"

	"github.com/geomkit/libgeom/geomerr"
	"github.com/geomkit/libgeom/typereg"
)

// Geometry is the base every concrete geometry type embeds. On top of the
// identity protocol it carries the spatial dimension, a geometry-kind tag, a
// validated custom-data store (opt) and a cache of derived values.
//
// The cache is a performance artifact, never part of the object's identity:
// it may be cleared at any time, and deep copies always receive a fresh
// empty cache while the opt store and every other attribute are preserved.
type Geometry struct {
	Object

	dimension int
	geomType  string

	opt   *Dict
	cache *Dict
}

func NewGeometry(owner any, opts ...Option) Geometry {
	return Geometry{
		Object: newObject("Geometry", owner, opts...),
		opt:    NewDict(),
		cache:  NewDict(),
	}
}

func (g *Geometry) Dimension() int {
	return g.dimension
}

func (g *Geometry) GeomType() string {
	return g.geomType
}

// SetDimension is for embedding geometry types only; it is not part of the
// public mutation contract.
func (g *Geometry) SetDimension(dimension int) {
	g.dimension = dimension
}

// SetGeomType is for embedding geometry types only.
func (g *Geometry) SetGeomType(geomType string) {
	g.geomType = geomType
}

// Opt returns the custom-data store itself. Callers may inspect it; all
// mutation should go through SetOpt.
func (g *Geometry) Opt() *Dict {
	if g.opt == nil {
		g.opt = NewDict()
	}

	return g.opt
}

// SetOpt stores a [key, value] pair into the custom-data store. The pair
// must be sequence-like, have exactly two elements, and carry a string-like
// key. A nil value removes the key; removing an absent key is a no-op.
func (g *Geometry) SetOpt(pair any) error {
	if !typereg.Satisfies(pair, typereg.CapSequence) {
		return geomerr.NewStructureError("opt input must be sequence-like", pair)
	}

	elems, ok := typereg.Elements(pair)
	if !ok {
		return geomerr.NewStructureError("opt input must be sequence-like", pair)
	}

	if len(elems) != 2 {
		return geomerr.NewStructureError("opt input must have a size of 2, corresponding to [0:key] => [1:value]", pair)
	}

	if !typereg.Satisfies(elems[0], typereg.CapString) {
		return geomerr.NewTypeError("opt key must be string-like", elems[0])
	}

	key := cast.ToString(elems[0])

	if elems[1] == nil {
		g.Opt().Delete(key)

		return nil
	}

	g.Opt().Set(key, elems[1])

	return nil
}

// DeleteOpt clears the entire custom-data store.
func (g *Geometry) DeleteOpt() {
	g.opt = NewDict()
}

// GetOpt is the safe lookup path: it returns the stored value for key, or
// ok=false when the key is absent. It never fails.
func (g *Geometry) GetOpt(key string) (value any, ok bool) {
	return g.Opt().Get(key)
}

func (g *Geometry) Cache() *Dict {
	if g.cache == nil {
		g.cache = NewDict()
	}

	return g.cache
}

// Reset empties the custom-data store and the cache. Identity, dimension
// and geometry type are untouched.
func (g *Geometry) Reset() {
	g.opt = NewDict()
	g.cache = NewDict()
}

// CloneInto copies every attribute into dst, giving dst its own store
// containers holding the same values.
func (g *Geometry) CloneInto(dst *Geometry) {
	g.Object.CloneInto(&dst.Object)

	dst.dimension = g.dimension
	dst.geomType = g.geomType
	dst.opt = g.Opt().Clone()
	dst.cache = g.Cache().Clone()
}

func (g *Geometry) Clone() *Geometry {
	out := &Geometry{}
	g.CloneInto(out)

	return out
}

// DeepCopyInto copies every attribute into dst through the shared memo
// table. The cache is pre-seeded in the table with a fresh empty Dict, so it
// is never deep-copied, even through an indirect reference held somewhere
// else in the graph.
func (g *Geometry) DeepCopyInto(dst *Geometry, memo Memo) {
	if _, ok := memo[g]; !ok {
		memo[g] = dst
	}

	memo[g.Cache()] = NewDict()

	g.Object.DeepCopyInto(&dst.Object, memo)

	dst.dimension = g.dimension
	dst.geomType = g.geomType
	dst.opt = g.Opt().DeepCopy(memo)
	dst.cache = g.Cache().DeepCopy(memo)
}

func (g *Geometry) DeepCopy(memo Memo) any {
	if c, ok := memo[g]; ok {
		return c
	}

	out := &Geometry{}
	g.DeepCopyInto(out, memo)

	return out
}
