package geom

import (
	"fmt"
	"reflect"

	"github.com/godruoyi/go-snowflake"
	"github.com/spf13/cast"

	"github.com/geomkit/libgeom/geomerr"
)

// Object gives every entity of the library a numeric id, a name, and a
// per-object configuration store. It is meant to be embedded; the embedding
// type passes itself as owner so the default name matches the concrete type.
type Object struct {
	id   int64
	name string
	cfg  *Dict
}

type Option func(o *Object)

func WithID(id int64) Option {
	return func(o *Object) {
		o.id = id
	}
}

// WithGeneratedID assigns a snowflake id instead of the default 0.
func WithGeneratedID() Option {
	return func(o *Object) {
		o.id = int64(snowflake.ID())
	}
}

func WithName(name string) Option {
	return func(o *Object) {
		o.name = name
	}
}

func WithConfig(key string, value any) Option {
	return func(o *Object) {
		o.cfg.Set(key, value)
	}
}

func NewObject(owner any, opts ...Option) Object {
	return newObject("Object", owner, opts...)
}

func newObject(fallback string, owner any, opts ...Option) Object {
	o := Object{
		name: typeName(owner, fallback),
		cfg:  NewDict(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func typeName(owner any, fallback string) string {
	if owner == nil {
		return fallback
	}

	t := reflect.TypeOf(owner)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" {
		return fallback
	}

	return t.Name()
}

func (o *Object) ID() int64 {
	return o.id
}

// SetID coerces v to an integer and stores it. A value that cannot be
// coerced yields a coercion error carrying v as payload.
func (o *Object) SetID(v any) error {
	id, err := cast.ToInt64E(v)
	if err != nil {
		return geomerr.NewCoercionError("object id must be an integer", v)
	}

	o.id = id

	return nil
}

func (o *Object) ResetID() {
	o.id = 0
}

func (o *Object) Name() string {
	return o.name
}

// SetName coerces v to a string. Values cast cannot handle still get a
// printed representation, so a set name is never silently empty.
func (o *Object) SetName(v any) {
	s, err := cast.ToStringE(v)
	if err != nil {
		s = fmt.Sprintf("%v", v)
	}

	o.name = s
}

func (o *Object) ResetName() {
	o.name = ""
}

func (o *Object) String() string {
	return o.name
}

// Cfg is the per-object configuration store. Evaluators keep their injected
// strategy functions here.
func (o *Object) Cfg() *Dict {
	if o.cfg == nil {
		o.cfg = NewDict()
	}

	return o.cfg
}

// CloneInto copies every attribute into dst, shallow-copying the
// configuration store so the two objects own independent containers.
func (o *Object) CloneInto(dst *Object) {
	dst.id = o.id
	dst.name = o.name
	dst.cfg = o.Cfg().Clone()
}

func (o *Object) Clone() *Object {
	out := &Object{}
	o.CloneInto(out)

	return out
}

// DeepCopyInto copies every attribute into dst through the shared memo
// table. Embedding types call this before copying their own fields.
func (o *Object) DeepCopyInto(dst *Object, memo Memo) {
	if _, ok := memo[o]; !ok {
		memo[o] = dst
	}

	dst.id = o.id
	dst.name = o.name
	dst.cfg = o.Cfg().DeepCopy(memo)
}

func (o *Object) DeepCopy(memo Memo) any {
	if c, ok := memo[o]; ok {
		return c
	}

	out := &Object{}
	o.DeepCopyInto(out, memo)

	return out
}
