package typereg

import (
	"reflect"
	"sync"
)

type Capability string

const (
	// CapSequence marks types usable wherever an ordered sequence is expected.
	CapSequence Capability = "sequence-like"
	// CapString marks types usable wherever a string key is expected.
	CapString Capability = "string-like"
)

// Sequence lets non-slice types participate as sequence-like values.
// Implementers satisfy CapSequence without explicit registration.
type Sequence interface {
	Len() int
	At(i int) any
}

type Registry struct {
	lock sync.RWMutex
	caps map[Capability]map[reflect.Type]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		caps: make(map[Capability]map[reflect.Type]struct{}),
	}
}

// Register marks t as satisfying c. The type itself is not modified; a
// repeated registration is a no-op.
func (r *Registry) Register(c Capability, t reflect.Type) {
	if t == nil {
		return
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.caps[c] == nil {
		r.caps[c] = make(map[reflect.Type]struct{})
	}

	r.caps[c][t] = struct{}{}
}

// RegisterValue registers the dynamic type of sample against c.
func (r *Registry) RegisterValue(c Capability, sample any) {
	r.Register(c, reflect.TypeOf(sample))
}

// Satisfies reports whether v's type satisfies c, either structurally
// (built-in strings and ordered sequences are always accepted) or through
// an explicit registration. Unregistered types simply report false.
func (r *Registry) Satisfies(v any, c Capability) bool {
	if v == nil {
		return false
	}

	t := reflect.TypeOf(v)

	if builtinSatisfies(t, c) {
		return true
	}

	if c == CapSequence {
		if _, ok := v.(Sequence); ok {
			return true
		}
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	types := r.caps[c]
	if types == nil {
		return false
	}

	if _, ok := types[t]; ok {
		return true
	}

	// Interface registrations accept every implementation.
	for rt := range types {
		if rt.Kind() == reflect.Interface && t.Implements(rt) {
			return true
		}
	}

	return false
}

func builtinSatisfies(t reflect.Type, c Capability) bool {
	switch c {
	case CapString:
		return t.Kind() == reflect.String
	case CapSequence:
		return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
	default:
		return false
	}
}

// Elements flattens a sequence-like value into its items. The second
// return is false when v is no sequence at all.
func Elements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}

	if s, ok := v.(Sequence); ok {
		items := make([]any, 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			items = append(items, s.At(i))
		}

		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items = append(items, rv.Index(i).Interface())
	}

	return items, true
}

var defaultRegistry = NewRegistry()

func Default() *Registry {
	return defaultRegistry
}

func Register(c Capability, t reflect.Type) {
	defaultRegistry.Register(c, t)
}

func RegisterValue(c Capability, sample any) {
	defaultRegistry.RegisterValue(c, sample)
}

func Satisfies(v any, c Capability) bool {
	return defaultRegistry.Satisfies(v, c)
}
