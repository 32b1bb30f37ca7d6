package geom

import "reflect"

// Memo is the deduplication table shared by one top-level deep copy. It maps
// source identity to the already-created copy, so cyclic or repeated
// references inside an object graph are copied exactly once and re-linked.
// A Memo is never reused across top-level copies.
type Memo map[any]any

// DeepCopyable is implemented by types participating in the deep-copy
// protocol. Implementations must use pointer receivers, register the fresh
// copy in memo before recursing into their own fields, and copy every field
// through DeepCopyValue so the shared table stays authoritative.
type DeepCopyable interface {
	DeepCopy(memo Memo) any
}

// DeepCopy copies src with a fresh memo table.
func DeepCopy[T DeepCopyable](src T) T {
	return src.DeepCopy(make(Memo)).(T)
}

// DeepCopyValue copies an arbitrary value through the shared memo table.
// Dicts and DeepCopyable values recurse with deduplication; slices, arrays
// and maps of any element type are rebuilt element by element; everything
// else is treated as immutable and returned as-is.
func DeepCopyValue(v any, memo Memo) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *Dict:
		return t.DeepCopy(memo)
	case DeepCopyable:
		if memoKeyable(t) {
			if c, ok := memo[t]; ok {
				return c
			}
		}

		return t.DeepCopy(memo)
	case []any:
		out := make([]any, len(t))
		for idx, item := range t {
			out[idx] = DeepCopyValue(item, memo)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = DeepCopyValue(item, memo)
		}

		return out
	default:
		return deepCopyContainer(v, memo)
	}
}

// deepCopyContainer rebuilds concrete-typed mutable containers, so a
// []float64 or map[string]int stored in an opt store does not keep sharing
// backing storage with the original after a deep copy.
func deepCopyContainer(v any, memo Memo) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for idx := 0; idx < rv.Len(); idx++ {
			setElem(out.Index(idx), DeepCopyValue(rv.Index(idx).Interface(), memo))
		}

		return out.Interface()
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for idx := 0; idx < rv.Len(); idx++ {
			setElem(out.Index(idx), DeepCopyValue(rv.Index(idx).Interface(), memo))
		}

		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			item := DeepCopyValue(iter.Value().Interface(), memo)
			if item == nil {
				out.SetMapIndex(iter.Key(), reflect.Zero(rv.Type().Elem()))

				continue
			}

			out.SetMapIndex(iter.Key(), reflect.ValueOf(item))
		}

		return out.Interface()
	default:
		return v
	}
}

func setElem(dst reflect.Value, item any) {
	if item == nil {
		return
	}

	dst.Set(reflect.ValueOf(item))
}

func memoKeyable(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Ptr
}
