package geom

import (
	"gopkg.in/yaml.v3"

	"github.com/sgostarter/i/commerr"
)

// Dict is the configuration map used throughout the object model: a
// string-keyed store that preserves insertion order. It is a distinct named
// type so external holders can keep a handle on a specific store (an opt
// store, a cache) independently of the object owning it.
type Dict struct {
	keys   []string
	values map[string]any
}

func NewDict() *Dict {
	return &Dict{
		values: make(map[string]any),
	}
}

func (d *Dict) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}

	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}

	d.values[key] = value
}

func (d *Dict) Get(key string) (value any, ok bool) {
	value, ok = d.values[key]

	return
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (d *Dict) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}

	delete(d.values, key)

	for idx, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:idx], d.keys[idx+1:]...)

			break
		}
	}
}

func (d *Dict) Len() int {
	return len(d.values)
}

func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)

	return keys
}

func (d *Dict) Range(fn func(key string, value any) bool) {
	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			break
		}
	}
}

func (d *Dict) Clear() {
	d.keys = nil
	d.values = make(map[string]any)
}

// Clone produces a new Dict holding the same values.
func (d *Dict) Clone() *Dict {
	if d == nil {
		return nil
	}

	out := NewDict()

	for _, k := range d.keys {
		out.Set(k, d.values[k])
	}

	return out
}

// DeepCopy copies the Dict and its values through the shared memo table, so
// repeated references to the same store resolve to a single copy.
func (d *Dict) DeepCopy(memo Memo) *Dict {
	if d == nil {
		return nil
	}

	if c, ok := memo[d]; ok {
		return c.(*Dict)
	}

	out := NewDict()
	memo[d] = out

	for _, k := range d.keys {
		out.Set(k, DeepCopyValue(d.values[k], memo))
	}

	return out
}

func (d *Dict) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
	}

	for _, k := range d.keys {
		var kn, vn yaml.Node

		kn.SetString(k)

		if err := vn.Encode(d.values[k]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &kn, &vn)
	}

	return node, nil
}

func (d *Dict) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return commerr.ErrInvalidArgument
	}

	if d.values == nil {
		d.values = make(map[string]any)
	}

	for idx := 0; idx+1 < len(value.Content); idx += 2 {
		var key string

		if err := value.Content[idx].Decode(&key); err != nil {
			return err
		}

		var val any

		if err := value.Content[idx+1].Decode(&val); err != nil {
			return err
		}

		d.Set(key, val)
	}

	return nil
}
