// Package proptree implements the nested property tree Serialization
// (spec §4.7) saves a Channel into and loads it back from. It mirrors the
// teacher's own use of gopkg.in/yaml.v2 (gui/builder.go, which decodes
// nested widget property descriptions the same way) rather than rolling
// a bespoke container format.
package proptree

import "gopkg.in/yaml.v2"

// Node is one level of the property tree: named fields whose values are
// either scalars, []interface{}, or nested Nodes.
type Node map[string]interface{}

// Set stores v under key.
func (n Node) Set(key string, v interface{}) {

	n[key] = v
}

// Get retrieves the raw value under key.
func (n Node) Get(key string) (interface{}, bool) {

	v, ok := n[key]
	return v, ok
}

// String retrieves a string field.
func (n Node) String(key string) (string, bool) {

	v, ok := n[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float32Slice retrieves a []float32 field, converting from the generic
// numeric slice YAML decodes into.
func (n Node) Float32Slice(key string) ([]float32, bool) {

	v, ok := n[key]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case []float32:
		return vv, true
	case []interface{}:
		out := make([]float32, len(vv))
		for i, e := range vv {
			out[i] = toFloat32(e)
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat32(v interface{}) float32 {

	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	case int:
		return float32(n)
	default:
		return 0
	}
}

// Marshal serializes a Node to its YAML wire form.
func Marshal(n Node) ([]byte, error) {

	return yaml.Marshal(map[string]interface{}(n))
}

// Unmarshal parses a Node from YAML.
func Unmarshal(data []byte) (Node, error) {

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Node(raw), nil
}
