package channel

import (
	"github.com/g3n/panima/chanpath"
	"github.com/g3n/panima/proptree"
	"github.com/g3n/panima/store"
	"github.com/g3n/panima/valuekind"
)

// Save serializes the channel to its YAML property-tree form: interpolation,
// target path, value kind, time-frame, times, values, and (if set) the
// expression source (spec §4.7).
func (c *Channel) Save() ([]byte, error) {

	node := proptree.Node{}
	node.Set("interpolation", c.interpolation.String())
	node.Set("targetPath", c.target.ToURI(true))
	node.Set("kind", c.ValueKind().String())
	node.Set("timeFrame", map[string]interface{}{
		"startOffset": c.timeFrame.StartOffset,
		"scale":       c.timeFrame.Scale,
		"duration":    c.timeFrame.Duration,
	})

	n := c.keys.Len()
	times := make([]float32, n)
	for i := 0; i < n; i++ {
		times[i] = c.keys.GetTime(i)
	}
	node.Set("times", times)

	width := valuekind.NumComponents(c.ValueKind())
	values := make([][]float64, n)
	for i := 0; i < n; i++ {
		v := c.keys.GetValue(i)
		row := make([]float64, width)
		for k := 0; k < width; k++ {
			row[k] = valuekind.RawComponent(c.ValueKind(), v, k)
		}
		values[i] = row
	}
	node.Set("values", values)

	if c.expression != nil {
		node.Set("expression", c.expression.source)
	}
	return proptree.Marshal(node)
}

// Load deserializes a channel previously written by Save, backed by
// arrays from factory. The value kind is read first and the expression
// is compiled last; a compile failure is logged as a warning and
// leaves the expression unset rather than failing the whole load (spec
// §4.7).
func Load(data []byte, factory store.Factory) (*Channel, error) {

	node, err := proptree.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	kindName, _ := node.String("kind")
	kind, ok := valuekind.ParseKind(kindName)
	if !ok {
		return nil, newError(Invariant, "unknown value kind: "+kindName)
	}
	c := NewWithStore(kind, factory)

	if interpName, ok := node.String("interpolation"); ok && interpName == "Step" {
		c.interpolation = Step
	} else {
		c.interpolation = Linear
	}

	if targetURI, ok := node.String("targetPath"); ok {
		c.target = chanpath.New(targetURI)
	}

	if tfRaw, ok := node.Get("timeFrame"); ok {
		c.timeFrame = decodeTimeFrame(tfRaw)
	}

	times, _ := node.Float32Slice("times")
	valuesRaw, _ := node.Get("values")
	rows := decodeRows(valuesRaw)

	width := valuekind.NumComponents(kind)
	c.keys.Resize(len(times))
	for i, t := range times {
		c.keys.SetTime(i, t)
		v := valuekind.Zero(kind)
		if i < len(rows) {
			row := rows[i]
			for k := 0; k < width && k < len(row); k++ {
				v = valuekind.SetRawComponent(kind, v, k, row[k])
			}
		}
		c.keys.SetValue(i, v)
	}
	c.updateEffective()

	if exprSrc, ok := node.String("expression"); ok && exprSrc != "" {
		if be, err := compileExpressionFor(c, exprSrc); err == nil {
			c.expression = be
		} else {
			log.Warn("failed to compile persisted expression: %s", err.Error())
		}
	}
	return c, nil
}

func decodeTimeFrame(raw interface{}) TimeFrame {

	tf := defaultTimeFrame()
	m := decodeMap(raw)
	if v, ok := m["startOffset"]; ok {
		tf.StartOffset = toF32(v)
	}
	if v, ok := m["scale"]; ok {
		tf.Scale = toF32(v)
	}
	if v, ok := m["duration"]; ok {
		tf.Duration = toF32(v)
	}
	return tf
}

// decodeMap normalizes the two shapes yaml.v2 can hand back for a nested
// mapping (map[string]interface{} after a JSON round-trip, or its native
// map[interface{}]interface{}) into one with string keys.
func decodeMap(raw interface{}) map[string]interface{} {

	switch m := raw.(type) {
	case map[string]interface{}:
		return m
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out
	default:
		return nil
	}
}

func decodeRows(raw interface{}) [][]float64 {

	outer, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	rows := make([][]float64, len(outer))
	for i, r := range outer {
		inner, ok := r.([]interface{})
		if !ok {
			continue
		}
		row := make([]float64, len(inner))
		for k, v := range inner {
			row[k] = toF64(v)
		}
		rows[i] = row
	}
	return rows
}

func toF64(v interface{}) float64 {

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toF32(v interface{}) float32 { return float32(toF64(v)) }
