package host

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-drift/fomantic/pkg/errors"
)

// Codec converts a declarative configuration struct into the plain
// property map a host parameter object is built from.
type Codec interface {
	Encode(value any) (map[string]any, error)
}

// JSONCodec implements Codec through encoding/json, so struct tags decide
// the host property names.
type JSONCodec struct{}

// Encode serializes value and decodes it back into a property map.
// Values JSON cannot represent (channels, functions, NaN) fail, as do
// values that do not encode to a JSON object.
func (JSONCodec) Encode(value any) (map[string]any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var props map[string]any
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("expected an object: %w", err)
	}
	return props, nil
}

// DefaultCodec is the codec used by ToObject.
var DefaultCodec Codec = JSONCodec{}

// ToObject serializes value into a new host object. Failures are returned
// as *errors.SerializationError.
func ToObject(h Host, value any) (Object, error) {
	props, err := DefaultCodec.Encode(value)
	if err != nil {
		return nil, &errors.SerializationError{Type: fmt.Sprintf("%T", value), Err: err}
	}
	obj := h.NewObject()
	Assign(obj, props)
	return obj, nil
}

// Assign writes every entry of props into obj in key order.
func Assign(obj Object, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		obj.Set(k, props[k])
	}
}
