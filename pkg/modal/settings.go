package modal

import (
	"encoding/json"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
)

// ActionSettings describes an action button in declarative Settings.
type ActionSettings struct {
	Text  string `json:"text"`
	Class string `json:"class"`
	Icon  string `json:"icon,omitempty"`
}

// Settings is a declarative modal description serialized into the host's
// settings object. It carries no callbacks.
type Settings struct {
	Title     string           `json:"title"`
	Class     string           `json:"class"`
	CloseIcon bool             `json:"closeIcon"`
	Content   string           `json:"content"`
	Actions   []ActionSettings `json:"actions"`

	// Extra holds additional host settings. Keys that collide with the
	// fields above are ignored.
	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the encoded settings.
func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings
	data, err := json.Marshal(plain(s))
	if err != nil || len(s.Extra) == 0 {
		return data, err
	}
	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// FromSettings creates a modal from declarative settings. Settings the host
// cannot represent fail with an error wrapping *errors.SerializationError.
func FromSettings(s Settings) (*Modal, error) {
	h := host.Current()
	props, err := host.ToObject(h, s)
	if err != nil {
		return nil, &errors.Error{Op: "modal.FromSettings", Kind: errors.KindSerialization, Err: err}
	}
	obj, err := h.Construct("modal", props)
	if err != nil {
		return nil, &errors.Error{Op: "modal.FromSettings", Kind: errors.KindHost, Err: err}
	}
	return &Modal{w: host.NewWidget("modal", obj, behavior, nil)}, nil
}
