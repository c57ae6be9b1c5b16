package keypad

import (
	"encoding/json"
	"fmt"
	"os"
)

// keyMapJSON is the on-disk shape of a slot. Exactly one variant field is
// populated, selected by Type.
type keyMapJSON struct {
	LayerID  int             `json:"layerId"`
	KeyID    int             `json:"keyId"`
	Type     string          `json:"type"`
	Keys     []KeyAction     `json:"keys,omitempty"`
	Consumer *ConsumerAction `json:"consumer,omitempty"`
	Mouse    *MouseAction    `json:"mouse,omitempty"`
	RawType  byte            `json:"rawType,omitempty"`
	Raw      []byte          `json:"raw,omitempty"`
}

// MarshalJSON flattens the tagged union into the snapshot shape.
func (m KeyMapWithID) MarshalJSON() ([]byte, error) {
	j := keyMapJSON{LayerID: m.LayerID, KeyID: m.KeyID}
	switch v := m.Map.(type) {
	case KeysMap:
		j.Type = "keys"
		j.Keys = v.Keys
	case ConsumerMap:
		j.Type = "consumer"
		c := v.Consumer
		j.Consumer = &c
	case MouseMap:
		j.Type = "mouse"
		mm := v.Mouse
		j.Mouse = &mm
	case RawMap:
		j.Type = "raw"
		j.RawType = v.TypeByte
		j.Raw = v.Data
	default:
		return nil, fmt.Errorf("cannot marshal keymap type %T", m.Map)
	}
	return json.Marshal(j)
}

// UnmarshalJSON restores the tagged union.
func (m *KeyMapWithID) UnmarshalJSON(data []byte) error {
	var j keyMapJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.LayerID = j.LayerID
	m.KeyID = j.KeyID
	switch j.Type {
	case "keys":
		m.Map = KeysMap{Keys: j.Keys}
	case "consumer":
		if j.Consumer == nil {
			return fmt.Errorf("keymap %d/%d: missing consumer field", j.LayerID, j.KeyID)
		}
		m.Map = ConsumerMap{Consumer: *j.Consumer}
	case "mouse":
		if j.Mouse == nil {
			return fmt.Errorf("keymap %d/%d: missing mouse field", j.LayerID, j.KeyID)
		}
		m.Map = MouseMap{Mouse: *j.Mouse}
	case "raw":
		m.Map = RawMap{TypeByte: j.RawType, Data: j.Raw}
	default:
		return fmt.Errorf("keymap %d/%d: unknown type %q", j.LayerID, j.KeyID, j.Type)
	}
	return nil
}

// Snapshot is a complete dump of a device configuration, as written by the
// read command and replayed by the write command.
type Snapshot struct {
	Info    Info           `json:"info"`
	Layers  int            `json:"layers"`
	KeyMaps []KeyMapWithID `json:"keyMaps"`
}

// Store writes the snapshot as indented JSON.
func (s *Snapshot) Store(filename string) error {
	j, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, j, 0644)
}

// LoadSnapshot reads a snapshot written by Store.
func LoadSnapshot(filename string) (*Snapshot, error) {
	j, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	res := &Snapshot{}
	if err := json.Unmarshal(j, res); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return res, nil
}
