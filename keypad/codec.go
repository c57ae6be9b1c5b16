package keypad

import (
	"encoding/binary"
	"fmt"
)

// Report layout. Every report is ReportSize bytes; byte 0 carries the 0x03
// report id, byte 1 the command class. Keymap reports, both the 0xfd write
// request and the 0xfa read response, share the same field offsets.
const (
	ReportSize = 65

	offKeyID   = 2
	offLayerID = 3
	offType    = 4
	// bytes 5..9 are reserved, always zero on pack
	offPayload = 0x0A

	offKeyCount   = 0x0A // keys variant: entry count
	offKeyPairs   = 0x0B // keys variant: (modKey, keyCode) pairs
	offConsumerID = 0x0B // consumer variant: usage id, little-endian
	offMouseMod   = 0x0B
	offMouseBtn   = 0x0C
	offMouseX     = 0x0D
	offMouseY     = 0x0E
	offMouseWheel = 0x0F
)

// MaxKeyActions is the most keystrokes one slot can store.
const MaxKeyActions = 18

// PackKeyActions encodes a keystroke sequence as
// [count, (modKey, keyCode) x count]. More than MaxKeyActions entries is a
// hard error; the firmware slot cannot hold them.
func PackKeyActions(keys []KeyAction) ([]byte, error) {
	if len(keys) > MaxKeyActions {
		return nil, fmt.Errorf("too many key actions: %d > %d", len(keys), MaxKeyActions)
	}
	out := make([]byte, 0, 1+2*len(keys))
	out = append(out, byte(len(keys)))
	for _, k := range keys {
		out = append(out, byte(k.ModKey), k.KeyCode)
	}
	return out, nil
}

// UnpackKeyActions decodes the keystroke sequence of a full keymap report.
func UnpackKeyActions(buf []byte) ([]KeyAction, error) {
	if len(buf) <= offKeyCount {
		return nil, fmt.Errorf("report too short for key actions: %d bytes", len(buf))
	}
	count := int(buf[offKeyCount])
	if count > MaxKeyActions {
		return nil, fmt.Errorf("key action count %d exceeds %d", count, MaxKeyActions)
	}
	if len(buf) < offKeyPairs+2*count {
		return nil, fmt.Errorf("report too short for %d key actions", count)
	}
	keys := make([]KeyAction, count)
	for i := range keys {
		keys[i] = KeyAction{
			ModKey:  ModKey(buf[offKeyPairs+2*i]),
			KeyCode: buf[offKeyPairs+2*i+1],
		}
	}
	return keys, nil
}

// PackConsumerAction encodes a consumer usage as [0x01, lo, hi].
func PackConsumerAction(c ConsumerAction) []byte {
	return []byte{0x01, byte(c.ID), byte(c.ID >> 8)}
}

// UnpackConsumerAction reads the little-endian usage id of a full report.
func UnpackConsumerAction(buf []byte) (ConsumerAction, error) {
	if len(buf) < offConsumerID+2 {
		return ConsumerAction{}, fmt.Errorf("report too short for consumer action: %d bytes", len(buf))
	}
	return ConsumerAction{ID: binary.LittleEndian.Uint16(buf[offConsumerID:])}, nil
}

// PackMouseAction encodes the fixed six-byte mouse payload
// [0x04, modKey, button, x, y, wheel].
func PackMouseAction(m MouseAction) []byte {
	return []byte{0x04, byte(m.ModKey), m.Button, byte(m.X), byte(m.Y), byte(m.Wheel)}
}

// UnpackMouseAction reads the mouse fields of a full report.
func UnpackMouseAction(buf []byte) (MouseAction, error) {
	if len(buf) <= offMouseWheel {
		return MouseAction{}, fmt.Errorf("report too short for mouse action: %d bytes", len(buf))
	}
	return MouseAction{
		ModKey: ModKey(buf[offMouseMod]),
		Button: buf[offMouseBtn],
		X:      FromInt8(buf[offMouseX]),
		Y:      FromInt8(buf[offMouseY]),
		Wheel:  FromInt8(buf[offMouseWheel]),
	}, nil
}

// PackKeyMap encodes a slot payload: the type byte, five reserved zero
// bytes, then the variant payload. The result is what a 0xfd write request
// carries from offset 4, and equals bytes 4.. of the matching 0xfa response.
// RawMap values cannot be packed; writing bytes we do not understand back to
// hardware is refused.
func PackKeyMap(m KeyMap) ([]byte, error) {
	var payload []byte
	switch v := m.(type) {
	case KeysMap:
		p, err := PackKeyActions(v.Keys)
		if err != nil {
			return nil, err
		}
		payload = p
	case ConsumerMap:
		payload = PackConsumerAction(v.Consumer)
	case MouseMap:
		payload = PackMouseAction(v.Mouse)
	default:
		return nil, fmt.Errorf("cannot pack keymap type %s", m.Type())
	}
	out := make([]byte, 0, 6+len(payload))
	out = append(out, byte(m.Type()), 0, 0, 0, 0, 0)
	return append(out, payload...), nil
}

// UnpackKeyMapWithID decodes one 0xfa response report: key id at offset 2,
// layer id at offset 3, type at offset 4, payload from 0x0A. Unknown type
// bytes are not an error; they come back as a RawMap so newer firmware
// remains readable.
func UnpackKeyMapWithID(buf []byte) (KeyMapWithID, error) {
	if len(buf) < ReportSize {
		return KeyMapWithID{}, fmt.Errorf("short keymap report: %d bytes", len(buf))
	}
	res := KeyMapWithID{
		KeyID:   int(buf[offKeyID]),
		LayerID: int(buf[offLayerID]),
	}
	switch KeyMapType(buf[offType]) {
	case KeyMapKeys:
		keys, err := UnpackKeyActions(buf)
		if err != nil {
			return KeyMapWithID{}, err
		}
		res.Map = KeysMap{Keys: keys}
	case KeyMapConsumer:
		c, err := UnpackConsumerAction(buf)
		if err != nil {
			return KeyMapWithID{}, err
		}
		res.Map = ConsumerMap{Consumer: c}
	case KeyMapMouse:
		m, err := UnpackMouseAction(buf)
		if err != nil {
			return KeyMapWithID{}, err
		}
		res.Map = MouseMap{Mouse: m}
	default:
		data := make([]byte, len(buf))
		copy(data, buf)
		res.Map = RawMap{TypeByte: buf[offType], Data: data}
	}
	return res, nil
}
