package keypad

import "fmt"

// KeyMapType is the payload type byte of a key slot on the wire.
type KeyMapType byte

const (
	KeyMapKeys     KeyMapType = 0x01 // list of up to 18 keystrokes
	KeyMapConsumer KeyMapType = 0x02 // one consumer-control usage
	KeyMapMouse    KeyMapType = 0x03 // one mouse event
)

func (t KeyMapType) String() string {
	switch t {
	case KeyMapKeys:
		return "keys"
	case KeyMapConsumer:
		return "consumer"
	case KeyMapMouse:
		return "mouse"
	}
	return fmt.Sprintf("unknown(%#02x)", byte(t))
}

// KeyMap is one slot's configured action. Exactly one of the variants below
// implements it; RawMap carries payloads with a type byte this codec does
// not know, so reads of newer firmware never fail.
type KeyMap interface {
	Type() KeyMapType
}

// KeysMap holds a keystroke sequence (0..MaxKeyActions entries).
type KeysMap struct {
	Keys []KeyAction
}

func (KeysMap) Type() KeyMapType { return KeyMapKeys }

// ConsumerMap holds one media/system key.
type ConsumerMap struct {
	Consumer ConsumerAction
}

func (ConsumerMap) Type() KeyMapType { return KeyMapConsumer }

// MouseMap holds one mouse event.
type MouseMap struct {
	Mouse MouseAction
}

func (MouseMap) Type() KeyMapType { return KeyMapMouse }

// RawMap preserves a response whose type byte is unrecognized. It can be
// inspected and re-displayed but never packed back onto the wire.
type RawMap struct {
	TypeByte byte
	Data     []byte // full report as received
}

func (m RawMap) Type() KeyMapType { return KeyMapType(m.TypeByte) }

// KeyMapWithID ties a KeyMap to its slot: layer and key id, both 1-based.
// Key ids cover the physical keys first, then three virtual slots per knob.
type KeyMapWithID struct {
	LayerID int
	KeyID   int
	Map     KeyMap
}

// Info is the device shape reported by the read-info exchange.
type Info struct {
	Keys  byte `json:"keys"`
	Knobs byte `json:"knobs"`
}

// KeyCount is the number of addressable slots: each knob exposes three
// virtual keys (rotate left, click, rotate right) after the physical keys.
func (i Info) KeyCount() int {
	return int(i.Keys) + 3*int(i.Knobs)
}

func (i Info) String() string {
	return fmt.Sprintf("keys=%d knobs=%d (%d slots)", i.Keys, i.Knobs, i.KeyCount())
}

// KnobOp is one of the three actions a knob exposes, in the fixed order the
// firmware assigns their virtual key ids.
type KnobOp int

const (
	KnobLeft  KnobOp = iota // rotate left
	KnobClick               // press
	KnobRight               // rotate right
)

func (o KnobOp) String() string {
	switch o {
	case KnobLeft:
		return "left"
	case KnobClick:
		return "click"
	case KnobRight:
		return "right"
	}
	return fmt.Sprintf("KnobOp(%d)", int(o))
}

// ParseKnobOp resolves the CLI spelling of a knob action.
func ParseKnobOp(s string) (KnobOp, error) {
	switch s {
	case "left":
		return KnobLeft, nil
	case "click":
		return KnobClick, nil
	case "right":
		return KnobRight, nil
	}
	return 0, configErrorf("unknown knob action %q (want left, click or right)", s)
}

// KeyIDForKnob returns the virtual key id of one knob action. knobID is
// 1-based. The mapping is keyID = 1 + keys + 3*(knobID-1) + op and inverts
// exactly via KnobByKeyID.
func (i Info) KeyIDForKnob(knobID int, op KnobOp) (int, error) {
	if knobID < 1 || knobID > int(i.Knobs) {
		return 0, configErrorf("knob id %d out of range [1,%d]", knobID, i.Knobs)
	}
	if op < KnobLeft || op > KnobRight {
		return 0, configErrorf("invalid knob action %d", int(op))
	}
	return 1 + int(i.Keys) + 3*(knobID-1) + int(op), nil
}

// KnobByKeyID is the inverse of KeyIDForKnob; ok is false for key ids that
// address a physical key or lie outside the device.
func (i Info) KnobByKeyID(keyID int) (knobID int, op KnobOp, ok bool) {
	n := keyID - 1 - int(i.Keys)
	if n < 0 || n >= 3*int(i.Knobs) {
		return 0, 0, false
	}
	return n/3 + 1, KnobOp(n % 3), true
}

// ValidKeyID reports whether keyID addresses any slot (physical or knob).
func (i Info) ValidKeyID(keyID int) bool {
	return keyID >= 1 && keyID <= i.KeyCount()
}
