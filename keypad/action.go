// Package keypad implements the vendor HID protocol of CH57x-style
// programmable USB keypads: the action model stored in each key slot, the
// byte-exact codec for the fixed 65-byte reports, the request framing, and a
// session that sequences multi-packet exchanges against one open device.
package keypad

import "strings"

// ModKey is the HID keyboard modifier bitmask as stored on the device.
// Left and right variants are independent bits and combine freely.
type ModKey byte

const (
	ModCtrl   ModKey = 0x01
	ModShift  ModKey = 0x02
	ModAlt    ModKey = 0x04
	ModGui    ModKey = 0x08
	ModRCtrl  ModKey = 0x10
	ModRShift ModKey = 0x20
	ModRAlt   ModKey = 0x40
	ModRGui   ModKey = 0x80
)

// modKeyNames is ordered by bit value so formatting is deterministic.
var modKeyNames = []struct {
	Bit  ModKey
	Name string
}{
	{ModCtrl, "Ctrl"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
	{ModGui, "Gui"},
	{ModRCtrl, "RCtrl"},
	{ModRShift, "RShift"},
	{ModRAlt, "RAlt"},
	{ModRGui, "RGui"},
}

var nameToModKey = func() map[string]ModKey {
	m := make(map[string]ModKey, len(modKeyNames))
	for _, mn := range modKeyNames {
		m[mn.Name] = mn.Bit
	}
	return m
}()

// CreateModKey folds the named modifiers into one bitmask. An unrecognized
// name yields a ConfigError so the caller can reject bad action text.
func CreateModKey(names ...string) (ModKey, error) {
	var mod ModKey
	for _, name := range names {
		bit, ok := nameToModKey[name]
		if !ok {
			return 0, configErrorf("unknown modifier name %q", name)
		}
		mod |= bit
	}
	return mod, nil
}

// Names lists the set bits in formatting order.
func (m ModKey) Names() []string {
	var names []string
	for _, mn := range modKeyNames {
		if m&mn.Bit != 0 {
			names = append(names, mn.Name)
		}
	}
	return names
}

func (m ModKey) String() string {
	return strings.Join(m.Names(), "+")
}

// KeyAction is one keystroke: a HID usage code plus modifier bits.
type KeyAction struct {
	KeyCode byte   `json:"keyCode"`
	ModKey  ModKey `json:"modKey"`
}

// With returns a copy with the given modifier bits OR-ed in. OR-ing an
// already-set bit is a no-op.
func (a KeyAction) With(bits ModKey) KeyAction {
	a.ModKey |= bits
	return a
}

func Ctrl(a KeyAction) KeyAction   { return a.With(ModCtrl) }
func Shift(a KeyAction) KeyAction  { return a.With(ModShift) }
func Alt(a KeyAction) KeyAction    { return a.With(ModAlt) }
func Gui(a KeyAction) KeyAction    { return a.With(ModGui) }
func RCtrl(a KeyAction) KeyAction  { return a.With(ModRCtrl) }
func RShift(a KeyAction) KeyAction { return a.With(ModRShift) }
func RAlt(a KeyAction) KeyAction   { return a.With(ModRAlt) }
func RGui(a KeyAction) KeyAction   { return a.With(ModRGui) }

// Mouse button flags.
const (
	ButtonLeft   byte = 0x01
	ButtonRight  byte = 0x02
	ButtonMiddle byte = 0x04
)

// MouseAction is one mouse event: button flags plus relative X/Y/wheel
// deltas, each stored on the wire as a signed byte.
type MouseAction struct {
	ModKey ModKey `json:"modKey"`
	Button byte   `json:"button"`
	X      int8   `json:"x"`
	Y      int8   `json:"y"`
	Wheel  int8   `json:"wheel"`
}

// With returns a copy with the given modifier bits OR-ed in.
func (a MouseAction) With(bits ModKey) MouseAction {
	a.ModKey |= bits
	return a
}

// ConsumerAction is a USB HID consumer-control usage (media/system key).
type ConsumerAction struct {
	ID uint16 `json:"id"`
}

// ToInt8 clamps n into [-128,127] and returns its unsigned-byte wire form.
// Out-of-range values clamp (127 / -128), they do not wrap.
func ToInt8(n int) byte {
	if n > 127 {
		n = 127
	}
	if n < -128 {
		n = -128
	}
	return byte(int8(n))
}

// FromInt8 recovers the signed value ToInt8 stored; exact inverse for every
// n in [-128,127].
func FromInt8(b byte) int8 {
	return int8(b)
}
