// Package hidkey holds the USB HID keyboard/keypad usage page constants the
// keypad firmware stores in its key slots, plus the name and character
// lookup tables the action grammar is built on.
package hidkey

import "fmt"

// Key is a usage ID from the HID keyboard/keypad usage page (0x07).
type Key byte

const (
	KeyNone Key = 0x00

	KeyA Key = 0x04 // Keyboard a and A
	KeyB Key = 0x05
	KeyC Key = 0x06
	KeyD Key = 0x07
	KeyE Key = 0x08
	KeyF Key = 0x09
	KeyG Key = 0x0a
	KeyH Key = 0x0b
	KeyI Key = 0x0c
	KeyJ Key = 0x0d
	KeyK Key = 0x0e
	KeyL Key = 0x0f
	KeyM Key = 0x10
	KeyN Key = 0x11
	KeyO Key = 0x12
	KeyP Key = 0x13
	KeyQ Key = 0x14
	KeyR Key = 0x15
	KeyS Key = 0x16
	KeyT Key = 0x17
	KeyU Key = 0x18
	KeyV Key = 0x19
	KeyW Key = 0x1a
	KeyX Key = 0x1b
	KeyY Key = 0x1c
	KeyZ Key = 0x1d

	Key1 Key = 0x1e // Keyboard 1 and !
	Key2 Key = 0x1f // Keyboard 2 and @
	Key3 Key = 0x20 // Keyboard 3 and #
	Key4 Key = 0x21 // Keyboard 4 and $
	Key5 Key = 0x22 // Keyboard 5 and %
	Key6 Key = 0x23 // Keyboard 6 and ^
	Key7 Key = 0x24 // Keyboard 7 and &
	Key8 Key = 0x25 // Keyboard 8 and *
	Key9 Key = 0x26 // Keyboard 9 and (
	Key0 Key = 0x27 // Keyboard 0 and )

	KeyEnter      Key = 0x28
	KeyEsc        Key = 0x29
	KeyBackspace  Key = 0x2a
	KeyTab        Key = 0x2b
	KeySpace      Key = 0x2c
	KeyMinus      Key = 0x2d // Keyboard - and _
	KeyEqual      Key = 0x2e // Keyboard = and +
	KeyLeftBrace  Key = 0x2f // Keyboard [ and {
	KeyRightBrace Key = 0x30 // Keyboard ] and }
	KeyBackslash  Key = 0x31 // Keyboard \ and |
	KeySemicolon  Key = 0x33 // Keyboard ; and :
	KeyApostrophe Key = 0x34 // Keyboard ' and "
	KeyGrave      Key = 0x35 // Keyboard ` and ~
	KeyComma      Key = 0x36 // Keyboard , and <
	KeyDot        Key = 0x37 // Keyboard . and >
	KeySlash      Key = 0x38 // Keyboard / and ?
	KeyCapsLock   Key = 0x39

	KeyF1  Key = 0x3a
	KeyF2  Key = 0x3b
	KeyF3  Key = 0x3c
	KeyF4  Key = 0x3d
	KeyF5  Key = 0x3e
	KeyF6  Key = 0x3f
	KeyF7  Key = 0x40
	KeyF8  Key = 0x41
	KeyF9  Key = 0x42
	KeyF10 Key = 0x43
	KeyF11 Key = 0x44
	KeyF12 Key = 0x45

	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4a
	KeyPageUp      Key = 0x4b
	KeyDelete      Key = 0x4c
	KeyEnd         Key = 0x4d
	KeyPageDown    Key = 0x4e
	KeyRight       Key = 0x4f
	KeyLeft        Key = 0x50
	KeyDown        Key = 0x51
	KeyUp          Key = 0x52

	KeyNumLock    Key = 0x53
	KeyKpSlash    Key = 0x54
	KeyKpAsterisk Key = 0x55
	KeyKpMinus    Key = 0x56
	KeyKpPlus     Key = 0x57
	KeyKpEnter    Key = 0x58
	KeyKp1        Key = 0x59
	KeyKp2        Key = 0x5a
	KeyKp3        Key = 0x5b
	KeyKp4        Key = 0x5c
	KeyKp5        Key = 0x5d
	KeyKp6        Key = 0x5e
	KeyKp7        Key = 0x5f
	KeyKp8        Key = 0x60
	KeyKp9        Key = 0x61
	KeyKp0        Key = 0x62
	KeyKpDot      Key = 0x63

	KeyCompose Key = 0x65 // Keyboard Application (menu)

	KeyF13 Key = 0x68
	KeyF14 Key = 0x69
	KeyF15 Key = 0x6a
	KeyF16 Key = 0x6b
	KeyF17 Key = 0x6c
	KeyF18 Key = 0x6d
	KeyF19 Key = 0x6e
	KeyF20 Key = 0x6f
	KeyF21 Key = 0x70
	KeyF22 Key = 0x71
	KeyF23 Key = 0x72
	KeyF24 Key = 0x73

	KeyMute       Key = 0x7f
	KeyVolumeUp   Key = 0x80
	KeyVolumeDown Key = 0x81

	KeyLeftCtrl   Key = 0xe0
	KeyLeftShift  Key = 0xe1
	KeyLeftAlt    Key = 0xe2
	KeyLeftMeta   Key = 0xe3
	KeyRightCtrl  Key = 0xe4
	KeyRightShift Key = 0xe5
	KeyRightAlt   Key = 0xe6
	KeyRightMeta  Key = 0xe7
)

// keyNames is the forward table; both lookup maps are derived from it once
// so name->key and key->name can never drift apart.
var keyNames = []struct {
	Key  Key
	Name string
}{
	{KeyA, "A"}, {KeyB, "B"}, {KeyC, "C"}, {KeyD, "D"}, {KeyE, "E"},
	{KeyF, "F"}, {KeyG, "G"}, {KeyH, "H"}, {KeyI, "I"}, {KeyJ, "J"},
	{KeyK, "K"}, {KeyL, "L"}, {KeyM, "M"}, {KeyN, "N"}, {KeyO, "O"},
	{KeyP, "P"}, {KeyQ, "Q"}, {KeyR, "R"}, {KeyS, "S"}, {KeyT, "T"},
	{KeyU, "U"}, {KeyV, "V"}, {KeyW, "W"}, {KeyX, "X"}, {KeyY, "Y"},
	{KeyZ, "Z"},
	{Key1, "1"}, {Key2, "2"}, {Key3, "3"}, {Key4, "4"}, {Key5, "5"},
	{Key6, "6"}, {Key7, "7"}, {Key8, "8"}, {Key9, "9"}, {Key0, "0"},
	{KeyEnter, "Enter"}, {KeyEsc, "Esc"}, {KeyBackspace, "Backspace"},
	{KeyTab, "Tab"}, {KeySpace, "Space"},
	{KeyMinus, "Minus"}, {KeyEqual, "Equal"},
	{KeyLeftBrace, "LeftBrace"}, {KeyRightBrace, "RightBrace"},
	{KeyBackslash, "Backslash"}, {KeySemicolon, "Semicolon"},
	{KeyApostrophe, "Apostrophe"}, {KeyGrave, "Grave"},
	{KeyComma, "Comma"}, {KeyDot, "Dot"}, {KeySlash, "Slash"},
	{KeyCapsLock, "CapsLock"},
	{KeyF1, "F1"}, {KeyF2, "F2"}, {KeyF3, "F3"}, {KeyF4, "F4"},
	{KeyF5, "F5"}, {KeyF6, "F6"}, {KeyF7, "F7"}, {KeyF8, "F8"},
	{KeyF9, "F9"}, {KeyF10, "F10"}, {KeyF11, "F11"}, {KeyF12, "F12"},
	{KeyPrintScreen, "PrintScreen"}, {KeyScrollLock, "ScrollLock"},
	{KeyPause, "Pause"}, {KeyInsert, "Insert"}, {KeyHome, "Home"},
	{KeyPageUp, "PageUp"}, {KeyDelete, "Delete"}, {KeyEnd, "End"},
	{KeyPageDown, "PageDown"},
	{KeyRight, "Right"}, {KeyLeft, "Left"}, {KeyDown, "Down"}, {KeyUp, "Up"},
	{KeyNumLock, "NumLock"}, {KeyKpSlash, "KpSlash"},
	{KeyKpAsterisk, "KpAsterisk"}, {KeyKpMinus, "KpMinus"},
	{KeyKpPlus, "KpPlus"}, {KeyKpEnter, "KpEnter"},
	{KeyKp1, "Kp1"}, {KeyKp2, "Kp2"}, {KeyKp3, "Kp3"}, {KeyKp4, "Kp4"},
	{KeyKp5, "Kp5"}, {KeyKp6, "Kp6"}, {KeyKp7, "Kp7"}, {KeyKp8, "Kp8"},
	{KeyKp9, "Kp9"}, {KeyKp0, "Kp0"}, {KeyKpDot, "KpDot"},
	{KeyCompose, "Compose"},
	{KeyF13, "F13"}, {KeyF14, "F14"}, {KeyF15, "F15"}, {KeyF16, "F16"},
	{KeyF17, "F17"}, {KeyF18, "F18"}, {KeyF19, "F19"}, {KeyF20, "F20"},
	{KeyF21, "F21"}, {KeyF22, "F22"}, {KeyF23, "F23"}, {KeyF24, "F24"},
	{KeyMute, "Mute"}, {KeyVolumeUp, "VolumeUp"}, {KeyVolumeDown, "VolumeDown"},
	{KeyLeftCtrl, "LeftCtrl"}, {KeyLeftShift, "LeftShift"},
	{KeyLeftAlt, "LeftAlt"}, {KeyLeftMeta, "LeftMeta"},
	{KeyRightCtrl, "RightCtrl"}, {KeyRightShift, "RightShift"},
	{KeyRightAlt, "RightAlt"}, {KeyRightMeta, "RightMeta"},
}

var (
	nameToKey map[string]Key
	keyToName map[Key]string
)

func init() {
	nameToKey = make(map[string]Key, len(keyNames))
	keyToName = make(map[Key]string, len(keyNames))
	for _, kn := range keyNames {
		nameToKey[kn.Name] = kn.Key
		keyToName[kn.Key] = kn.Name
	}
}

// ByName resolves an action-grammar key name ("A", "F5", "Enter").
func ByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// Name returns the canonical name for k, or "" if k has none.
func Name(k Key) string {
	return keyToName[k]
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%#02x)", byte(k))
}
