package keypad

import (
	"strings"

	"github.com/uk-taniyama/keypad-mapper/hidkey"
)

// Named mouse actions the grammar accepts and the formatter prefers.
// Forward table only; lookup maps are derived once in init.
var mouseActionNames = []struct {
	Name   string
	Action MouseAction
}{
	{"LButton", MouseAction{Button: ButtonLeft}},
	{"RButton", MouseAction{Button: ButtonRight}},
	{"MButton", MouseAction{Button: ButtonMiddle}},
	{"WheelUp", MouseAction{Wheel: 1}},
	{"WheelDown", MouseAction{Wheel: -1}},
	{"MouseUp", MouseAction{Y: -1}},
	{"MouseDown", MouseAction{Y: 1}},
	{"MouseLeft", MouseAction{X: -1}},
	{"MouseRight", MouseAction{X: 1}},
}

// Named consumer-control usages (HID usage page 0x0C).
var consumerActionNames = []struct {
	Name string
	ID   uint16
}{
	{"ScanPrev", 0x00b6},
	{"ScanNext", 0x00b5},
	{"PlayPause", 0x00cd},
	{"Stop", 0x00b7},
	{"Eject", 0x00b8},
	{"Mute", 0x00e2},
	{"VolumeUp", 0x00e9},
	{"VolumeDown", 0x00ea},
	{"BrightnessUp", 0x006f},
	{"BrightnessDown", 0x0070},
	{"Media", 0x0183},
	{"Mail", 0x018a},
	{"Calculator", 0x0192},
	{"MyComputer", 0x0194},
	{"WWWSearch", 0x0221},
	{"WWWHome", 0x0223},
	{"WWWBack", 0x0224},
	{"WWWForward", 0x0225},
	{"WWWRefresh", 0x0227},
	{"WWWFavorites", 0x022a},
}

var (
	nameToMouse    map[string]MouseAction
	mouseToName    map[MouseAction]string
	nameToConsumer map[string]uint16
	consumerToName map[uint16]string
)

func init() {
	nameToMouse = make(map[string]MouseAction, len(mouseActionNames))
	mouseToName = make(map[MouseAction]string, len(mouseActionNames))
	for _, mn := range mouseActionNames {
		nameToMouse[mn.Name] = mn.Action
		mouseToName[mn.Action] = mn.Name
	}
	nameToConsumer = make(map[string]uint16, len(consumerActionNames))
	consumerToName = make(map[uint16]string, len(consumerActionNames))
	for _, cn := range consumerActionNames {
		nameToConsumer[cn.Name] = cn.ID
		consumerToName[cn.ID] = cn.Name
	}
}

// KeyActionsFromString converts literal text into the keystroke sequence
// that types it. Characters missing from the layout table are a
// ConfigError, as is text longer than one slot holds.
func KeyActionsFromString(s string) ([]KeyAction, error) {
	var keys []KeyAction
	for _, r := range s {
		ck, ok := hidkey.FromChar(r)
		if !ok {
			return nil, configErrorf("character %q cannot be typed on this layout", r)
		}
		a := KeyAction{KeyCode: byte(ck.Key)}
		if ck.Shift {
			a = Shift(a)
		}
		keys = append(keys, a)
	}
	if len(keys) > MaxKeyActions {
		return nil, configErrorf("text %q needs %d keystrokes, a slot holds at most %d", s, len(keys), MaxKeyActions)
	}
	return keys, nil
}

// ParseAction converts one action expression into a KeyMap. The grammar:
//
//	@hello world      literal text, typed via the layout table
//	Ctrl+Shift+A      modifiers joined by '+' before a key name
//	Ctrl+LButton      modifiers apply to mouse actions too
//	PlayPause         bare consumer/media action name
func ParseAction(text string) (KeyMap, error) {
	if raw, ok := strings.CutPrefix(text, "@"); ok {
		keys, err := KeyActionsFromString(raw)
		if err != nil {
			return nil, err
		}
		return KeysMap{Keys: keys}, nil
	}
	if text == "" {
		return nil, configErrorf("empty action")
	}

	parts := strings.Split(text, "+")
	base := parts[len(parts)-1]
	mod, err := CreateModKey(parts[:len(parts)-1]...)
	if err != nil {
		return nil, err
	}

	if key, ok := hidkey.ByName(base); ok {
		return KeysMap{Keys: []KeyAction{{KeyCode: byte(key), ModKey: mod}}}, nil
	}
	if mouse, ok := nameToMouse[base]; ok {
		return MouseMap{Mouse: mouse.With(mod)}, nil
	}
	if id, ok := nameToConsumer[base]; ok {
		if mod != 0 {
			return nil, configErrorf("consumer action %q cannot carry modifiers", base)
		}
		return ConsumerMap{Consumer: ConsumerAction{ID: id}}, nil
	}
	return nil, configErrorf("unknown action %q", base)
}
