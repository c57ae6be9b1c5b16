package keypad

import (
	"fmt"
	"strings"

	"github.com/uk-taniyama/keypad-mapper/hidkey"
)

// FormatKeyAction renders one keystroke in grammar form, e.g. "Ctrl+A".
// Codes without a name fall back to their hex form.
func FormatKeyAction(a KeyAction) string {
	base := hidkey.Key(a.KeyCode).String()
	if a.ModKey == 0 {
		return base
	}
	return a.ModKey.String() + "+" + base
}

// FormatMouseAction prefers the named form ("WheelUp", "Ctrl+LButton"),
// falls back to a structural Move/Wheel form for plain deltas, then to a
// full field dump.
func FormatMouseAction(a MouseAction) string {
	bare := a
	bare.ModKey = 0
	if name, ok := mouseToName[bare]; ok {
		if a.ModKey == 0 {
			return name
		}
		return a.ModKey.String() + "+" + name
	}

	prefix := ""
	if a.ModKey != 0 {
		prefix = a.ModKey.String() + "+"
	}
	if a.Button == 0 && a.Wheel == 0 {
		return fmt.Sprintf("%sMove(%d,%d)", prefix, a.X, a.Y)
	}
	if a.Button == 0 && a.X == 0 && a.Y == 0 {
		return fmt.Sprintf("%sWheel(%d)", prefix, a.Wheel)
	}
	return fmt.Sprintf("%sMouse(button=%#04x,x=%d,y=%d,wheel=%d)", prefix, a.Button, a.X, a.Y, a.Wheel)
}

// FormatConsumerAction renders the usage name if known, else the hex id.
func FormatConsumerAction(c ConsumerAction) string {
	if name, ok := consumerToName[c.ID]; ok {
		return name
	}
	return fmt.Sprintf("Consumer(%#04x)", c.ID)
}

// keysAsText renders a keystroke sequence back as "@text" when every stroke
// is a plain character from the layout table.
func keysAsText(keys []KeyAction) (string, bool) {
	var b strings.Builder
	for _, a := range keys {
		if a.ModKey&^ModShift != 0 {
			return "", false
		}
		r, ok := hidkey.ToChar(hidkey.Key(a.KeyCode), a.ModKey&ModShift != 0)
		if !ok {
			return "", false
		}
		b.WriteRune(r)
	}
	return "@" + b.String(), true
}

// FormatKeyMap renders one slot for display. Multi-stroke sequences that
// spell literal text come back in the "@text" grammar form so dumps can be
// fed straight back to the map command.
func FormatKeyMap(m KeyMap) string {
	switch v := m.(type) {
	case KeysMap:
		if len(v.Keys) == 0 {
			return "-"
		}
		if len(v.Keys) > 1 {
			if s, ok := keysAsText(v.Keys); ok {
				return s
			}
		}
		parts := make([]string, len(v.Keys))
		for i, a := range v.Keys {
			parts[i] = FormatKeyAction(a)
		}
		return strings.Join(parts, ", ")
	case ConsumerMap:
		return FormatConsumerAction(v.Consumer)
	case MouseMap:
		return FormatMouseAction(v.Mouse)
	case RawMap:
		data := v.Data
		if len(data) > offPayload {
			data = data[offPayload:min(len(data), offPayload+8)]
		}
		return fmt.Sprintf("Raw(type=%#02x, data=% x)", v.TypeByte, data)
	}
	return fmt.Sprintf("KeyMap(%v)", m)
}
