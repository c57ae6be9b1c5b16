package keypad

import (
	"testing"

	"github.com/uk-taniyama/keypad-mapper/hidkey"
)

func TestFormatKeyAction(t *testing.T) {
	tests := []struct {
		a    KeyAction
		want string
	}{
		{KeyAction{KeyCode: byte(hidkey.KeyA)}, "A"},
		{Ctrl(KeyAction{KeyCode: byte(hidkey.KeyA)}), "Ctrl+A"},
		{Ctrl(Shift(KeyAction{KeyCode: byte(hidkey.KeyF5)})), "Ctrl+Shift+F5"},
		{KeyAction{KeyCode: 0xf0}, "Key(0xf0)"},
	}
	for _, tt := range tests {
		if got := FormatKeyAction(tt.a); got != tt.want {
			t.Errorf("FormatKeyAction(%+v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestFormatMouseAction(t *testing.T) {
	tests := []struct {
		a    MouseAction
		want string
	}{
		{MouseAction{Button: ButtonLeft}, "LButton"},
		{MouseAction{ModKey: ModCtrl, Button: ButtonLeft}, "Ctrl+LButton"},
		{MouseAction{Wheel: 1}, "WheelUp"},
		{MouseAction{X: 5, Y: -3}, "Move(5,-3)"},
		{MouseAction{Wheel: 4}, "Wheel(4)"},
		{MouseAction{Button: ButtonMiddle, X: 2}, "Mouse(button=0x04,x=2,y=0,wheel=0)"},
	}
	for _, tt := range tests {
		if got := FormatMouseAction(tt.a); got != tt.want {
			t.Errorf("FormatMouseAction(%+v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestFormatConsumerAction(t *testing.T) {
	if got := FormatConsumerAction(ConsumerAction{ID: 0x00e9}); got != "VolumeUp" {
		t.Errorf("FormatConsumerAction(0x00e9) = %q, want VolumeUp", got)
	}
	if got := FormatConsumerAction(ConsumerAction{ID: 0x0999}); got != "Consumer(0x999)" {
		t.Errorf("FormatConsumerAction(0x0999) = %q", got)
	}
}

func TestFormatKeyMap(t *testing.T) {
	tests := []struct {
		name string
		m    KeyMap
		want string
	}{
		{"empty", KeysMap{}, "-"},
		{"single", KeysMap{Keys: []KeyAction{Ctrl(KeyAction{KeyCode: byte(hidkey.KeyA)})}}, "Ctrl+A"},
		{"chord list", KeysMap{Keys: []KeyAction{
			Ctrl(KeyAction{KeyCode: byte(hidkey.KeyA)}),
			Ctrl(KeyAction{KeyCode: byte(hidkey.KeyB)}),
		}}, "Ctrl+A, Ctrl+B"},
		{"consumer", ConsumerMap{Consumer: ConsumerAction{ID: 0x00cd}}, "PlayPause"},
		{"mouse", MouseMap{Mouse: MouseAction{Wheel: -1}}, "WheelDown"},
	}
	for _, tt := range tests {
		if got := FormatKeyMap(tt.m); got != tt.want {
			t.Errorf("%s: FormatKeyMap = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// A sequence parsed from @text comes back in @text form so dumps can be fed
// straight back to the map command.
func TestFormatKeyMapTextRoundTrip(t *testing.T) {
	for _, text := range []string{"@hello", "@Hi!", "@a b"} {
		m, err := ParseAction(text)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", text, err)
		}
		if got := FormatKeyMap(m); got != text {
			t.Errorf("FormatKeyMap(ParseAction(%q)) = %q", text, got)
		}
	}
}

func TestFormatKeyMapRaw(t *testing.T) {
	data := make([]byte, ReportSize)
	data[offType] = 0x77
	got := FormatKeyMap(RawMap{TypeByte: 0x77, Data: data})
	want := "Raw(type=0x77, data=00 00 00 00 00 00 00 00)"
	if got != want {
		t.Errorf("FormatKeyMap(raw) = %q, want %q", got, want)
	}
}
