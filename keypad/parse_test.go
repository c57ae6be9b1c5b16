package keypad

import (
	"testing"

	"github.com/uk-taniyama/keypad-mapper/hidkey"
)

func TestParseActionKeys(t *testing.T) {
	tests := []struct {
		text string
		want KeyAction
	}{
		{"A", KeyAction{KeyCode: byte(hidkey.KeyA)}},
		{"Ctrl+A", Ctrl(KeyAction{KeyCode: byte(hidkey.KeyA)})},
		{"Ctrl+Shift+A", Ctrl(Shift(KeyAction{KeyCode: byte(hidkey.KeyA)}))},
		{"Shift+F5", Shift(KeyAction{KeyCode: byte(hidkey.KeyF5)})},
		{"RGui+Enter", RGui(KeyAction{KeyCode: byte(hidkey.KeyEnter)})},
	}
	for _, tt := range tests {
		m, err := ParseAction(tt.text)
		if err != nil {
			t.Errorf("ParseAction(%q): %v", tt.text, err)
			continue
		}
		km, ok := m.(KeysMap)
		if !ok {
			t.Errorf("ParseAction(%q) = %T, want KeysMap", tt.text, m)
			continue
		}
		if len(km.Keys) != 1 || km.Keys[0] != tt.want {
			t.Errorf("ParseAction(%q) = %+v, want [%+v]", tt.text, km.Keys, tt.want)
		}
	}
}

func TestParseActionMouse(t *testing.T) {
	tests := []struct {
		text string
		want MouseAction
	}{
		{"LButton", MouseAction{Button: ButtonLeft}},
		{"WheelUp", MouseAction{Wheel: 1}},
		{"MouseLeft", MouseAction{X: -1}},
		{"Ctrl+LButton", MouseAction{ModKey: ModCtrl, Button: ButtonLeft}},
	}
	for _, tt := range tests {
		m, err := ParseAction(tt.text)
		if err != nil {
			t.Errorf("ParseAction(%q): %v", tt.text, err)
			continue
		}
		mm, ok := m.(MouseMap)
		if !ok {
			t.Errorf("ParseAction(%q) = %T, want MouseMap", tt.text, m)
			continue
		}
		if mm.Mouse != tt.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tt.text, mm.Mouse, tt.want)
		}
	}
}

func TestParseActionConsumer(t *testing.T) {
	m, err := ParseAction("PlayPause")
	if err != nil {
		t.Fatal(err)
	}
	cm, ok := m.(ConsumerMap)
	if !ok {
		t.Fatalf("ParseAction(PlayPause) = %T, want ConsumerMap", m)
	}
	if cm.Consumer.ID != 0x00cd {
		t.Errorf("PlayPause id = %#04x, want 0x00cd", cm.Consumer.ID)
	}
}

func TestParseActionText(t *testing.T) {
	m, err := ParseAction("@Hi!")
	if err != nil {
		t.Fatal(err)
	}
	km, ok := m.(KeysMap)
	if !ok {
		t.Fatalf("ParseAction(@Hi!) = %T, want KeysMap", m)
	}
	want := []KeyAction{
		Shift(KeyAction{KeyCode: byte(hidkey.KeyH)}),
		{KeyCode: byte(hidkey.KeyI)},
		Shift(KeyAction{KeyCode: byte(hidkey.Key1)}),
	}
	if len(km.Keys) != len(want) {
		t.Fatalf("got %d keystrokes, want %d", len(km.Keys), len(want))
	}
	for i := range want {
		if km.Keys[i] != want[i] {
			t.Errorf("keystroke %d = %+v, want %+v", i, km.Keys[i], want[i])
		}
	}
}

func TestParseActionErrors(t *testing.T) {
	tests := []string{
		"",
		"NoSuchKey",
		"Hyper+A",
		"Ctrl+PlayPause", // consumer usages have no modifier byte on the wire
		"@café",
		"@" + string(make([]byte, MaxKeyActions+1)),
	}
	for _, text := range tests {
		_, err := ParseAction(text)
		if err == nil {
			t.Errorf("ParseAction(%q): expected error", text)
			continue
		}
		if !IsConfigError(err) {
			t.Errorf("ParseAction(%q): want ConfigError, got %T", text, err)
		}
	}
}

func TestKeyActionsFromStringLimit(t *testing.T) {
	long := make([]byte, MaxKeyActions)
	for i := range long {
		long[i] = 'a'
	}
	keys, err := KeyActionsFromString(string(long))
	if err != nil {
		t.Fatalf("%d chars should fit: %v", MaxKeyActions, err)
	}
	if len(keys) != MaxKeyActions {
		t.Fatalf("got %d keystrokes, want %d", len(keys), MaxKeyActions)
	}
	if _, err := KeyActionsFromString(string(long) + "a"); !IsConfigError(err) {
		t.Errorf("%d chars: want ConfigError, got %v", MaxKeyActions+1, err)
	}
}
