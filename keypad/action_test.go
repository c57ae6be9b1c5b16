package keypad

import (
	"testing"
)

func TestCreateModKey(t *testing.T) {
	tests := []struct {
		names []string
		want  ModKey
	}{
		{nil, 0},
		{[]string{"Ctrl"}, ModCtrl},
		{[]string{"Shift"}, ModShift},
		{[]string{"Ctrl", "Shift"}, ModCtrl | ModShift},
		{[]string{"Ctrl", "Alt", "Gui"}, ModCtrl | ModAlt | ModGui},
		{[]string{"RCtrl", "RShift", "RAlt", "RGui"}, ModRCtrl | ModRShift | ModRAlt | ModRGui},
		{[]string{"Ctrl", "Ctrl"}, ModCtrl},
	}
	for _, tt := range tests {
		got, err := CreateModKey(tt.names...)
		if err != nil {
			t.Errorf("CreateModKey(%v): %v", tt.names, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CreateModKey(%v) = %#02x, want %#02x", tt.names, byte(got), byte(tt.want))
		}
	}
}

func TestCreateModKeyUnknownName(t *testing.T) {
	_, err := CreateModKey("Hyper")
	if err == nil {
		t.Fatal("CreateModKey(Hyper): expected error")
	}
	if !IsConfigError(err) {
		t.Errorf("CreateModKey(Hyper): want ConfigError, got %T", err)
	}
}

func TestModKeyString(t *testing.T) {
	tests := []struct {
		mod  ModKey
		want string
	}{
		{0, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModShift | ModCtrl, "Ctrl+Shift"}, // order fixed by bit value
		{ModGui | ModRAlt, "Gui+RAlt"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("ModKey(%#02x).String() = %q, want %q", byte(tt.mod), got, tt.want)
		}
	}
}

func TestWithIsIdempotent(t *testing.T) {
	a := KeyAction{KeyCode: 0x04}
	once := Ctrl(a)
	twice := Ctrl(once)
	if once != twice {
		t.Errorf("applying Ctrl twice changed the action: %+v vs %+v", once, twice)
	}
	if a.ModKey != 0 {
		t.Errorf("With mutated the receiver: %+v", a)
	}
}

func TestToInt8RoundTrip(t *testing.T) {
	for n := -128; n <= 127; n++ {
		if got := int(FromInt8(ToInt8(n))); got != n {
			t.Fatalf("FromInt8(ToInt8(%d)) = %d", n, got)
		}
	}
}

func TestToInt8Clamps(t *testing.T) {
	tests := []struct {
		n    int
		want int8
	}{
		{128, 127},
		{1000, 127},
		{-129, -128},
		{-1000, -128},
	}
	for _, tt := range tests {
		if got := FromInt8(ToInt8(tt.n)); got != tt.want {
			t.Errorf("ToInt8(%d) decodes to %d, want clamp to %d", tt.n, got, tt.want)
		}
	}
}
