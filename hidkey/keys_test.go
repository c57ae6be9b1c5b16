package hidkey

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"A", KeyA},
		{"Z", KeyZ},
		{"1", Key1},
		{"Enter", KeyEnter},
		{"Space", KeySpace},
		{"F5", KeyF5},
		{"F24", KeyF24},
		{"KpDot", KeyKpDot},
		{"Left", KeyLeft},
	}
	for _, tt := range tests {
		got, ok := ByName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("ByName(%q) = (%#02x, %v), want %#02x", tt.name, byte(got), ok, byte(tt.want))
		}
	}
	if _, ok := ByName("NoSuchKey"); ok {
		t.Error("ByName(NoSuchKey) should fail")
	}
}

func TestNameIsInverseOfByName(t *testing.T) {
	for _, kn := range keyNames {
		if got := Name(kn.Key); got != kn.Name {
			t.Errorf("Name(%#02x) = %q, want %q", byte(kn.Key), got, kn.Name)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyEnter.String(); got != "Enter" {
		t.Errorf("KeyEnter.String() = %q", got)
	}
	if got := Key(0xf0).String(); got != "Key(0xf0)" {
		t.Errorf("Key(0xf0).String() = %q", got)
	}
}
