package helper

import "testing"

func TestUint16Hex(t *testing.T) {
	tests := []struct {
		s    string
		want uint16
	}{
		{"1189", 0x1189},
		{"0x8890", 0x8890},
		{"0", 0},
		{"ffff", 0xffff},
		{"0xFFFF", 0xffff},
	}
	for _, tt := range tests {
		got, err := Uint16Hex(tt.s)
		if err != nil {
			t.Errorf("Uint16Hex(%q): %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Uint16Hex(%q) = %#04x, want %#04x", tt.s, got, tt.want)
		}
	}
}

func TestUint16HexInvalid(t *testing.T) {
	for _, s := range []string{"", "0x", "xyz", "1234z", "10000", "0x12345"} {
		if _, err := Uint16Hex(s); err == nil {
			t.Errorf("Uint16Hex(%q): expected error", s)
		}
	}
}

func TestXtoi2(t *testing.T) {
	if b, ok := Xtoi2("4a:", ':'); !ok || b != 0x4a {
		t.Errorf("Xtoi2(4a:) = (%#02x, %v)", b, ok)
	}
	if _, ok := Xtoi2("4a-", ':'); ok {
		t.Error("Xtoi2 should reject the wrong separator")
	}
}
