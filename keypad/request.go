package keypad

import "fmt"

// RequestSize is the fixed request report length; shorter builder output is
// zero-padded on the right before writing.
const RequestSize = 65

// Command classes, report byte 1 (byte 0 is the 0x03 report id).
const (
	reportID byte = 0x03

	cmdReadInfo    byte = 0xfb
	cmdReadKeyMaps byte = 0xfa
	cmdWriteKeyMap byte = 0xfd
	cmdWriteParam  byte = 0xfe
)

// Parameter slots addressed by 0xfe writes.
const (
	paramSlotLed   byte = 0xb0
	paramSlotDelay byte = 0xb4
)

// ReadKeypadInfoRequest asks the device for its key and knob counts.
var ReadKeypadInfoRequest = []byte{reportID, cmdReadInfo, cmdReadInfo, cmdReadInfo}

// WriteParamTerminator must follow every 0xfe parameter packet. The device
// does not commit LED or delay settings until it arrives.
var WriteParamTerminator = []byte{reportID, cmdWriteKeyMap, cmdWriteParam, 0xff}

// PadRequest right-pads p with zeros to RequestSize. Payloads that do not
// fit one report are rejected instead of being silently truncated.
func PadRequest(p []byte) ([]byte, error) {
	if len(p) > RequestSize {
		return nil, fmt.Errorf("request payload of %d bytes exceeds report size %d", len(p), RequestSize)
	}
	out := make([]byte, RequestSize)
	copy(out, p)
	return out, nil
}

// PackReadKeypadKeyMaps builds the 0xfa request that makes the device emit
// one keymap report per slot of the given layer.
func PackReadKeypadKeyMaps(info Info, layerID int) []byte {
	return []byte{reportID, cmdReadKeyMaps, info.Keys, info.Knobs, byte(layerID)}
}

// PackWriteKeypadKeyMap builds the 0xfd request storing one slot: key id at
// offset 2, layer id at offset 3, packed keymap from offset 4.
func PackWriteKeypadKeyMap(m KeyMapWithID) ([]byte, error) {
	data, err := PackKeyMap(m.Map)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4+len(data))
	out = append(out, reportID, cmdWriteKeyMap, byte(m.KeyID), byte(m.LayerID))
	return append(out, data...), nil
}

// LedMode is the LED animation selector.
type LedMode byte

const (
	LedSteady LedMode = 0
	LedBreath LedMode = 1
	LedFlash  LedMode = 2
)

func (m LedMode) String() string {
	switch m {
	case LedSteady:
		return "steady"
	case LedBreath:
		return "breath"
	case LedFlash:
		return "flash"
	}
	return fmt.Sprintf("LedMode(%d)", byte(m))
}

// ParseLedMode resolves the CLI spelling of an LED mode.
func ParseLedMode(s string) (LedMode, error) {
	switch s {
	case "steady":
		return LedSteady, nil
	case "breath":
		return LedBreath, nil
	case "flash":
		return LedFlash, nil
	}
	return 0, configErrorf("unknown led mode %q (want steady, breath or flash)", s)
}

// LedColor selects the backlight color.
type LedColor byte

const (
	LedOff    LedColor = 0
	LedRed    LedColor = 1
	LedOrange LedColor = 2
	LedYellow LedColor = 3
	LedGreen  LedColor = 4
	LedCyan   LedColor = 5
	LedBlue   LedColor = 6
	LedPurple LedColor = 7
)

var ledColorNames = []string{"off", "red", "orange", "yellow", "green", "cyan", "blue", "purple"}

func (c LedColor) String() string {
	if int(c) < len(ledColorNames) {
		return ledColorNames[c]
	}
	return fmt.Sprintf("LedColor(%d)", byte(c))
}

// ParseLedColor resolves the CLI spelling of an LED color.
func ParseLedColor(s string) (LedColor, error) {
	for i, name := range ledColorNames {
		if s == name {
			return LedColor(i), nil
		}
	}
	return 0, configErrorf("unknown led color %q", s)
}

// LedID packs color and mode into the single parameter byte the device
// expects: color in the high nibble, mode in the low nibble.
func LedID(color LedColor, mode LedMode) byte {
	return byte(color)<<4 | byte(mode)&0x0f
}

// PackWriteKeypadLedParam builds the 0xfe parameter packet configuring the
// backlight of one layer. It must be followed by WriteParamTerminator.
func PackWriteKeypadLedParam(layerID int, color LedColor, mode LedMode) []byte {
	return []byte{
		reportID, cmdWriteParam, paramSlotLed, byte(layerID),
		0x08, 0, 0, 0, 0, 0,
		LedID(color, mode),
	}
}

// PackWriteKeypadDelayTimeParam builds the 0xfe parameter packet setting the
// inter-keystroke delay in milliseconds (little-endian). It must be followed
// by WriteParamTerminator.
func PackWriteKeypadDelayTimeParam(delayMS uint16) []byte {
	return []byte{
		reportID, cmdWriteParam, paramSlotDelay, 0x01,
		0x08, 0, 0, 0, 0, 0,
		byte(delayMS), byte(delayMS >> 8),
	}
}
