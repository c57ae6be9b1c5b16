package keypad

import (
	"fmt"
	"log/slog"
	"time"
)

// HidIO is the raw report capability a Session drives. Write sends one
// report; Read blocks until a report arrives or the timeout elapses, and
// returns an empty slice on timeout. Implementations are not safe for
// concurrent use and a Session never issues concurrent calls: the protocol
// has no correlation ids, so interleaved responses would be unrecoverable.
type HidIO interface {
	Write(p []byte) (int, error)
	Read(timeout time.Duration) ([]byte, error)
}

// recvTimeout bounds every response read. The device answers well under
// this when present; past it we treat the exchange as dead.
const recvTimeout = 250 * time.Millisecond

// DefaultLayers is how many independent mapping layers these devices hold.
const DefaultLayers = 3

// Session owns one open device handle for its scope and sequences the
// multi-packet exchanges of the protocol. All operations are strictly
// sequential; nothing is retried here.
type Session struct {
	io     HidIO
	log    *slog.Logger
	layers int
	info   Info
}

// NewSession wraps an open device. A nil logger falls back to slog.Default.
func NewSession(io HidIO, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{io: io, log: log, layers: DefaultLayers}
}

// Layers returns the number of layers table reads cover.
func (s *Session) Layers() int { return s.layers }

// SetLayers overrides the layer count for devices that differ from the
// default.
func (s *Session) SetLayers(n int) {
	if n > 0 {
		s.layers = n
	}
}

// Info returns the device shape, zero until ReadInfo or SetInfo ran.
func (s *Session) Info() Info { return s.info }

// SetInfo records a device shape without asking the device, e.g. when
// replaying a stored snapshot.
func (s *Session) SetInfo(info Info) { s.info = info }

func (s *Session) sendRequest(p []byte) error {
	req, err := PadRequest(p)
	if err != nil {
		return err
	}
	s.log.Debug("send request", "data", fmt.Sprintf("% x", p))
	if _, err := s.io.Write(req); err != nil {
		return fmt.Errorf("write request: %w", err)
	}
	return nil
}

func (s *Session) recvResponse() ([]byte, error) {
	buf, err := s.io.Read(recvTimeout)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(buf) == 0 {
		return nil, ErrNoResponse
	}
	s.log.Debug("recv response", "data", fmt.Sprintf("% x", buf[:min(len(buf), 0x10)]))
	return buf, nil
}

// ReadInfo asks the device for its key and knob counts and records them for
// subsequent table reads.
func (s *Session) ReadInfo() (Info, error) {
	if err := s.sendRequest(ReadKeypadInfoRequest); err != nil {
		return Info{}, err
	}
	buf, err := s.recvResponse()
	if err != nil {
		return Info{}, err
	}
	if len(buf) < 4 {
		return Info{}, fmt.Errorf("short info response: %d bytes", len(buf))
	}
	s.info = Info{Keys: buf[2], Knobs: buf[3]}
	s.log.Debug("device info", "keys", s.info.Keys, "knobs", s.info.Knobs)
	return s.info, nil
}

// ReadKeyMaps reads every slot of one layer: a single 0xfa request followed
// by Info.KeyCount() response reports. A response carrying a different layer
// id than requested aborts the read; no partial result is returned.
func (s *Session) ReadKeyMaps(layerID int) ([]KeyMapWithID, error) {
	if err := s.sendRequest(PackReadKeypadKeyMaps(s.info, layerID)); err != nil {
		return nil, err
	}
	count := s.info.KeyCount()
	maps := make([]KeyMapWithID, 0, count)
	for i := 0; i < count; i++ {
		buf, err := s.recvResponse()
		if err != nil {
			return nil, fmt.Errorf("layer %d slot %d: %w", layerID, i+1, err)
		}
		m, err := UnpackKeyMapWithID(buf)
		if err != nil {
			return nil, fmt.Errorf("layer %d slot %d: %w", layerID, i+1, err)
		}
		if m.LayerID != layerID {
			return nil, fmt.Errorf("layer mismatch: requested %d, response carries %d", layerID, m.LayerID)
		}
		maps = append(maps, m)
	}
	return maps, nil
}

// ReadKeyMapTable reads all slots across all layers in order. Any failure
// aborts the whole read.
func (s *Session) ReadKeyMapTable() ([]KeyMapWithID, error) {
	var table []KeyMapWithID
	for layer := 1; layer <= s.layers; layer++ {
		maps, err := s.ReadKeyMaps(layer)
		if err != nil {
			return nil, err
		}
		table = append(table, maps...)
	}
	return table, nil
}

// WriteKeyMap stores one slot. The device sends no acknowledgement.
func (s *Session) WriteKeyMap(m KeyMapWithID) error {
	req, err := PackWriteKeypadKeyMap(m)
	if err != nil {
		return err
	}
	return s.sendRequest(req)
}

// WriteLed configures the backlight of one layer. The parameter packet must
// be chased by the fixed terminator packet or the device never commits it.
func (s *Session) WriteLed(layerID int, color LedColor, mode LedMode) error {
	if err := s.sendRequest(PackWriteKeypadLedParam(layerID, color, mode)); err != nil {
		return err
	}
	return s.sendRequest(WriteParamTerminator)
}

// WriteDelayTime sets the delay inserted between played-back keystrokes.
// Same two-packet discipline as WriteLed.
func (s *Session) WriteDelayTime(delayMS uint16) error {
	if err := s.sendRequest(PackWriteKeypadDelayTimeParam(delayMS)); err != nil {
		return err
	}
	return s.sendRequest(WriteParamTerminator)
}
