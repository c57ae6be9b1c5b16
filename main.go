// keypad-mapper reads and writes the key, mouse, media, LED and delay
// configuration of CH57x-style programmable USB keypads.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sstallion/go-hid"

	"github.com/uk-taniyama/keypad-mapper/helper"
	"github.com/uk-taniyama/keypad-mapper/hiddev"
	"github.com/uk-taniyama/keypad-mapper/keypad"
)

var (
	vidFlag    = flag.String("vid", "1189", "vendor id of the keypad (hex)")
	pidFlag    = flag.String("pid", "8890", "product id of the keypad (hex)")
	pathFlag   = flag.String("path", "", "open this HID device path, skip discovery")
	layersFlag = flag.Int("layers", keypad.DefaultLayers, "number of layers the device holds")
	debugFlag  = flag.Bool("debug", false, "log protocol traffic")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: keypad-mapper [flags] <command> [args]

commands:
  list                                      show matching devices
  info                                      read key/knob counts
  read [-o file.json]                       dump all keymaps, optionally to a snapshot
  write <file.json>                         replay a snapshot onto the device
  map -layer L (-key K | -knob N -op OP) <action...>
                                            program one slot, OP is left|click|right
  led -layer L -mode MODE -color COLOR      set backlight (steady|breath|flash)
  delay -ms N                               set delay between played-back keystrokes

action grammar: "Ctrl+A", "Shift+F5", "LButton", "WheelUp", "PlayPause", "@some text"

flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := hid.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "hid init:", err)
		os.Exit(1)
	}
	defer hid.Exit()

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "list":
		err = cmdList()
	case "info":
		err = cmdInfo(logger)
	case "read":
		err = cmdRead(logger, rest)
	case "write":
		err = cmdWrite(logger, rest)
	case "map":
		err = cmdMap(logger, rest)
	case "led":
		err = cmdLed(logger, rest)
	case "delay":
		err = cmdDelay(logger, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		if keypad.IsConfigError(err) {
			fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func deviceFilter() (hiddev.Filter, error) {
	vid, err := helper.Uint16Hex(*vidFlag)
	if err != nil {
		return hiddev.Filter{}, err
	}
	pid, err := helper.Uint16Hex(*pidFlag)
	if err != nil {
		return hiddev.Filter{}, err
	}
	return hiddev.Filter{VendorID: vid, ProductID: pid, Path: *pathFlag}, nil
}

// resolveDevice picks the device to talk to: the -path flag if given, the
// only match otherwise, or an interactive choice when several are attached.
func resolveDevice() (hid.DeviceInfo, error) {
	f, err := deviceFilter()
	if err != nil {
		return hid.DeviceInfo{}, err
	}
	devices, err := hiddev.List(f)
	if err != nil {
		return hid.DeviceInfo{}, err
	}
	switch len(devices) {
	case 0:
		return hid.DeviceInfo{}, fmt.Errorf("no keypad found (vid=%04x pid=%04x)", f.VendorID, f.ProductID)
	case 1:
		return devices[0], nil
	}

	items := make([]string, len(devices))
	for i, d := range devices {
		items[i] = fmt.Sprintf("%04x:%04x %s %s", d.VendorID, d.ProductID, d.ProductStr, d.Path)
	}
	sel := promptui.Select{Label: "Select keypad", Items: items}
	idx, _, err := sel.Run()
	if err != nil {
		return hid.DeviceInfo{}, fmt.Errorf("device selection: %w", err)
	}
	return devices[idx], nil
}

// withSession opens the resolved device for the duration of fn.
func withSession(logger *slog.Logger, fn func(*keypad.Session) error) error {
	info, err := resolveDevice()
	if err != nil {
		return err
	}
	dev, err := hiddev.Open(info.Path, logger)
	if err != nil {
		return err
	}
	defer dev.Close()

	s := keypad.NewSession(dev, logger)
	s.SetLayers(*layersFlag)
	return fn(s)
}

func cmdList() error {
	f, err := deviceFilter()
	if err != nil {
		return err
	}
	devices, err := hiddev.List(f)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("no matching devices")
		return nil
	}
	for _, d := range devices {
		fmt.Printf("%04x:%04x usagePage=%04x %-24s %s\n", d.VendorID, d.ProductID, d.UsagePage, d.ProductStr, d.Path)
	}
	return nil
}

func cmdInfo(logger *slog.Logger) error {
	return withSession(logger, func(s *keypad.Session) error {
		info, err := s.ReadInfo()
		if err != nil {
			return err
		}
		fmt.Println(info)
		return nil
	})
}

func cmdRead(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	out := fs.String("o", "", "write a JSON snapshot to this file")
	fs.Parse(args)

	return withSession(logger, func(s *keypad.Session) error {
		info, err := s.ReadInfo()
		if err != nil {
			return err
		}
		table, err := s.ReadKeyMapTable()
		if err != nil {
			return err
		}

		layer := 0
		for _, m := range table {
			if m.LayerID != layer {
				layer = m.LayerID
				fmt.Printf("layer %d:\n", layer)
			}
			slot := fmt.Sprintf("key %d", m.KeyID)
			if knobID, op, ok := info.KnobByKeyID(m.KeyID); ok {
				slot = fmt.Sprintf("knob %d %s", knobID, op)
			}
			fmt.Printf("  %-12s %s\n", slot, keypad.FormatKeyMap(m.Map))
		}

		if *out != "" {
			snap := &keypad.Snapshot{Info: info, Layers: s.Layers(), KeyMaps: table}
			if err := snap.Store(*out); err != nil {
				return err
			}
			fmt.Println("snapshot written to", *out)
		}
		return nil
	})
}

func cmdWrite(logger *slog.Logger, args []string) error {
	if len(args) != 1 {
		return errors.New("write needs exactly one snapshot file")
	}
	snap, err := keypad.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	return withSession(logger, func(s *keypad.Session) error {
		s.SetInfo(snap.Info)
		if snap.Layers > 0 {
			s.SetLayers(snap.Layers)
		}
		for _, m := range snap.KeyMaps {
			if _, ok := m.Map.(keypad.RawMap); ok {
				logger.Warn("skipping raw keymap", "layer", m.LayerID, "key", m.KeyID)
				continue
			}
			if err := s.WriteKeyMap(m); err != nil {
				return fmt.Errorf("layer %d key %d: %w", m.LayerID, m.KeyID, err)
			}
		}
		fmt.Printf("wrote %d keymaps\n", len(snap.KeyMaps))
		return nil
	})
}

func cmdMap(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	layer := fs.Int("layer", 1, "layer to program")
	key := fs.Int("key", 0, "physical key id (1-based)")
	knob := fs.Int("knob", 0, "knob id (1-based)")
	op := fs.String("op", "", "knob action: left, click or right")
	fs.Parse(args)

	text := strings.Join(fs.Args(), " ")
	m, err := keypad.ParseAction(text)
	if err != nil {
		return err
	}

	return withSession(logger, func(s *keypad.Session) error {
		info, err := s.ReadInfo()
		if err != nil {
			return err
		}
		if *layer < 1 || *layer > s.Layers() {
			return keypad.NewConfigError(fmt.Sprintf("layer %d out of range [1,%d]", *layer, s.Layers()))
		}

		keyID := *key
		if *knob > 0 {
			knobOp, err := keypad.ParseKnobOp(*op)
			if err != nil {
				return err
			}
			keyID, err = info.KeyIDForKnob(*knob, knobOp)
			if err != nil {
				return err
			}
		} else if !info.ValidKeyID(keyID) {
			return keypad.NewConfigError(fmt.Sprintf("key id %d out of range [1,%d]", keyID, info.KeyCount()))
		}

		wm := keypad.KeyMapWithID{LayerID: *layer, KeyID: keyID, Map: m}
		if err := s.WriteKeyMap(wm); err != nil {
			return err
		}
		fmt.Printf("layer %d key %d <- %s\n", *layer, keyID, keypad.FormatKeyMap(m))
		return nil
	})
}

func cmdLed(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("led", flag.ExitOnError)
	layer := fs.Int("layer", 1, "layer to configure")
	mode := fs.String("mode", "steady", "led mode: steady, breath or flash")
	color := fs.String("color", "off", "led color")
	fs.Parse(args)

	ledMode, err := keypad.ParseLedMode(*mode)
	if err != nil {
		return err
	}
	ledColor, err := keypad.ParseLedColor(*color)
	if err != nil {
		return err
	}

	return withSession(logger, func(s *keypad.Session) error {
		if err := s.WriteLed(*layer, ledColor, ledMode); err != nil {
			return err
		}
		fmt.Printf("layer %d led <- %s %s\n", *layer, ledColor, ledMode)
		return nil
	})
}

func cmdDelay(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("delay", flag.ExitOnError)
	ms := fs.Int("ms", 0, "delay in milliseconds [0,65535]")
	fs.Parse(args)

	if *ms < 0 || *ms > 0xffff {
		return keypad.NewConfigError(fmt.Sprintf("delay %d out of range [0,65535]", *ms))
	}

	return withSession(logger, func(s *keypad.Session) error {
		if err := s.WriteDelayTime(uint16(*ms)); err != nil {
			return err
		}
		fmt.Printf("delay <- %dms\n", *ms)
		return nil
	})
}
