package asset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/rom8/rom8"
)

// KeyLogEntry is a key described by a keylog.json file
type KeyLogEntry struct {
	KI, KO uint16
	Key    string
	Text   string
}

// ParseKeyLog decodes a keylog.json file. The file is an object mapping
// "KI,KO" to a three element array whose second element is the host key and
// third element is the key name. Entries are returned in file order
func ParseKeyLog(b []byte) ([]KeyLogEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(b))

	if t, err := dec.Token(); err != nil {
		return nil, err
	} else if t != json.Delim('{') {
		return nil, fmt.Errorf("asset: keylog is not an object")
	}

	var entries []KeyLogEntry
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		kio, _ := t.(string)

		var value []json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if len(value) != 3 {
			return nil, fmt.Errorf("asset: keylog entry %q has %d elements", kio, len(value))
		}

		var e KeyLogEntry
		if e.KI, e.KO, err = parseKIO(kio); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(value[1], &e.Key); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(value[2], &e.Text); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func parseKIO(s string) (uint16, uint16, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("asset: invalid key address %q", s)
	}

	ki, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 16)
	if err != nil {
		return 0, 0, err
	}

	ko, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return 0, 0, err
	}

	return uint16(ki), uint16(ko), nil
}

// KeyTables builds the keymap and the key bindings described by entries.
// Only entries whose host key is a single byte produce a binding
func KeyTables(entries []KeyLogEntry) (rom8.Keymap, rom8.Keybinds, error) {
	var (
		keymap rom8.Keymap
		binds  rom8.Keybinds
	)

	for _, e := range entries {
		code, err := rom8.Pack(e.KI, e.KO)
		if err != nil {
			return nil, nil, err
		}

		keymap = append(keymap, rom8.KeyName{Code: code, Name: e.Text})

		if len(e.Key) == 1 {
			binds = append(binds, rom8.Keybind{Key: e.Key[0], Code: code})
		}
	}

	return keymap, binds, nil
}
