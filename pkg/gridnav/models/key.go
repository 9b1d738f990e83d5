package models

import (
	"fmt"
	"strings"
)

// Key is a discrete navigation key event.
type Key int

const (
	// KeyOther covers every event the engine does not navigate by, including direct cell selection.
	KeyOther Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyTab
	KeyShiftTab
	KeyEnter
)

var keyNames = map[Key]string{
	KeyOther:      "other",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyTab:        "tab",
	KeyShiftTab:   "shift+tab",
	KeyEnter:      "enter",
}

// keyAliases maps accepted spellings to keys. Lookups are case-insensitive.
var keyAliases = map[string]Key{
	"other":      KeyOther,
	"left":       KeyArrowLeft,
	"arrowleft":  KeyArrowLeft,
	"right":      KeyArrowRight,
	"arrowright": KeyArrowRight,
	"up":         KeyArrowUp,
	"arrowup":    KeyArrowUp,
	"down":       KeyArrowDown,
	"arrowdown":  KeyArrowDown,
	"tab":        KeyTab,
	"shift+tab":  KeyShiftTab,
	"shifttab":   KeyShiftTab,
	"backtab":    KeyShiftTab,
	"enter":      KeyEnter,
	"return":     KeyEnter,
}

// String returns the canonical name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey parses a key name such as "tab", "Shift+Tab" or "RETURN".
func ParseKey(name string) (Key, error) {
	k, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyOther, fmt.Errorf("unknown key: %q", name)
	}
	return k, nil
}

// ParseKeys parses a comma separated key list such as "right,left,tab,tab,enter".
func ParseKeys(list string) ([]Key, error) {
	var keys []Key
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKey(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
