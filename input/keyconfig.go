package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that read poorly as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName indexes tcell key names case-insensitively
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the YAML layout:
//
//	runes:
//	  w: forward
//	  space: up
//	keys:
//	  Esc: quit
type keymapFile struct {
	Runes map[string]string `yaml:"runes"`
	Keys  map[string]string `yaml:"keys"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Binding a key to "none" removes it when merged
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if raw.Runes != nil {
		kt.Runes = make(map[rune]Intent, len(raw.Runes))
		for keyStr, action := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = intent
		}
	}
	if raw.Keys != nil {
		kt.Keys = make(map[tcell.Key]Intent, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			k, ok := keyByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Keys[k] = intent
		}
	}
	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns base overridden by the non-nil maps of override
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	for k, v := range override.Keys {
		if v == IntentNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
