package main

// User configuration file. It binds logical command names to the keywords
// typed on the command line and picks the line number style:
//
//	{
//	  "commands": {"quit": "q", "write": "w", "new_tab": "tabnew"},
//	  "line_numbers": "relative"
//	}
//
// Problems in the file never stop the editor; they are collected and
// reported while every entry that did parse is applied.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LineNumberMode selects what the gutter shows.
type LineNumberMode int

const (
	LineNumbersAbsolute LineNumberMode = iota
	LineNumbersRelative
	LineNumbersNone
)

func (m LineNumberMode) String() string {
	switch m {
	case LineNumbersRelative:
		return "relative"
	case LineNumbersNone:
		return "none"
	}
	return "absolute"
}

// ParseLineNumberMode accepts none, absolute or relative.
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	switch s {
	case "none":
		return LineNumbersNone, nil
	case "absolute":
		return LineNumbersAbsolute, nil
	case "relative":
		return LineNumbersRelative, nil
	}
	return LineNumbersAbsolute, fmt.Errorf("unknown line number mode %q", s)
}

// UserConfig is the parsed configuration file.
type UserConfig struct {
	Bindings    map[string]Verb
	LineNumbers LineNumberMode
}

// DefaultUserConfig is used when there is no configuration file.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		Bindings:    DefaultBindings(),
		LineNumbers: LineNumbersAbsolute,
	}
}

// DefaultConfigPath returns <user config dir>/kass/config.json.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "kass", "config.json"), nil
}

// LoadUserConfig reads the file at path. A missing file yields the defaults
// without errors.
func LoadUserConfig(path string) (UserConfig, []error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultUserConfig(), nil
	} else if err != nil {
		return DefaultUserConfig(), []error{fmt.Errorf("config %s: %w", path, err)}
	}
	return ParseUserConfig(data)
}

// ParseUserConfig applies the JSON document on top of the defaults. A
// command named in the file replaces the default keyword of that command.
func ParseUserConfig(data []byte) (UserConfig, []error) {
	cfg := DefaultUserConfig()
	var errs []error

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return cfg, []error{fmt.Errorf("config is not valid JSON: %w", err)}
	}

	for _, key := range sortedKeys(doc) {
		raw := doc[key]
		switch key {
		case "commands":
			errs = append(errs, parseCommands(raw, cfg.Bindings)...)
		case "line_numbers":
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				errs = append(errs, fmt.Errorf("line_numbers must be a string"))
				continue
			}
			mode, err := ParseLineNumberMode(value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			cfg.LineNumbers = mode
		default:
			errs = append(errs, fmt.Errorf("%s in the config doesn't exist", key))
		}
	}
	return cfg, errs
}

func parseCommands(raw json.RawMessage, bindings map[string]Verb) []error {
	var commands map[string]json.RawMessage
	if err := json.Unmarshal(raw, &commands); err != nil {
		return []error{fmt.Errorf("commands must be an object")}
	}

	var errs []error
	for _, name := range sortedKeys(commands) {
		verb, ok := verbNames[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%s in the config doesn't exist", name))
			continue
		}
		var keyword string
		if err := json.Unmarshal(commands[name], &keyword); err != nil || keyword == "" {
			errs = append(errs, fmt.Errorf("command %s must be a non-empty string", name))
			continue
		}
		for k, v := range bindings {
			if v == verb {
				delete(bindings, k)
			}
		}
		bindings[keyword] = verb
	}
	return errs
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
