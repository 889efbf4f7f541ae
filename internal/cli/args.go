// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the fcomp command line.

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// FLAG DEFINITIONS
// =============================================================================

// FlagSpec declares one option the parser accepts.
type FlagSpec struct {
	Name  string // long name without dashes (e.g. "ignore-case")
	Short string // optional single-letter alias (e.g. "i")
	Bool  bool   // takes no value
}

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser parses a command line against a fixed set of flags.
// It handles:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value, and grouped booleans such as -iw
//   - Boolean flags: --flag, or --flag=true / --flag=false
//   - Numeric bound: -25
//   - "-" as a positional argument and "--" to end flag parsing
type ArgParser struct {
	flags      map[string]string // value flags by long name
	boolFlags  map[string]bool   // boolean flags by long name
	positional []string
	bound      int
	hasBound   bool
	raw        []string
}

// NewArgParser parses raw against specs. Unknown flags and value flags
// without a value are reported as *ValidationError.
//
// Example:
//
//	p, err := NewArgParser([]string{"-10", "-i", "--width=72", "a.txt", "b.txt"}, specs)
//	p.Bound()              // 10, true
//	p.BoolFlag("ignore-case") // true
//	p.Flag("width")        // "72"
//	p.Positional(1)        // "b.txt"
func NewArgParser(raw []string, specs []FlagSpec) (*ArgParser, error) {
	byName := make(map[string]FlagSpec, 2*len(specs))
	for _, s := range specs {
		byName[s.Name] = s
		if s.Short != "" {
			byName[s.Short] = s
		}
	}

	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
		raw:       raw,
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		switch {
		case arg == "--":
			p.positional = append(p.positional, raw[i+1:]...)
			return p, nil
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			p.positional = append(p.positional, arg)
			continue
		}

		// -25: the distance bound.
		if n, err := strconv.Atoi(arg[1:]); err == nil && arg[1] != '-' && arg[1] != '+' {
			p.bound, p.hasBound = n, true
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		long := strings.HasPrefix(arg, "--")

		spec, ok := byName[name]
		if !ok && !long && !hasValue && p.setShortGroup(name, byName) {
			continue
		}
		if !ok {
			return nil, &ValidationError{Field: "option", Value: arg, Reason: "unknown option"}
		}

		if spec.Bool {
			if !hasValue {
				p.boolFlags[spec.Name] = true
				continue
			}
			b, err := ParseBoolString(value)
			if err != nil {
				return nil, &ValidationError{Field: "--" + spec.Name, Value: value, Reason: "expected a boolean"}
			}
			p.boolFlags[spec.Name] = b
			continue
		}

		if !hasValue {
			if i+1 >= len(raw) {
				return nil, &ValidationError{Field: "--" + spec.Name, Reason: "requires a value"}
			}
			i++
			value = raw[i]
		}
		p.flags[spec.Name] = value
	}
	return p, nil
}

// setShortGroup handles "-iw": every letter must be a boolean short flag.
func (p *ArgParser) setShortGroup(group string, byName map[string]FlagSpec) bool {
	if len(group) < 2 {
		return false
	}
	for _, r := range group {
		s, ok := byName[string(r)]
		if !ok || !s.Bool || s.Short != string(r) {
			return false
		}
	}
	for _, r := range group {
		p.boolFlags[byName[string(r)].Name] = true
	}
	return true
}

// Flag returns the value of a value flag, or "" if it was not given.
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// HasFlag reports whether the flag was given.
func (p *ArgParser) HasFlag(name string) bool {
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}

// FlagInt returns the flag value as an integer.
// Returns 0 and error if the flag is missing or not a valid integer.
func (p *ArgParser) FlagInt(name string) (int, error) {
	val, ok := p.flags[name]
	if !ok {
		return 0, fmt.Errorf("flag %s not found", name)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, &ValidationError{Field: "--" + name, Value: val, Reason: "must be an integer"}
	}
	return n, nil
}

// BoolFlag returns the value of a boolean flag, false if not given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Bound returns the -N distance bound, if one was given.
func (p *ArgParser) Bound() (int, bool) {
	return p.bound, p.hasBound
}

// Positional returns the positional argument at index, or "".
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// Raw returns the original raw arguments.
func (p *ArgParser) Raw() []string {
	return p.raw
}

// =============================================================================
// HELPERS
// =============================================================================

// ParseBoolString parses a boolean from various string representations.
// Accepts: true/false, yes/no, y/n, 1/0, on/off (case-insensitive)
func ParseBoolString(s string) (bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}
