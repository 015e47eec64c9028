package cli

import "strings"

// Value is what a single flag was set to: either a text value or, for a
// flag given without one, a bare switch.
type Value struct {
	Text   string
	Switch bool
}

// Args maps flag names (without leading dashes) to their values. When a flag
// repeats, the last occurrence wins.
type Args map[string]Value

// ParseArgs scans argv (without the program name) into Args.
//
// Recognized forms:
//
//	--key value   --key=value   --key   (switch when followed by a dash token or nothing)
//	-k value      -k            (short keys are never split on '=')
//
// Tokens that do not start with a dash and are not consumed as a value are
// ignored.
func ParseArgs(argv []string) Args {
	args := make(Args)

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		var key string
		switch {
		case strings.HasPrefix(token, "--"):
			name, value, hasValue := strings.Cut(token[2:], "=")
			if hasValue {
				args[name] = Value{Text: value}
				continue
			}
			key = name
		case strings.HasPrefix(token, "-"):
			key = token[1:]
		default:
			continue
		}

		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			args[key] = Value{Text: argv[i+1]}
			i++
			continue
		}
		args[key] = Value{Switch: true}
	}

	return args
}

// Lookup returns the text of the first key that carries a non-empty text
// value. Switches and empty values are skipped so that the caller can fall
// back to the next source.
func (a Args) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := a[key]; ok && !v.Switch && v.Text != "" {
			return v.Text, true
		}
	}
	return "", false
}

// Has reports whether any of keys was given, in any form.
func (a Args) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := a[key]; ok {
			return true
		}
	}
	return false
}
