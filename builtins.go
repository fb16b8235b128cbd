package parsetype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidBoolText = errors.New("text is not a recognized boolean")
	ErrInvalidJSONText = errors.New("text is not valid JSON")
)

///////////////////////////////////////////////////////////////////////////////
// Builtin base converters
///////////////////////////////////////////////////////////////////////////////

// The builtins are ready-made base converters for common placeholder
// types. Each is a fresh, independent Converter; composing one into a
// list or optional converter never affects other users of the same
// builtin.
//
// All of them are registered by name in a new ConverterRegistry unless
// ConverterRegistryOpts.ExcludeDefaults is set.

// IntegerConverter converts decimal integer text to an int64.
func IntegerConverter() *Converter {
	return &Converter{
		pattern: IntegerPattern,
		convert: func(text string) (any, error) {
			return strconv.ParseInt(text, 10, 64)
		},
	}
}

// NumberConverter converts decimal or scientific-notation text to a
// float64.
func NumberConverter() *Converter {
	return &Converter{
		pattern: NumberPattern,
		convert: func(text string) (any, error) {
			return strconv.ParseFloat(text, 64)
		},
	}
}

// WordConverter matches a single word and returns it unchanged.
func WordConverter() *Converter {
	return &Converter{
		pattern: WordPattern,
		convert: func(text string) (any, error) {
			return text, nil
		},
	}
}

// BoolConverter converts boolean-ish text to a bool. It accepts
// true/false, yes/no, on/off and 1/0, case-insensitively.
func BoolConverter() *Converter {
	return &Converter{
		pattern: BoolPattern,
		convert: func(text string) (any, error) {
			switch strings.ToLower(text) {
			case "true", "yes", "on", "1":
				return true, nil
			case "false", "no", "off", "0":
				return false, nil
			default:
				return nil, fmt.Errorf("%q: %w", text, ErrInvalidBoolText)
			}
		},
	}
}

// UUIDConverter converts canonical UUID text to a uuid.UUID.
func UUIDConverter() *Converter {
	return &Converter{
		pattern: UUIDPattern,
		convert: func(text string) (any, error) {
			return uuid.Parse(text)
		},
	}
}

// TimestampConverter converts RFC 3339 text to a time.Time.
func TimestampConverter() *Converter {
	return &Converter{
		pattern: TimestampPattern,
		convert: func(text string) (any, error) {
			return time.Parse(time.RFC3339, text)
		},
	}
}

// JSONConverter converts a JSON document or scalar to its decoded Go
// value (map[string]any, []any, float64, string, bool or nil). The
// pattern is the catch-all DefaultPattern: JSON is not usefully
// recognizable by a regular expression, so validation happens at
// conversion time instead.
func JSONConverter() *Converter {
	return &Converter{
		pattern: DefaultPattern,
		convert: func(text string) (any, error) {
			if !gjson.Valid(text) {
				return nil, fmt.Errorf("%q: %w", text, ErrInvalidJSONText)
			}
			return gjson.Parse(text).Value(), nil
		},
	}
}

// QuotedStringConverter matches a double-quoted string and returns its
// body with the quotes stripped.
func QuotedStringConverter() *Converter {
	return &Converter{
		pattern: QuotedStringPattern,
		convert: func(text string) (any, error) {
			return strings.Trim(text, `"`), nil
		},
	}
}
