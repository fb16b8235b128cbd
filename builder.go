package parsetype

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoChoices             = errors.New("no choices supplied for choice converter")
	ErrNoMappings            = errors.New("no name/value mappings supplied for enum converter")
	ErrEmptyEnumName         = errors.New("enum mapping contains an empty name")
	ErrEnumNameNotFound      = errors.New("name not found in enum mappings")
	ErrChoiceNotInVocabulary = errors.New("text is not a member of the choice vocabulary")
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// LookupError reports an enum conversion whose text was absent from the
// mappings even after the lowercase fallback.
type LookupError struct {
	Name string
}

// Error implements the error interface.
func (e LookupError) Error() string {
	return fmt.Sprintf("enum lookup failed for %q: %v", e.Name, ErrEnumNameNotFound)
}

// Unwrap makes the error match errors.Is(err, ErrEnumNameNotFound).
func (e LookupError) Unwrap() error { return ErrEnumNameNotFound }

// MembershipError reports a choice conversion whose text was outside the
// closed vocabulary. Given a host engine that only passes text matched
// by the generated alternation pattern this is unreachable, so it is a
// contract violation rather than a recoverable condition.
type MembershipError struct {
	Text    string
	Choices []string
}

// Error implements the error interface.
func (e MembershipError) Error() string {
	return fmt.Sprintf("%q is not one of %v: %v", e.Text, e.Choices, ErrChoiceNotInVocabulary)
}

// Unwrap makes the error match errors.Is(err, ErrChoiceNotInVocabulary).
func (e MembershipError) Unwrap() error { return ErrChoiceNotInVocabulary }

///////////////////////////////////////////////////////////////////////////////
// Cardinality Builders
///////////////////////////////////////////////////////////////////////////////

// ListOpts carries the optional arguments of the list builders. The zero
// value selects DefaultListSeparator and no size bound.
type ListOpts struct {
	// Separator is the literal separating list items ("," if empty).
	Separator string
	// MaxSize, when positive, is recorded on the converter as an
	// advisory upper bound on item count. It is not enforced at
	// conversion time.
	MaxSize int
}

func (o ListOpts) separator() string {
	if o.Separator == "" {
		return DefaultListSeparator
	}
	return o.Separator
}

// Optional derives a converter for 0..1 occurrences of base (T or
// Absent). Missing or whitespace-only text converts to Absent; anything
// else is trimmed and handed to the base converter, whose result and
// error pass through unchanged.
func Optional(base *Converter) (*Converter, error) {
	if base == nil {
		return nil, ErrNilConverter
	}
	if base.convert == nil {
		return nil, ErrNilConvertFunc
	}
	convert := base.convert
	return &Converter{
		pattern: ZeroOrOnePattern(base.patternOrDefault()),
		convert: func(text string) (any, error) {
			text = strings.TrimSpace(text)
			if text == "" {
				return Absent, nil
			}
			return convert(text)
		},
	}, nil
}

// ZeroOrMore derives a converter for 0..N occurrences of base,
// producing a []any in input order (duplicates preserved). Missing or
// whitespace-only text converts to an empty list; otherwise the text is
// split on the separator, each part trimmed and converted via base. The
// first base failure aborts the conversion.
func ZeroOrMore(base *Converter, opts ListOpts) (*Converter, error) {
	if base == nil {
		return nil, ErrNilConverter
	}
	if base.convert == nil {
		return nil, ErrNilConvertFunc
	}
	sep := opts.separator()
	convert := base.convert
	return &Converter{
		pattern:    ZeroOrMorePattern(base.patternOrDefault(), sep),
		maxSize:    opts.MaxSize,
		hasMaxSize: opts.MaxSize > 0,
		convert: func(text string) (any, error) {
			text = strings.TrimSpace(text)
			if text == "" {
				return []any{}, nil
			}
			return convertList(convert, text, sep)
		},
	}, nil
}

// OneOrMore derives a converter for 1..N occurrences of base, producing
// a []any in input order. Unlike ZeroOrMore there is no blank-input
// special case: the one-or-more pattern never matches empty text, and if
// a host hands one in anyway the split yields a single empty part which
// goes to the base converter as-is.
func OneOrMore(base *Converter, opts ListOpts) (*Converter, error) {
	if base == nil {
		return nil, ErrNilConverter
	}
	if base.convert == nil {
		return nil, ErrNilConvertFunc
	}
	sep := opts.separator()
	convert := base.convert
	return &Converter{
		pattern:    OneOrMorePattern(base.patternOrDefault(), sep),
		maxSize:    opts.MaxSize,
		hasMaxSize: opts.MaxSize > 0,
		convert: func(text string) (any, error) {
			return convertList(convert, text, sep)
		},
	}, nil
}

func convertList(convert ConvertFunc, text string, sep string) (any, error) {
	parts := strings.Split(text, sep)
	items := make([]any, 0, len(parts))
	for _, part := range parts {
		item, err := convert(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

///////////////////////////////////////////////////////////////////////////////
// Selection Builders
///////////////////////////////////////////////////////////////////////////////

// Enum builds a converter that selects one of several enum values by
// literal name. Conversion looks the text up verbatim first and falls
// back to its lowercase form, so the converter also works under hosts
// that match case-insensitively (the generated pattern itself is case
// sensitive). A miss after both lookups yields a LookupError.
//
// The pattern is the alternation of the names in entry order; the names
// are embedded verbatim and never reordered.
func Enum(entries []EnumEntry) (*Converter, error) {
	if len(entries) == 0 {
		return nil, ErrNoMappings
	}
	names := make([]string, len(entries))
	byName := make(map[string]any, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, ErrEmptyEnumName
		}
		names[i] = entry.Name
		byName[entry.Name] = entry.Value
	}
	mappings := make([]EnumEntry, len(entries))
	copy(mappings, entries)
	return &Converter{
		pattern:  strings.Join(names, "|"),
		mappings: mappings,
		convert: func(text string) (any, error) {
			if value, ok := byName[text]; ok {
				return value, nil
			}
			// REQUIRED-BY: hosts matching with an IGNORECASE flag.
			if value, ok := byName[strings.ToLower(text)]; ok {
				return value, nil
			}
			return nil, LookupError{Name: text}
		},
	}, nil
}

// ValueMapper optionally transforms the selected choice text into
// another value.
type ValueMapper func(text string) (any, error)

// Choice builds a converter that selects one of several literal strings
// and returns the selected text, or the mapped value when valueMapper is
// non-nil. Membership is exact, with no case folding; text outside the
// vocabulary yields a MembershipError.
func Choice(choices []string, valueMapper ValueMapper) (*Converter, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	vocabulary := make([]string, len(choices))
	copy(vocabulary, choices)
	return &Converter{
		pattern: strings.Join(vocabulary, "|"),
		choices: vocabulary,
		convert: func(text string) (any, error) {
			if !containsString(vocabulary, text) {
				return nil, MembershipError{Text: text, Choices: vocabulary}
			}
			if valueMapper != nil {
				return valueMapper(text)
			}
			return text, nil
		},
	}, nil
}

// ChoiceIndex builds a converter like Choice but returning a
// ChoiceIndexValue pair (zero-based index, selected text). Empty text is
// a legitimate "nothing selected" outcome and converts to Absent rather
// than failing membership; this deliberately differs from Choice, which
// serves hosts that never pass empty text.
func ChoiceIndex(choices []string) (*Converter, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	vocabulary := make([]string, len(choices))
	copy(vocabulary, choices)
	return &Converter{
		pattern: strings.Join(vocabulary, "|"),
		choices: vocabulary,
		convert: func(text string) (any, error) {
			if text == "" {
				return Absent, nil
			}
			for i, choice := range vocabulary {
				if choice == text {
					return ChoiceIndexValue{Index: i, Text: text}, nil
				}
			}
			return nil, MembershipError{Text: text, Choices: vocabulary}
		},
	}, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
