package parsetype

import "errors"

var (
	ErrNilConverter   = errors.New("nil converter supplied where a base converter is required")
	ErrNilConvertFunc = errors.New("converter has no conversion function")
)

///////////////////////////////////////////////////////////////////////////////
// Converter
///////////////////////////////////////////////////////////////////////////////

// ConvertFunc turns a matched substring into a typed value. It is total
// over strings but may fail for any particular input; the error is the
// converter's own and is never wrapped by this package.
type ConvertFunc func(text string) (any, error)

// Converter pairs a conversion function with the regular expression
// pattern that recognizes its input. The host matching engine embeds
// Pattern() into its compiled format pattern, matches input against it,
// and hands the matched substring to Convert.
//
// A Converter is immutable after construction: its pattern never
// changes, so hosts may cache compiled forms keyed by identity or by
// pattern text. Converters are safe for unrestricted concurrent use.
//
// Optional metadata is surfaced through capability accessors rather
// than attribute probing: HasMaxSize/MaxSize on list converters,
// HasChoices/Choices and HasMappings/Mappings on selection converters.
type Converter struct {
	convert    ConvertFunc
	pattern    string
	maxSize    int
	hasMaxSize bool
	choices    []string
	mappings   []EnumEntry
}

// NewConverter wraps a bare conversion function into a Converter.
// pattern may be empty, in which case any builder deriving from this
// converter substitutes DefaultPattern.
func NewConverter(pattern string, convert ConvertFunc) (*Converter, error) {
	if convert == nil {
		return nil, ErrNilConvertFunc
	}
	return &Converter{convert: convert, pattern: pattern}, nil
}

// Convert invokes the conversion function on the matched text.
func (c *Converter) Convert(text string) (any, error) {
	return c.convert(text)
}

// Pattern returns the regular expression fragment this converter
// recognizes. It is fixed for the lifetime of the converter.
func (c *Converter) Pattern() string {
	return c.pattern
}

// patternOrDefault resolves the pattern a derived converter builds on.
func (c *Converter) patternOrDefault() string {
	if c.pattern == "" {
		return DefaultPattern
	}
	return c.pattern
}

// HasMaxSize reports whether an item count bound was recorded for this
// list converter.
func (c *Converter) HasMaxSize() bool {
	return c.hasMaxSize
}

// MaxSize returns the advisory upper bound on item count for a list
// converter, and whether one was recorded. The bound is informational
// only; Convert never enforces it.
func (c *Converter) MaxSize() (int, bool) {
	return c.maxSize, c.hasMaxSize
}

// HasChoices reports whether this converter carries a closed choice
// vocabulary.
func (c *Converter) HasChoices() bool {
	return len(c.choices) > 0
}

// Choices returns the choice vocabulary in insertion order. The slice
// is a copy; the converter's own vocabulary cannot be mutated.
func (c *Converter) Choices() []string {
	if len(c.choices) == 0 {
		return nil
	}
	out := make([]string, len(c.choices))
	copy(out, c.choices)
	return out
}

// HasMappings reports whether this converter carries enum name/value
// mappings.
func (c *Converter) HasMappings() bool {
	return len(c.mappings) > 0
}

// Mappings returns the enum entries in insertion order. The slice is a
// copy.
func (c *Converter) Mappings() []EnumEntry {
	if len(c.mappings) == 0 {
		return nil
	}
	out := make([]EnumEntry, len(c.mappings))
	copy(out, c.mappings)
	return out
}

///////////////////////////////////////////////////////////////////////////////
// Values
///////////////////////////////////////////////////////////////////////////////

// EnumEntry is one name/value pair of an enum converter. Entries are
// kept as an ordered slice rather than a map because insertion order
// determines alternation precedence in the generated pattern.
type EnumEntry struct {
	Name  string
	Value any
}

// AbsentValue is the type of the Absent sentinel.
type AbsentValue struct{}

// String implements fmt.Stringer.
func (AbsentValue) String() string { return "<absent>" }

// Absent is returned when an optional value is not present in the
// matched text. It is distinct from nil and from any real converted
// value, so hosts can tell "nothing matched" apart from "matched and
// converted to nothing".
var Absent = AbsentValue{}

// ChoiceIndexValue is the result of a ChoiceIndex converter: the
// zero-based position of the selected choice and its literal text.
type ChoiceIndexValue struct {
	Index int
	Text  string
}
