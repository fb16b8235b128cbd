package parsetype

import "fmt"

// Cardinality classifies how often a value occurs in its context.
type Cardinality int

const (
	// CardinalityOne is the base case: exactly one occurrence, no
	// pattern wrapping.
	CardinalityOne Cardinality = iota
	// CardinalityZeroOrOne admits zero or one occurrences (optional).
	CardinalityZeroOrOne
	// CardinalityZeroOrMore admits any number of occurrences, including
	// none (possibly-empty list).
	CardinalityZeroOrMore
	// CardinalityOneOrMore admits one or more occurrences (non-empty
	// list).
	CardinalityOneOrMore
)

// String implements fmt.Stringer.
func (c Cardinality) String() string {
	switch c {
	case CardinalityOne:
		return "1"
	case CardinalityZeroOrOne:
		return "0..1"
	case CardinalityZeroOrMore:
		return "0..N"
	case CardinalityOneOrMore:
		return "1..N"
	default:
		return fmt.Sprintf("Cardinality(%d)", int(c))
	}
}

// ZeroOrOnePattern wraps pattern so that it matches zero or one
// occurrences: a single optional group over the whole inner pattern.
//
// The inner pattern is embedded verbatim. No validation is performed;
// callers own the well-formedness of what they pass in.
func ZeroOrOnePattern(pattern string) string {
	return fmt.Sprintf(`(%s)?`, pattern)
}

// ZeroOrMorePattern wraps pattern so that it matches zero or more
// occurrences separated by listsep. The first occurrence is optional;
// every later occurrence is preceded by the separator with optional
// surrounding whitespace.
func ZeroOrMorePattern(pattern string, listsep string) string {
	return fmt.Sprintf(`(%s)?(\s*%s\s*(%s))*`, pattern, listsep, pattern)
}

// OneOrMorePattern wraps pattern so that it matches one or more
// occurrences separated by listsep. The first occurrence is mandatory;
// the repetition tail is the same as for ZeroOrMorePattern.
func OneOrMorePattern(pattern string, listsep string) string {
	return fmt.Sprintf(`(%s)(\s*%s\s*(%s))*`, pattern, listsep, pattern)
}

// MakePattern wraps pattern for this cardinality. CardinalityOne returns
// the pattern unchanged; listsep is ignored for the non-list cases.
//
// The result is suitable for direct embedding as a group inside a larger
// alternation or format pattern.
func (c Cardinality) MakePattern(pattern string, listsep string) string {
	switch c {
	case CardinalityZeroOrOne:
		return ZeroOrOnePattern(pattern)
	case CardinalityZeroOrMore:
		return ZeroOrMorePattern(pattern, listsep)
	case CardinalityOneOrMore:
		return OneOrMorePattern(pattern, listsep)
	default:
		return pattern
	}
}
