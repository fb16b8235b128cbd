// Package parsetype provides support to compose parse-type converters:
// small (pattern, conversion function) units that a text-pattern-matching
// engine looks up by name, matches against input with the unit's regular
// expression pattern, and invokes with the matched substring to obtain a
// typed value.
//
// The package never matches input itself. It only generates pattern text
// and performs post-match conversion; the host engine owns the format
// string grammar and the actual regular expression search.
//
// # Cardinality
//
// It is often useful to constrain how often a placeholder value occurs.
// This is the cardinality of the value in its context. The supported
// cardinalities, and the builders that produce converters for them, are:
//
//   - 0..1  Optional:   T or Absent
//   - 0..N  ZeroOrMore: list of T, possibly empty
//   - 1..N  OneOrMore:  list of T with at least one item
//
// Composite converters are derived from a base converter for a single T:
//
//	number, _ := parsetype.NewConverter(`\d+`, parseNumber)
//	numbers, _ := parsetype.OneOrMore(number, parsetype.ListOpts{})
//	// numbers.Pattern() recognizes "1, 2, 3"
//	// numbers.Convert("1, 2, 3") == []any{1, 2, 3}
//
// # Selection
//
// Two builders produce converters over a closed vocabulary:
//
//   - Enum maps literal names to values, with a lowercase fallback for
//     hosts that match case-insensitively. Enum("yes" -> true,
//     "no" -> false) converts "yes" to true.
//   - Choice selects one of several literal strings and returns the
//     matched text (or a mapped value, when a value mapper is supplied).
//     ChoiceIndex additionally reports the zero-based position of the
//     selected string.
//
// In both cases the generated pattern is the alternation of the
// vocabulary in insertion order; the package never reorders it, so
// alternation precedence is entirely under the caller's control.
//
// # Registry
//
// Hosts resolve converters by placeholder name. ConverterRegistry is the
// name to converter table, preloaded with the builtin base converters
// (Integer, Number, Word, Bool, UUID, Timestamp, JSON, QuotedString)
// unless excluded:
//
//	reg, _ := parsetype.NewConverterRegistry(parsetype.ConverterRegistryOpts{})
//	conv, _ := reg.Lookup(parsetype.IntegerConverterName)
//
// # Concurrency
//
// Every builder is a pure constructor and every Converter is immutable
// after construction, so converters may be shared and invoked from any
// number of goroutines without synchronization. PatternCache provides a
// concurrent compile-once cache for hosts that compile converter
// patterns on demand.
package parsetype
