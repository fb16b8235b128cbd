package parsetype

import (
	"regexp"
	"sync"
)

// PatternCache is a thread-safe compile-once cache of regular
// expressions keyed by pattern text. Converter patterns are fixed for
// the lifetime of the converter, so a host that compiles placeholder
// patterns on demand can route every compilation through one cache and
// pay for each distinct pattern exactly once, even under concurrent
// lookups.
//
// The zero value is ready to use.
type PatternCache struct {
	cache sync.Map // map[string]*patternEntry
}

type patternEntry struct {
	once sync.Once
	re   *regexp.Regexp
	err  error
}

// GetOrCompile returns the compiled form of pattern, compiling it on
// first use. A pattern that fails to compile is cached too; repeated
// lookups return the same error without recompiling.
func (pc *PatternCache) GetOrCompile(pattern string) (*regexp.Regexp, error) {
	v, ok := pc.cache.Load(pattern)
	if !ok {
		// LoadOrStore returns the entry that won the race.
		v, _ = pc.cache.LoadOrStore(pattern, &patternEntry{})
	}
	entry := v.(*patternEntry)
	entry.once.Do(func() {
		entry.re, entry.err = regexp.Compile(pattern)
	})
	return entry.re, entry.err
}

// GetOrCompileConverter is a convenience wrapper compiling the pattern
// of conv.
func (pc *PatternCache) GetOrCompileConverter(conv *Converter) (*regexp.Regexp, error) {
	return pc.GetOrCompile(conv.Pattern())
}

// Len reports how many distinct patterns have been requested so far.
func (pc *PatternCache) Len() int {
	n := 0
	pc.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
