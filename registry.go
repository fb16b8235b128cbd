package parsetype

import (
	"errors"
	"fmt"
)

var (
	ErrConverterAlreadyRegistered = errors.New("a converter with this name is already registered")
	ErrNoConverterRegistered      = errors.New("no converter registered under this name")
	ErrEmptyConverterName         = errors.New("converter name must not be empty")
)

// ConverterRegistry is the name to Converter table a host matching
// engine resolves placeholder types against: once during setup it
// registers the converters it needs, and per placeholder it looks one
// up by name, embeds its pattern, and later calls Convert on the
// matched substring.
//
// Registration happens at setup time; after that the registry is
// read-only from the host's point of view and safe to share across
// goroutines.
type ConverterRegistry struct {
	m     map[string]*Converter
	order []string
}

type ConverterRegistryOpts struct {
	// Converters are registered after the defaults, in slice order.
	Converters []NamedConverter
	// ExcludeDefaults skips registration of the builtin converters.
	ExcludeDefaults bool
}

// NamedConverter pairs a registry name with a converter.
type NamedConverter struct {
	Name      string
	Converter *Converter
}

func defaultConverters() []NamedConverter {
	return []NamedConverter{
		{IntegerConverterName, IntegerConverter()},
		{NumberConverterName, NumberConverter()},
		{WordConverterName, WordConverter()},
		{BoolConverterName, BoolConverter()},
		{UUIDConverterName, UUIDConverter()},
		{TimestampConverterName, TimestampConverter()},
		{JSONConverterName, JSONConverter()},
		{QuotedStringConverterName, QuotedStringConverter()},
	}
}

func NewConverterRegistry(opts ConverterRegistryOpts) (*ConverterRegistry, error) {
	reg := &ConverterRegistry{
		m: make(map[string]*Converter),
	}

	if !opts.ExcludeDefaults {
		for _, nc := range defaultConverters() {
			if err := reg.Register(nc.Name, nc.Converter); err != nil {
				return nil, err
			}
		}
	}

	for _, nc := range opts.Converters {
		if err := reg.Register(nc.Name, nc.Converter); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register adds a converter under name. Names are case-sensitive and
// unique; registering a taken name fails rather than silently replacing
// the converter a host may already have compiled patterns from.
func (reg *ConverterRegistry) Register(name string, conv *Converter) error {
	if name == "" {
		return ErrEmptyConverterName
	}
	if conv == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilConverter)
	}
	if _, taken := reg.m[name]; taken {
		return fmt.Errorf("register %q: %w", name, ErrConverterAlreadyRegistered)
	}
	reg.m[name] = conv
	reg.order = append(reg.order, name)
	return nil
}

// Lookup returns the converter registered under name.
func (reg *ConverterRegistry) Lookup(name string) (*Converter, error) {
	conv, ok := reg.m[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrNoConverterRegistered)
	}
	return conv, nil
}

// Names returns the registered names in registration order.
func (reg *ConverterRegistry) Names() []string {
	out := make([]string, len(reg.order))
	copy(out, reg.order)
	return out
}
