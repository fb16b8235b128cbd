package parsetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterRegistry(t *testing.T) {
	t.Run("NewConverterRegistry_WithDefaults", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{})
		require.NoError(t, err)
		require.NotNil(t, registry)

		for _, name := range []string{
			IntegerConverterName,
			NumberConverterName,
			WordConverterName,
			BoolConverterName,
			UUIDConverterName,
			TimestampConverterName,
			JSONConverterName,
			QuotedStringConverterName,
		} {
			conv, lerr := registry.Lookup(name)
			require.NoError(t, lerr, "builtin %s should be registered", name)
			assert.NotEmpty(t, conv.Pattern())
		}
	})

	t.Run("NewConverterRegistry_WithoutDefaults", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)
		assert.Empty(t, registry.Names())
	})

	t.Run("NewConverterRegistry_WithConverters", func(t *testing.T) {
		yesNo, err := Choice([]string{"yes", "no"}, nil)
		require.NoError(t, err)

		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
			Converters: []NamedConverter{
				{Name: "YesNo", Converter: yesNo},
			},
		})
		require.NoError(t, err)

		conv, err := registry.Lookup("YesNo")
		require.NoError(t, err)
		assert.Equal(t, "yes|no", conv.Pattern())
	})

	t.Run("Register", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		err = registry.Register("Numbers", IntegerConverter())
		assert.NoError(t, err)
	})

	t.Run("Register_Duplicate", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		require.NoError(t, registry.Register("Numbers", IntegerConverter()))
		err = registry.Register("Numbers", NumberConverter())
		assert.ErrorIs(t, err, ErrConverterAlreadyRegistered)
	})

	t.Run("Register_EmptyName", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		err = registry.Register("", IntegerConverter())
		assert.ErrorIs(t, err, ErrEmptyConverterName)
	})

	t.Run("Register_NilConverter", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		err = registry.Register("Broken", nil)
		assert.ErrorIs(t, err, ErrNilConverter)
	})

	t.Run("Lookup_NotFound", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		conv, err := registry.Lookup("Nope")
		assert.Nil(t, conv)
		assert.ErrorIs(t, err, ErrNoConverterRegistered)
	})

	t.Run("Names_RegistrationOrder", func(t *testing.T) {
		registry, err := NewConverterRegistry(ConverterRegistryOpts{
			ExcludeDefaults: true,
		})
		require.NoError(t, err)

		require.NoError(t, registry.Register("B", WordConverter()))
		require.NoError(t, registry.Register("A", WordConverter()))
		require.NoError(t, registry.Register("C", WordConverter()))
		assert.Equal(t, []string{"B", "A", "C"}, registry.Names())
	})
}
