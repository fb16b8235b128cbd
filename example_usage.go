package parsetype

import (
	"fmt"
	"log"
	"strconv"
)

// ExampleUsage walks through composing converters the way a host
// matching engine would during its type-registry setup.
func ExampleUsage() {
	// A base converter for a single number.
	number, err := NewConverter(`\d+`, func(text string) (any, error) {
		return strconv.Atoi(text)
	})
	if err != nil {
		log.Fatalf("Failed to build number converter: %v", err)
	}

	// Example 1: a comma-separated list with at least one item.
	fmt.Println("=== Example 1: One-or-more list ===")

	numbers, err := OneOrMore(number, ListOpts{})
	if err != nil {
		log.Fatalf("Failed to build list converter: %v", err)
	}
	fmt.Printf("Pattern: %s\n", numbers.Pattern())
	values, err := numbers.Convert("1, 2, 3")
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
	fmt.Printf("Converted: %v\n", values) // [1 2 3]

	// Example 2: an optional value.
	fmt.Println("\n=== Example 2: Optional ===")

	maybeNumber, err := Optional(number)
	if err != nil {
		log.Fatalf("Failed to build optional converter: %v", err)
	}
	missing, _ := maybeNumber.Convert("   ")
	present, _ := maybeNumber.Convert(" 42 ")
	fmt.Printf("Blank text: %v, real text: %v\n", missing, present) // <absent>, 42

	// Example 3: enum and choice selections.
	fmt.Println("\n=== Example 3: Selections ===")

	yesNo, err := Enum([]EnumEntry{
		{Name: "yes", Value: true},
		{Name: "no", Value: false},
	})
	if err != nil {
		log.Fatalf("Failed to build enum converter: %v", err)
	}
	answer, _ := yesNo.Convert("yes")
	fmt.Printf("Enum %q -> %v\n", "yes", answer)

	color, err := ChoiceIndex([]string{"red", "green", "blue"})
	if err != nil {
		log.Fatalf("Failed to build choice converter: %v", err)
	}
	picked, _ := color.Convert("green")
	fmt.Printf("Choice %q -> %v\n", "green", picked) // {1 green}

	// Example 4: resolving converters by placeholder name.
	fmt.Println("\n=== Example 4: Registry ===")

	reg, err := NewConverterRegistry(ConverterRegistryOpts{
		Converters: []NamedConverter{
			{Name: "Numbers", Converter: numbers},
			{Name: "YesNo", Converter: yesNo},
		},
	})
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}
	conv, err := reg.Lookup("YesNo")
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	v, _ := conv.Convert("no")
	fmt.Printf("Registry lookup converted %q -> %v\n", "no", v)
}
