package parsetype

// constants for pattern generation
const (
	// DefaultPattern is substituted for a base converter that carries no
	// pattern of its own: any non-empty text, matched non-greedily.
	DefaultPattern = `.+?`

	// DefaultListSeparator separates items of list converters when the
	// ListOpts do not name one.
	DefaultListSeparator = ","
)

// Converter name constants for the builtin base converters.
const (
	IntegerConverterName      = "Integer"
	NumberConverterName       = "Number"
	WordConverterName         = "Word"
	BoolConverterName         = "Bool"
	UUIDConverterName         = "UUID"
	TimestampConverterName    = "Timestamp"
	JSONConverterName         = "JSON"
	QuotedStringConverterName = "QuotedString"
)

// Pattern constants for the builtin base converters.
const (
	IntegerPattern      = `[-+]?\d+`
	NumberPattern       = `[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`
	WordPattern         = `\w+`
	BoolPattern         = `(?i:true|false|yes|no|on|off)|1|0`
	UUIDPattern         = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`
	TimestampPattern    = `\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:[Zz]|[-+]\d{2}:\d{2})`
	QuotedStringPattern = `"[^"]*"`
)
