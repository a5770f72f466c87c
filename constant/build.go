package constant

// Build metadata, populated through -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
