// Package specifier defines the values handed to the downstream module
// resolver: strings naming a module, file, or glob, tagged with how they are
// meant to be resolved.
package specifier

// Kind is the resolution intent of a Specifier.
type Kind uint8

const (
	// Deferred specifiers must go through module resolution.
	Deferred Kind = iota
	// Entry specifiers are glob patterns identifying candidate source files.
	Entry
)

func (k Kind) String() string {
	switch k {
	case Deferred:
		return "deferred"
	case Entry:
		return "entry"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Specifier is a string to be resolved later by a downstream resolver.
type Specifier struct {
	Value string `json:"value"`
	Kind  Kind   `json:"kind"`
}

// ToDeferred wraps a module name as a Deferred specifier.
func ToDeferred(v string) Specifier {
	return Specifier{Value: v, Kind: Deferred}
}

// ToEntry wraps a glob pattern as an Entry specifier.
func ToEntry(v string) Specifier {
	return Specifier{Value: v, Kind: Entry}
}

// Deferreds wraps every value as a Deferred specifier.
func Deferreds(values []string) []Specifier {
	if len(values) == 0 {
		return nil
	}
	out := make([]Specifier, len(values))
	for i, v := range values {
		out[i] = ToDeferred(v)
	}
	return out
}

// Values returns the textual form of every specifier, in order.
func Values(specs []Specifier) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Value
	}
	return out
}
