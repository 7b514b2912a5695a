// Package rootdir substitutes the <rootDir> placeholder used in test-runner
// configuration values with the effective base directory of a configuration.
package rootdir

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/depgrid/internal/specifier"
)

// Token is the placeholder replaced by the effective root directory.
const Token = "<rootDir>"

// Effective returns the root directory of a configuration: the declared
// rootDir resolved against the configuration file's directory, or that
// directory itself when nothing is declared.
func Effective(configFileDir, declared string) string {
	switch {
	case declared == "":
		return configFileDir
	case filepath.IsAbs(declared):
		return filepath.Clean(declared)
	default:
		return filepath.Join(configFileDir, declared)
	}
}

// Expand replaces the first occurrence of Token in s with root. Later
// occurrences are left as they are.
func Expand(s, root string) string {
	return strings.Replace(s, Token, root, 1)
}

// Expander applies Expand with a fixed root directory.
type Expander struct {
	root string
}

// New returns an Expander for a configuration living in configFileDir that
// declares rootDir (possibly empty).
func New(configFileDir, rootDir string) Expander {
	return Expander{root: Effective(configFileDir, rootDir)}
}

// Root returns the effective root directory.
func (x Expander) Root() string {
	return x.root
}

// Expand substitutes the root directory into s.
func (x Expander) Expand(s string) string {
	return Expand(s, x.root)
}

// Specifiers returns a copy of specs with every value expanded. Kinds are kept.
func (x Expander) Specifiers(specs []specifier.Specifier) []specifier.Specifier {
	out := make([]specifier.Specifier, len(specs))
	for i, s := range specs {
		out[i] = specifier.Specifier{Value: x.Expand(s.Value), Kind: s.Kind}
	}
	return out
}

// Entries expands each pattern and tags it as an entry specifier.
func (x Expander) Entries(patterns []string) []specifier.Specifier {
	out := make([]specifier.Specifier, len(patterns))
	for i, p := range patterns {
		out[i] = specifier.ToEntry(x.Expand(p))
	}
	return out
}
