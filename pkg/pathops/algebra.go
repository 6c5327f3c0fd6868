package pathops

import "runtime"

// Parsed is the decomposition of a path string into its significant parts.
// Any field may be empty depending on the shape of the input.
type Parsed struct {
	// Root is the root prefix of the path, e.g. `/` or `C:\`.
	Root string `json:"root" yaml:"root"`
	// Dir is the full directory portion of the path, including Root.
	Dir string `json:"dir" yaml:"dir"`
	// Base is the final path segment, including any extension.
	Base string `json:"base" yaml:"base"`
	// Name is Base without its extension.
	Name string `json:"name" yaml:"name"`
	// Ext is the extension including the leading dot, or empty.
	Ext string `json:"ext" yaml:"ext"`
}

// Algebra is a set of pure string operations encoding one path convention.
//
// Implementations must be stateless (or internally synchronized) so a single
// Algebra can be shared by reference across many values and goroutines.
type Algebra interface {
	// Normalize lexically simplifies a path, collapsing redundant separators
	// and `.`/`..` segments where possible. The result is never empty; an
	// empty input normalizes to `.`.
	Normalize(path string) string

	// Join concatenates segments with the convention's separator and
	// normalizes the result. Empty segments are ignored; if every segment is
	// empty the result is `.`.
	Join(segments ...string) string

	// Resolve assembles an absolute path right-to-left, stopping as soon as
	// an absolute prefix is formed. If no segment is absolute, the ambient
	// working directory is prepended. The result is always absolute, with
	// trailing separators removed.
	Resolve(segments ...string) string

	// Relative returns the relative path from `from` to `to`, both first
	// resolved to absolute form. Returns the empty string when both resolve
	// to the same path.
	Relative(from, to string) string

	// Dir returns all but the last segment of the path, like dirname.
	Dir(path string) string

	// Base returns the last segment of the path, like basename.
	Base(path string) string

	// Ext returns the extension of the final segment, from its last dot to
	// the end. A dot that starts the segment does not begin an extension, so
	// dotfiles like `.bashrc` have no extension.
	Ext(path string) string

	// IsAbs reports whether the path is absolute under this convention.
	IsAbs(path string) bool

	// Parse decomposes the path into root, dir, base, name and ext.
	Parse(path string) Parsed

	// ToNamespaced returns the platform's namespace-prefixed form of an
	// absolute path (`\\?\` on Windows). Conventions without a namespaced
	// form return the path unchanged.
	ToNamespaced(path string) string

	// Separator returns the convention's path separator.
	Separator() rune
}

// Platform returns the Algebra matching the host platform's native path
// rules: Windows rules on Windows, POSIX rules everywhere else.
func Platform() Algebra {
	if runtime.GOOS == "windows" {
		return DefaultWindows
	}

	return DefaultPosix
}
