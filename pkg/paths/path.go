package paths

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MacroPower/pathkit/pkg/pathops"
)

// Path is an immutable, validated path string, bound to the
// [pathops.Algebra] that constructed it. It optionally carries an opaque base
// anchor (e.g. the directory a relative reference was resolved against),
// which is carried forward, never interpreted.
//
// Values derived through Dirname, Join, Resolve or ToNamespaced are new,
// independent Paths that inherit the parent's base and algebra unless the
// caller overrides them.
type Path struct {
	value   string
	base    string
	hasBase bool
	alg     pathops.Algebra

	parseOnce sync.Once
	parsed    pathops.Parsed
}

type config struct {
	base      string
	hasBase   bool
	alg       pathops.Algebra
	validator Validator
}

// Option configures construction of a [Path].
type Option func(*config)

// WithBase records an opaque base anchor on the constructed value. The base
// is not validated, normalized or interpreted.
func WithBase(base string) Option {
	return func(c *config) {
		c.base = base
		c.hasBase = true
	}
}

// WithAlgebra binds the value to the given algebra instead of the host
// platform's native one. Algebra identity is reference identity, so share a
// single instance across values that should compare equal.
func WithAlgebra(alg pathops.Algebra) Option {
	return func(c *config) {
		c.alg = alg
	}
}

// WithValidator replaces the default accept-everything validator for this
// construction. Derived values are built from already-validated material and
// do not re-validate.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// New normalizes raw with the bound algebra, validates the result, and
// returns it as a Path. A validation failure is returned as an
// [*InvalidPathError] and no value is constructed.
func New(raw string, opts ...Option) (*Path, error) {
	c := config{
		alg:       pathops.Platform(),
		validator: AcceptAll,
	}

	for _, opt := range opts {
		opt(&c)
	}

	value := c.alg.Normalize(raw)

	if err := c.validator(value); err != nil {
		return nil, &InvalidPathError{Value: value, Err: err}
	}

	return &Path{
		value:   value,
		base:    c.base,
		hasBase: c.hasBase,
		alg:     c.alg,
	}, nil
}

// MustNew is like [New] but panics on validation failure. Useful for paths
// known valid at compile time.
func MustNew(raw string, opts ...Option) *Path {
	p, err := New(raw, opts...)
	if err != nil {
		panic(fmt.Errorf("paths.MustNew(%q): %w", raw, err))
	}

	return p
}

// derive constructs a value from an already-normalized, already-validated
// string. Base and algebra default to the parent's; opts may override either.
func (p *Path) derive(value string, opts []Option) *Path {
	c := config{
		base:    p.base,
		hasBase: p.hasBase,
		alg:     p.alg,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &Path{
		value:   value,
		base:    c.base,
		hasBase: c.hasBase,
		alg:     c.alg,
	}
}

// String returns the underlying path string.
func (p *Path) String() string {
	return p.value
}

// Base returns the opaque base anchor and whether one was recorded.
func (p *Path) Base() (string, bool) {
	return p.base, p.hasBase
}

// Algebra returns the algebra the value is bound to.
func (p *Path) Algebra() pathops.Algebra {
	return p.alg
}

// Basename returns the final segment of the path. If stripExt is given and
// the segment ends with it (without being it entirely), the suffix is
// removed; otherwise it is ignored.
func (p *Path) Basename(stripExt ...string) string {
	base := p.alg.Base(p.value)

	if len(stripExt) > 0 && stripExt[0] != "" && base != stripExt[0] &&
		strings.HasSuffix(base, stripExt[0]) {
		return strings.TrimSuffix(base, stripExt[0])
	}

	return base
}

// Extname returns the extension of the final segment, including the leading
// dot, or the empty string for extension-less segments and dotfiles.
func (p *Path) Extname() string {
	return p.alg.Ext(p.value)
}

// Dirname returns the parent path as a new value.
func (p *Path) Dirname(opts ...Option) *Path {
	return p.derive(p.alg.Dir(p.value), opts)
}

// Parse decomposes the path. The decomposition is computed once per value
// and cached; the cache can never go stale because the value is immutable.
func (p *Path) Parse() pathops.Parsed {
	p.parseOnce.Do(func() {
		p.parsed = p.alg.Parse(p.value)
	})

	return p.parsed
}

// Join appends segments to the path. Empty segments are ignored; the result
// is never empty, collapsing to `.` when everything else does.
func (p *Path) Join(segments ...string) *Path {
	return p.derive(p.alg.Join(prepend(p.value, segments)...), nil)
}

// Resolve assembles an absolute path from this value and the given segments,
// right-to-left. With no segments, the value itself is resolved against its
// base anchor when one was recorded, and against the ambient working
// directory otherwise; this is the way to obtain the absolute form of a
// value constructed relative to a recorded base.
func (p *Path) Resolve(segments ...string) *Path {
	if len(segments) == 0 {
		if p.hasBase {
			return p.derive(p.alg.Resolve(p.base, p.value), nil)
		}

		return p.derive(p.alg.Resolve(p.value), nil)
	}

	return p.derive(p.alg.Resolve(prepend(p.value, segments)...), nil)
}

// Relative returns the relative path from this value to `to`, both first
// made absolute via Resolve. The result is empty iff both resolve to the
// same path, and is generally asymmetric.
func (p *Path) Relative(to *Path) string {
	return p.alg.Relative(p.Resolve().value, to.Resolve().value)
}

// IsAbs reports whether the path is absolute under the bound algebra.
func (p *Path) IsAbs() bool {
	return p.alg.IsAbs(p.value)
}

// ToNamespaced returns the platform's namespace-prefixed form of the path as
// a new value. Under conventions without a namespaced form this produces an
// equal value.
func (p *Path) ToNamespaced() *Path {
	return p.derive(p.alg.ToNamespaced(p.value), nil)
}

// Equal reports structural equality: value, base anchor and algebra identity
// must all match. The parse cache does not participate.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.value == other.value &&
		p.hasBase == other.hasBase &&
		p.base == other.base &&
		p.alg == other.alg
}

// MarshalText implements [encoding.TextMarshaler], emitting the path string.
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func prepend(head string, tail []string) []string {
	out := make([]string, 0, len(tail)+1)
	out = append(out, head)
	out = append(out, tail...)

	return out
}
