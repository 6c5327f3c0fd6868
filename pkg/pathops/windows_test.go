package pathops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/pathops"
)

func fixedWindows(wd string) *pathops.Windows {
	return &pathops.Windows{Getwd: func() string { return wd }}
}

func TestWindowsNormalize(t *testing.T) {
	t.Parallel()

	a := &pathops.Windows{}

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty collapses to dot": {input: "", want: "."},
		"forward slashes":        {input: "C:/a/b", want: `C:\a\b`},
		"parent segments":        {input: `C:\a\..\b`, want: `C:\b`},
		"drive root stays":       {input: `C:\a\..`, want: `C:\`},
		"bare drive":             {input: "C:", want: "C:."},
		"drive relative":         {input: `C:a\..\b`, want: "C:b"},
		"relative":               {input: `a\.\b`, want: `a\b`},
		"unc":                    {input: `//host/share/a/../b`, want: `\\host\share\b`},
		"unc root":               {input: `\\host\share`, want: `\\host\share\`},
		"mixed separators":       {input: `C:\a/b\c`, want: `C:\a\b\c`},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.Normalize(tc.input))
		})
	}
}

func TestWindowsIsAbs(t *testing.T) {
	t.Parallel()

	a := &pathops.Windows{}

	tcs := map[string]struct {
		input string
		want  bool
	}{
		"drive rooted":   {input: `C:\foo`, want: true},
		"drive relative": {input: "C:foo", want: false},
		"rooted":         {input: `\foo`, want: true},
		"unc":            {input: `\\host\share\x`, want: true},
		"relative":       {input: "foo", want: false},
		"empty":          {input: "", want: false},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.IsAbs(tc.input))
		})
	}
}

func TestWindowsResolve(t *testing.T) {
	t.Parallel()

	a := fixedWindows(`C:\work`)

	tcs := map[string]struct {
		segments []string
		want     string
	}{
		"zero segments yield cwd":   {segments: nil, want: `C:\work`},
		"relative against cwd":      {segments: []string{"a", "b"}, want: `C:\work\a\b`},
		"stops at absolute segment": {segments: []string{"ignored", `D:\abs`, "x"}, want: `D:\abs\x`},
		"parent traversal":          {segments: []string{`C:\a\b`, `..\c`}, want: `C:\a\c`},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.Resolve(tc.segments...))
		})
	}
}

func TestWindowsRelative(t *testing.T) {
	t.Parallel()

	a := fixedWindows(`C:\work`)

	tcs := map[string]struct {
		from string
		to   string
		want string
	}{
		"same path":               {from: `C:\a\b`, to: `C:\a\b`, want: ""},
		"case insensitive":        {from: `C:\A\B`, to: `c:\a\b`, want: ""},
		"child":                   {from: `C:\a`, to: `C:\a\b`, want: "b"},
		"parent":                  {from: `C:\a\b`, to: `C:\a`, want: ".."},
		"different volume":        {from: `C:\a`, to: `D:\b`, want: `D:\b`},
		"mixed separators":        {from: `C:/a`, to: `C:\a\c`, want: "c"},
		"relative input from cwd": {from: "", to: `C:\work\sub`, want: "sub"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.Relative(tc.from, tc.to))
		})
	}
}

func TestWindowsDecomposition(t *testing.T) {
	t.Parallel()

	a := &pathops.Windows{}

	t.Run("dir", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `C:\a`, a.Dir(`C:\a\b.txt`))
	})
	t.Run("dir of drive root child", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `C:\`, a.Dir(`C:\a`))
	})
	t.Run("dir of drive relative", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "C:", a.Dir("C:foo"))
	})
	t.Run("base", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "b.txt", a.Base(`C:\a\b.txt`))
		assert.Equal(t, "b", a.Base("a/b"))
	})
	t.Run("ext", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".txt", a.Ext(`C:\a\b.txt`))
		assert.Equal(t, "", a.Ext(`C:\a\.gitignore`))
	})
	t.Run("separator", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, '\\', a.Separator())
	})
}

func TestWindowsParse(t *testing.T) {
	t.Parallel()

	a := &pathops.Windows{}

	tcs := map[string]struct {
		input string
		want  pathops.Parsed
	}{
		"absolute file": {
			input: `C:\path\dir\file.txt`,
			want: pathops.Parsed{
				Root: `C:\`, Dir: `C:\path\dir`, Base: "file.txt", Name: "file", Ext: ".txt",
			},
		},
		"drive root child": {
			input: `C:\file`,
			want:  pathops.Parsed{Root: `C:\`, Dir: `C:\`, Base: "file", Name: "file"},
		},
		"drive root": {
			input: `C:\`,
			want:  pathops.Parsed{Root: `C:\`, Dir: `C:\`},
		},
		"drive relative": {
			input: "C:file.txt",
			want:  pathops.Parsed{Root: "C:", Dir: "C:", Base: "file.txt", Name: "file", Ext: ".txt"},
		},
		"relative": {
			input: `a\b`,
			want:  pathops.Parsed{Dir: "a", Base: "b", Name: "b"},
		},
		"rooted": {
			input: `\a\b`,
			want:  pathops.Parsed{Root: `\`, Dir: `\a`, Base: "b", Name: "b"},
		},
		"empty": {
			input: "",
			want:  pathops.Parsed{},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.Parse(tc.input))
		})
	}
}

func TestWindowsToNamespaced(t *testing.T) {
	t.Parallel()

	a := &pathops.Windows{}

	tcs := map[string]struct {
		input string
		want  string
	}{
		"drive absolute":     {input: `C:\a\b`, want: `\\?\C:\a\b`},
		"unc":                {input: `\\host\share\x`, want: `\\?\UNC\host\share\x`},
		"already namespaced": {input: `\\?\C:\a`, want: `\\?\C:\a`},
		"relative unchanged": {input: `a\b`, want: `a\b`},
		"drive relative":     {input: "C:a", want: "C:a"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.ToNamespaced(tc.input))
		})
	}
}
