package pathops

import (
	"os"
	gopath "path"
	"strings"
)

// DefaultPosix is the shared POSIX algebra bound to values when no algebra is
// supplied and the host is not Windows.
var DefaultPosix = &Posix{}

// Posix implements [Algebra] with forward-slash, single-root path rules.
//
// Getwd overrides the working directory consulted by Resolve. When nil, the
// process working directory is used.
type Posix struct {
	Getwd func() string
}

func (a *Posix) getwd() string {
	if a.Getwd != nil {
		return a.Getwd()
	}

	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}

	return wd
}

func (a *Posix) Normalize(path string) string {
	return gopath.Clean(path)
}

func (a *Posix) Join(segments ...string) string {
	joined := gopath.Join(segments...)
	if joined == "" {
		return "."
	}

	return joined
}

func (a *Posix) Resolve(segments ...string) string {
	resolved := ""

	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" {
			continue
		}

		if resolved == "" {
			resolved = seg
		} else {
			resolved = seg + "/" + resolved
		}

		if a.IsAbs(seg) {
			return gopath.Clean(resolved)
		}
	}

	return gopath.Clean(a.getwd() + "/" + resolved)
}

func (a *Posix) Relative(from, to string) string {
	f, t := a.Resolve(from), a.Resolve(to)
	if f == t {
		return ""
	}

	fp := splitSegments(f, isPosixSep)
	tp := splitSegments(t, isPosixSep)

	common := 0
	for common < len(fp) && common < len(tp) && fp[common] == tp[common] {
		common++
	}

	out := make([]string, 0, len(fp)+len(tp)-2*common)
	for range fp[common:] {
		out = append(out, "..")
	}

	out = append(out, tp[common:]...)

	return strings.Join(out, "/")
}

func (a *Posix) Dir(path string) string {
	return gopath.Dir(path)
}

func (a *Posix) Base(path string) string {
	return gopath.Base(path)
}

func (a *Posix) Ext(path string) string {
	return lastExt(gopath.Base(path))
}

func (a *Posix) IsAbs(path string) bool {
	return strings.HasPrefix(path, "/")
}

func (a *Posix) Parse(path string) Parsed {
	var out Parsed
	if path == "" {
		return out
	}

	if path[0] == '/' {
		out.Root = "/"
	}

	trimmed := path
	for len(trimmed) > 1 && trimmed[len(trimmed)-1] == '/' {
		trimmed = trimmed[:len(trimmed)-1]
	}

	if trimmed == "/" {
		out.Dir = "/"

		return out
	}

	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		out.Dir = trimmed[:i]
		out.Base = trimmed[i+1:]

		if out.Dir == "" {
			out.Dir = "/"
		}
	} else {
		out.Base = trimmed
	}

	out.Ext = lastExt(out.Base)
	out.Name = strings.TrimSuffix(out.Base, out.Ext)

	return out
}

// ToNamespaced is the identity under POSIX rules.
func (a *Posix) ToNamespaced(path string) string {
	return path
}

func (a *Posix) Separator() rune {
	return '/'
}

func isPosixSep(c byte) bool {
	return c == '/'
}
