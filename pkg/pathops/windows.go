package pathops

import (
	"os"
	gopath "path"
	"strings"
)

// DefaultWindows is the shared Windows algebra bound to values when no
// algebra is supplied and the host is Windows.
var DefaultWindows = &Windows{}

// Windows implements [Algebra] with drive-letter/backslash path rules. Both
// `/` and `\` are accepted as separators on input; outputs use `\`.
//
// Getwd overrides the working directory consulted by Resolve. When nil, the
// process working directory is used.
type Windows struct {
	Getwd func() string
}

func (a *Windows) getwd() string {
	if a.Getwd != nil {
		return a.Getwd()
	}

	wd, err := os.Getwd()
	if err != nil {
		return `\`
	}

	return wd
}

func (a *Windows) Normalize(path string) string {
	if path == "" {
		return "."
	}

	vol, rest := splitWinVolume(path)

	cleaned := gopath.Clean(strings.ReplaceAll(rest, `\`, "/"))
	cleaned = strings.ReplaceAll(cleaned, "/", `\`)

	if vol == "" {
		return cleaned
	}

	if rest == "" {
		// A bare drive stays drive-relative; a bare UNC root gains its
		// trailing separator.
		if len(vol) == 2 {
			return vol + "."
		}

		return vol + `\`
	}

	return vol + cleaned
}

func (a *Windows) Join(segments ...string) string {
	parts := make([]string, 0, len(segments))

	for _, seg := range segments {
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	if len(parts) == 0 {
		return "."
	}

	return a.Normalize(strings.Join(parts, `\`))
}

func (a *Windows) Resolve(segments ...string) string {
	resolved := ""

	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" {
			continue
		}

		if resolved == "" {
			resolved = seg
		} else {
			resolved = seg + `\` + resolved
		}

		if a.IsAbs(seg) {
			return a.Normalize(resolved)
		}
	}

	return a.Normalize(a.getwd() + `\` + resolved)
}

func (a *Windows) Relative(from, to string) string {
	f, t := a.Resolve(from), a.Resolve(to)
	if strings.EqualFold(f, t) {
		return ""
	}

	fv, frest := splitWinVolume(f)
	tv, trest := splitWinVolume(t)

	// Paths on different volumes have no relative form; the target's
	// absolute path is the best available answer.
	if !strings.EqualFold(fv, tv) {
		return t
	}

	fp := splitSegments(frest, isWinSep)
	tp := splitSegments(trest, isWinSep)

	common := 0
	for common < len(fp) && common < len(tp) && strings.EqualFold(fp[common], tp[common]) {
		common++
	}

	out := make([]string, 0, len(fp)+len(tp)-2*common)
	for range fp[common:] {
		out = append(out, "..")
	}

	out = append(out, tp[common:]...)

	return strings.Join(out, `\`)
}

func (a *Windows) Dir(path string) string {
	vol, rest := splitWinVolume(path)

	dir := gopath.Dir(strings.ReplaceAll(rest, `\`, "/"))
	dir = strings.ReplaceAll(dir, "/", `\`)

	if vol == "" {
		return dir
	}

	if dir == "." {
		// Drive-relative paths keep their drive as the parent.
		return vol
	}

	return vol + dir
}

func (a *Windows) Base(path string) string {
	_, rest := splitWinVolume(path)

	base := gopath.Base(strings.ReplaceAll(rest, `\`, "/"))

	return strings.ReplaceAll(base, "/", `\`)
}

func (a *Windows) Ext(path string) string {
	return lastExt(a.Base(path))
}

func (a *Windows) IsAbs(path string) bool {
	vl := winVolumeLen(path)
	if vl > 2 {
		// UNC paths are always absolute.
		return true
	}

	rest := path[vl:]

	return rest != "" && isWinSep(rest[0])
}

func (a *Windows) Parse(path string) Parsed {
	var out Parsed
	if path == "" {
		return out
	}

	vol, rest := splitWinVolume(path)

	switch {
	case vol != "" && rest != "" && isWinSep(rest[0]):
		out.Root = vol + `\`
	case vol != "":
		out.Root = vol
	case rest != "" && isWinSep(rest[0]):
		out.Root = `\`
	}

	trimmed := rest
	for len(trimmed) > 1 && isWinSep(trimmed[len(trimmed)-1]) {
		trimmed = trimmed[:len(trimmed)-1]
	}

	if trimmed == `\` || trimmed == "/" || trimmed == "" {
		out.Dir = out.Root

		return out
	}

	if i := lastWinSep(trimmed); i >= 0 {
		if i == 0 {
			out.Dir = out.Root
		} else {
			out.Dir = vol + strings.ReplaceAll(trimmed[:i], "/", `\`)
		}

		out.Base = trimmed[i+1:]
	} else {
		out.Dir = vol
		out.Base = trimmed
	}

	out.Ext = lastExt(out.Base)
	out.Name = strings.TrimSuffix(out.Base, out.Ext)

	return out
}

// ToNamespaced returns the `\\?\` form of an absolute path. Relative and
// drive-relative paths have no namespaced form and are returned unchanged.
func (a *Windows) ToNamespaced(path string) string {
	if !a.IsAbs(path) {
		return path
	}

	n := a.Normalize(path)

	switch {
	case strings.HasPrefix(n, `\\?\`):
		return n
	case strings.HasPrefix(n, `\\`):
		return `\\?\UNC\` + n[2:]
	case winVolumeLen(n) == 2:
		return `\\?\` + n
	}

	// Rooted without a drive; nothing to qualify it with.
	return n
}

func (a *Windows) Separator() rune {
	return '\\'
}

func isWinSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// winVolumeLen returns the length of the leading volume name: 2 for a drive
// like `C:`, the full `\\host\share` length for UNC paths, 0 otherwise.
func winVolumeLen(s string) int {
	if len(s) >= 2 && s[1] == ':' && isDriveLetter(s[0]) {
		return 2
	}

	if len(s) >= 5 && isWinSep(s[0]) && isWinSep(s[1]) && !isWinSep(s[2]) {
		for i := 3; i < len(s); i++ {
			if !isWinSep(s[i]) {
				continue
			}

			// Host name ends here; the share name must follow.
			i++
			if i >= len(s) || isWinSep(s[i]) {
				break
			}

			for j := i; j < len(s); j++ {
				if isWinSep(s[j]) {
					return j
				}
			}

			return len(s)
		}
	}

	return 0
}

// splitWinVolume splits a path into its volume name (separators normalized
// to `\`) and the remainder.
func splitWinVolume(path string) (string, string) {
	n := winVolumeLen(path)

	return strings.ReplaceAll(path[:n], "/", `\`), path[n:]
}

func lastWinSep(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isWinSep(s[i]) {
			return i
		}
	}

	return -1
}
