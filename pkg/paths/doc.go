// Package paths provides a validated, immutable path value type.
//
// A [Path] wraps a path string that has passed validation, and is intended to
// prevent unintentional use of unvalidated path strings. Each Path is bound
// to the [pathops.Algebra] it was constructed with, so the same type works
// across POSIX rules, Windows rules, or a test double, and optionally carries
// an opaque base anchor that is propagated to every derived value.
//
// Paths are pure values: no operation touches the filesystem.
package paths
