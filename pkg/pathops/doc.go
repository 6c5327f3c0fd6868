// Package pathops provides pure, pluggable path-manipulation algebras.
//
// An [Algebra] encodes one filesystem-path convention (POSIX forward-slash
// rules, or Windows drive-letter/backslash rules) as a set of side-effect-free
// string operations. Implementations never touch the filesystem; the only
// ambient input is the working directory consulted by Resolve, which is
// swappable for tests.
package pathops
