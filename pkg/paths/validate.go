package paths

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validator checks a candidate path string before a [Path] is constructed
// from it. The string has already been normalized by the bound algebra.
type Validator func(value string) error

// AcceptAll is the default Validator. Any string is a syntactically
// acceptable path; existence on disk is never required.
func AcceptAll(string) error {
	return nil
}

// Rule rejects path strings violating one syntactic constraint.
type Rule func(value string) error

// Rules combines rules into a Validator that reports every violated rule,
// not just the first.
func Rules(rules ...Rule) Validator {
	return func(value string) error {
		var merr *multierror.Error

		for _, rule := range rules {
			if err := rule(value); err != nil {
				merr = multierror.Append(merr, err)
			}
		}

		return merr.ErrorOrNil()
	}
}

// NotEmpty rejects the empty string. Note that [New] validates the
// normalized value, which is never empty (normalization turns "" into "."),
// so this rule only bites in validators applied to raw strings.
func NotEmpty(value string) error {
	if value == "" {
		return errors.New("path is empty")
	}

	return nil
}

// NoNUL rejects path strings containing a NUL byte.
func NoNUL(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] == 0 {
			return errors.New("path contains a NUL byte")
		}
	}

	return nil
}

// NoControlChars rejects path strings containing ASCII control characters.
func NoControlChars(value string) error {
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("path contains control character %q", r)
		}
	}

	return nil
}

// MaxLength rejects path strings longer than n bytes.
func MaxLength(n int) Rule {
	return func(value string) error {
		if len(value) > n {
			return fmt.Errorf("path length %d exceeds maximum %d", len(value), n)
		}

		return nil
	}
}
