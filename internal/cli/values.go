package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/pathops"
	"github.com/MacroPower/pathkit/pkg/paths"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// algebraFromFlags maps the persistent --platform flag to an algebra.
func algebraFromFlags(cc *cobra.Command) (pathops.Algebra, error) {
	platform, err := cc.Flags().GetString("platform")
	if err != nil {
		return nil, fmt.Errorf("invalid argument: %w", err)
	}

	switch strings.ToLower(platform) {
	case "native", "":
		return pathops.Platform(), nil
	case "posix":
		return pathops.DefaultPosix, nil
	case "windows":
		return pathops.DefaultWindows, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
}

// newValue constructs a Path from a raw argument, honoring the persistent
// --platform and --base flags.
func newValue(cc *cobra.Command, raw string) (*paths.Path, error) {
	alg, err := algebraFromFlags(cc)
	if err != nil {
		return nil, err
	}

	opts := []paths.Option{paths.WithAlgebra(alg)}

	if cc.Flags().Changed("base") {
		base, err := cc.Flags().GetString("base")
		if err != nil {
			return nil, fmt.Errorf("invalid argument: %w", err)
		}

		opts = append(opts, paths.WithBase(base))
	}

	p, err := paths.New(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed constructing path from %q: %w", raw, err)
	}

	return p, nil
}
