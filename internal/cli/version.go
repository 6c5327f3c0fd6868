package cli

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/internal/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cc.Printf("pathkit %s (%s)\n", version.GetVersionString(), version.Revision)

			return nil
		},
	}
}
