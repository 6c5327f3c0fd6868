package cli

import (
	"github.com/spf13/cobra"
)

func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH [SEGMENT...]",
		Short: "Resolve a path to absolute form",
		Long: `Resolve a path to absolute form.

With no extra segments, the path is resolved against the --base anchor when
one is given, and against the working directory otherwise. Extra segments are
assembled right-to-left, stopping at the first absolute prefix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			p, err := newValue(cc, args[0])
			if err != nil {
				return err
			}

			cc.Println(p.Resolve(args[1:]...).String())

			return nil
		},
	}
}
