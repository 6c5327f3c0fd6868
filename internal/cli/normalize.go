package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func NewNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PATH [PATH...]",
		Short: "Print the normalized form of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := newValue(cc, arg)
				if err != nil {
					return err
				}

				slog.Debug("normalized path", "raw", arg, "value", p.String())
				cc.Println(p.String())
			}

			return nil
		},
	}
}
