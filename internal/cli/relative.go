package cli

import (
	"github.com/spf13/cobra"
)

func NewRelativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative FROM TO",
		Short: "Print the relative path from one path to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			from, err := newValue(cc, args[0])
			if err != nil {
				return err
			}

			to, err := newValue(cc, args[1])
			if err != nil {
				return err
			}

			cc.Println(from.Relative(to))

			return nil
		},
	}
}
