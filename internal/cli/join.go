package cli

import (
	"github.com/spf13/cobra"
)

func NewJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join PATH [SEGMENT...]",
		Short: "Join segments onto a path and normalize the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			p, err := newValue(cc, args[0])
			if err != nil {
				return err
			}

			cc.Println(p.Join(args[1:]...).String())

			return nil
		},
	}
}
