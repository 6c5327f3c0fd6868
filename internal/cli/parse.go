package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ErrUnknownOutputFormat = errors.New("unknown output format")

func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse PATH",
		Short: "Decompose a path into root, dir, base, name and ext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			p, err := newValue(cc, args[0])
			if err != nil {
				return err
			}

			output, err := cc.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("invalid argument: %w", err)
			}

			parsed := p.Parse()

			switch output {
			case "text", "":
				cc.Printf("root: %s\n", parsed.Root)
				cc.Printf("dir:  %s\n", parsed.Dir)
				cc.Printf("base: %s\n", parsed.Base)
				cc.Printf("name: %s\n", parsed.Name)
				cc.Printf("ext:  %s\n", parsed.Ext)
			case "json":
				data, err := json.MarshalIndent(parsed, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}

				cc.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(parsed)
				if err != nil {
					return fmt.Errorf("failed to marshal YAML: %w", err)
				}

				cc.Print(string(data))
			default:
				return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, output)
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
