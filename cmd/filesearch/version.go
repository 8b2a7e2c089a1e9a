package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentkit/skills/pkg/presenter"
	"github.com/agentkit/skills/pkg/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			info := version.Get()

			if asJSON {
				out, err := info.JSON()
				if err != nil {
					presenter.Error(err, "Failed to render version info")
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output version info in JSON format")
	return cmd
}
