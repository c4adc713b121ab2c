package cmd

import (
	"github.com/maratik123/tsp/internal/domain"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [cifp-file]",
		Short: "List the airports decoded from a CIFP file",
		Long: `List decodes the CIFP file, applies the optional filter and prints the
airport table without running the optimizer. Pass "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFactory(cmd).List(domain.ListArgs{
				Source:     args[0],
				Filter:     filterFlag,
				Unfiltered: unfilteredFlag,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
