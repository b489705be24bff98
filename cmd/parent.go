package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/presentation"
)

var parentCmd = &cobra.Command{
	Use:   "parent <idShort>",
	Short: "Find the parent holding a given short name",
	Long: `Search every stored object for a referable whose immediate children
include the given short name, and print the first match. Objects are scanned
in insertion order, so the result is deterministic for a given environment.

Examples:
  modelstore parent Temperature
  modelstore parent Temperature | jq '.idShort'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnvironment(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.close() }()

		parent, err := env.store().FindParent(args[0])
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatReferable(presentation.FromReferable(parent))
	},
}

func init() {
	rootCmd.AddCommand(parentCmd)
}
