package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/presentation"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored objects",
	Long: `List every object in the environment as JSON, in insertion order.

Examples:
  # List all objects
  modelstore list

  # Parse specific fields with jq
  modelstore list | jq '.[].id'
  modelstore list | jq '.[].elements[].idShort'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnvironment(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.close() }()

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatObjects(presentation.FromStore(env.store()))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
