package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/presentation"
)

var childrenCmd = &cobra.Command{
	Use:   "children <identifier> <idShort>",
	Short: "List the immediate referable children of a node",
	Long: `List the immediate referable children of the node with the given short
name under the object identified by <identifier>. Non-referable content such
as annotations and metadata is skipped.

Examples:
  modelstore children urn:x-demo:robot1 Sensors
  modelstore children urn:x-demo:robot1 Sensors | jq '.[].idShort'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnvironment(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.close() }()

		children, err := env.store().ListChildren(args[0], args[1])
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatReferables(presentation.FromReferables(children))
	},
}

func init() {
	rootCmd.AddCommand(childrenCmd)
}
