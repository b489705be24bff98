package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/presentation"
)

var getCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Look up an object by its identifier",
	Long: `Look up an object by its globally unique identifier and print it as JSON.

The lookup goes through the full provider chain: the primary environment
first, then any extra providers configured under "providers", with results
cached according to the cache settings.

Examples:
  modelstore get urn:x-demo:robot1
  modelstore get urn:x-demo:robot1 | jq '.metadata.kind'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnvironment(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.close() }()

		obj, err := env.provider.GetIdentifiable(args[0])
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatObject(presentation.FromIdentifiable(obj))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
