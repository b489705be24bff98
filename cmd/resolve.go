package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/presentation"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier> <idShort>",
	Short: "Resolve a short name anywhere under a stored object",
	Long: `Resolve the first referable with the given short name in the depth-first
descent of the object identified by <identifier>.

Examples:
  modelstore resolve urn:x-demo:robot1 Temperature
  modelstore resolve urn:x-demo:robot1 Sensors | jq '.idShort'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnvironment(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = env.close() }()

		ref, err := env.store().ResolveReferable(args[0], args[1])
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatReferable(presentation.FromReferable(ref))
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
