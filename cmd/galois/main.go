package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/galois/cmd/galois/commands"
	"github.com/teranos/galois/logger"
)

var rootCmd = &cobra.Command{
	Use:   "galois",
	Short: "galois - Formal concept analysis engine",
	Long: `galois - Formal concept analysis over binary relations.

galois reads an entity/attribute relation, enumerates its formal
concepts with Ganter's Next Closure algorithm, and reduces the concept
order to a cover graph suitable for Hasse-diagram rendering. A small
Horn-clause reasoner is included for implication queries over the same
symbolic vocabulary.

Available commands:
  lattice - Build the concept lattice of a relation file
  prove   - Run forward or backward chaining over a rules file
  version - Show version information

Examples:
  galois lattice fruit.yaml                 # Concept table
  galois lattice fruit.yaml --format dot    # Graphviz cover graph
  galois prove rules.yaml --query frog      # Forward-chain a query`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.InitializeWithLevel(jsonLogs, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit structured JSON logs instead of console output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to galois.toml (default: search . and ~/.config/galois)")

	rootCmd.AddCommand(commands.LatticeCmd)
	rootCmd.AddCommand(commands.ProveCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
