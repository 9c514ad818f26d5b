package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dcode-github/property_valuation/valuation"
)

var (
	seed     uint64
	jsonMode bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "valuate",
		Short:         "Estimate residential property prices from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed the random source for reproducible output (0 = random)")
	root.PersistentFlags().BoolVar(&jsonMode, "json", false, "print JSON instead of text")

	root.AddCommand(
		newEstimateCmd(),
		newLocationsCmd(),
		newTrendsCmd(),
		newImportanceCmd(),
		newOptionsCmd(),
	)
	return root
}

func engine() *valuation.Engine {
	if seed != 0 {
		return valuation.New(valuation.WithSource(valuation.NewSeededSource(seed)))
	}
	return valuation.New()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
