// Command spellcli is a thin command-line front-end over spellkit.Engine:
// load a dictionary (and optionally a protected-terms file and a manifest)
// from disk, then query it with suggest, correct, stats, or
// healthcheck subcommands. Grounded on the cobra-based cmd/*/main.go layout
// in the retrieved SeamusWaldron-ehdc-llpg-address-matching repo.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/eskriett/spellkit"
)

var (
	dictionaryPath     string
	protectedTermsPath string
	manifestPath       string
	editDistance       int
	frequencyThreshold float64
	verbose            bool

	engine *spellkit.Engine
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spellcli",
		Short:         "Query a spellkit dictionary from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEngine()
		},
	}

	root.PersistentFlags().StringVar(&dictionaryPath, "dictionary", "", "path to the dictionary file (term<TAB>frequency per line)")
	root.PersistentFlags().StringVar(&protectedTermsPath, "protected-terms", "", "path to an optional protected-terms file")
	root.PersistentFlags().StringVar(&manifestPath, "manifest", "", "path to an optional JSON manifest")
	root.PersistentFlags().IntVar(&editDistance, "edit-distance", 1, "max edit distance the index is built with (1 or 2)")
	root.PersistentFlags().Float64Var(&frequencyThreshold, "frequency-threshold", 10.0, "frequency gate threshold/multiplier")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkPersistentFlagRequired("dictionary")

	root.AddCommand(newSuggestCmd(), newCorrectCmd(), newCorrectTokensCmd(), newStatsCmd(), newHealthcheckCmd())

	return root
}

func loadEngine() error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	logger, err := spellkit.NewConsoleLogger(level)
	if err != nil {
		return err
	}

	engine = spellkit.New(spellkit.WithLogger(logger))

	cfg := &spellkit.FileConfig{
		DictionaryPath:     dictionaryPath,
		ProtectedTermsPath: protectedTermsPath,
		ManifestPath:       manifestPath,
		EditDistance:       editDistance,
		FrequencyThreshold: frequencyThreshold,
	}

	return spellkit.LoadEngine(engine, cfg)
}

func newSuggestCmd() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Print ranked suggestions for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := engine.Suggest(args[0], max)
			if err != nil {
				return err
			}
			for _, s := range suggestions {
				fmt.Printf("%s\t%d\t%d\n", s.Term, s.Distance, s.Frequency)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 5, "maximum number of suggestions to return")
	return cmd
}

func newCorrectCmd() *cobra.Command {
	var guard bool

	cmd := &cobra.Command{
		Use:   "correct <word>",
		Short: "Correct a single word if it looks misspelled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrected, err := engine.CorrectIfUnknown(args[0], guard)
			if err != nil {
				return err
			}
			fmt.Println(corrected)
			return nil
		},
	}

	cmd.Flags().BoolVar(&guard, "guard", false, "respect the protected-terms policy")
	return cmd
}

func newCorrectTokensCmd() *cobra.Command {
	var guard bool

	cmd := &cobra.Command{
		Use:   "correct-tokens <word...>",
		Short: "Correct a whitespace-delimited list of tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrected, err := engine.CorrectTokens(args, guard)
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(corrected, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&guard, "guard", false, "respect the protected-terms policy")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print engine statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := engine.Stats()
			fmt.Printf("loaded=%t dictionary_size=%d edit_distance=%d load_id=%s manifest_version=%s loaded_at=%s\n",
				stats.Loaded, stats.DictionarySize, stats.EditDistance, stats.LoadID,
				stats.ManifestVersion, stats.LoadedAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	}
}

func newHealthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Exit non-zero if the engine is not loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.Healthcheck(); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}
