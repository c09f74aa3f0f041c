// Command random-show-themes picks a number of theme songs at random from a
// subset of a show dictionary and prints them as readable text, a table or
// CSV.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rjboas/random-show-themes/internal/catalog"
	"github.com/rjboas/random-show-themes/internal/config"
	"github.com/rjboas/random-show-themes/internal/logging"
	"github.com/rjboas/random-show-themes/internal/output"
	"github.com/rjboas/random-show-themes/internal/sampler"
)

var (
	// Input flags
	dictionaryPath string
	listPath       string
	hardFail       bool

	// Output format flags
	tableMode    bool
	readableMode bool
	csvMode      bool
	tableWidth   int

	// Logging flags
	verbosity int
	quiet     bool
	timestamp string
)

// errRunFailed signals a failure that was already reported through the
// logger; main exits 1 without printing it again.
var errRunFailed = errors.New("run failed")

var rootCmd = &cobra.Command{
	Use:   "random-show-themes [flags] <number>",
	Short: "Pick random theme songs from a subset of a show dictionary",
	Long: `Picks <number> theme songs at random from the shows in the list, looking
each show up in the dictionary. No show is picked twice in one run.

Note: the program is not guaranteed to output the number of results
requested if that is not possible with the provided inputs.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&dictionaryPath, "dictionary", "d", "", "The list of all known shows")
	flags.StringVarP(&listPath, "list", "l", "", "The subset of shows to choose from the dictionary")
	flags.BoolVar(&hardFail, "hard-fail", false, "Exit with exit code 1 on any error")
	rootCmd.MarkFlagRequired("dictionary")
	rootCmd.MarkFlagRequired("list")

	flags.BoolVarP(&tableMode, "table", "t", false, "Sets output to a formatted table")
	flags.BoolVar(&readableMode, "readable", false, "Sets output to human readable text (default)")
	flags.BoolVar(&csvMode, "csv", false, "Sets output to csv")
	flags.IntVar(&tableWidth, "table-width", 0, "The width of the rendered table (default: terminal width)")
	rootCmd.MarkFlagsMutuallyExclusive("table", "readable", "csv")

	flags.CountVarP(&verbosity, "verbose", "v", "Increase message verbosity")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Silence all output")
	flags.StringVar(&timestamp, "timestamp", "none", "Prepend log lines with a timestamp (none, sec, ms or ns)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	n, err := config.ParsePositiveInt(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q for 'number': %w", args[0], err)
	}
	if cmd.Flags().Changed("table-width") {
		if !tableMode {
			return errors.New("--table-width is only valid with --table")
		}
		if tableWidth <= 0 {
			return errors.New("invalid value for 'table-width': must be a positive, non-zero integer")
		}
	}

	cfg := config.Run{
		Results:    n,
		Dictionary: dictionaryPath,
		List:       listPath,
		HardFail:   hardFail,
		Mode:       outputMode(),
		TableWidth: tableWidth,
		Logging: logging.Config{
			Verbosity: verbosity,
			Quiet:     quiet,
			Timestamp: timestamp,
		},
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	failed, err := sampleThemes(cfg, log, newSink(cfg))
	if err != nil {
		return err
	}
	if failed && cfg.HardFail {
		return errRunFailed
	}
	return nil
}

func outputMode() config.Mode {
	switch {
	case tableMode:
		return config.ModeTable
	case csvMode:
		return config.ModeCSV
	default:
		return config.ModeReadable
	}
}

func newSink(cfg config.Run) output.Sink {
	switch cfg.Mode {
	case config.ModeTable:
		return output.NewTable(os.Stdout, cfg.TableWidth)
	case config.ModeCSV:
		return output.NewCSV(os.Stdout)
	default:
		return output.NewReadable(os.Stdout)
	}
}

// sampleThemes is the run entry point. The returned flag reports soft
// failures, which have already been logged; whether they become a non-zero
// exit code is the caller's call via hard-fail. The error return is
// reserved for input files that cannot be loaded at all.
func sampleThemes(cfg config.Run, log *zap.Logger, sink output.Sink) (failed bool, err error) {
	dictionary, err := catalog.LoadShows(cfg.Dictionary)
	if err != nil {
		return true, err
	}
	list, err := catalog.LoadList(cfg.List)
	if err != nil {
		return true, err
	}

	if len(dictionary) == 0 {
		log.Error("dictionary cannot be empty")
		return true, nil
	}
	if len(list) == 0 {
		log.Error("list cannot be empty")
		return true, nil
	}

	target := cfg.Results
	if distinct := sampler.Distinct(list); distinct < target {
		log.Error("more results were requested than the list contains",
			zap.Int("requested", target),
			zap.Int("distinct_entries", distinct))
		if cfg.HardFail {
			return true, nil
		}
		log.Info("requesting fewer results instead", zap.Int("results", distinct))
		target = distinct
	}

	if err := sink.Open(); err != nil {
		log.Error("failed to write output header", zap.Error(err))
		return true, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	res := sampler.New(rng, log).Sample(target, list, dictionary, sink)
	if res.Failed() {
		failed = true
	}

	if err := sink.Close(); err != nil {
		log.Error("failed to render output", zap.Error(err))
		failed = true
	}
	return failed, nil
}
