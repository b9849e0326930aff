package cli

import (
	"errors"
	"fmt"

	"github.com/ojji/Resub/internal/config"
	"github.com/ojji/Resub/internal/logging"
	"github.com/ojji/Resub/internal/resub"
	"github.com/ojji/Resub/internal/subtitle"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resub -i INPUT --offset OFFSET -o OUTPUT",
	Short: "Shift every timestamp of a SubRip subtitle file",
	Long: `Resub moves every timestamp of a SubRip (.srt) subtitle file by a fixed
offset and writes the result as UTF-8 to a new file.

The offset is written as [+-][Nh][Nm][Ns][Nms], for example +1h1m1s1ms,
-2s or +250ms. The input encoding defaults to windows-1252 and can be set
with --input-encoding or in the config file.

Examples:
  resub -i movie.srt --offset +1s500ms -o movie.synced.srt
  resub -i movie.srt --offset=-2m -o out.srt --input-encoding iso-8859-2
  resub inspect movie.srt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.NoArgs(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, _, _, err := config.Load(configPath)
		if err != nil {
			return &setupError{err}
		}
		if err := loaded.Validate(); err != nil {
			return &setupError{fmt.Errorf("config: %w", err)}
		}
		cfg = loaded

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
		if err != nil {
			return &setupError{err}
		}
		return nil
	},
	RunE: runShift,
}

// usageError marks command line mistakes that should print the usage.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// setupError marks failures that happen before any subtitle work starts.
type setupError struct{ err error }

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// Execute runs the command line and reports a failure as a single line.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", uerr.err, cmd.UsageString())
		return err
	}
	var serr *setupError
	if errors.As(err, &serr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", serr.err)
		return err
	}
	prefix := "Error"
	if cmd == rootCmd {
		prefix = "Error adjusting"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%v)\n", prefix, subtitle.Kind(err), err)
	return err
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default $RESUB_CONFIG or ~/.config/resub/config.toml)")
	rootCmd.PersistentFlags().
		StringP("input-encoding", "e", "", "Input text encoding, e.g. windows-1252, utf-8, iso-8859-2")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	rootCmd.Flags().StringP("input", "i", "", "Input subtitle file (required)")
	rootCmd.Flags().String("offset", "", "Offset to apply, e.g. +1h1m1s1ms or -250ms (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output subtitle file (required)")
	rootCmd.Flags().
		Bool("flush-trailing", false, "Also parse a final block that is not followed by a blank line")
}

// shiftOptions builds the pipeline options from flags over config.
func shiftOptions(cmd *cobra.Command) (resub.Options, error) {
	input, _ := cmd.Flags().GetString("input")
	offsetStr, _ := cmd.Flags().GetString("offset")
	output, _ := cmd.Flags().GetString("output")
	encoding := inputEncoding(cmd)

	flushTrailing := cfg != nil && cfg.FlushTrailingBlock
	if cmd.Flags().Changed("flush-trailing") {
		flushTrailing, _ = cmd.Flags().GetBool("flush-trailing")
	}

	if input == "" {
		return resub.Options{}, &usageError{errors.New("missing input file (-i)")}
	}
	if offsetStr == "" {
		return resub.Options{}, &usageError{errors.New("missing offset (--offset)")}
	}
	if output == "" {
		return resub.Options{}, &usageError{errors.New("missing output file (-o)")}
	}
	offset, err := parseOffset(offsetStr)
	if err != nil {
		return resub.Options{}, &usageError{err}
	}

	opts := resub.Options{
		InputPath:     input,
		InputEncoding: encoding,
		OutputPath:    output,
		OffsetMillis:  offset,
		FlushTrailing: flushTrailing,
	}
	if err := opts.Validate(); err != nil {
		return resub.Options{}, &usageError{err}
	}
	return opts, nil
}

func inputEncoding(cmd *cobra.Command) string {
	encoding, _ := cmd.Flags().GetString("input-encoding")
	if encoding == "" && cfg != nil {
		encoding = cfg.InputEncoding
	}
	return encoding
}

func runShift(cmd *cobra.Command, args []string) error {
	if cmd.Flags().NFlag() == 0 {
		return cmd.Help()
	}

	opts, err := shiftOptions(cmd)
	if err != nil {
		return err
	}

	logger.Infow("Adjusting subtitles",
		"input", opts.InputPath,
		"output", opts.OutputPath,
		"offset_ms", opts.OffsetMillis,
		"encoding", opts.InputEncoding,
	)

	summary, err := resub.Run(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles adjusted: %s\n", summary.OutputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", summary.Records)
	if summary.Records > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  First: %s -> %s\n", summary.FirstBefore, summary.FirstAfter)
		fmt.Fprintf(cmd.OutOrStdout(), "  Last:  %s -> %s\n", summary.LastBefore, summary.LastAfter)
	}
	return nil
}
