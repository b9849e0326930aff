package cli

import (
	"fmt"

	"github.com/ojji/Resub/internal/charset"
	"github.com/ojji/Resub/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "List the entries of a subtitle file",
	Long: `Parse a SubRip file with the same rules used when shifting it and print
its entries as a table. Use it to check a file before adjusting it.

Examples:
  resub inspect movie.srt
  resub inspect movie.srt --input-encoding utf-8 --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntP("limit", "n", 0, "Show at most this many entries (0 shows all)")
	inspectCmd.Flags().
		Bool("flush-trailing", false, "Also parse a final block that is not followed by a blank line")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	enc, err := charset.Lookup(inputEncoding(cmd))
	if err != nil {
		return err
	}

	flushTrailing := cfg != nil && cfg.FlushTrailingBlock
	if cmd.Flags().Changed("flush-trailing") {
		flushTrailing, _ = cmd.Flags().GetBool("flush-trailing")
	}

	file, err := subtitle.Open(path, subtitle.OpenOptions{
		Encoding:      enc,
		FlushTrailing: flushTrailing,
	})
	if err != nil {
		return err
	}

	logger.Debugw("Parsed subtitle file",
		"path", path,
		"encoding", file.Encoding,
		"records", len(file.Records),
	)

	records := file.Records
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, recordTable(records))
	fmt.Fprintf(out, "%d entries (%s)\n", len(file.Records), file.Encoding)
	if len(file.Dropped) > 0 {
		fmt.Fprintf(out, "Ignored %d trailing line(s) without a closing blank line\n", len(file.Dropped))
	}
	return nil
}
