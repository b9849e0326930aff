// Package resub runs the read, shift and write pipeline over subtitle files.
package resub

import (
	"context"
	"errors"
	"strings"

	"github.com/ojji/Resub/internal/charset"
	"github.com/ojji/Resub/internal/fileutil"
	"github.com/ojji/Resub/internal/logging"
	"github.com/ojji/Resub/internal/subtitle"
)

// Options is the validated configuration of a single run.
type Options struct {
	InputPath     string
	InputEncoding string
	OutputPath    string
	OffsetMillis  int
	FlushTrailing bool
}

// Validate checks that the options describe a runnable job.
func (o Options) Validate() error {
	if strings.TrimSpace(o.InputPath) == "" {
		return errors.New("input path is required")
	}
	if strings.TrimSpace(o.OutputPath) == "" {
		return errors.New("output path is required")
	}
	if _, err := charset.Lookup(o.InputEncoding); err != nil {
		return err
	}
	return nil
}

// Summary describes a completed run.
type Summary struct {
	Records      int
	Encoding     string
	FirstBefore  subtitle.Timestamp
	FirstAfter   subtitle.Timestamp
	LastBefore   subtitle.Timestamp
	LastAfter    subtitle.Timestamp
	DroppedLines int
	OffsetMillis int
	OutputPath   string
	Replaced     bool // OutputPath existed before the run
}

// Run reads the input file, shifts every record and writes the output
// file. Nothing is written unless reading and shifting both succeed.
func Run(ctx context.Context, opts Options, logger *logging.Logger) (*Summary, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	enc, err := charset.Lookup(opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Reading subtitles",
		"input", opts.InputPath,
		"encoding", enc.Name,
	)

	file, err := subtitle.Open(opts.InputPath, subtitle.OpenOptions{
		Encoding:      enc,
		FlushTrailing: opts.FlushTrailing,
	})
	if err != nil {
		return nil, err
	}

	if len(file.Dropped) > 0 {
		logger.Warnw("Ignoring final block without a trailing blank line",
			"input", opts.InputPath,
			"lines", len(file.Dropped),
			"first_line", file.Dropped[0],
		)
	}

	summary := &Summary{
		Records:      len(file.Records),
		Encoding:     file.Encoding,
		DroppedLines: len(file.Dropped),
		OffsetMillis: opts.OffsetMillis,
		OutputPath:   opts.OutputPath,
	}
	if n := len(file.Records); n > 0 {
		summary.FirstBefore = file.Records[0].Start
		summary.LastBefore = file.Records[n-1].End
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debugw("Shifting subtitles",
		"records", len(file.Records),
		"offset_ms", opts.OffsetMillis,
	)
	if err := subtitle.Shift(file.Records, opts.OffsetMillis); err != nil {
		return nil, err
	}
	if n := len(file.Records); n > 0 {
		summary.FirstAfter = file.Records[0].Start
		summary.LastAfter = file.Records[n-1].End
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	replaced, err := fileutil.Exists(opts.OutputPath)
	if err != nil {
		return nil, &subtitle.IOError{Op: "stat", Path: opts.OutputPath, Err: err}
	}
	if replaced {
		logger.Warnw("Replacing existing output", "output", opts.OutputPath)
	}

	if err := subtitle.WriteFile(opts.OutputPath, file.Records); err != nil {
		return nil, err
	}
	summary.Replaced = replaced

	logger.Infow("Subtitles adjusted",
		"input", opts.InputPath,
		"output", opts.OutputPath,
		"records", len(file.Records),
		"offset_ms", opts.OffsetMillis,
	)
	return summary, nil
}
