package subtitle

import (
	"errors"
	"io"
	"os"

	"github.com/ojji/Resub/internal/charset"
	"github.com/ojji/Resub/internal/fileutil"
)

// File is a parsed subtitle file.
type File struct {
	Path     string
	Encoding string
	Records  []*Record
	// Dropped holds an unterminated final block that was not parsed.
	Dropped []string
}

// OpenOptions controls how a file is read.
type OpenOptions struct {
	Encoding      *charset.Encoding // nil means charset.Default
	FlushTrailing bool
}

// Open reads and parses the file at path.
func Open(path string, opts OpenOptions) (*File, error) {
	enc := opts.Encoding
	if enc == nil {
		enc = charset.MustLookup(charset.Default)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	reader := NewReader(enc.NewReader(f))
	reader.FlushTrailing = opts.FlushTrailing
	records, err := reader.ReadAll()
	if err != nil {
		return nil, withPath(err, path)
	}

	return &File{
		Path:     path,
		Encoding: enc.Name,
		Records:  records,
		Dropped:  reader.Dropped(),
	}, nil
}

// WriteFile writes records to path as UTF-8, replacing any existing file
// only once every record has been written.
func WriteFile(path string, records []*Record) error {
	err := fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return NewWriter(w).WriteAll(records)
	})
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return withPath(err, path)
		}
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func withPath(err error, path string) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = path
	}
	return err
}
