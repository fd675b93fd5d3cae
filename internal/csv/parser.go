package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
)

// ErrFileNotFound is returned by Open when the named file does not exist.
var ErrFileNotFound = errors.New("csv file not found")

// Source streams the rows of one CSV file with a header line.
type Source struct {
	path    string
	file    *os.File
	decoder *csvutil.Decoder
}

// Open opens directory/name for row-by-row decoding. Columns missing from the
// header cause every Next call to fail; extra columns are ignored.
func Open(directory, name string) (*Source, error) {
	path := filepath.Join(directory, name)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	s := &Source{path: path, file: file}

	decoder, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		if errors.Is(err, io.EOF) {
			// no header, no rows
			return s, nil
		}
		file.Close()
		return nil, fmt.Errorf("failed to create CSV decoder for %s: %w", path, err)
	}
	decoder.DisallowMissingColumns = true
	s.decoder = decoder

	return s, nil
}

// Next decodes the next row into v, a pointer to a csv-tagged struct.
// It returns io.EOF after the last row.
func (s *Source) Next(v any) error {
	if s.decoder == nil {
		return io.EOF
	}
	if err := s.decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Close() error {
	return s.file.Close()
}
