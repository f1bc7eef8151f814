package gateways

import (
	"bufio"
	"bytes"
	"errors"
	"gwswitch/domain/switching"
	"io/fs"
	"os"
)

type reader struct {
	path string
}

func newReader(path string) *reader {
	return &reader{
		path: path,
	}
}

// readLines maps a missing file to ConfigAbsentError and every other I/O
// failure to ConfigUnreadableError.
func (r *reader) readLines() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &switching.ConfigAbsentError{Path: r.path}
		}
		return nil, &switching.ConfigUnreadableError{Path: r.path, Err: err}
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &switching.ConfigUnreadableError{Path: r.path, Err: err}
	}
	return lines, nil
}
