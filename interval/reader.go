package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
)

// maxLineLen bounds a single input line.  Gene rows can carry long GO term
// lists, so this is well above bufio.Scanner's default.
const maxLineLen = 16 << 20

// isHeaderLine reports whether curLine is a BED comment or browser/track
// line.
func isHeaderLine(curLine string) bool {
	return strings.HasPrefix(curLine, "#") ||
		strings.HasPrefix(curLine, "track") ||
		strings.HasPrefix(curLine, "browser")
}

// ReadRecords loads every record from a tab-delimited file with 3 to 6
// columns.  The column count is set by the first data line; every later line
// must have the same count.  name is only used in error messages.
func ReadRecords(reader io.Reader, name string) (records []Record, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64<<10), maxLineLen)

	lineIdx := 0
	nField := 0
	for scanner.Scan() {
		lineIdx++
		curLine := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(curLine) == "" || isHeaderLine(curLine) {
			continue
		}
		row := strings.Split(curLine, "\t")
		if nField == 0 {
			nField = len(row)
			if nField < 3 || nField > 6 {
				err = errors.E(errors.Invalid, fmt.Sprintf("interval.ReadRecords: %s has %d fields when it needs between 3 and 6", name, nField))
				return
			}
		}
		if len(row) != nField {
			err = errors.E(errors.Invalid, fmt.Sprintf("interval.ReadRecords: %s line %d has %d fields, expected %d", name, lineIdx, len(row), nField))
			return
		}
		var r Record
		if r, err = NewRecord(row); err != nil {
			err = errors.E(errors.Invalid, fmt.Sprintf("interval.ReadRecords: %s line %d", name, lineIdx), err)
			return
		}
		records = append(records, r)
	}
	if err = scanner.Err(); err != nil {
		err = errors.E(errors.Invalid, fmt.Sprintf("interval.ReadRecords: %s", name), err)
		return
	}
	log.Debug.Printf("%s: %d record(s) in %d column(s)", name, len(records), nField)
	return
}

// ReadFile is a wrapper for ReadRecords that takes a path instead of an
// io.Reader.  Gzipped files are decompressed.
func ReadFile(ctx context.Context, path string) (records []Record, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadRecords(reader, path)
}
