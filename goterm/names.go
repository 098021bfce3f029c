package goterm

import (
	"context"
	"fmt"
	"io"

	gerrors "github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// nameRow is one line of a term description table.
type nameRow struct {
	Term string
	Text string
}

// ReadNameTable reads a two-column, tab-separated table of
// (term, English description) pairs.  Lines starting with '#' are skipped.
// A term listed twice keeps its last description.
func ReadNameTable(r io.Reader) (map[string]string, error) {
	tr := tsv.NewReader(r)
	tr.Comment = '#'
	names := map[string]string{}
	for line := 1; ; line++ {
		var row nameRow
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, gerrors.E(gerrors.Invalid, fmt.Sprintf("goterm.ReadNameTable: line %d", line), err)
		}
		names[row.Term] = row.Text
	}
	return names, nil
}

// ReadNames reads a term description table from path.
func ReadNames(ctx context.Context, path string) (names map[string]string, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.Wrapf(e, "close %s", path)
		}
	}()
	if names, err = ReadNameTable(in.Reader(ctx)); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	log.Debug.Printf("read %d term names from %s", len(names), path)
	return names, nil
}

// Lookup returns the description of t.  A term missing from names is a
// NotExist error.
func Lookup(names map[string]string, t string) (string, error) {
	text, ok := names[t]
	if !ok {
		return "", gerrors.E(gerrors.NotExist, fmt.Sprintf("goterm.Lookup: no description for term %s", t))
	}
	return text, nil
}
