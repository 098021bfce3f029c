package enrich

import (
	"github.com/grailbio/base/errors"
	pkgerrors "github.com/pkg/errors"
)

// Kind groups the errors returned by this module by who has to fix them.
type Kind int

const (
	// KindOther is an error not raised by this module, e.g. an I/O failure.
	KindOther Kind = iota
	// KindParse is malformed or missing input.
	KindParse
	// KindConfig is a conflict among options, or between options and input.
	KindConfig
	// KindInvariant is an internal consistency failure, usually caused by
	// unsorted input.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindConfig:
		return "configuration error"
	case KindInvariant:
		return "invariant violation"
	}
	return "error"
}

// ErrorKind classifies err.
func ErrorKind(err error) Kind {
	err = pkgerrors.Cause(err)
	switch {
	case err == nil:
		return KindOther
	case errors.Is(errors.Invalid, err), errors.Is(errors.NotExist, err):
		return KindParse
	case errors.Is(errors.Precondition, err):
		return KindConfig
	case errors.Is(errors.Integrity, err):
		return KindInvariant
	}
	return KindOther
}
