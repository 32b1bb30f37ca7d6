package geomerr

import (
	"errors"

	"github.com/sgostarter/i/commerr"
)

const (
	errorPrefix   = "GEOM ERROR: "
	warningPrefix = "GEOM WARNING: "
)

type Kind int

const (
	KindStructure Kind = iota
	KindType
	KindCoercion
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindType:
		return "type"
	case KindCoercion:
		return "coercion"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a fatal signal: the operation that raised it did not complete.
// The offending value, if any, travels with the error as Data.
type Error struct {
	kind Kind
	msg  string
	data any
}

func newError(kind Kind, msg string, data any) *Error {
	return &Error{
		kind: kind,
		msg:  msg,
		data: data,
	}
}

func NewStructureError(msg string, data any) *Error {
	return newError(KindStructure, msg, data)
}

func NewTypeError(msg string, data any) *Error {
	return newError(KindType, msg, data)
}

func NewCoercionError(msg string, data any) *Error {
	return newError(KindCoercion, msg, data)
}

func NewConfigError(msg string, data any) *Error {
	return newError(KindConfig, msg, data)
}

func (e *Error) Error() string {
	return errorPrefix + e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Data() any {
	return e.data
}

func (e *Error) Unwrap() error {
	if e.kind == KindConfig {
		return commerr.ErrNotFound
	}

	return commerr.ErrInvalidArgument
}

// Warning is an advisory signal: the operation may continue. It still
// implements error so it can travel through ordinary return paths.
type Warning struct {
	msg  string
	data any
}

func NewWarning(msg string, data any) *Warning {
	return &Warning{
		msg:  msg,
		data: data,
	}
}

func (w *Warning) Error() string {
	return warningPrefix + w.msg
}

func (w *Warning) Data() any {
	return w.data
}

func IsKind(err error, kind Kind) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind() == kind
	}

	return false
}

func IsStructure(err error) bool {
	return IsKind(err, KindStructure)
}

func IsType(err error) bool {
	return IsKind(err, KindType)
}

func IsCoercion(err error) bool {
	return IsKind(err, KindCoercion)
}

func IsConfig(err error) bool {
	return IsKind(err, KindConfig)
}

func IsWarning(err error) bool {
	var gw *Warning

	return errors.As(err, &gw)
}

// Data extracts the diagnostic payload from a signal, if err carries one.
func Data(err error) (any, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Data(), true
	}

	var gw *Warning
	if errors.As(err, &gw) {
		return gw.Data(), true
	}

	return nil, false
}
