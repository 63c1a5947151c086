package watermarker

import "errors"

// ErrorKind identifies why a watermark could not be applied. A kind is
// itself an error, so callers can write errors.Is(err, ErrInvalidAngle).
type ErrorKind int

const (
	ErrNoWatermark ErrorKind = iota + 1
	ErrMissingInputFilePath
	ErrInvalidPosition
	ErrInvalidAngle
	ErrMissingInputFile
	ErrInvalidInputFile
	ErrImageInfo
)

var kindNames = map[ErrorKind]string{
	ErrNoWatermark:          "NoWatermark",
	ErrMissingInputFilePath: "MissingInputFilePath",
	ErrInvalidPosition:      "InvalidPosition",
	ErrInvalidAngle:         "InvalidAngle",
	ErrMissingInputFile:     "MissingInputFile",
	ErrInvalidInputFile:     "InvalidInputFile",
	ErrImageInfo:            "ImageInfoError",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownError"
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is returned for every failure except the render step itself.
// Its message is the kind's name; the cause, if any, is kept in Err.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// KindOf reports the kind carried by err, if err wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
