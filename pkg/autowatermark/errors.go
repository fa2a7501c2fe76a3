package autowatermark

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError reports bad or missing paths and a missing or conflicting watermark source.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *ValidationError) Unwrap() error { return e.Err }

// ConversionError reports that the docx template could not be turned into a pdf.
type ConversionError struct {
	Op  string
	Err error
}

func (e *ConversionError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *ConversionError) Unwrap() error { return e.Err }

// IOError reports an unreadable input or an unwritable output.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// LibraryError reports that pdfcpu rejected a document.
type LibraryError struct {
	Op  string
	Err error
}

func (e *LibraryError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *LibraryError) Unwrap() error { return e.Err }

func validationErrorf(op, format string, args ...interface{}) error {
	return errors.WithStack(&ValidationError{Op: op, Err: errors.Errorf(format, args...)})
}

func wrapValidation(op string, err error) error {
	return errors.WithStack(&ValidationError{Op: op, Err: err})
}

func wrapConversion(op string, err error) error {
	return errors.WithStack(&ConversionError{Op: op, Err: err})
}

func wrapIO(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

func wrapLibrary(op string, err error) error {
	return errors.WithStack(&LibraryError{Op: op, Err: err})
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConversionError(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}

func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

func IsLibraryError(err error) bool {
	var target *LibraryError
	return errors.As(err, &target)
}

// Exit codes used by the front ends.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitConversion = 3
)

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsValidationError(err):
		return ExitValidation
	case IsConversionError(err):
		return ExitConversion
	default:
		return ExitFailure
	}
}
