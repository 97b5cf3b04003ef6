package commands

import (
	"errors"
	"fmt"
	"io"

	"notes/internal/config"
	"notes/internal/domain"
	"notes/internal/exitcode"
)

// UsageError reports malformed command arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ReportError prints err as "error: <message>" and returns the matching
// exit code.
func ReportError(errOut io.Writer, err error) int {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		duplicate  *domain.DuplicateIDError
		corrupt    *domain.CorruptStoreError
		cfgErr     *config.Error
		usage      *UsageError
	)

	switch {
	case errors.As(err, &usage), errors.As(err, &validation), errors.As(err, &notFound):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.As(err, &duplicate):
		fmt.Fprintf(errOut, "error: internal error: %v\n", err)
		return exitcode.InternalError
	case errors.As(err, &corrupt):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	case errors.As(err, &cfgErr):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	default:
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
}
