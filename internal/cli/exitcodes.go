package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/fsutil"
	"github.com/yaklabco/triviakit/pkg/listedit"
	"github.com/yaklabco/triviakit/pkg/runner"
)

// Exit codes for triviakit.
const (
	ExitSuccess = 0

	// ExitChangesNeeded means --check found files that would change.
	ExitChangesNeeded = 1

	// ExitNotApplicable means a targeted edit or selection found nothing at
	// the given position.
	ExitNotApplicable = 3

	ExitInvalidUsage  = 64
	ExitConfigError   = 65
	ExitInternalError = 70
	ExitIOError       = 74
)

// Errors that select an exit code.
var (
	// ErrChangesNeeded is returned by --check runs that found changes. It is
	// a signal, not a failure, and is not logged.
	ErrChangesNeeded = errors.New("changes needed")

	ErrInvalidUsage = errors.New("invalid usage")
	ErrConfig       = errors.New("configuration error")

	// ErrFilesFailed means at least one file could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var fieldErr *config.FieldError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesNeeded):
		return ExitChangesNeeded
	case errors.Is(err, listedit.ErrNotApplicable):
		return ExitNotApplicable
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &fieldErr):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ShouldLog reports whether main should log err. Signals are not logged.
func ShouldLog(err error) bool {
	return err != nil && !errors.Is(err, ErrChangesNeeded)
}

// resultError converts a run result into the command's error.
func resultError(result *runner.Result, check bool) error {
	switch {
	case result.HasErrors():
		return ErrFilesFailed
	case check && result.HasChanges():
		return ErrChangesNeeded
	default:
		return nil
	}
}
