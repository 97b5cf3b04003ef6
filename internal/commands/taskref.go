package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes/internal/domain"
	"notes/internal/service"
)

// ErrTaskRefRequired indicates no task id was provided.
var ErrTaskRefRequired = errors.New("task id required")

// ParseTaskRef returns the single task reference in args: a full id or a
// unique prefix of one.
func ParseTaskRef(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrTaskRefRequired
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected argument: %s", args[1])
	}
	ref := strings.TrimSpace(args[0])
	if ref == "" {
		return "", ErrTaskRefRequired
	}
	return ref, nil
}

// resolveTaskRef parses args and maps the reference to a stored id.
func resolveTaskRef(ctx context.Context, svc *service.TaskService, args []string) (domain.TaskID, error) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return "", &UsageError{Err: err}
	}
	return svc.ResolveID(ctx, ref)
}
