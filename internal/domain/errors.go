package domain

import "fmt"

// ValidationError reports input that breaks a task rule, such as an empty
// title or a non-positive page size.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports a task id that is not in the repository.
type NotFoundError struct {
	ID TaskID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// DuplicateIDError reports an add for an id the repository already holds.
// Ids are minted by an IDProvider, so seeing this means the provider or the
// store is inconsistent.
type DuplicateIDError struct {
	ID TaskID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("task already exists: %s", e.ID)
}

// CorruptStoreError reports a persisted record that cannot be decoded.
// Line is 1-based and zero when the store is not line oriented.
type CorruptStoreError struct {
	Path string
	Line int
	Err  error
}

func (e *CorruptStoreError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt store %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt store %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
