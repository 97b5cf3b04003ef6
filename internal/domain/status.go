package domain

import "strings"

// Status describes where a task is in its lifecycle.
type Status string

// Available task statuses.
const (
	Open       = Status("open")
	InProgress = Status("in_progress")
	Done       = Status("done")
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case Open, InProgress, Done:
		return true
	}
	return false
}

// Label is the human readable form of s.
func (s Status) Label() string {
	switch s {
	case Open:
		return "Open"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	}
	return string(s)
}

func (s Status) rank() int {
	switch s {
	case Open:
		return 0
	case InProgress:
		return 1
	case Done:
		return 2
	}
	return 3
}

// ParseStatus accepts the stored value or the label, in any case, with
// "-" or " " in place of "_".
func ParseStatus(v string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(v))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	s := Status(norm)
	if !s.Valid() {
		return "", invalid("status", "unknown status %q", v)
	}
	return s, nil
}
