// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, validation, not found,
	// ambiguous id).
	UserError = 1

	// ConfigError indicates an unreadable config file, bad environment
	// override or unknown store name.
	ConfigError = 2

	// StoreError indicates a corrupt or unreadable store.
	StoreError = 3

	// InternalError indicates an inconsistency such as a duplicate id.
	InternalError = 4
)
