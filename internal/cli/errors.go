package cli

// Process exit codes.
const (
	ExitOK       = 0 // solved, including "does not exist"
	ExitOpenFile = 1 // input file could not be opened
	ExitUsage    = 2 // bad flags, config or input data
)

// ExitError carries a process exit code alongside the message shown on stderr.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
