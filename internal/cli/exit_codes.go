package cli

// Exit codes follow the artifact command conventions:
//
//	0 - success
//	1 - validation failed or operation failed
//	3 - invalid arguments
//	4 - storage unavailable
const (
	ExitOK                 = 0
	ExitFailed             = 1
	ExitInvalidArgs        = 3
	ExitStorageUnavailable = 4
)

// exitError carries an exit code through cobra's RunE chain.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// ExitCode extracts the exit code for err: 0 for nil, the embedded code for
// an exitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return ExitFailed
}
