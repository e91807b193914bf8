package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/turing/cmds"
)

// Writer receives text logs. Traces go to stdout, so logs stay off it.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	// kept open for the life of the process
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		return os.Stderr
	}
	return f
}
