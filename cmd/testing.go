package cmd

import (
	"bytes"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// TestExecute runs command with args and returns everything it printed,
// stdout and stderr combined, together with the error of the command.
//
// Commands have to print through cmd.OutOrStdout and cmd.ErrOrStderr,
// output written to os.Stdout directly is not captured.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &lockedBuffer{}
	command.SetOut(out)
	command.SetErr(out)

	// cobra falls back to os.Args, if args is nil
	if args == nil {
		args = []string{}
	}

	command.SetArgs(args)

	err := command.Execute()

	return out.String(), err //nolint:wrapcheck // return the command's error as is
}

// lockedBuffer allows a command to write from several goroutines, e.g. a server.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p) //nolint:wrapcheck // bytes.Buffer never fails
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
