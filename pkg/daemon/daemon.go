// Package daemon forks long-running reconstruction jobs into the
// background: a full exhaustive sweep at block size 4 can occupy a
// machine for hours.
package daemon

import (
	"os"

	"github.com/sevlyar/go-daemon"
)

// WasReborn reports whether the current process is the daemonized child.
func WasReborn() bool {
	return daemon.WasReborn()
}

// UnsetMark clears the child marker once the child has identified itself.
func UnsetMark() {
	os.Unsetenv(daemon.MARK_NAME)
}

// Daemonize forks the process into the background. It returns a non-nil
// process in the parent (which should exit) and nil in the child, which
// continues with stdout/stderr redirected to logFile.
func Daemonize(pidFile, logFile string, args []string) (*os.Process, error) {
	if logFile == "" {
		logFile = os.DevNull
	}

	cntxt := &daemon.Context{
		PidFileName: pidFile,
		PidFilePerm: 0644,
		LogFileName: logFile,
		LogFilePerm: 0640,
		Umask:       027,
		Args:        args,
	}

	return cntxt.Reborn()
}
