//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package tui

import (
	"io"

	"github.com/charmbracelet/ssh"
)

// sessionStreams returns the session channel for both directions.
func sessionStreams(sess ssh.Session) (io.Reader, io.Writer) {
	return sess, sess
}
