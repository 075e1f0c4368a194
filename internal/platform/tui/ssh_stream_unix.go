//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package tui

import (
	"io"

	"github.com/charmbracelet/ssh"
)

// sessionStreams returns the input and output a session's program should
// use: the allocated pty when there is one, the channel itself otherwise.
func sessionStreams(sess ssh.Session) (io.Reader, io.Writer) {
	pty, _, ok := sess.Pty()
	if !ok || sess.EmulatedPty() || pty.Slave == nil {
		return sess, sess
	}
	return pty.Slave, pty.Slave
}
