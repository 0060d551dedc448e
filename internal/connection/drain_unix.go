//go:build unix

package connection

import (
	"io"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// pollRead reads whatever is already queued on the socket without waiting.
// It returns (0, nil) when nothing is pending and io.EOF once the peer has
// closed the stream.
func pollRead(nc net.Conn, buf []byte) (int, error) {
	sc, ok := nc.(syscall.Conn)
	if !ok {
		return deadlineRead(nc, buf)
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return deadlineRead(nc, buf)
	}

	var (
		n    int
		rerr error
	)
	err = rc.Read(func(fd uintptr) bool {
		n, rerr = unix.Read(int(fd), buf)
		// Report done even on EAGAIN so the runtime never parks us.
		return true
	})
	if err != nil {
		return 0, err
	}

	switch {
	case rerr == unix.EAGAIN || rerr == unix.EWOULDBLOCK || rerr == unix.EINTR:
		return 0, nil
	case rerr != nil:
		return 0, rerr
	case n == 0:
		return 0, io.EOF
	}
	return n, nil
}
