package connection

import (
	"errors"
	"net"
	"os"
	"time"
)

// pollInterval bounds the fallback poll for conns without a raw descriptor.
const pollInterval = time.Millisecond

// deadlineRead polls nc with a very short read deadline. It returns (0, nil)
// when nothing is pending.
func deadlineRead(nc net.Conn, buf []byte) (int, error) {
	if err := nc.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
		return 0, err
	}
	n, err := nc.Read(buf)
	if n > 0 {
		return n, nil
	}
	if err == nil || errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, nil
	}
	return 0, err
}
