//go:build !unix

package connection

import "net"

func pollRead(nc net.Conn, buf []byte) (int, error) {
	return deadlineRead(nc, buf)
}
