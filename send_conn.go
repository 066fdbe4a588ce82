package quicch

import (
	"errors"
	"net"
)

// isFatalNetError classifies a transport I/O failure. Timeouts are transient:
// the datagram layer is lossy anyway and the operation can be retried. Every
// other failure (a closed socket, an unreachable host reported by the kernel)
// means no further packet exchange is possible on this path.
func isFatalNetError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}
	return true
}
