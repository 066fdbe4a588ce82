package quicch

import (
	"errors"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFatalNetError(t *testing.T) {
	require.False(t, isFatalNetError(nil))
	require.False(t, isFatalNetError(&net.OpError{Op: "read", Err: timeoutError{}}))

	require.True(t, isFatalNetError(errors.New("some error")))
	require.True(t, isFatalNetError(&net.OpError{Op: "write", Err: os.ErrClosed}))
	require.True(t, isFatalNetError(&net.OpError{Op: "write", Err: errors.New("connection refused")}))
}
