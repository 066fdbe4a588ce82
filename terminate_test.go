package quicch

import (
	"testing"

	"github.com/quicch/quicch/internal/qerr"

	"github.com/stretchr/testify/require"
)

func TestTerminateCauseErr(t *testing.T) {
	require.NoError(t, TerminateCause{}.Err())
	require.False(t, TerminateCause{}.IsSet())

	t.Run("local transport error", func(t *testing.T) {
		cause := TerminateCause{
			Origin:    OriginLocal,
			Space:     SpaceTransport,
			ErrorCode: uint64(qerr.ProtocolViolation),
			FrameType: 0x19,
			Reason:    "unexpected frame",
		}
		require.True(t, cause.IsSet())
		var transportErr *qerr.TransportError
		require.ErrorAs(t, cause.Err(), &transportErr)
		require.False(t, transportErr.Remote)
		require.Equal(t, qerr.ProtocolViolation, transportErr.ErrorCode)
		require.Equal(t, uint64(0x19), transportErr.FrameType)
		require.Equal(t, "unexpected frame", transportErr.ErrorMessage)
	})

	t.Run("remote application error", func(t *testing.T) {
		cause := TerminateCause{
			Origin:    OriginRemote,
			Space:     SpaceApplication,
			ErrorCode: 0x42,
			Reason:    "bye",
		}
		var appErr *qerr.ApplicationError
		require.ErrorAs(t, cause.Err(), &appErr)
		require.True(t, appErr.Remote)
		require.EqualValues(t, 0x42, appErr.ErrorCode)
	})
}

func TestTerminateCauseFrame(t *testing.T) {
	f := TerminateCause{
		Origin:    OriginLocal,
		Space:     SpaceTransport,
		ErrorCode: uint64(qerr.FrameEncodingError),
		FrameType: 0x6,
		Reason:    "malformed frame",
	}.frame()
	require.False(t, f.IsApplicationError)
	require.Equal(t, uint64(qerr.FrameEncodingError), f.ErrorCode)
	require.Equal(t, uint64(0x6), f.FrameType)
	require.Equal(t, "malformed frame", f.ReasonPhrase)

	f = TerminateCause{
		Origin:    OriginLocal,
		Space:     SpaceApplication,
		ErrorCode: 0x42,
	}.frame()
	require.True(t, f.IsApplicationError)
	require.Equal(t, uint64(0x42), f.ErrorCode)
}

func TestTerminateEnumStrings(t *testing.T) {
	require.Equal(t, "none", OriginNone.String())
	require.Equal(t, "local", OriginLocal.String())
	require.Equal(t, "remote", OriginRemote.String())
	require.Equal(t, "transport", SpaceTransport.String())
	require.Equal(t, "application", SpaceApplication.String())
}
