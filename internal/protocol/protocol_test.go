package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerspectiveOpposite(t *testing.T) {
	require.Equal(t, PerspectiveServer, PerspectiveClient.Opposite())
	require.Equal(t, PerspectiveClient, PerspectiveServer.Opposite())
}

func TestPerspectiveStringer(t *testing.T) {
	require.Equal(t, "client", PerspectiveClient.String())
	require.Equal(t, "server", PerspectiveServer.String())
	require.Equal(t, "invalid perspective", Perspective(0).String())
}

func TestConnectionID(t *testing.T) {
	c := ParseConnectionID([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.Equal(t, 8, c.Len())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, c.Bytes())
	require.Equal(t, "0102030405060708", c.String())
	require.Equal(t, "(empty)", ConnectionID{}.String())
	require.Panics(t, func() { ParseConnectionID(make([]byte, 21)) })
}

func TestGenerateConnectionID(t *testing.T) {
	c, err := GenerateConnectionID(10)
	require.NoError(t, err)
	require.Equal(t, 10, c.Len())

	c, err = GenerateConnectionIDForInitial()
	require.NoError(t, err)
	require.GreaterOrEqual(t, c.Len(), MinConnectionIDLenInitial)
	require.LessOrEqual(t, c.Len(), 20)
}

func TestKeyPhaseBit(t *testing.T) {
	require.Equal(t, KeyPhaseZero, KeyPhase(0).Bit())
	require.Equal(t, KeyPhaseOne, KeyPhase(1).Bit())
	require.Equal(t, KeyPhaseZero, KeyPhase(2).Bit())
	require.Equal(t, "0", KeyPhaseZero.String())
	require.Equal(t, "1", KeyPhaseOne.String())
	require.Equal(t, "undefined", KeyPhaseUndefined.String())
}

func TestStreamTypeStringer(t *testing.T) {
	require.Equal(t, "uni", StreamTypeUni.String())
	require.Equal(t, "bidi", StreamTypeBidi.String())
}
