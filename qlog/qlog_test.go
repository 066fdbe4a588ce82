package qlog

import (
	"bytes"
	"encoding/json"
	"net"
	"testing"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/qerr"
	"github.com/quicch/quicch/logging"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func splitRecords(t *testing.T, data []byte) []map[string]interface{} {
	t.Helper()
	var records []map[string]interface{}
	for _, r := range bytes.Split(data, []byte{recordSeparator}) {
		if len(r) == 0 {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(r, &m))
		records = append(records, m)
	}
	return records
}

func TestTraceHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	odcid := protocol.ParseConnectionID([]byte{0xde, 0xad, 0xbe, 0xef})
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveServer, odcid)
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 1)
	hdr := records[0]
	require.Equal(t, "JSON-SEQ", hdr["qlog_format"])
	require.Equal(t, "0.3", hdr["qlog_version"])
	trace := hdr["trace"].(map[string]interface{})
	vp := trace["vantage_point"].(map[string]interface{})
	require.Equal(t, "server", vp["type"])
	cf := trace["common_fields"].(map[string]interface{})
	require.Equal(t, "deadbeef", cf["ODCID"])
	require.Equal(t, "relative", cf["time_format"])
}

func TestConnectionStateEvents(t *testing.T) {
	buf := &bytes.Buffer{}
	odcid := protocol.ParseConnectionID([]byte{1, 2, 3, 4})
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient, odcid)
	tracer.StartedConnection(
		&net.UDPAddr{IP: net.IPv4(192, 168, 13, 37), Port: 42},
		&net.UDPAddr{IP: net.IPv4(192, 168, 12, 34), Port: 24},
		protocol.ParseConnectionID([]byte{1, 2, 3, 4}),
		protocol.ParseConnectionID([]byte{5, 6, 7, 8}),
	)
	tracer.UpdatedConnectionState(logging.ConnectionStateActive)
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 3)

	started := records[1]
	require.Equal(t, "transport:connection_started", started["name"])
	data := started["data"].(map[string]interface{})
	require.Equal(t, "01020304", data["src_cid"])
	require.Equal(t, "05060708", data["dst_cid"])

	updated := records[2]
	require.Equal(t, "transport:connection_state_updated", updated["name"])
	require.Equal(t, "active", updated["data"].(map[string]interface{})["new"])
}

func TestConnectionClosedTransportError(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient, protocol.ConnectionID{})
	tracer.ClosedConnection(&qerr.TransportError{
		Remote:       true,
		ErrorCode:    qerr.FlowControlError,
		ErrorMessage: "exceeded stream limit",
	})
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 2)
	ev := records[1]
	require.Equal(t, "transport:connection_closed", ev["name"])
	data := ev["data"].(map[string]interface{})
	require.Equal(t, "remote", data["owner"])
	require.Equal(t, "FLOW_CONTROL_ERROR", data["connection_code"])
	require.Equal(t, "exceeded stream limit", data["reason"])
}

func TestConnectionClosedApplicationError(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient, protocol.ConnectionID{})
	tracer.ClosedConnection(&qerr.ApplicationError{
		ErrorCode:    0x42,
		ErrorMessage: "bye",
	})
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 2)
	data := records[1]["data"].(map[string]interface{})
	require.Equal(t, "local", data["owner"])
	require.Equal(t, float64(0x42), data["application_code"])
	require.Equal(t, "bye", data["reason"])
}

func TestConnectionClosedIdleTimeout(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient, protocol.ConnectionID{})
	tracer.ClosedConnection(&qerr.IdleTimeoutError{})
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 2)
	data := records[1]["data"].(map[string]interface{})
	require.Equal(t, "idle_timeout", data["trigger"])
}

func TestKeyUpdates(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveServer, protocol.ConnectionID{})
	tracer.UpdatedKey(1, false)
	tracer.UpdatedKey(2, true)
	tracer.Close()

	records := splitRecords(t, buf.Bytes())
	require.Len(t, records, 3)

	local := records[1]
	require.Equal(t, "security:key_updated", local["name"])
	data := local["data"].(map[string]interface{})
	require.Equal(t, "local_update", data["trigger"])
	require.Equal(t, float64(1), data["generation"])

	remote := records[2]["data"].(map[string]interface{})
	require.Equal(t, "remote_update", remote["trigger"])
	require.Equal(t, float64(2), remote["generation"])
}
