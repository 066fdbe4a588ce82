package quicch

import (
	"errors"
	"fmt"

	"github.com/quicch/quicch/internal/protocol"
	"github.com/quicch/quicch/internal/utils"
)

var (
	// errTooManyOpenStreams is returned by OpenLocal when the peer-imposed
	// stream limit or the 62-bit identifier space is exhausted.
	errTooManyOpenStreams = errors.New("too many open streams")
	// errStreamLimitViolated is returned by AcceptRemote when the peer opens
	// more streams than it was allowed to. The caller is expected to escalate
	// this to a STREAM_LIMIT_ERROR protocol error.
	errStreamLimitViolated = errors.New("peer exceeded stream limit")
	// errInvalidStreamID is returned by AcceptRemote for a stream ID whose
	// initiator bit does not denote a peer-initiated stream. The caller is
	// expected to escalate this to a STREAM_STATE_ERROR protocol error.
	errInvalidStreamID = errors.New("invalid stream ID")
)

// The StreamMap owns every stream of a connection. It allocates identifiers
// for locally initiated streams, validates identifiers of remotely initiated
// ones, and holds the acceptance queue the application layer pops newly
// accepted streams from.
//
// The map is exclusively owned by its channel and shares the channel mutex:
// every method requires the channel mutex to be held.
type StreamMap struct {
	perspective protocol.Perspective
	logger      utils.Logger

	streams map[protocol.StreamID]*Stream

	numOutgoingBidi protocol.StreamNum
	numOutgoingUni  protocol.StreamNum
	maxOutgoingBidi protocol.StreamNum
	maxOutgoingUni  protocol.StreamNum

	numIncomingBidi protocol.StreamNum
	numIncomingUni  protocol.StreamNum
	maxIncomingBidi protocol.StreamNum
	maxIncomingUni  protocol.StreamNum

	acceptQueue []*Stream

	autoReject          bool
	autoRejectErrorCode uint64
}

func newStreamMap(
	perspective protocol.Perspective,
	maxIncomingBidi, maxIncomingUni protocol.StreamNum,
	logger utils.Logger,
) *StreamMap {
	return &StreamMap{
		perspective: perspective,
		streams:     make(map[protocol.StreamID]*Stream),
		// Outgoing limits are imposed by the peer via transport parameters
		// and MAX_STREAMS frames. Until the flow control layer updates them,
		// the whole stream number space is available.
		maxOutgoingBidi: protocol.MaxStreamNum,
		maxOutgoingUni:  protocol.MaxStreamNum,
		maxIncomingBidi: maxIncomingBidi,
		maxIncomingUni:  maxIncomingUni,
		logger:          logger,
	}
}

// OpenLocal creates a new locally initiated stream of the given type,
// choosing the next legal stream ID for this endpoint's role.
func (m *StreamMap) OpenLocal(stype protocol.StreamType) (*Stream, error) {
	var num protocol.StreamNum
	switch stype {
	case protocol.StreamTypeBidi:
		if m.numOutgoingBidi+1 > m.maxOutgoingBidi {
			return nil, errTooManyOpenStreams
		}
		m.numOutgoingBidi++
		num = m.numOutgoingBidi
	case protocol.StreamTypeUni:
		if m.numOutgoingUni+1 > m.maxOutgoingUni {
			return nil, errTooManyOpenStreams
		}
		m.numOutgoingUni++
		num = m.numOutgoingUni
	}
	id := num.StreamID(stype, m.perspective)
	s := &Stream{id: id}
	m.streams[id] = s
	if m.logger.Debug() {
		m.logger.Debugf("Opened %s stream %d", stype, id)
	}
	return s, nil
}

// AcceptRemote registers a remotely initiated stream and places it on the
// acceptance queue. The stream ID is used to confirm the initiator and
// determine the stream type. Admission failures are reported to the caller,
// never escalated to a protocol error here.
func (m *StreamMap) AcceptRemote(id protocol.StreamID) (*Stream, error) {
	if id.InitiatedBy() != m.perspective.Opposite() {
		return nil, errInvalidStreamID
	}
	if _, ok := m.streams[id]; ok {
		return nil, fmt.Errorf("stream %d already exists", id)
	}
	num := id.StreamNum()
	switch id.Type() {
	case protocol.StreamTypeBidi:
		if num > m.maxIncomingBidi {
			return nil, errStreamLimitViolated
		}
		if num > m.numIncomingBidi {
			m.numIncomingBidi = num
		}
	case protocol.StreamTypeUni:
		if num > m.maxIncomingUni {
			return nil, errStreamLimitViolated
		}
		if num > m.numIncomingUni {
			m.numIncomingUni = num
		}
	}
	s := &Stream{id: id}
	m.streams[id] = s
	if m.autoReject {
		m.Reject(s)
	}
	m.acceptQueue = append(m.acceptQueue, s)
	if m.logger.Debug() {
		m.logger.Debugf("Accepted peer-initiated %s stream %d", id.Type(), id)
	}
	return s, nil
}

// Get returns an existing stream by ID, or nil if the stream is not live.
func (m *StreamMap) Get(id protocol.StreamID) *Stream {
	return m.streams[id]
}

// Delete removes a fully closed stream from the map, reclaiming its ID.
func (m *StreamMap) Delete(id protocol.StreamID) error {
	if _, ok := m.streams[id]; !ok {
		return fmt.Errorf("tried to delete unknown stream %d", id)
	}
	delete(m.streams, id)
	return nil
}

// PopAccepted removes and returns the next stream from the acceptance queue.
func (m *StreamMap) PopAccepted() (*Stream, bool) {
	if len(m.acceptQueue) == 0 {
		return nil, false
	}
	s := m.acceptQueue[0]
	m.acceptQueue = m.acceptQueue[1:]
	return s, true
}

// SetAutoReject configures incoming stream auto-rejection. While enabled,
// newly accepted remote streams have both halves rejected at acceptance time
// using the given application error code.
func (m *StreamMap) SetAutoReject(enable bool, errorCode uint64) {
	m.autoReject = enable
	m.autoRejectErrorCode = errorCode
}

// Reject rejects the sending and receiving parts of a stream, as though it
// had been auto-rejected. It can be applied to a stream that was accepted
// before the auto-reject policy was enabled.
func (m *StreamMap) Reject(s *Stream) {
	s.Reset(m.autoRejectErrorCode)
	s.StopSending(m.autoRejectErrorCode)
}

// SetMaxOutgoingStreams sets the peer-imposed limits on locally initiated
// streams, as advertised in the peer's transport parameters or a MAX_STREAMS
// frame. Streams already opened stay open even if the new limit is lower.
func (m *StreamMap) SetMaxOutgoingStreams(bidi, uni protocol.StreamNum) {
	m.maxOutgoingBidi = bidi
	m.maxOutgoingUni = uni
}

// Len returns the number of live streams.
func (m *StreamMap) Len() int { return len(m.streams) }

func (m *StreamMap) close() {
	m.streams = nil
	m.acceptQueue = nil
}
