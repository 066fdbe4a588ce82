package protocol

// A StreamID in QUIC
type StreamID int64

// InvalidStreamID is an invalid stream ID.
const InvalidStreamID StreamID = -1

// MaxStreamID is the highest stream ID that can be encoded as a varint.
const MaxStreamID StreamID = 1<<62 - 1

// StreamNum returns how many streams in total are below this
// stream number, for this stream type.
func (s StreamID) StreamNum() StreamNum {
	return StreamNum(s/4) + 1
}

// InitiatedBy says if the stream was initiated by the client or by the server
func (s StreamID) InitiatedBy() Perspective {
	if s%2 == 0 {
		return PerspectiveClient
	}
	return PerspectiveServer
}

// Type says if this is a unidirectional or bidirectional stream
func (s StreamID) Type() StreamType {
	if s%4 >= 2 {
		return StreamTypeUni
	}
	return StreamTypeBidi
}

// FirstOutgoingBidiStream is the first bidirectional stream opened from this perspective.
func FirstOutgoingBidiStream(pers Perspective) StreamID {
	if pers == PerspectiveServer {
		return 1
	}
	return 0
}

// FirstOutgoingUniStream is the first unidirectional stream opened from this perspective.
func FirstOutgoingUniStream(pers Perspective) StreamID {
	if pers == PerspectiveServer {
		return 3
	}
	return 2
}

// FirstIncomingBidiStream is the first bidirectional stream opened by the peer.
func FirstIncomingBidiStream(pers Perspective) StreamID {
	return FirstOutgoingBidiStream(pers.Opposite())
}

// FirstIncomingUniStream is the first unidirectional stream opened by the peer.
func FirstIncomingUniStream(pers Perspective) StreamID {
	return FirstOutgoingUniStream(pers.Opposite())
}
