package protocol

// MaxConnIDLen is the maximum connection ID length for QUIC v1.
const MaxConnIDLen = 20

// A StatelessResetToken is a stateless reset token.
type StatelessResetToken [16]byte
