package mocks

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocks -destination sender.go github.com/quicch/quicch Sender"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocks -destination handshaker.go github.com/quicch/quicch Handshaker"
