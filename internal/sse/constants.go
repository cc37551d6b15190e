package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel.
	// One draw publishes about twenty events.
	ClientEventBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types that do not come from the board
const (
	// EventTypeConnected is the first event a client receives
	EventTypeConnected = "connected"

	// EventTypeSnapshot carries the board view at connection time
	EventTypeSnapshot = "board.snapshot"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "Dropping SSE event, broadcast buffer full"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSnapshotError      = "Failed to build SSE snapshot"
)
