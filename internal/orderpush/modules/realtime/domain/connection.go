package domain

const (
	// MessageJoinOrder client request to subscribe an order room
	MessageJoinOrder = "join-order"
	// MessageLeaveOrder client request to unsubscribe an order room
	MessageLeaveOrder = "leave-order"
)

// ClientMessage client to server frame
type ClientMessage struct {
	Type    string `json:"type"`
	OrderNo string `json:"orderNo"`
}

// ConnState connection lifecycle state
type ConnState int32

const (
	// ConnConnecting registered, not yet attached to transport
	ConnConnecting ConnState = iota
	// ConnActive receiving messages
	ConnActive
	// ConnClosed terminal
	ConnClosed
)

func (s ConnState) String() string {
	switch s {
	case ConnConnecting:
		return "connecting"
	case ConnActive:
		return "active"
	case ConnClosed:
		return "closed"
	}
	return "unknown"
}

// Stats broker snapshot
type Stats struct {
	Connections int `json:"connections"`
	Rooms       int `json:"rooms"`
	Staff       int `json:"staff"`
}
