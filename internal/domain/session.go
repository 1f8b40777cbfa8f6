package domain

import "fmt"

// ConnectionState mirrors what the wallet SDK reports about its live
// connection. It is never persisted.
type ConnectionState struct {
	IsConnected bool
	IsLoading   bool
	Address     WalletAddress
	Err         error
}

type SessionPhase string

const (
	PhaseDisconnected SessionPhase = "disconnected"
	PhaseConnecting   SessionPhase = "connecting"
	PhaseConnected    SessionPhase = "connected"
	PhaseErrored      SessionPhase = "errored"
)

type SessionEvent string

const (
	EventConnectRequested    SessionEvent = "connect_requested"
	EventAddressReported     SessionEvent = "address_reported"
	EventErrorReported       SessionEvent = "error_reported"
	EventDisconnectRequested SessionEvent = "disconnect_requested"
	EventReset               SessionEvent = "reset"
)

var sessionTransitions = map[SessionPhase]map[SessionEvent]SessionPhase{
	PhaseDisconnected: {
		EventConnectRequested: PhaseConnecting,
	},
	PhaseConnecting: {
		EventAddressReported: PhaseConnected,
		EventErrorReported:   PhaseErrored,
	},
	PhaseConnected: {
		EventDisconnectRequested: PhaseDisconnected,
	},
	PhaseErrored: {
		EventReset: PhaseDisconnected,
	},
}

// NextPhase returns the phase reached by applying event in phase from.
// Pairs missing from the transition table yield ErrInvalidTransition and
// leave the phase unchanged.
func NextPhase(from SessionPhase, event SessionEvent) (SessionPhase, error) {
	if to, ok := sessionTransitions[from][event]; ok {
		return to, nil
	}

	return from, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, event, from)
}
