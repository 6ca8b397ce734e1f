package exported

// ClientMessage is the interface implemented by the headers and misbehaviour
// evidence that the engine's execution entry points accept. Both tendermint
// Header and Misbehaviour implement this marker interface.
type ClientMessage interface {
	ClientType() string
}

// Height is the interface exposed by clienttypes.Height. It is declared here,
// not on clienttypes, so that the tendermint package can depend on it without
// creating an import cycle, mirroring how ibc-go's own exported package
// decouples core/02-client from the light-client implementations.
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	String() string
}

// ClientState is the marker interface for a light client's chain-specific
// execution state. The tendermint ClientState implements it.
type ClientState interface {
	ClientType() string
	GetLatestHeight() Height
}

// ConsensusState is the marker interface for a light client's per-height
// snapshot of a counterparty chain's state.
type ConsensusState interface {
	ClientType() string
}

// Status is the client status state machine: a client is
// always in exactly one of these states. Active/Frozen is an execution-level
// fact (FrozenHeight set or not); Expired additionally depends on the host
// clock and is therefore only ever computed by the validation layer, never
// written by execution.
type Status string

const (
	Active  Status = "Active"
	Frozen  Status = "Frozen"
	Expired Status = "Expired"
	Unknown Status = "Unknown"
)
