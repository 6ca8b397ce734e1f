package types

import (
	"cosmossdk.io/log"
	gogotypes "github.com/cosmos/gogoproto/types"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// UpdateMeta is the per-(client_id, height) pair (host_timestamp_at_write,
// host_height_at_write) written alongside every ConsensusState, and read by
// downstream packet-timeout checks. It shares the ConsensusState's
// lifecycle: inserted with it, deleted with it, never otherwise mutated.
type UpdateMeta struct {
	HostTimestamp Timestamp
	HostHeight    clienttypes.Height
}

// CommonContext is the read-only surface every execution and validation
// entry point needs from the host store. Consensus states cross this
// boundary as opaque Any envelopes: callers decode them with
// UnpackConsensusState and surface ErrInvalidCodec on malformed data.
type CommonContext interface {
	// Logger returns the host's structured logger, the same way sdk.Context
	// exposes one to every keeper method in the surrounding chain.
	Logger() log.Logger

	// HostTimestamp returns the current timestamp of the local chain.
	HostTimestamp() (Timestamp, error)

	// HostHeight returns the current height of the local chain.
	HostHeight() (clienttypes.Height, error)

	// ConsensusState retrieves the consensus state stored for clientID at
	// height. Returns ErrConsensusStateNotFound if none exists.
	ConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error)

	// ConsensusStateHeights returns every height at which a consensus state
	// is stored for clientID, in no particular order — callers that need an
	// ordering (e.g. pruning) sort it themselves via clienttypes.SortHeights.
	ConsensusStateHeights(clientID string) ([]clienttypes.Height, error)
}

// ValidationContext extends CommonContext with the neighbor lookups the
// (out-of-scope) validation layer uses to detect time-monotonicity
// violations between a new header and its neighbors in the archive.
type ValidationContext interface {
	CommonContext

	// NextConsensusState returns the consensus state at the lowest stored
	// height strictly greater than height, or nil if none exists.
	NextConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error)

	// PrevConsensusState returns the consensus state at the highest stored
	// height strictly less than height, or nil if none exists.
	PrevConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error)
}

// ExecutionContext extends CommonContext with the mutations the engine's
// execution entry points perform. Implementations own exclusive write
// access to the underlying store for the duration of a call; execution
// entry points never interleave host-store reads and writes with
// concurrent calls against the same client.
type ExecutionContext interface {
	CommonContext

	// StoreClientState writes the client state for clientID.
	StoreClientState(clientID string, clientState *gogotypes.Any) error

	// StoreConsensusState writes the consensus state for clientID at height.
	StoreConsensusState(clientID string, height clienttypes.Height, consensusState *gogotypes.Any) error

	// DeleteConsensusState removes the consensus state stored for clientID
	// at height.
	DeleteConsensusState(clientID string, height clienttypes.Height) error

	// StoreUpdateMeta writes the UpdateMeta for clientID at height.
	StoreUpdateMeta(clientID string, height clienttypes.Height, meta UpdateMeta) error

	// DeleteUpdateMeta removes the UpdateMeta for clientID at height.
	DeleteUpdateMeta(clientID string, height clienttypes.Height) error
}
