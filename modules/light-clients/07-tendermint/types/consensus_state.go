package types

import (
	commitmenttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-tm-lightclient/modules/core/exported"
)

var _ exported.ConsensusState = ConsensusState{}

// ConsensusState defines the per-height snapshot of a counterparty
// Tendermint chain's state needed to verify membership proofs and
// subsequent headers. It is immutable once stored at a given height;
// only prune_oldest_consensus_state ever deletes one.
type ConsensusState struct {
	Timestamp          Timestamp                   `json:"timestamp" yaml:"timestamp"`
	Root               commitmenttypes.MerkleRoot   `json:"root" yaml:"root"`
	NextValidatorsHash []byte                       `json:"next_validators_hash" yaml:"next_validators_hash"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(timestamp Timestamp, root commitmenttypes.MerkleRoot, nextValsHash []byte) ConsensusState {
	return ConsensusState{
		Timestamp:          timestamp,
		Root:               root,
		NextValidatorsHash: nextValsHash,
	}
}

// ClientType implements exported.ConsensusState.
func (ConsensusState) ClientType() string {
	return ModuleName
}

// GetRoot returns the commitment root.
func (cs ConsensusState) GetRoot() commitmenttypes.MerkleRoot {
	return cs.Root
}

// GetTimestamp returns the timestamp of the stored consensus state.
func (cs ConsensusState) GetTimestamp() Timestamp {
	return cs.Timestamp
}
