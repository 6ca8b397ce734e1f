package types

import (
	cmttypes "github.com/cometbft/cometbft/types"

	commitmenttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/23-commitment/types"
	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	"github.com/cosmos/ibc-tm-lightclient/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header is the light-client update message a relayer submits to advance a
// client's view of a counterparty chain. Verification of a Header (light
// client bisection, trust-level signature checks, timestamp monotonicity)
// is out of scope here — by the time update_state sees one, it is assumed
// already verified by the validation layer via the Verifier seam.
type Header struct {
	SignedHeader      *cmttypes.SignedHeader `json:"signed_header" yaml:"signed_header"`
	ValidatorSet      *cmttypes.ValidatorSet `json:"validator_set" yaml:"validator_set"`
	TrustedHeight     clienttypes.Height     `json:"trusted_height" yaml:"trusted_height"`
	TrustedValidators *cmttypes.ValidatorSet `json:"trusted_validators" yaml:"trusted_validators"`
}

// ClientType implements exported.ClientMessage.
func (Header) ClientType() string {
	return ModuleName
}

// GetHeight returns the height at which this header's block was committed.
// The revision number comes from the header's own chain ID, independently
// of TrustedHeight, so a header whose chain ID revision has moved on from
// its trusted height's revision is detectable rather than silently assumed
// consistent.
func (h Header) GetHeight() exported.Height {
	revision := clienttypes.ParseChainID(h.SignedHeader.Header.ChainID)
	return clienttypes.NewHeight(revision, uint64(h.SignedHeader.Header.Height))
}

// GetTime returns the header block's timestamp.
func (h Header) GetTime() Timestamp {
	return NewTimestamp(h.SignedHeader.Header.Time)
}

// ConsensusState derives the ConsensusState a successful update_state call
// stores for this header's height: the header's app hash as commitment
// root, its timestamp, and the hash of its next validator set.
func (h Header) ConsensusState() ConsensusState {
	return NewConsensusState(
		h.GetTime(),
		commitmenttypes.NewMerkleRoot(h.SignedHeader.Header.AppHash),
		h.SignedHeader.Header.NextValidatorsHash,
	)
}
