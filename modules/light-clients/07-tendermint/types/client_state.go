package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/cosmos/ics23/go"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	"github.com/cosmos/ibc-tm-lightclient/modules/core/exported"
)

// ModuleName identifies this light-client implementation, the same
// constant ibc-go's own 07-tendermint module registers itself under.
const ModuleName = "07-tendermint"

var _ exported.ClientState = (*ClientState)(nil)

// AllowUpdate governs whether an otherwise-unusable (expired or frozen)
// client may still be recovered through a governance-approved update.
// Consumed only by the validation layer; execution carries the flags
// through unmodified.
type AllowUpdate struct {
	AfterExpiry       bool `json:"after_expiry" yaml:"after_expiry"`
	AfterMisbehaviour bool `json:"after_misbehaviour" yaml:"after_misbehaviour"`
}

// ClientState tracks a single counterparty Tendermint chain: its trust
// parameters, latest known height, and (if misbehaviour was observed) the
// height at which it was frozen.
type ClientState struct {
	ChainId         string                 `json:"chain_id" yaml:"chain_id"`
	TrustLevel      Fraction               `json:"trust_level" yaml:"trust_level"`
	TrustingPeriod  time.Duration          `json:"trusting_period" yaml:"trusting_period"`
	UnbondingPeriod time.Duration          `json:"unbonding_period" yaml:"unbonding_period"`
	MaxClockDrift   time.Duration          `json:"max_clock_drift" yaml:"max_clock_drift"`
	LatestHeight    clienttypes.Height     `json:"latest_height" yaml:"latest_height"`
	FrozenHeight    clienttypes.Height     `json:"frozen_height" yaml:"frozen_height"`
	ProofSpecs      []*ics23.ProofSpec     `json:"proof_specs" yaml:"proof_specs"`
	UpgradePath     []string               `json:"upgrade_path" yaml:"upgrade_path"`
	AllowUpdate     AllowUpdate            `json:"allow_update" yaml:"allow_update"`
}

// NewClientState creates a new ClientState instance, validating that the
// trusting period is shorter than the unbonding period. The client is
// created unfrozen: FrozenHeight is the zero Height, which this package
// treats as "no misbehaviour observed".
func NewClientState(
	chainID string, trustLevel Fraction, trustingPeriod, unbondingPeriod, maxClockDrift time.Duration,
	latestHeight clienttypes.Height, proofSpecs []*ics23.ProofSpec, upgradePath []string, allowUpdate AllowUpdate,
) (*ClientState, error) {
	cs := &ClientState{
		ChainId:         chainID,
		TrustLevel:      trustLevel,
		TrustingPeriod:  trustingPeriod,
		UnbondingPeriod: unbondingPeriod,
		MaxClockDrift:   maxClockDrift,
		LatestHeight:    latestHeight,
		FrozenHeight:    clienttypes.ZeroHeight(),
		ProofSpecs:      proofSpecs,
		UpgradePath:     upgradePath,
		AllowUpdate:     allowUpdate,
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

// Validate checks the structural invariants that do not depend on the
// host context: trusting_period < unbonding_period, and the trust level
// falls within [1/3, 1].
func (cs ClientState) Validate() error {
	if cs.ChainId == "" {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "chain id cannot be empty")
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "trusting period must be positive")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "unbonding period must be positive")
	}
	if cs.TrustingPeriod >= cs.UnbondingPeriod {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient,
			"trusting period (%s) must be strictly less than unbonding period (%s)", cs.TrustingPeriod, cs.UnbondingPeriod)
	}
	if cs.MaxClockDrift <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "max clock drift must be positive")
	}
	return cs.TrustLevel.Validate()
}

// ClientType implements exported.ClientState.
func (ClientState) ClientType() string {
	return ModuleName
}

// GetLatestHeight implements exported.ClientState.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// IsFrozen reports whether FrozenHeight has been set to anything other than
// the zero Height. A client is Active exactly when frozen_height is unset,
// modelled here as the zero Height standing in for "unset".
func (cs ClientState) IsFrozen() bool {
	return !cs.FrozenHeight.IsZero()
}

// WithHeader returns a new ClientState with LatestHeight bumped to the
// header's height if it is greater than the current latest height. All
// other fields are preserved. It is an error if the header's own chain-ID
// revision disagrees with its trusted height's revision — a header from a
// chain ID that has since bumped its revision cannot be validated against
// a trusted height from the prior revision. The rest of header validity
// was already established by the validation layer before this is called.
func (cs ClientState) WithHeader(header *Header) (ClientState, error) {
	if header == nil {
		return ClientState{}, errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header cannot be nil")
	}
	if header.TrustedHeight.RevisionNumber != header.GetHeight().GetRevisionNumber() {
		return ClientState{}, errorsmod.Wrapf(clienttypes.ErrInvalidHeader,
			"header height revision %d does not match trusted height revision %d",
			header.GetHeight().GetRevisionNumber(), header.TrustedHeight.RevisionNumber)
	}

	newClientState := cs
	headerHeight := header.GetHeight().(clienttypes.Height)
	if headerHeight.GT(cs.LatestHeight) {
		newClientState.LatestHeight = headerHeight
	}
	return newClientState, nil
}

// WithFrozenHeight returns a new ClientState with FrozenHeight set to h.
func (cs ClientState) WithFrozenHeight(h clienttypes.Height) ClientState {
	newClientState := cs
	newClientState.FrozenHeight = h
	return newClientState
}

// ZeroCustomFields returns a copy of cs with every client-chosen parameter
// nulled out: TrustLevel, TrustingPeriod, MaxClockDrift, and AllowUpdate.
// update_on_upgrade calls this on the chain-committed upgraded client state
// before merging, so that a relayer cannot smuggle its own trust parameters
// in under the guise of the new chain's committed state.
func (cs ClientState) ZeroCustomFields() ClientState {
	newClientState := cs
	newClientState.TrustLevel = Fraction{}
	newClientState.TrustingPeriod = 0
	newClientState.MaxClockDrift = 0
	newClientState.AllowUpdate = AllowUpdate{}
	return newClientState
}
