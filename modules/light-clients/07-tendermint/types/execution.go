package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	gogotypes "github.com/cosmos/gogoproto/types"

	commitmenttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/23-commitment/types"
	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// Initialise seeds the host store with the client's initial client state
// and consensus state. The caller is responsible for having confirmed no
// prior state exists at this client ID; Initialise does not check for
// that itself.
func Initialise(ctx ExecutionContext, clientID string, clientState *ClientState, consensusStateAny *gogotypes.Any) error {
	consensusState, err := UnpackConsensusState(consensusStateAny)
	if err != nil {
		return err
	}

	hostTimestamp, err := ctx.HostTimestamp()
	if err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	hostHeight, err := ctx.HostHeight()
	if err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	clientStateAny, err := PackClientState(clientState)
	if err != nil {
		return err
	}
	if err := ctx.StoreClientState(clientID, clientStateAny); err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	packedConsensusState, err := PackConsensusState(consensusState)
	if err != nil {
		return err
	}
	if err := ctx.StoreConsensusState(clientID, clientState.LatestHeight, packedConsensusState); err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	if err := ctx.StoreUpdateMeta(clientID, clientState.LatestHeight, UpdateMeta{HostTimestamp: hostTimestamp, HostHeight: hostHeight}); err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	ctx.Logger().Debug("initialised tendermint client", "client-id", clientID, "height", clientState.LatestHeight.String())
	telemetry.IncrCounter(1, "ibc", "client", "tendermint", "initialise")
	return nil
}

// UpdateState updates the host store with a new consensus state for
// header's height, pruning expired states first, and bumping the client's
// latest height if the header is newer. It returns the list of heights
// written — always a singleton or empty, keeping the return shape a list
// for forward compatibility with multi-header updates this engine does
// not yet do.
//
// A duplicate header at an already-stored height is a no-op success: it
// returns [header.height] without touching the store, so that UpdateMeta
// keeps the timestamp of the first successful call.
func UpdateState(ctx ExecutionContext, clientID string, clientState *ClientState, headerAny *gogotypes.Any) ([]clienttypes.Height, *ClientState, error) {
	header, err := UnpackHeader(headerAny)
	if err != nil {
		return nil, nil, err
	}
	headerHeight := header.GetHeight().(clienttypes.Height)

	if err := PruneOldestConsensusStates(ctx, clientID, clientState); err != nil {
		return nil, nil, err
	}

	if existing, err := ctx.ConsensusState(clientID, headerHeight); err == nil && existing != nil {
		return []clienttypes.Height{headerHeight}, clientState, nil
	}

	hostTimestamp, err := ctx.HostTimestamp()
	if err != nil {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	hostHeight, err := ctx.HostHeight()
	if err != nil {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	newConsensusState := header.ConsensusState()
	newClientState, err := clientState.WithHeader(header)
	if err != nil {
		return nil, nil, err
	}

	packedConsensusState, err := PackConsensusState(newConsensusState)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.StoreConsensusState(clientID, headerHeight, packedConsensusState); err != nil {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	packedClientState, err := PackClientState(&newClientState)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.StoreClientState(clientID, packedClientState); err != nil {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	if err := ctx.StoreUpdateMeta(clientID, headerHeight, UpdateMeta{HostTimestamp: hostTimestamp, HostHeight: hostHeight}); err != nil {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	ctx.Logger().Debug("updated tendermint client", "client-id", clientID, "height", headerHeight.String())
	telemetry.IncrCounter(1, "ibc", "client", "tendermint", "update")
	return []clienttypes.Height{headerHeight}, &newClientState, nil
}

// UpdateOnMisbehaviour freezes the client by writing the reserved frozen-
// marker height to FrozenHeight. No consensus state is written. The
// client message is decoded only far enough to confirm it is
// a recognised Tendermint misbehaviour envelope; its contents do not
// otherwise influence what gets written, since the validation layer has
// already established that misbehaviour occurred before this is called.
func UpdateOnMisbehaviour(ctx ExecutionContext, clientID string, clientState *ClientState, clientMessageAny *gogotypes.Any) (*ClientState, error) {
	if _, err := UnpackMisbehaviour(clientMessageAny); err != nil {
		return nil, err
	}

	// The frozen marker is (revision_number=0, revision_height=0), the
	// zero Height. See DESIGN.md for the history behind this choice.
	frozenClientState := clientState.WithFrozenHeight(clienttypes.MinHeight(0))

	packedClientState, err := PackClientState(&frozenClientState)
	if err != nil {
		return nil, err
	}
	if err := ctx.StoreClientState(clientID, packedClientState); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	ctx.Logger().Info("froze tendermint client due to misbehaviour", "client-id", clientID)
	telemetry.IncrCounter(1, "ibc", "client", "tendermint", "misbehaviour")
	return &frozenClientState, nil
}

// UpdateOnUpgrade commits the new client state and a sentinel consensus
// state produced by a coordinated chain upgrade. Chain-chosen parameters
// (chain_id, unbonding_period, latest_height, proof_specs,
// upgrade_path) come from the upgraded client state that the old chain
// committed to; client-chosen parameters (trust_level, trusting_period,
// max_clock_drift, allow_update) are carried forward from the current
// client state unchanged. frozen_height is always reset: an upgrade
// implicitly unfreezes.
func UpdateOnUpgrade(
	ctx ExecutionContext, clientID string, clientState *ClientState,
	upgradedClientStateAny, upgradedConsensusStateAny *gogotypes.Any,
) (clienttypes.Height, *ClientState, error) {
	upgradedClientState, err := UnpackClientState(upgradedClientStateAny)
	if err != nil {
		return clienttypes.Height{}, nil, err
	}
	upgradedConsensusState, err := UnpackConsensusState(upgradedConsensusStateAny)
	if err != nil {
		return clienttypes.Height{}, nil, err
	}

	// Discard any relayer-manipulated client-chosen fields on the
	// chain-committed state before reading off its chain-chosen fields.
	sanitized := upgradedClientState.ZeroCustomFields()

	newClientState := ClientState{
		ChainId:         sanitized.ChainId,
		TrustLevel:      clientState.TrustLevel,
		TrustingPeriod:  clientState.TrustingPeriod,
		UnbondingPeriod: sanitized.UnbondingPeriod,
		MaxClockDrift:   clientState.MaxClockDrift,
		LatestHeight:    sanitized.LatestHeight,
		FrozenHeight:    clienttypes.ZeroHeight(),
		ProofSpecs:      sanitized.ProofSpecs,
		UpgradePath:     sanitized.UpgradePath,
		AllowUpdate:     clientState.AllowUpdate,
	}
	if err := newClientState.Validate(); err != nil {
		return clienttypes.Height{}, nil, err
	}

	// The real commitment root of the new chain's first block isn't known
	// yet, so any proof check against it will fail until the first
	// post-upgrade header arrives via UpdateState. The sentinel consensus
	// state exists solely to carry forward the trusted validator set.
	newConsensusState := NewConsensusState(
		upgradedConsensusState.Timestamp,
		commitmenttypes.NewMerkleRoot(commitmenttypes.SentinelRoot),
		upgradedConsensusState.NextValidatorsHash,
	)

	latestHeight := newClientState.LatestHeight

	hostTimestamp, err := ctx.HostTimestamp()
	if err != nil {
		return clienttypes.Height{}, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	hostHeight, err := ctx.HostHeight()
	if err != nil {
		return clienttypes.Height{}, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	packedClientState, err := PackClientState(&newClientState)
	if err != nil {
		return clienttypes.Height{}, nil, err
	}
	if err := ctx.StoreClientState(clientID, packedClientState); err != nil {
		return clienttypes.Height{}, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	packedConsensusState, err := PackConsensusState(newConsensusState)
	if err != nil {
		return clienttypes.Height{}, nil, err
	}
	if err := ctx.StoreConsensusState(clientID, latestHeight, packedConsensusState); err != nil {
		return clienttypes.Height{}, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	if err := ctx.StoreUpdateMeta(clientID, latestHeight, UpdateMeta{HostTimestamp: hostTimestamp, HostHeight: hostHeight}); err != nil {
		return clienttypes.Height{}, nil, errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}

	ctx.Logger().Info("upgraded tendermint client", "client-id", clientID, "new-chain-id", newClientState.ChainId, "height", latestHeight.String())
	telemetry.IncrCounter(1, "ibc", "client", "tendermint", "upgrade")
	return latestHeight, &newClientState, nil
}

// PruneOldestConsensusStates deletes every stored consensus state for
// clientID whose expiry (timestamp + trusting_period) has elapsed relative
// to the host clock. Heights are visited in ascending order and the scan
// stops at the first non-expired height, since block timestamps are
// monotone non-decreasing within a revision.
func PruneOldestConsensusStates(ctx ExecutionContext, clientID string, clientState *ClientState) error {
	heights, err := ctx.ConsensusStateHeights(clientID)
	if err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	clienttypes.SortHeights(heights)

	hostTimestamp, err := ctx.HostTimestamp()
	if err != nil {
		return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
	}
	if _, err := hostTimestamp.ToTendermintTime(); err != nil {
		return err
	}

	pruned := 0
	for _, height := range heights {
		any, err := ctx.ConsensusState(clientID, height)
		if err != nil {
			return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
		}
		consensusState, err := UnpackConsensusState(any)
		if err != nil {
			return err
		}

		expiry, err := consensusState.Timestamp.Add(clientState.TrustingPeriod)
		if err != nil {
			return err
		}

		if expiry.After(hostTimestamp) {
			break
		}

		if err := ctx.DeleteConsensusState(clientID, height); err != nil {
			return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
		}
		if err := ctx.DeleteUpdateMeta(clientID, height); err != nil {
			return errorsmod.Wrap(clienttypes.ErrContext, err.Error())
		}
		pruned++
	}

	if pruned > 0 {
		ctx.Logger().Debug("pruned expired consensus states", "client-id", clientID, "count", pruned)
		telemetry.IncrCounter(float32(pruned), "ibc", "client", "tendermint", "prune")
	}
	return nil
}
