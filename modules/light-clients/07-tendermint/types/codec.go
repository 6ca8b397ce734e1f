package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	gogotypes "github.com/cosmos/gogoproto/types"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// Any's type_url discriminators. Real ibc-go derives these from the
// .proto package path; we keep the same shape since client_id + type_url
// is the contract the interface registry dispatches on.
const (
	ClientStateTypeURL     = "/ibc.lightclients.tendermint.v1.ClientState"
	ConsensusStateTypeURL  = "/ibc.lightclients.tendermint.v1.ConsensusState"
	HeaderTypeURL          = "/ibc.lightclients.tendermint.v1.Header"
	MisbehaviourTypeURL    = "/ibc.lightclients.tendermint.v1.Misbehaviour"
)

// Decoding an Any envelope is total: it either produces a concrete value or
// fails with a single decode error kind. The wire encoding of Value itself
// is out of this engine's scope; we use JSON as the concrete codec so that
// PackX/UnpackX are genuinely total functions without depending on a
// generated protobuf registry.

// PackClientState wraps a concrete ClientState into its Any envelope.
func PackClientState(cs *ClientState) (*gogotypes.Any, error) {
	bz, err := json.Marshal(cs)
	if err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return &gogotypes.Any{TypeUrl: ClientStateTypeURL, Value: bz}, nil
}

// UnpackClientState unwraps an Any envelope into a concrete ClientState,
// failing with ErrInvalidCodec if the envelope is not a recognised
// ClientState type_url or its value is malformed.
func UnpackClientState(any *gogotypes.Any) (*ClientState, error) {
	if any == nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, "nil Any envelope")
	}
	if any.TypeUrl != ClientStateTypeURL {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidCodec, "unrecognised client state type_url: %s", any.TypeUrl)
	}
	var cs ClientState
	if err := json.Unmarshal(any.Value, &cs); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return &cs, nil
}

// PackConsensusState wraps a concrete ConsensusState into its Any envelope.
func PackConsensusState(cs ConsensusState) (*gogotypes.Any, error) {
	bz, err := json.Marshal(cs)
	if err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return &gogotypes.Any{TypeUrl: ConsensusStateTypeURL, Value: bz}, nil
}

// UnpackConsensusState unwraps an Any envelope into a concrete ConsensusState.
func UnpackConsensusState(any *gogotypes.Any) (ConsensusState, error) {
	if any == nil {
		return ConsensusState{}, errorsmod.Wrap(clienttypes.ErrInvalidCodec, "nil Any envelope")
	}
	if any.TypeUrl != ConsensusStateTypeURL {
		return ConsensusState{}, errorsmod.Wrapf(clienttypes.ErrInvalidCodec, "unrecognised consensus state type_url: %s", any.TypeUrl)
	}
	var cs ConsensusState
	if err := json.Unmarshal(any.Value, &cs); err != nil {
		return ConsensusState{}, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return cs, nil
}

// UnpackHeader unwraps an Any envelope into a concrete Header.
func UnpackHeader(any *gogotypes.Any) (*Header, error) {
	if any == nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, "nil Any envelope")
	}
	if any.TypeUrl != HeaderTypeURL {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidCodec, "unrecognised header type_url: %s", any.TypeUrl)
	}
	var h Header
	if err := json.Unmarshal(any.Value, &h); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return &h, nil
}

// UnpackMisbehaviour unwraps an Any envelope into a concrete Misbehaviour,
// only far enough to confirm it is a recognised Tendermint misbehaviour
// message; update_on_misbehaviour does not otherwise inspect its contents.
func UnpackMisbehaviour(any *gogotypes.Any) (*Misbehaviour, error) {
	if any == nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, "nil Any envelope")
	}
	if any.TypeUrl != MisbehaviourTypeURL {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidCodec, "unrecognised misbehaviour type_url: %s", any.TypeUrl)
	}
	var m Misbehaviour
	if err := json.Unmarshal(any.Value, &m); err != nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidCodec, err.Error())
	}
	return &m, nil
}
