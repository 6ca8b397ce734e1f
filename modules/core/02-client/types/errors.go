package types

import (
	errorsmod "cosmossdk.io/errors"
)

// client error codespace, mirrors ibc-go's 02-client/types error registration.
const SubModuleName = "client"

// Errors shared across every light-client implementation: decode failures,
// not-found lookups, arithmetic overflow, invalid timestamps, invalid
// headers, and host context failures.
var (
	ErrInvalidClient        = errorsmod.Register(SubModuleName, 2, "client is invalid")
	ErrClientNotFound       = errorsmod.Register(SubModuleName, 3, "client not found")
	ErrClientFrozen         = errorsmod.Register(SubModuleName, 4, "client is frozen due to misbehaviour")
	ErrInvalidConsensus     = errorsmod.Register(SubModuleName, 5, "invalid consensus state")
	ErrClientTypeNotFound   = errorsmod.Register(SubModuleName, 6, "client type not found")
	ErrInvalidClientType    = errorsmod.Register(SubModuleName, 7, "invalid client type")
	ErrConsensusStateNotFound = errorsmod.Register(SubModuleName, 8, "consensus state not found")
	ErrInvalidHeight        = errorsmod.Register(SubModuleName, 9, "invalid height")
	ErrInvalidHeader        = errorsmod.Register(SubModuleName, 10, "invalid header")
	ErrInvalidMisbehaviour  = errorsmod.Register(SubModuleName, 11, "invalid misbehaviour")
	ErrFailedClientUpdate   = errorsmod.Register(SubModuleName, 12, "unable to update client")
	ErrFailedClientUpgrade  = errorsmod.Register(SubModuleName, 13, "unable to upgrade client")
	ErrInvalidCodec         = errorsmod.Register(SubModuleName, 14, "unable to decode Any envelope")
	ErrInvalidTimestamp     = errorsmod.Register(SubModuleName, 15, "host timestamp is not a valid Tendermint timestamp")
	ErrTimestampOverflow    = errorsmod.Register(SubModuleName, 16, "timestamp arithmetic overflow")
	ErrContext              = errorsmod.Register(SubModuleName, 17, "host context failure")
)
