// Package testing provides an in-memory host context used by the
// 07-tendermint package's test suite, standing in for the real IBC core
// keeper's KVStore-backed implementation of CommonContext/ValidationContext/
// ExecutionContext.
package testing

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	dbm "github.com/cometbft/cometbft-db"
	gogotypes "github.com/cosmos/gogoproto/types"

	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	host "github.com/cosmos/ibc-tm-lightclient/modules/core/24-host"
	tmtypes "github.com/cosmos/ibc-tm-lightclient/modules/light-clients/07-tendermint/types"
)

var _ tmtypes.ExecutionContext = (*HostContext)(nil)
var _ tmtypes.ValidationContext = (*HostContext)(nil)

// HostContext is a minimal stand-in for the chain-wide keeper a real IBC
// core module would provide, backed by a single in-memory KVStore.
type HostContext struct {
	store         storetypes.KVStore
	logger        log.Logger
	hostTimestamp tmtypes.Timestamp
	hostHeight    clienttypes.Height
}

// NewHostContext builds a HostContext over a fresh in-memory KVStore.
func NewHostContext() *HostContext {
	store := cachekv.NewStore(dbadapter.Store{DB: dbm.NewMemDB()})
	return &HostContext{
		store:  store,
		logger: log.NewNopLogger(),
	}
}

// WithLogger swaps in a non-discarding logger, for tests that want to
// inspect log output.
func (h *HostContext) WithLogger(logger log.Logger) *HostContext {
	h.logger = logger
	return h
}

// SetHostTimestamp sets the value HostTimestamp returns, simulating the
// passage of the local chain's clock.
func (h *HostContext) SetHostTimestamp(ts tmtypes.Timestamp) {
	h.hostTimestamp = ts
}

// SetHostHeight sets the value HostHeight returns, simulating the passage
// of the local chain's block height.
func (h *HostContext) SetHostHeight(height clienttypes.Height) {
	h.hostHeight = height
}

// Logger implements tmtypes.CommonContext.
func (h *HostContext) Logger() log.Logger {
	return h.logger
}

// HostTimestamp implements tmtypes.CommonContext.
func (h *HostContext) HostTimestamp() (tmtypes.Timestamp, error) {
	return h.hostTimestamp, nil
}

// HostHeight implements tmtypes.CommonContext.
func (h *HostContext) HostHeight() (clienttypes.Height, error) {
	return h.hostHeight, nil
}

// ConsensusState implements tmtypes.CommonContext.
func (h *HostContext) ConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error) {
	key := host.ClientConsensusStateKey(clientID, height.RevisionNumber, height.RevisionHeight)
	bz := h.store.Get(key)
	if bz == nil {
		return nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "client %s at height %s", clientID, height)
	}
	var any gogotypes.Any
	if err := any.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &any, nil
}

// ConsensusStateHeights implements tmtypes.CommonContext by scanning every
// key under the client's consensus-state prefix.
func (h *HostContext) ConsensusStateHeights(clientID string) ([]clienttypes.Height, error) {
	prefix := []byte(host.FullClientPath(clientID, host.KeyConsensusStatePrefix) + "/")
	iterator := h.store.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
	defer iterator.Close()

	var heights []clienttypes.Height
	for ; iterator.Valid(); iterator.Next() {
		height, err := parseHeightSuffix(string(iterator.Key()))
		if err != nil {
			return nil, err
		}
		heights = append(heights, height)
	}
	return heights, nil
}

// NextConsensusState implements tmtypes.ValidationContext.
func (h *HostContext) NextConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error) {
	heights, err := h.ConsensusStateHeights(clientID)
	if err != nil {
		return nil, err
	}
	clienttypes.SortHeights(heights)
	for _, candidate := range heights {
		if candidate.GT(height) {
			return h.ConsensusState(clientID, candidate)
		}
	}
	return nil, nil
}

// PrevConsensusState implements tmtypes.ValidationContext.
func (h *HostContext) PrevConsensusState(clientID string, height clienttypes.Height) (*gogotypes.Any, error) {
	heights, err := h.ConsensusStateHeights(clientID)
	if err != nil {
		return nil, err
	}
	clienttypes.SortHeights(heights)
	var prev *clienttypes.Height
	for i := range heights {
		if heights[i].GT(height) {
			break
		}
		if heights[i].LT(height) {
			candidate := heights[i]
			prev = &candidate
		}
	}
	if prev == nil {
		return nil, nil
	}
	return h.ConsensusState(clientID, *prev)
}

// StoreClientState implements tmtypes.ExecutionContext.
func (h *HostContext) StoreClientState(clientID string, clientState *gogotypes.Any) error {
	bz, err := clientState.Marshal()
	if err != nil {
		return err
	}
	h.store.Set(host.ClientStateKey(clientID), bz)
	return nil
}

// StoreConsensusState implements tmtypes.ExecutionContext.
func (h *HostContext) StoreConsensusState(clientID string, height clienttypes.Height, consensusState *gogotypes.Any) error {
	bz, err := consensusState.Marshal()
	if err != nil {
		return err
	}
	key := host.ClientConsensusStateKey(clientID, height.RevisionNumber, height.RevisionHeight)
	h.store.Set(key, bz)
	return nil
}

// DeleteConsensusState implements tmtypes.ExecutionContext.
func (h *HostContext) DeleteConsensusState(clientID string, height clienttypes.Height) error {
	key := host.ClientConsensusStateKey(clientID, height.RevisionNumber, height.RevisionHeight)
	h.store.Delete(key)
	return nil
}

// StoreUpdateMeta implements tmtypes.ExecutionContext.
func (h *HostContext) StoreUpdateMeta(clientID string, height clienttypes.Height, meta tmtypes.UpdateMeta) error {
	h.store.Set(host.ProcessedTimeKey(clientID, height.RevisionNumber, height.RevisionHeight), []byte(fmt.Sprintf("%d", meta.HostTimestamp.NanoSeconds())))
	h.store.Set(host.ProcessedHeightKey(clientID, height.RevisionNumber, height.RevisionHeight), []byte(meta.HostHeight.String()))
	return nil
}

// DeleteUpdateMeta implements tmtypes.ExecutionContext.
func (h *HostContext) DeleteUpdateMeta(clientID string, height clienttypes.Height) error {
	h.store.Delete(host.ProcessedTimeKey(clientID, height.RevisionNumber, height.RevisionHeight))
	h.store.Delete(host.ProcessedHeightKey(clientID, height.RevisionNumber, height.RevisionHeight))
	return nil
}

// parseHeightSuffix extracts the trailing "{revision}-{height}" component of
// a consensus state store key.
func parseHeightSuffix(key string) (clienttypes.Height, error) {
	idx := len(key) - 1
	for idx >= 0 && key[idx] != '/' {
		idx--
	}
	return clienttypes.ParseHeight(key[idx+1:])
}
