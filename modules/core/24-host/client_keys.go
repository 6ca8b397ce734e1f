package host

import "fmt"

// ICS02
// Path constructors for the client sub-store. Two path families matter here:
// ClientStatePath and ClientConsensusStatePath, plus the metadata
// sub-namespace used for UpdateMeta.

const (
	KeyClientStorePrefix      = "clients"
	KeyClientState            = "clientState"
	KeyConsensusStatePrefix   = "consensusStates"
	KeyProcessedTimePrefix    = "processedTime"
	KeyProcessedHeightPrefix  = "processedHeight"
)

// FullClientPath returns the path prefixed with the client store prefix.
// It does not separate by client store type (subject/substitute) the way
// upgrade substitution does; that handling is out of scope here.
func FullClientPath(clientID, path string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, path)
}

// ClientStatePath takes a client identifier and returns a Path under which
// the client state is stored.
func ClientStatePath(clientID string) string {
	return FullClientPath(clientID, KeyClientState)
}

// ClientStateKey returns the store key for a particular client state.
func ClientStateKey(clientID string) []byte {
	return []byte(ClientStatePath(clientID))
}

// ClientConsensusStatePath returns the suffix store key for the consensus
// state at a particular height stored for a particular client.
func ClientConsensusStatePath(clientID string, revisionNumber, revisionHeight uint64) string {
	return FullClientPath(clientID, fmt.Sprintf("%s/%d-%d", KeyConsensusStatePrefix, revisionNumber, revisionHeight))
}

// ClientConsensusStateKey returns the store key for a particular client
// consensus state.
func ClientConsensusStateKey(clientID string, revisionNumber, revisionHeight uint64) []byte {
	return []byte(ClientConsensusStatePath(clientID, revisionNumber, revisionHeight))
}

// ProcessedTimePath returns the key under which the UpdateMeta host
// timestamp is stored, for use by packet-timeout checks downstream.
func ProcessedTimePath(clientID string, revisionNumber, revisionHeight uint64) string {
	return FullClientPath(clientID, fmt.Sprintf("%s/%d-%d", KeyProcessedTimePrefix, revisionNumber, revisionHeight))
}

// ProcessedTimeKey returns the store key for the processed-time metadata.
func ProcessedTimeKey(clientID string, revisionNumber, revisionHeight uint64) []byte {
	return []byte(ProcessedTimePath(clientID, revisionNumber, revisionHeight))
}

// ProcessedHeightPath returns the key under which the UpdateMeta host
// height is stored.
func ProcessedHeightPath(clientID string, revisionNumber, revisionHeight uint64) string {
	return FullClientPath(clientID, fmt.Sprintf("%s/%d-%d", KeyProcessedHeightPrefix, revisionNumber, revisionHeight))
}

// ProcessedHeightKey returns the store key for the processed-height metadata.
func ProcessedHeightKey(clientID string, revisionNumber, revisionHeight uint64) []byte {
	return []byte(ProcessedHeightPath(clientID, revisionNumber, revisionHeight))
}
