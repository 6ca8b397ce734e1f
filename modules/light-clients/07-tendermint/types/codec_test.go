package types_test

import (
	"testing"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"
	gogotypes "github.com/cosmos/gogoproto/types"
	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/23-commitment/types"
	tm "github.com/cosmos/ibc-tm-lightclient/modules/light-clients/07-tendermint/types"
)

func TestPackUnpackClientStateRoundTrip(t *testing.T) {
	clientState, err := tm.NewClientState(
		"testchain", tm.DefaultTrustLevel, 7*24*time.Hour, 21*24*time.Hour, 10*time.Second,
		clienttypes.NewHeight(0, 1), nil, []string{"upgrade", "upgradedIBCState"}, tm.AllowUpdate{},
	)
	require.NoError(t, err)

	any, err := tm.PackClientState(clientState)
	require.NoError(t, err)
	require.Equal(t, tm.ClientStateTypeURL, any.TypeUrl)

	got, err := tm.UnpackClientState(any)
	require.NoError(t, err)
	require.Equal(t, clientState, got)
}

func TestPackUnpackConsensusStateRoundTrip(t *testing.T) {
	consensusState := tm.NewConsensusState(
		tm.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		commitmenttypes.NewMerkleRoot([]byte("root")),
		[]byte("next-vals"),
	)

	any, err := tm.PackConsensusState(consensusState)
	require.NoError(t, err)

	got, err := tm.UnpackConsensusState(any)
	require.NoError(t, err)
	require.Equal(t, consensusState, got)
}

func TestUnpackClientStateRejectsWrongTypeURL(t *testing.T) {
	any := &gogotypes.Any{TypeUrl: "/bogus", Value: []byte("{}")}
	_, err := tm.UnpackClientState(any)
	require.ErrorIs(t, err, clienttypes.ErrInvalidCodec)
}

func TestUnpackClientStateRejectsNilEnvelope(t *testing.T) {
	_, err := tm.UnpackClientState(nil)
	require.ErrorIs(t, err, clienttypes.ErrInvalidCodec)
}

func TestUnpackClientStateRejectsMalformedValue(t *testing.T) {
	any := &gogotypes.Any{TypeUrl: tm.ClientStateTypeURL, Value: []byte("not json")}
	_, err := tm.UnpackClientState(any)
	require.ErrorIs(t, err, clienttypes.ErrInvalidCodec)
}

// TestUnpackMisbehaviourIgnoresPayload confirms update_on_misbehaviour's
// contract: the engine only needs to confirm the envelope decodes to a
// Misbehaviour, never inspect header contents to decide how to freeze.
func TestUnpackMisbehaviourIgnoresPayload(t *testing.T) {
	header := &tm.Header{
		SignedHeader: &cmttypes.SignedHeader{Header: &cmttypes.Header{ChainID: "testchain", Height: 5}},
	}
	m := &tm.Misbehaviour{ClientId: "07-tendermint-0", Header1: header, Header2: header}

	any, err := marshalMisbehaviour(m)
	require.NoError(t, err)

	got, err := tm.UnpackMisbehaviour(any)
	require.NoError(t, err)
	require.Equal(t, m.ClientId, got.ClientId)
}

func marshalMisbehaviour(m *tm.Misbehaviour) (*gogotypes.Any, error) {
	return packMisbehaviourAny(m)
}
