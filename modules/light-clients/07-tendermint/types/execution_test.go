package types_test

import (
	"encoding/json"
	"testing"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"
	gogotypes "github.com/cosmos/gogoproto/types"
	"github.com/stretchr/testify/suite"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/23-commitment/types"
	tm "github.com/cosmos/ibc-tm-lightclient/modules/light-clients/07-tendermint/types"
	tmtesting "github.com/cosmos/ibc-tm-lightclient/testing"
)

const testClientID = "07-tendermint-0"
const testChainID = "testchain"

type TendermintTestSuite struct {
	suite.Suite

	ctx         *tmtesting.HostContext
	clientState *tm.ClientState
	now         time.Time
}

func TestTendermintTestSuite(t *testing.T) {
	suite.Run(t, new(TendermintTestSuite))
}

func (suite *TendermintTestSuite) SetupTest() {
	suite.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.ctx = tmtesting.NewHostContext()
	suite.ctx.SetHostTimestamp(tm.NewTimestamp(suite.now))
	suite.ctx.SetHostHeight(clienttypes.NewHeight(0, 10))

	clientState, err := tm.NewClientState(
		testChainID,
		tm.DefaultTrustLevel,
		7*24*time.Hour,  // trusting period
		21*24*time.Hour, // unbonding period
		10*time.Second,  // max clock drift
		clienttypes.NewHeight(0, 1),
		nil,
		[]string{"upgrade", "upgradedIBCState"},
		tm.AllowUpdate{AfterExpiry: true, AfterMisbehaviour: true},
	)
	suite.Require().NoError(err)
	suite.clientState = clientState
}

// newHeader builds a Header fixture at height with timestamp now + offset.
// Signature and validator-set verification are out of this engine's scope,
// so fixtures never need a real signed commit.
func (suite *TendermintTestSuite) newHeader(height uint64, offset time.Duration) *tm.Header {
	header := &cmttypes.Header{
		ChainID:            testChainID,
		Height:             int64(height),
		Time:               suite.now.Add(offset),
		AppHash:            []byte{byte(height)},
		NextValidatorsHash: []byte("next-vals"),
	}
	return &tm.Header{
		SignedHeader:  &cmttypes.SignedHeader{Header: header},
		TrustedHeight: clienttypes.NewHeight(0, 1),
	}
}

func (suite *TendermintTestSuite) packHeader(header *tm.Header) *gogotypes.Any {
	any, err := packHeaderAny(header)
	suite.Require().NoError(err)
	return any
}

func (suite *TendermintTestSuite) TestInitialise() {
	consensusState := tm.NewConsensusState(
		tm.NewTimestamp(suite.now),
		commitmenttypes.NewMerkleRoot([]byte("root")),
		[]byte("next-vals"),
	)
	packed, err := tm.PackConsensusState(consensusState)
	suite.Require().NoError(err)

	err = tm.Initialise(suite.ctx, testClientID, suite.clientState, packed)
	suite.Require().NoError(err)

	stored, err := suite.ctx.ConsensusState(testClientID, suite.clientState.LatestHeight)
	suite.Require().NoError(err)
	got, err := tm.UnpackConsensusState(stored)
	suite.Require().NoError(err)
	suite.Require().Equal(consensusState, got)
}

func (suite *TendermintTestSuite) TestUpdateStateNewHeight() {
	header := suite.newHeader(5, time.Hour)
	packed := suite.packHeader(header)

	heights, newClientState, err := tm.UpdateState(suite.ctx, testClientID, suite.clientState, packed)
	suite.Require().NoError(err)
	suite.Require().Len(heights, 1)
	suite.Require().Equal(uint64(5), heights[0].RevisionHeight)
	suite.Require().True(newClientState.LatestHeight.EQ(heights[0]))

	stored, err := suite.ctx.ConsensusState(testClientID, heights[0])
	suite.Require().NoError(err)
	consensusState, err := tm.UnpackConsensusState(stored)
	suite.Require().NoError(err)
	suite.Require().Equal([]byte{5}, consensusState.Root.Hash)
}

// TestUpdateStateDuplicateIsNoOp verifies that applying update_state twice
// with a header at the same height is idempotent: the second call succeeds,
// returns the single header height, and leaves one stored consensus state.
func (suite *TendermintTestSuite) TestUpdateStateDuplicateIsNoOp() {
	header := suite.newHeader(5, time.Hour)
	packed := suite.packHeader(header)

	_, _, err := tm.UpdateState(suite.ctx, testClientID, suite.clientState, packed)
	suite.Require().NoError(err)

	suite.ctx.SetHostTimestamp(tm.NewTimestamp(suite.now.Add(48 * time.Hour)))
	heights, _, err := tm.UpdateState(suite.ctx, testClientID, suite.clientState, packed)
	suite.Require().NoError(err)
	suite.Require().Len(heights, 1)

	// the duplicate call did not write a second entry for the same height.
	stored, err := suite.ctx.ConsensusStateHeights(testClientID)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
}

func (suite *TendermintTestSuite) TestUpdateOnMisbehaviourFreezesClient() {
	misbehaviour := &tm.Misbehaviour{
		ClientId: testClientID,
		Header1:  suite.newHeader(5, time.Hour),
		Header2:  suite.newHeader(5, time.Hour),
	}
	packed, err := packMisbehaviourAny(misbehaviour)
	suite.Require().NoError(err)

	frozen, err := tm.UpdateOnMisbehaviour(suite.ctx, testClientID, suite.clientState, packed)
	suite.Require().NoError(err)
	suite.Require().True(frozen.IsFrozen())
	suite.Require().True(frozen.FrozenHeight.EQ(clienttypes.MinHeight(0)))
}

func (suite *TendermintTestSuite) TestUpdateOnUpgradeMergesParameters() {
	upgradedClientState, err := tm.NewClientState(
		"newchain",
		tm.NewFraction(2, 3), // should be discarded in favor of the old client's trust level
		99*time.Hour,
		30*24*time.Hour,
		99*time.Second,
		clienttypes.NewHeight(1, 1),
		nil,
		[]string{"upgrade", "upgradedIBCState"},
		tm.AllowUpdate{AfterExpiry: false, AfterMisbehaviour: false},
	)
	suite.Require().NoError(err)
	packedClientState, err := tm.PackClientState(upgradedClientState)
	suite.Require().NoError(err)

	upgradedConsensusState := tm.NewConsensusState(tm.NewTimestamp(suite.now), commitmenttypes.NewMerkleRoot([]byte("real-root")), []byte("new-next-vals"))
	packedConsensusState, err := tm.PackConsensusState(upgradedConsensusState)
	suite.Require().NoError(err)

	// freeze the old client first, to confirm upgrade resets it
	frozen := suite.clientState.WithFrozenHeight(clienttypes.MinHeight(0))

	height, newClientState, err := tm.UpdateOnUpgrade(suite.ctx, testClientID, &frozen, packedClientState, packedConsensusState)
	suite.Require().NoError(err)
	suite.Require().True(height.EQ(clienttypes.NewHeight(1, 1)))

	// chain-chosen fields come from the upgraded client state
	suite.Require().Equal("newchain", newClientState.ChainId)
	suite.Require().Equal(30*24*time.Hour, newClientState.UnbondingPeriod)

	// client-chosen fields are carried forward from the old client state
	suite.Require().Equal(suite.clientState.TrustLevel, newClientState.TrustLevel)
	suite.Require().Equal(suite.clientState.TrustingPeriod, newClientState.TrustingPeriod)
	suite.Require().Equal(suite.clientState.AllowUpdate, newClientState.AllowUpdate)

	// an upgrade always unfreezes
	suite.Require().False(newClientState.IsFrozen())

	stored, err := suite.ctx.ConsensusState(testClientID, height)
	suite.Require().NoError(err)
	got, err := tm.UnpackConsensusState(stored)
	suite.Require().NoError(err)
	suite.Require().Equal(commitmenttypes.SentinelRoot, got.Root.Hash)
	suite.Require().Equal(upgradedConsensusState.NextValidatorsHash, got.NextValidatorsHash)
}

func (suite *TendermintTestSuite) TestPruneOldestConsensusStatesStopsAtFirstUnexpired() {
	base := suite.now

	for i, offset := range []time.Duration{0, time.Hour, 10 * 24 * time.Hour} {
		header := suite.newHeader(uint64(i+1), offset)
		packed := suite.packHeader(header)
		suite.ctx.SetHostTimestamp(tm.NewTimestamp(base.Add(offset)))
		_, _, err := tm.UpdateState(suite.ctx, testClientID, suite.clientState, packed)
		suite.Require().NoError(err)
	}

	// the third UpdateState, at base+10d, already pruned the first two heights
	// (expired at base+7d and base+7d+1h); at base+8d the third height
	// (expiring at base+17d) is still unexpired, so the scan stops there
	suite.ctx.SetHostTimestamp(tm.NewTimestamp(base.Add(8 * 24 * time.Hour)))

	err := tm.PruneOldestConsensusStates(suite.ctx, testClientID, suite.clientState)
	suite.Require().NoError(err)

	remaining, err := suite.ctx.ConsensusStateHeights(testClientID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Require().Equal(uint64(3), remaining[0].RevisionHeight)
}

func packHeaderAny(header *tm.Header) (*gogotypes.Any, error) {
	bz, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	return &gogotypes.Any{TypeUrl: tm.HeaderTypeURL, Value: bz}, nil
}

func packMisbehaviourAny(m *tm.Misbehaviour) (*gogotypes.Any, error) {
	bz, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return &gogotypes.Any{TypeUrl: tm.MisbehaviourTypeURL, Value: bz}, nil
}
