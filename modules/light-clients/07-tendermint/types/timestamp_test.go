package types_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
	tm "github.com/cosmos/ibc-tm-lightclient/modules/light-clients/07-tendermint/types"
)

func TestTimestampAddOverflow(t *testing.T) {
	near := tm.NewTimestampFromNanos(math.MaxUint64 - 10)
	_, err := near.Add(1000)
	require.ErrorIs(t, err, clienttypes.ErrTimestampOverflow)
}

func TestTimestampAddNegativeDuration(t *testing.T) {
	ts := tm.NewTimestamp(time.Unix(0, 1000))
	_, err := ts.Add(-time.Second)
	require.ErrorIs(t, err, clienttypes.ErrTimestampOverflow)
}

func TestTimestampZeroRejectsConversion(t *testing.T) {
	var zero tm.Timestamp
	require.True(t, zero.IsZero())
	_, err := zero.ToTendermintTime()
	require.ErrorIs(t, err, clienttypes.ErrInvalidTimestamp)
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	want := tm.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	bz, err := json.Marshal(want)
	require.NoError(t, err)

	var got tm.Timestamp
	require.NoError(t, json.Unmarshal(bz, &got))
	require.Equal(t, want, got)
	require.Equal(t, want.NanoSeconds(), got.NanoSeconds())
}

func TestTimestampOrdering(t *testing.T) {
	early := tm.NewTimestampFromNanos(100)
	late := tm.NewTimestampFromNanos(200)

	require.True(t, early.Before(late))
	require.True(t, late.After(early))
	require.False(t, early.After(late))
}
