package types

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// Timestamp is a monotonic wall-clock value expressed in nanoseconds since
// the Unix epoch. The zero value is reserved as "unset" and is not
// convertible to a Tendermint time.
type Timestamp struct {
	nanoseconds uint64
}

// NewTimestamp builds a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{nanoseconds: uint64(t.UnixNano())}
}

// NewTimestampFromNanos builds a Timestamp directly from a nanosecond count.
func NewTimestampFromNanos(nanos uint64) Timestamp {
	return Timestamp{nanoseconds: nanos}
}

// IsZero reports whether the timestamp is the unset sentinel value.
func (t Timestamp) IsZero() bool {
	return t.nanoseconds == 0
}

// Add returns t + d, or ErrTimestampOverflow if the addition would overflow
// a uint64 nanosecond count.
func (t Timestamp) Add(d time.Duration) (Timestamp, error) {
	if d < 0 {
		// trusting periods and clock drift are always non-negative in this
		// engine; a negative duration here indicates a caller bug upstream.
		return Timestamp{}, errorsmod.Wrap(clienttypes.ErrTimestampOverflow, "duration must be non-negative")
	}
	delta := uint64(d)
	if t.nanoseconds > math.MaxUint64-delta {
		return Timestamp{}, errorsmod.Wrapf(clienttypes.ErrTimestampOverflow, "timestamp %d + duration %s overflows", t.nanoseconds, d)
	}
	return Timestamp{nanoseconds: t.nanoseconds + delta}, nil
}

// Before reports whether t occurs strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.nanoseconds < other.nanoseconds
}

// After reports whether t occurs strictly after other.
func (t Timestamp) After(other Timestamp) bool {
	return t.nanoseconds > other.nanoseconds
}

// ToTendermintTime converts the timestamp to a time.Time suitable for
// cometbft's light-client verifier. It fails with ErrInvalidTimestamp if the
// timestamp is the unset zero value, since that can never correspond to a
// real block or host clock reading.
func (t Timestamp) ToTendermintTime() (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, errorsmod.Wrap(clienttypes.ErrInvalidTimestamp, "timestamp is unset")
	}
	return time.Unix(0, int64(t.nanoseconds)).UTC(), nil
}

// NanoSeconds returns the raw nanosecond count.
func (t Timestamp) NanoSeconds() uint64 {
	return t.nanoseconds
}

// MarshalJSON encodes the nanosecond count as a quoted decimal string, the
// same convention cosmos-sdk's Int/Coin types use to keep uint64 values
// exact across JSON's float64 number type.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(t.nanoseconds, 10))
}

// UnmarshalJSON decodes a quoted decimal nanosecond count back into a
// Timestamp, the inverse of MarshalJSON.
func (t *Timestamp) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	nanos, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	t.nanoseconds = nanos
	return nil
}
