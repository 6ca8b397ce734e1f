package types

import (
	"fmt"

	cmtmath "github.com/cometbft/cometbft/libs/math"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// Fraction defines a rational trust-level, e.g. default 1/3. It is
// constrained to 1/3 <= level <= 1, the same bound cometbft's light
// client requires of its ProdVerifier trust level.
type Fraction struct {
	Numerator   uint64 `json:"numerator" yaml:"numerator"`
	Denominator uint64 `json:"denominator" yaml:"denominator"`
}

// NewFraction returns a new Fraction instance.
func NewFraction(numerator, denominator uint64) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// DefaultTrustLevel is 1/3, the BFT fault-tolerance threshold.
var DefaultTrustLevel = NewFraction(1, 3)

// Validate checks that 1/3 <= numerator/denominator <= 1.
func (f Fraction) Validate() error {
	if f.Denominator == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "trust level denominator cannot be zero")
	}
	if f.Numerator*3 < f.Denominator {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "trust level %d/%d must be greater than or equal to 1/3", f.Numerator, f.Denominator)
	}
	if f.Numerator > f.Denominator {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClient, "trust level %d/%d must be less than or equal to 1", f.Numerator, f.Denominator)
	}
	return nil
}

// ToTendermint converts the trust level to cometbft's Fraction type, the
// shape its light.Verify call expects.
func (f Fraction) ToTendermint() cmtmath.Fraction {
	return cmtmath.Fraction{
		Numerator:   int64(f.Numerator),
		Denominator: int64(f.Denominator),
	}
}

// String renders the fraction as "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}
