package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	cmtlight "github.com/cometbft/cometbft/light"
	cmttypes "github.com/cometbft/cometbft/types"

	clienttypes "github.com/cosmos/ibc-tm-lightclient/modules/core/02-client/types"
)

// VerifyOptions bundles the trust parameters a Verifier needs to check a
// header against a trusted consensus state.
type VerifyOptions struct {
	TrustLevel     Fraction
	TrustingPeriod time.Duration
	MaxClockDrift  time.Duration
}

// Verifier is the injection seam for header-verification logic. It is the
// one piece of cryptographic light-client algorithm this engine depends
// on without implementing: hosts may substitute a stricter or mocked
// verifier without forking any execution logic.
type Verifier interface {
	// VerifyUpdateHeader checks untrustedHeader against trustedConsState
	// (the last consensus state the client trusts) and trustedValidators
	// (the validator set that signed it), at clock reading now. It returns
	// nil if the header would be accepted, or a verification error
	// otherwise.
	VerifyUpdateHeader(
		trustedConsState ConsensusState,
		trustedValidators *cmttypes.ValidatorSet,
		untrustedHeader *Header,
		options VerifyOptions,
		now time.Time,
	) error
}

// VerifierProvider is a way for a host to obtain the Verifier it wants
// execution's validation-layer counterpart to use.
type VerifierProvider interface {
	Verifier() Verifier
}

// DefaultVerifier wraps cometbft's production light-client verification
// algorithm (light.Verify), the same call checkValidity makes in ibc-go's
// 07-tendermint update.go, adapted here from tendermint/tendermint onto
// cometbft/cometbft per ibc-go v8's dependency migration.
type DefaultVerifier struct{}

var _ Verifier = DefaultVerifier{}

// Verifier implements VerifierProvider.
func (DefaultVerifier) Verifier() Verifier {
	return DefaultVerifier{}
}

// VerifyUpdateHeader implements Verifier using cometbft's ProdVerifier
// algorithm via light.Verify.
func (DefaultVerifier) VerifyUpdateHeader(
	trustedConsState ConsensusState,
	trustedValidators *cmttypes.ValidatorSet,
	untrustedHeader *Header,
	options VerifyOptions,
	now time.Time,
) error {
	trustedTime, err := trustedConsState.Timestamp.ToTendermintTime()
	if err != nil {
		return err
	}

	trustedHeader := &cmttypes.Header{
		ChainID:            untrustedHeader.SignedHeader.Header.ChainID,
		Height:             int64(untrustedHeader.TrustedHeight.RevisionHeight),
		Time:               trustedTime,
		NextValidatorsHash: trustedConsState.NextValidatorsHash,
	}
	trustedSignedHeader := &cmttypes.SignedHeader{Header: trustedHeader}

	if err := cmtlight.Verify(
		trustedSignedHeader,
		trustedValidators,
		untrustedHeader.SignedHeader,
		untrustedHeader.ValidatorSet,
		options.TrustingPeriod,
		now,
		options.MaxClockDrift,
		options.TrustLevel.ToTendermint(),
	); err != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, err.Error())
	}
	return nil
}
