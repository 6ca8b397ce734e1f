package types

// Config bundles the configuration options this client recognises. The
// allow-update flags govern recovery of an expired or frozen client through
// governance and are consumed only by the (out-of-scope) validation layer;
// execution carries them through AllowUpdate on ClientState unmodified.
// Verifier selects which header-verification oracle validation should use.
type Config struct {
	allowUpdateAfterExpiry       bool
	allowUpdateAfterMisbehaviour bool
	verifier                     VerifierProvider
}

// Option configures a Config, following the functional-options pattern
// cosmos-sdk's baseapp uses for wiring optional dependencies.
type Option func(*Config)

// WithAllowUpdateAfterExpiry sets whether an expired client may be revived
// by a governance-approved update.
func WithAllowUpdateAfterExpiry(allow bool) Option {
	return func(c *Config) { c.allowUpdateAfterExpiry = allow }
}

// WithAllowUpdateAfterMisbehaviour sets whether a frozen client may be
// revived by a governance-approved update.
func WithAllowUpdateAfterMisbehaviour(allow bool) Option {
	return func(c *Config) { c.allowUpdateAfterMisbehaviour = allow }
}

// WithVerifier selects a non-default Verifier seam. Hosts that don't call
// this get DefaultVerifier, ibc-go's production Tendermint light-client
// verifier.
func WithVerifier(v VerifierProvider) Option {
	return func(c *Config) { c.verifier = v }
}

// NewConfig builds a Config from the given options, defaulting to
// DefaultVerifier and both allow-update flags false.
func NewConfig(opts ...Option) Config {
	c := Config{verifier: DefaultVerifier{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// AllowUpdateAfterExpiry reports the configured recovery-after-expiry flag.
func (c Config) AllowUpdateAfterExpiry() bool { return c.allowUpdateAfterExpiry }

// AllowUpdateAfterMisbehaviour reports the configured recovery-after-
// misbehaviour flag.
func (c Config) AllowUpdateAfterMisbehaviour() bool { return c.allowUpdateAfterMisbehaviour }

// VerifierProvider returns the configured Verifier seam.
func (c Config) VerifierProvider() VerifierProvider { return c.verifier }
