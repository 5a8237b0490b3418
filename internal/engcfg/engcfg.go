// Package engcfg holds the in-memory configuration Split and Recover
// accept, scoped to what a pure arithmetic/BIP39 core actually needs:
// no file or environment loading, since this core touches neither (see
// internal/obslog for the matching no-filesystem logger).
package engcfg

import "github.com/mrz1836/schiavinato-sss/internal/obslog"

// Config controls Split/Recover behaviour.
type Config struct {
	// StrictValidation re-validates a recovered mnemonic's own BIP39
	// checksum before Recover reports success. It defaults to true:
	// without it, a recovery from fewer than k shares can still pass
	// both dual-path checksum checks (they are linear in the
	// interpolated values and agree regardless of share count) and
	// return a fabricated mnemonic with Success set and no error
	// field raised at all. Only disable this for diagnostics where an
	// inconsistent recovery result is itself the thing being examined.
	StrictValidation bool

	// ScryptWorkFactor is the log2(N) scrypt cost parameter for
	// internal/shareenc's Encrypt. Split and Recover do not read it;
	// shareenc.Encrypt takes the work factor as an argument.
	// Higher is slower but more resistant to offline brute force.
	ScryptWorkFactor int

	// Logger receives DebugAttrs/ErrorAttrs calls made during
	// Split/Recover. Defaults to obslog.NullLogger() when unset.
	Logger *obslog.Logger
}

// DefaultScryptWorkFactor is scrypt's recommended minimum N exponent
// for interactive use (N = 2^15).
const DefaultScryptWorkFactor = 15

// Defaults returns the default configuration: strict BIP39
// re-validation on recovery, scrypt's interactive work factor, and a
// discarding logger.
func Defaults() *Config {
	return &Config{
		StrictValidation: true,
		ScryptWorkFactor: DefaultScryptWorkFactor,
		Logger:           obslog.NullLogger(),
	}
}

// Log returns c.Logger, or a NullLogger if c is nil or c.Logger is
// unset, so callers never need a nil check.
func (c *Config) Log() *obslog.Logger {
	if c == nil || c.Logger == nil {
		return obslog.NullLogger()
	}
	return c.Logger
}
