package securecell

import (
	"fmt"

	"github.com/pion/logging"
)

// Mode selects one of the three container protocols a Cell drives.
type Mode int

const (
	// ModeSeal is the authenticated (AEAD) container: Seal/Unseal.
	ModeSeal Mode = iota
	// ModeProtect is the unauthenticated, split-output container:
	// Protect/Unprotect.
	ModeProtect
	// ModeImprint is the unauthenticated, single-output container:
	// Imprint/Unimprint.
	ModeImprint
)

func (m Mode) String() string {
	switch m {
	case ModeSeal:
		return "seal"
	case ModeProtect:
		return "protect"
	case ModeImprint:
		return "imprint"
	default:
		return "unknown"
	}
}

// Option configures a Cell at construction time.
type Option func(*Cell)

// WithLoggerFactory injects a logging.LoggerFactory the Cell uses to
// build a named logger for its own diagnostics. Without one, a Cell
// logs nothing.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return func(c *Cell) {
		if factory != nil {
			c.log = factory.NewLogger("securecell")
		}
	}
}

// Cell binds a master secret to one of the three container modes so
// repeated calls don't need to restate both. It is a thin dispatcher
// over the package-level Seal/Protect/Imprint functions and holds no
// state beyond the master secret and an optional logger; it is safe
// for concurrent use by multiple goroutines.
type Cell struct {
	mode         Mode
	masterSecret []byte
	log          logging.LeveledLogger
}

// New builds a Cell bound to mode and masterSecret. masterSecret is
// retained for the lifetime of the Cell; callers that need to wipe it
// afterward should keep their own copy and pass that in, since Cell
// never mutates or zeroes the slice it's given.
func New(mode Mode, masterSecret []byte, opts ...Option) (*Cell, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	c := &Cell{mode: mode, masterSecret: masterSecret}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encrypt dispatches to Seal, Protect, or Imprint depending on the
// Cell's mode. context is the optional in_context for ModeSeal and
// ModeProtect (nil is valid: a random IV is drawn), or the mandatory
// associated context for ModeImprint.
func (c *Cell) Encrypt(plaintext, context []byte) (Context, []byte, error) {
	switch c.mode {
	case ModeSeal:
		ctx, ciphertext, err := Seal(c.masterSecret, plaintext, context)
		c.logResult("seal", err)
		return ctx, ciphertext, err
	case ModeProtect:
		ctx, ciphertext, err := Protect(c.masterSecret, plaintext, context)
		c.logResult("protect", err)
		return ctx, ciphertext, err
	case ModeImprint:
		ciphertext, err := Imprint(c.masterSecret, plaintext, context)
		c.logResult("imprint", err)
		return nil, ciphertext, err
	default:
		return nil, nil, fmt.Errorf("%w: unknown mode %v", ErrInvalidParameter, c.mode)
	}
}

// Decrypt dispatches to Unseal, Unprotect, or Unimprint depending on
// the Cell's mode. ctx carries whatever out-of-band value each mode
// needs besides the ciphertext itself: for ModeSeal and ModeProtect
// it's the container context returned by the matching Encrypt call;
// for ModeImprint, which emits no container context, it's repurposed
// to carry the mandatory associated context instead.
func (c *Cell) Decrypt(ctx Context, ciphertext []byte) ([]byte, error) {
	switch c.mode {
	case ModeSeal:
		plaintext, err := Unseal(c.masterSecret, ctx, ciphertext)
		c.logResult("unseal", err)
		return plaintext, err
	case ModeProtect:
		plaintext, err := Unprotect(c.masterSecret, ctx, ciphertext)
		c.logResult("unprotect", err)
		return plaintext, err
	case ModeImprint:
		plaintext, err := Unimprint(c.masterSecret, []byte(ctx), ciphertext)
		c.logResult("unimprint", err)
		return plaintext, err
	default:
		return nil, fmt.Errorf("%w: unknown mode %v", ErrInvalidParameter, c.mode)
	}
}

func (c *Cell) logResult(op string, err error) {
	if c.log == nil {
		return
	}
	if err != nil {
		c.log.Debugf("%s failed: %v", op, err)
		return
	}
	c.log.Debugf("%s succeeded", op)
}
