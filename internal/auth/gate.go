// Package auth implements the local authentication gate that must admit the
// caller before credential-list reads are invoked. The persistence layer stays
// gate-agnostic; the composition root enforces the check.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/jhpk/purchtrac/internal/crypto"
	"github.com/jhpk/purchtrac/internal/errs"
)

// Settings keys holding the passphrase verifier.
const (
	keyPassHash = "gate.pass_hash"
	keyPassSalt = "gate.pass_salt"
)

// SettingsStore persists small opaque gate values. Implemented by the sqlite
// settings DAO.
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Gate verifies the local passphrase and issues short-lived session tokens.
type Gate struct {
	store   SettingsStore
	signKey []byte
	ttl     time.Duration
	lim     *AttemptLimiter
}

// NewGate constructs a Gate with required dependencies.
func NewGate(store SettingsStore, signKey []byte, ttl time.Duration, lim *AttemptLimiter) *Gate {
	return &Gate{store: store, signKey: signKey, ttl: ttl, lim: lim}
}

// Enrolled reports whether a passphrase has been set.
func (g *Gate) Enrolled(ctx context.Context) (bool, error) {
	hash, err := g.store.Get(ctx, keyPassHash)
	if err != nil {
		return false, err
	}
	return hash != nil, nil
}

// SetPassphrase stores a fresh verifier for the passphrase, replacing any
// previous one.
func (g *Gate) SetPassphrase(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("empty passphrase: %w", errs.ErrValidation)
	}
	salt, err := pkgcrypto.RandBytes(16)
	if err != nil {
		return err
	}
	hash := pkgcrypto.HashPassphrase([]byte(passphrase), salt)
	if err := g.store.Put(ctx, keyPassSalt, salt); err != nil {
		return err
	}
	return g.store.Put(ctx, keyPassHash, hash)
}

// Unlock verifies the passphrase, applying the attempt limiter, and returns a
// signed session token.
func (g *Gate) Unlock(ctx context.Context, passphrase string) (string, error) {
	if ok, _ := g.lim.Allow(); !ok {
		return "", errs.ErrRateLimited
	}

	hash, err := g.store.Get(ctx, keyPassHash)
	if err != nil {
		return "", err
	}
	salt, err := g.store.Get(ctx, keyPassSalt)
	if err != nil {
		return "", err
	}
	if hash == nil || salt == nil {
		return "", fmt.Errorf("no passphrase enrolled: %w", errs.ErrUnauthorized)
	}

	if !pkgcrypto.VerifyPassphrase([]byte(passphrase), salt, hash) {
		if blocked, _ := g.lim.Failure(); blocked {
			return "", errs.ErrRateLimited
		}
		return "", errs.ErrUnauthorized
	}
	g.lim.Success()

	return g.issueToken()
}

// Require validates a session token previously issued by Unlock.
func (g *Gate) Require(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("invalid session token: %w", errs.ErrUnauthorized)
	}
	return nil
}

// issueToken creates a signed HS256 JWT with a fresh jti.
func (g *Gate) issueToken() (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        jti.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.signKey)
}
