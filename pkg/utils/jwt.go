package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the "typ" claim
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// Claims represents JWT custom claims
type Claims struct {
	Kind string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies expiring bearer tokens with a fixed HMAC secret
type TokenCodec struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenCodec builds a codec for the given secret and HMAC algorithm (HS256, HS384 or HS512)
func NewTokenCodec(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &TokenCodec{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// SetClock replaces the time source used for issuing and verifying tokens
func (c *TokenCodec) SetClock(now func() time.Time) {
	c.now = now
}

// Now returns the codec's current time
func (c *TokenCodec) Now() time.Time {
	return c.now()
}

// AccessTTL returns the configured access token lifetime
func (c *TokenCodec) AccessTTL() time.Duration {
	return c.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime
func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// IssueAccess generates a short-lived access token for subject
func (c *TokenCodec) IssueAccess(subject string) (string, error) {
	return c.issue(subject, KindAccess, c.accessTTL)
}

// IssueRefresh generates a long-lived refresh token for subject
func (c *TokenCodec) IssueRefresh(subject string) (string, error) {
	return c.issue(subject, KindRefresh, c.refreshTTL)
}

func (c *TokenCodec) issue(subject, kind string, ttl time.Duration) (string, error) {
	now := c.now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(c.method, claims)
	return token.SignedString(c.secret)
}

// Verify parses tokenString, checks its signature and rejects it once expired
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	return c.parse(tokenString, jwt.WithExpirationRequired(), jwt.WithTimeFunc(c.now))
}

// Decode checks only the signature and algorithm of tokenString. Time based
// claims are left to the caller.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	return c.parse(tokenString, jwt.WithoutClaimsValidation())
}

func (c *TokenCodec) parse(tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMalformed
	}

	opts = append(opts, jwt.WithValidMethods([]string{c.method.Alg()}))
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignature
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}

// HashToken creates a SHA-256 hash of a token for use as a storage key
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
