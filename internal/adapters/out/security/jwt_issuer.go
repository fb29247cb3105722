package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of an access token when none is configured.
const DefaultTokenTTL = 30 * time.Minute

var signingMethod = jwt.SigningMethodHS256

// accessClaims is the payload of an access token: sub carries the email.
type accessClaims struct {
	Role string `json:"role"`
	UID  string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens with a shared secret.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of the issuer reading time from now.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	c := *i
	c.now = now
	return &c
}

func (i *JWTIssuer) Issue(_ context.Context, u *user.User) (ports.AccessToken, error) {
	if err := u.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := accessClaims{
		Role: u.Role().String(),
		UID:  u.ID().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret)
	if err != nil {
		return ports.AccessToken{}, fmt.Errorf("signing jwt: %w", err)
	}

	return ports.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

func (i *JWTIssuer) Parse(_ context.Context, token string) (ports.TokenClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause("token has expired", err)
		}
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause("could not validate credentials", err)
	}

	if claims.Subject == "" {
		return ports.TokenClaims{}, errs.NewUnauthenticatedError("token has no subject")
	}
	userID, err := kernel.UUIDFromString(claims.UID)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause("could not validate credentials", err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthenticatedErrorWithCause("could not validate credentials", err)
	}

	return ports.TokenClaims{UserID: userID, Email: claims.Subject, Role: role}, nil
}
