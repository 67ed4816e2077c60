package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Principal holds identity extracted from a validated token.
type Principal struct {
	UserID string
	Role   string
	Claims jwt.MapClaims
}

var (
	ErrNoToken       = errors.New("no token provided")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidIssuer = errors.New("invalid issuer")
	ErrMissingSub    = errors.New("missing sub claim")
)

// Verifier issues and verifies bearer tokens. Tokens are HS256-signed with
// the deployment secret; there is no revocation list, logout is client-side
// and a token stays valid until natural expiry.
type Verifier struct {
	cfg Config
}

// NewVerifier constructs a Verifier from config.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// IssueToken signs a token encoding the user id and role with the configured
// expiry.
func (v *Verifier) IssueToken(userID, role string) (string, error) {
	now := jwt.TimeFunc()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iss":  v.cfg.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(v.cfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.cfg.Secret)
}

// ParseAndVerifyToken verifies a bearer token, validates issuer/exp and
// returns the Principal. Expired tokens are reported as ErrExpiredToken so
// the handler layer can distinguish them from malformed ones.
func (v *Verifier) ParseAndVerifyToken(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	tokenString = strings.TrimSpace(tokenString)
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// enforce HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.cfg.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if iss, _ := claims["iss"].(string); iss != v.cfg.Issuer {
		return nil, ErrInvalidIssuer
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrMissingSub
	}

	role, _ := claims["role"].(string)

	return &Principal{
		UserID: sub,
		Role:   role,
		Claims: claims,
	}, nil
}
