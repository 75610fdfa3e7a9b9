package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rhythmicmansion/server/internal/errs"
)

// JWTManager issues and verifies signed identity assertions.
// Assertions are stateless: verification checks signature and expiry only,
// there is no revocation list.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Issue signs the given claims set with the process secret. Caller claims are
// taken as-is (the route that exposes this is the trust boundary); exp and iat
// are always set by the manager.
func (m *JWTManager) Issue(claims map[string]any) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = jwt.NewNumericDate(time.Now())
	mc["exp"] = jwt.NewNumericDate(exp)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify decodes the token and validates signature and expiry. It returns
// errs.ErrTokenExpired for assertions past their window and errs.ErrTokenInvalid
// for everything else; callers treat both as a generic rejection.
func (m *JWTManager) Verify(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, errs.ErrTokenInvalid
	}
	return claims, nil
}

// Email extracts the subject email from a verified claims set.
func Email(claims jwt.MapClaims) string {
	if e, ok := claims["email"].(string); ok {
		return e
	}
	return ""
}
