package utils // package utils provides helpers for admin token creation and password hashing

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim carried by tokens issued to the office
// administrator. Routes that mutate the layout or delete users require
// it.
const AdminRole = "ADMIN"

// AdminToken is a signed HS256 JWT granting admin access, along with
// its expiry.
type AdminToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an admin JWT with the standard
// claims: subject, role, expiration and issued-at.
func NewAdminToken(secret string, ttlMin int) (AdminToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": AdminRole,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AdminToken{}, err
	}
	return AdminToken{Token: signed, Exp: exp}, nil
}
