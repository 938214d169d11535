// Package applesecret builds the client secret that Sign in with Apple
// expects from an OAuth provider: an ES256 JWT signed with the team's
// .p8 key.
package applesecret

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Audience is the only audience Apple accepts.
	Audience = "https://appleid.apple.com"
	// Lifetime is the longest validity Apple allows.
	Lifetime = 180 * 24 * time.Hour

	DefaultTeamID   = "YXXWV4ZNFS"
	DefaultClientID = "com.juan-oclock.kansyl.kansyl"
)

// ErrMissingInput is returned when a required parameter is blank.
var ErrMissingInput = errors.New("applesecret: missing input")

// Params are the values from the Apple developer account.
type Params struct {
	TeamID   string
	ClientID string // services ID or bundle ID
	KeyID    string
	KeyPath  string // path to the AuthKey_<KeyID>.p8 file
}

// WithDefaults fills a blank team or client ID with the app's values.
func (p Params) WithDefaults() Params {
	if p.TeamID == "" {
		p.TeamID = DefaultTeamID
	}
	if p.ClientID == "" {
		p.ClientID = DefaultClientID
	}
	return p
}

// Validate reports the first blank field.
func (p Params) Validate() error {
	switch {
	case p.TeamID == "":
		return fmt.Errorf("%w: team id", ErrMissingInput)
	case p.ClientID == "":
		return fmt.Errorf("%w: client id", ErrMissingInput)
	case p.KeyID == "":
		return fmt.Errorf("%w: key id", ErrMissingInput)
	case p.KeyPath == "":
		return fmt.Errorf("%w: private key path", ErrMissingInput)
	}
	return nil
}

// Generate returns the signed secret, issued at now and expiring
// Lifetime later. A missing key file yields an error matching
// fs.ErrNotExist.
func Generate(p Params, now time.Time) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	pem, err := os.ReadFile(p.KeyPath)
	if err != nil {
		return "", fmt.Errorf("applesecret: reading key: %w", err)
	}
	key, err := jwt.ParseECPrivateKeyFromPEM(pem)
	if err != nil {
		return "", fmt.Errorf("applesecret: parsing key %s: %w", p.KeyPath, err)
	}

	iat := now.Unix()
	claims := jwt.MapClaims{
		"iss": p.TeamID,
		"iat": iat,
		"exp": now.Add(Lifetime).Unix(),
		"aud": Audience,
		"sub": p.ClientID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	tok.Header["kid"] = p.KeyID

	s, err := tok.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("applesecret: signing: %w", err)
	}
	return s, nil
}

// ExpiresAt is when a secret generated at now stops being accepted.
func ExpiresAt(now time.Time) time.Time {
	return now.Add(Lifetime)
}
