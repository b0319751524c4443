package service

import (
	"time"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/pkg/jwtx"
)

type TokenService struct {
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Mint issues a signed access token for the user. The role claim is fixed
// at issuance; later role changes do not propagate to tokens already in
// the wild.
func (s *TokenService) Mint(user domain.User) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		user.ID,
		user.Role.String(),
		s.Issuer,
		ttl,
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}
