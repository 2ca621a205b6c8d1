package authsvc

import (
	"context"
	"errors"

	"github.com/EstevanMarcatti/DISKFINAL2/util/hash"
	jwtutil "github.com/EstevanMarcatti/DISKFINAL2/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// Service authenticates the single configured operator. There is no user
// table; the credentials live in the environment.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	user         string
	passwordHash string
	secret       string
}

func New(user, passwordHash, secret string) Service {
	return &service{user: user, passwordHash: passwordHash, secret: secret}
}

func (s *service) Login(_ context.Context, username, password string) (string, error) {
	if username != s.user || !hash.Check(s.passwordHash, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, username, "admin", 24)
}
