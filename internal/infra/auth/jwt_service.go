package auth

import (
	"time"

	"horus/config"
	"horus/internal/domain/service"
	"horus/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing secret is read once from configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.SecretKey.Access, time.Now), nil
}

func newJWTService(secret string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		now:    now,
	}
}

// Sign creates a token whose subject is claims.Subject and whose expiry is
// expiresIn after the current time.
func (s *jwtService) Sign(claims service.Claims, expiresIn time.Duration) (string, error) {
	if claims.Subject == uuid.Nil {
		return "", errors.New("token subject must be set")
	}
	if expiresIn <= 0 {
		return "", errors.Errorf("token lifetime must be positive, got %s", expiresIn)
	}

	issuedAt := s.now()
	registered := jwt.RegisteredClaims{
		Subject:   claims.Subject.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expiresIn)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, registered).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses tokenString, checking the HMAC signature and the exp claim.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	registered := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, registered,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	subject, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	claims := &service.Claims{Subject: subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}
