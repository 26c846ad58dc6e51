package services

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"dealswapify/internal/config"
	"dealswapify/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	secret  string
	issuer  string
	userID  uuid.UUID
	service TokenServiceInterface
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.secret = "test-secret"
	s.issuer = "https://auth.dealswapify.test"
	s.userID = uuid.New()
	s.service = NewTokenService(&config.JWTConfig{
		Secret: s.secret,
		Issuer: s.issuer,
	})
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) claims(expiresIn time.Duration) models.CustomClaims {
	now := time.Now()
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   s.userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Email: "seller@example.com",
		Role:  "authenticated",
	}
}

func (s *TokenServiceTestSuite) sign(claims models.CustomClaims, secret string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	s.Require().NoError(err)
	return token
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Valid() {
	token := s.sign(s.claims(time.Hour), s.secret)

	claims, err := s.service.ValidateAccessToken(token)

	s.Require().NoError(err)
	userID, err := claims.UserID()
	s.NoError(err)
	s.Equal(s.userID, userID)
	s.Equal("seller@example.com", claims.Email)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")

	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	token := s.sign(s.claims(-time.Minute), s.secret)

	_, err := s.service.ValidateAccessToken(token)

	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongSecret() {
	token := s.sign(s.claims(time.Hour), "another-secret")

	_, err := s.service.ValidateAccessToken(token)

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	claims := s.claims(time.Hour)
	claims.Issuer = "https://evil.example.com"

	_, err := s.service.ValidateAccessToken(s.sign(claims, s.secret))

	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_IssuerNotEnforcedWhenUnset() {
	service := NewTokenService(&config.JWTConfig{Secret: s.secret})
	claims := s.claims(time.Hour)
	claims.Issuer = "anyone"

	_, err := service.ValidateAccessToken(s.sign(claims, s.secret))

	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_SubjectMustBeUserID() {
	claims := s.claims(time.Hour)
	claims.Subject = "seller@example.com"

	_, err := s.service.ValidateAccessToken(s.sign(claims, s.secret))

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsOtherAlgorithms() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, s.claims(time.Hour)).SignedString(key)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Malformed() {
	_, err := s.service.ValidateAccessToken("not.a.jwt")

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name      string
		header    string
		expected  string
		expectErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", expected: "abc"},
		{name: "empty", header: "", expectErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", expectErr: true},
		{name: "missing token", header: "Bearer   ", expectErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.expectErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tt.expected, token)
		})
	}
}
