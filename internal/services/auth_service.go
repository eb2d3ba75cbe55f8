package services

import (
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"familiar/internal/domain"
	"familiar/internal/repos"
)

// New players start with enough gears for a couple of cheap items.
const startingGears = 100

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Register creates the user, binds the browser session and issues a token so
// the client can use either credential.
func (s *AuthService) Register(sid, username, email, password string) (*domain.User, string, error) {
	taken, err := s.Users.Taken(username, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Hash:     string(hash),
		Gears:    startingGears,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, "", err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, "", err
	}
	tok, err := s.IssueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *AuthService) Login(sid, username, password string) (*domain.User, string, error) {
	u, err := s.Users.ByUsername(username)
	if err == sql.ErrNoRows {
		return nil, "", domain.ErrBadCreds
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", domain.ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, "", err
	}
	tok, err := s.IssueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

func (s *AuthService) UserByID(id string) (*domain.User, error) {
	return s.Users.ByID(id)
}

func (s *AuthService) IssueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Username: u.Username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// VerifyToken returns the user id a valid bearer token was issued for.
func (s *AuthService) VerifyToken(raw string) (string, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
