package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"autorent/internal/booking"
	"autorent/internal/db"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// login failures do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 15 * time.Minute

// UserStore is the storage the auth flows need.
type UserStore interface {
	GetByEmail(email string) (*db.User, error)
	GetByID(id int) (*db.User, error)
	Exists(email, username string) (bool, error)
	Create(u *db.User) error
	UpdatePassword(id int, passwordHash string) error
	Delete(id int) error
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a regular user account. Email and username must both be
// free.
func (s *AuthService) Register(username, email, phone, password string) (*db.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", booking.ErrFormat)
	}
	taken, err := s.users.Exists(email, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email or username already in use", booking.ErrForbidden)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &db.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         db.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token for any role.
func (s *AuthService) Login(email, password string) (string, *db.User, error) {
	return s.login(email, password, "")
}

// AdminLogin is Login restricted to admin accounts.
func (s *AuthService) AdminLogin(email, password string) (string, *db.User, error) {
	return s.login(email, password, db.RoleAdmin)
}

func (s *AuthService) login(email, password, requiredRole string) (string, *db.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !checkPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if requiredRole != "" && user.Role != requiredRole {
		return "", nil, ErrInvalidCredentials
	}

	token, err := signToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword updates a user's password. Users change their own password
// after proving the old one; admins may reset anyone's without it.
func (s *AuthService) ChangePassword(userID, requesterID int, requesterIsAdmin bool, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", booking.ErrFormat)
	}
	if !requesterIsAdmin && requesterID != userID {
		return booking.ErrForbidden
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if !requesterIsAdmin && !checkPasswordHash(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	return s.users.UpdatePassword(userID, hash)
}

// DeleteUser removes an account and everything hanging off it. Self-service
// or admin only.
func (s *AuthService) DeleteUser(userID, requesterID int, requesterIsAdmin bool) error {
	if !requesterIsAdmin && requesterID != userID {
		return booking.ErrForbidden
	}
	return s.users.Delete(userID)
}

func signToken(user *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sub":  user.Email,
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
