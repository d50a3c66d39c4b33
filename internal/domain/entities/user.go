package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	MaxUserNameLength  = 50
	MaxUserEmailLength = 100

	// bcrypt only looks at the first 72 bytes.
	maxPasswordBytes = 72
)

type User struct {
	Id        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Password  string
}

func NewUser(name, email, password string) *User {
	now := time.Now().UTC()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
	}
}

// NormalizeEmail is applied on every write and lookup so that uniqueness
// is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u.Name == "" {
		return domain.NewValidationError("name must not be empty")
	}
	if utf8.RuneCountInString(u.Name) > MaxUserNameLength {
		return domain.NewValidationError("name must be at most %d characters", MaxUserNameLength)
	}
	if u.Email == "" {
		return domain.NewValidationError("email must not be empty")
	}
	if utf8.RuneCountInString(u.Email) > MaxUserEmailLength || !strings.Contains(u.Email, "@") {
		return domain.NewValidationError("email is not valid")
	}
	if u.Password == "" {
		return domain.NewValidationError("password must not be empty")
	}
	if len(u.Password) > maxPasswordBytes {
		return domain.NewValidationError("password must be at most %d bytes", maxPasswordBytes)
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return domain.NewValidationError("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return VerifyPassword(password, u.Password)
}

// UpdateProfile applies the non-empty fields. A new password is hashed
// before it is stored.
func (u *User) UpdateProfile(name, email, password string) error {
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	if email = NormalizeEmail(email); email != "" {
		u.Email = email
	}
	if password != "" {
		if len(password) > maxPasswordBytes {
			return domain.NewValidationError("password must be at most %d bytes", maxPasswordBytes)
		}
		u.Password = password
		if err := u.HashPassword(); err != nil {
			return err
		}
	}
	u.UpdatedAt = time.Now().UTC()
	return u.validate()
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
