package service

import (
	"regexp"
	"unicode/utf8"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/errors"
	"github.com/adiwijaya-dev/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const usernameMaxLength = 50

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type AuthService interface {
	Register(username, password, fullname string) (domain.User, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage    AuthStorage
	jwt        Jwt
	bcryptCost int
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByUsername(username string) (domain.User, error)
	VerifyAvailableUsername(username string) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

// NewAuth builds the auth service. bcryptCost of 0 falls back to
// bcrypt.DefaultCost.
func NewAuth(storage AuthStorage, jwt Jwt, bcryptCost int) *Auth {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{storage, jwt, bcryptCost}
}

var _ AuthService = (*Auth)(nil)

func (a *Auth) Register(username, password, fullname string) (domain.User, error) {
	if username == "" {
		return domain.User{}, errors.MissingField("username")
	}
	if utf8.RuneCountInString(username) > usernameMaxLength {
		return domain.User{}, errors.LimitExceeded("username must be at most 50 characters")
	}
	if !usernamePattern.MatchString(username) {
		return domain.User{}, errors.Conflict("username contains restricted characters")
	}
	if password == "" {
		return domain.User{}, errors.MissingField("password")
	}

	if err := a.storage.VerifyAvailableUsername(username); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "err", err)
		return domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{
		Username: username,
		Password: string(hash),
		Fullname: fullname,
	})
	if err != nil {
		return domain.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Unauthorized("wrong username or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return "", errors.Unauthorized("wrong username or password")
	}

	return a.jwt.NewToken(user)
}
