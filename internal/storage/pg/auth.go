package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	internal_errors "github.com/adiwijaya-dev/forum-api/internal/errors"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `, newId("user"), user.Username, user.Password, user.Fullname).Scan(&user.Id, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.User{}, internal_errors.Conflict("username already taken")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) UserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname, created_at
        FROM users WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("user not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) VerifyAvailableUsername(username string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err == nil {
		return internal_errors.Conflict("username already taken")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("failed to check username: %w", err)
}
