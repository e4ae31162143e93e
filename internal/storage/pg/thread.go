package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	internal_errors "github.com/adiwijaya-dev/forum-api/internal/errors"
)

func (s *Storage) AddThread(thread domain.NewThread) (domain.CreatedThread, error) {
	var id, title, owner string
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, newId("thread"), thread.Title, thread.Body, thread.Owner, time.Now().UTC()).Scan(&id, &title, &owner)
	if err != nil {
		return domain.CreatedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewCreatedThread(id, title, owner)
}

func (s *Storage) CheckAvailabilityThread(threadId string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", threadId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("thread not found")
		}
		return fmt.Errorf("failed to check thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThread(threadId string) (domain.RawThread, error) {
	var thread domain.RawThread
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, t.date, u.username
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, threadId).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RawThread{}, internal_errors.NotFound("thread not found")
		}
		return domain.RawThread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}
