package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	internal_errors "github.com/adiwijaya-dev/forum-api/internal/errors"
)

func (s *Storage) AddReply(reply domain.NewReply) (domain.CreatedReply, error) {
	var id, content, owner string
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, owner, thread_id, comment_id, date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, content, owner
    `, newId("reply"), reply.Content, reply.Owner, reply.ThreadId, reply.CommentId, time.Now().UTC()).Scan(&id, &content, &owner)
	if err != nil {
		return domain.CreatedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewCreatedReply(id, content, owner)
}

func (s *Storage) CheckAvailabilityReply(replyId string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM replies WHERE id = $1", replyId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("reply not found")
		}
		return fmt.Errorf("failed to check reply: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(replyId, owner string) error {
	var id string
	err := s.db.QueryRow(
		"SELECT id FROM replies WHERE id = $1 AND owner = $2",
		replyId, owner,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Forbidden("not the reply owner")
		}
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	return nil
}

func (s *Storage) DeleteReply(replyId string) error {
	_, err := s.db.Exec(
		"UPDATE replies SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL",
		replyId, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return nil
}

func (s *Storage) GetRepliesByThreadId(threadId string) ([]domain.RawReply, error) {
	rows, err := s.db.Query(`
        SELECT r.id, r.comment_id, u.username, r.date, r.content, r.deleted_at
        FROM replies r
        JOIN users u ON u.id = r.owner
        WHERE r.thread_id = $1
        ORDER BY r.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.RawReply
	for rows.Next() {
		var reply domain.RawReply
		var deletedAt sql.NullTime
		if err := rows.Scan(&reply.Id, &reply.CommentId, &reply.Username, &reply.Date, &reply.Content, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		if deletedAt.Valid {
			reply.DeletedAt = &deletedAt.Time
		}
		replies = append(replies, reply)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}
