package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	internal_errors "github.com/adiwijaya-dev/forum-api/internal/errors"
)

func (s *Storage) AddComment(comment domain.NewComment) (domain.CreatedComment, error) {
	var id, content, owner string
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, owner, thread_id, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, newId("comment"), comment.Content, comment.Owner, comment.ThreadId, time.Now().UTC()).Scan(&id, &content, &owner)
	if err != nil {
		return domain.CreatedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewCreatedComment(id, content, owner)
}

func (s *Storage) CheckAvailabilityComment(commentId string) error {
	var id string
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1", commentId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("comment not found")
		}
		return fmt.Errorf("failed to check comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(commentId, owner string) error {
	var id string
	err := s.db.QueryRow(
		"SELECT id FROM comments WHERE id = $1 AND owner = $2",
		commentId, owner,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Forbidden("not the comment owner")
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	return nil
}

// DeleteComment marks the comment as deleted. The row stays so the thread
// view can render the redaction placeholder in place.
func (s *Storage) DeleteComment(commentId string) error {
	result, err := s.db.Exec(
		"UPDATE comments SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL",
		commentId, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		// Already deleted. The caller checked availability, so treat the
		// repeated delete as a no-op rather than an error.
		return nil
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId string) ([]domain.RawComment, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, c.date, c.content, c.deleted_at
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.RawComment
	for rows.Next() {
		var comment domain.RawComment
		var deletedAt sql.NullTime
		if err := rows.Scan(&comment.Id, &comment.Username, &comment.Date, &comment.Content, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if deletedAt.Valid {
			comment.DeletedAt = &deletedAt.Time
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
