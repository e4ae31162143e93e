package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
)

// AddLike inserts a like for (comment, owner). When a concurrent request
// already inserted one, the unique constraint turns our insert into a no-op
// and we return the id of the row that won. Either way the comment ends up
// liked, which is all the toggle needs.
func (s *Storage) AddLike(like domain.NewLike) (string, error) {
	var id string
	err := s.db.QueryRow(`
        INSERT INTO likes (id, thread_id, comment_id, owner)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (comment_id, owner) DO NOTHING
        RETURNING id
    `, newId("like"), like.ThreadId, like.CommentId, like.Owner).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to insert like: %w", err)
	}

	err = s.db.QueryRow(
		"SELECT id FROM likes WHERE comment_id = $1 AND owner = $2",
		like.CommentId, like.Owner,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to fetch existing like: %w", err)
	}
	return id, nil
}

// VerifyAvailableLike returns the like id when the owner already likes the
// comment, or an empty string when they do not.
func (s *Storage) VerifyAvailableLike(threadId, commentId, owner string) (string, error) {
	var id string
	err := s.db.QueryRow(
		"SELECT id FROM likes WHERE thread_id = $1 AND comment_id = $2 AND owner = $3",
		threadId, commentId, owner,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to check like: %w", err)
	}
	return id, nil
}

func (s *Storage) DeleteLike(likeId string) error {
	_, err := s.db.Exec("DELETE FROM likes WHERE id = $1", likeId)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikesByThreadId(threadId string) ([]domain.RawLike, error) {
	rows, err := s.db.Query(
		"SELECT id, thread_id, comment_id, owner FROM likes WHERE thread_id = $1",
		threadId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	defer rows.Close()

	var likes []domain.RawLike
	for rows.Next() {
		var like domain.RawLike
		if err := rows.Scan(&like.Id, &like.ThreadId, &like.CommentId, &like.Owner); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		likes = append(likes, like)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return likes, nil
}
