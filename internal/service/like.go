package service

import (
	"github.com/adiwijaya-dev/forum-api/internal/domain"
)

type LikeService interface {
	Toggle(payload domain.Payload) error
}

type Like struct {
	likes    LikeStorage
	comments CommentStorage
	threads  ThreadStorage
}

type LikeStorage interface {
	AddLike(like domain.NewLike) (string, error)
	// VerifyAvailableLike returns the existing like id for the
	// (thread, comment, owner) triple, or "" when none exists.
	VerifyAvailableLike(threadId, commentId, owner string) (string, error)
	DeleteLike(likeId string) error
	GetLikesByThreadId(threadId string) ([]domain.RawLike, error)
}

func NewLike(likes LikeStorage, comments CommentStorage, threads ThreadStorage) *Like {
	return &Like{likes, comments, threads}
}

var _ LikeService = (*Like)(nil)

// Toggle likes the comment when no like exists for this owner, unlikes it
// otherwise. Every call changes state; two calls cancel out.
//
// The check-then-act pair below is racy across concurrent requests for the
// same (comment, owner). This service performs no locking; atomicity is the
// storage contract's responsibility (the likes table carries a unique
// constraint on (comment_id, owner) and AddLike treats a conflicting insert
// as success).
func (s *Like) Toggle(payload domain.Payload) error {
	like, err := domain.ParseNewLike(payload)
	if err != nil {
		return err
	}

	if err := s.threads.CheckAvailabilityThread(like.ThreadId); err != nil {
		return err
	}
	if err := s.comments.CheckAvailabilityComment(like.CommentId); err != nil {
		return err
	}

	likeId, err := s.likes.VerifyAvailableLike(like.ThreadId, like.CommentId, like.Owner)
	if err != nil {
		return err
	}
	if likeId != "" {
		return s.likes.DeleteLike(likeId)
	}
	_, err = s.likes.AddLike(like)
	return err
}
