package service

import (
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/service/sanitize"
)

type CommentService interface {
	Add(payload domain.Payload) (domain.CreatedComment, error)
	Delete(payload domain.Payload) error
}

type Comment struct {
	comments CommentStorage
	threads  ThreadStorage
}

type CommentStorage interface {
	AddComment(comment domain.NewComment) (domain.CreatedComment, error)
	CheckAvailabilityComment(commentId string) error
	VerifyCommentOwner(commentId, owner string) error
	DeleteComment(commentId string) error
	// GetCommentsByThreadId returns rows sorted by creation time ascending.
	GetCommentsByThreadId(threadId string) ([]domain.RawComment, error)
}

func NewComment(comments CommentStorage, threads ThreadStorage) *Comment {
	return &Comment{comments, threads}
}

var _ CommentService = (*Comment)(nil)

func (s *Comment) Add(payload domain.Payload) (domain.CreatedComment, error) {
	threadId, _ := payload["thread_id"].(string)
	if err := s.threads.CheckAvailabilityThread(threadId); err != nil {
		return domain.CreatedComment{}, err
	}

	comment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.CreatedComment{}, err
	}
	comment.Content = sanitize.Text(comment.Content)

	return s.comments.AddComment(comment)
}

// Delete soft-deletes a comment: the deletion timestamp is set, the row and
// its replies/likes stay in place.
func (s *Comment) Delete(payload domain.Payload) error {
	del, err := domain.ParseDeleteComment(payload)
	if err != nil {
		return err
	}

	if err := s.threads.CheckAvailabilityThread(del.ThreadId); err != nil {
		return err
	}
	if err := s.comments.CheckAvailabilityComment(del.CommentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(del.CommentId, del.Owner); err != nil {
		return err
	}

	return s.comments.DeleteComment(del.CommentId)
}
