package service

import (
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/service/sanitize"
)

type ReplyService interface {
	Add(payload domain.Payload) (domain.CreatedReply, error)
	Delete(payload domain.Payload) error
}

type Reply struct {
	replies  ReplyStorage
	comments CommentStorage
	threads  ThreadStorage
}

type ReplyStorage interface {
	AddReply(reply domain.NewReply) (domain.CreatedReply, error)
	CheckAvailabilityReply(replyId string) error
	VerifyReplyOwner(replyId, owner string) error
	DeleteReply(replyId string) error
	// GetRepliesByThreadId returns rows sorted by creation time ascending.
	GetRepliesByThreadId(threadId string) ([]domain.RawReply, error)
}

func NewReply(replies ReplyStorage, comments CommentStorage, threads ThreadStorage) *Reply {
	return &Reply{replies, comments, threads}
}

var _ ReplyService = (*Reply)(nil)

func (s *Reply) Add(payload domain.Payload) (domain.CreatedReply, error) {
	threadId, _ := payload["thread_id"].(string)
	commentId, _ := payload["comment_id"].(string)
	if err := s.threads.CheckAvailabilityThread(threadId); err != nil {
		return domain.CreatedReply{}, err
	}
	if err := s.comments.CheckAvailabilityComment(commentId); err != nil {
		return domain.CreatedReply{}, err
	}

	reply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.CreatedReply{}, err
	}
	reply.Content = sanitize.Text(reply.Content)

	return s.replies.AddReply(reply)
}

func (s *Reply) Delete(payload domain.Payload) error {
	del, err := domain.ParseDeleteReply(payload)
	if err != nil {
		return err
	}

	if err := s.threads.CheckAvailabilityThread(del.ThreadId); err != nil {
		return err
	}
	if err := s.comments.CheckAvailabilityComment(del.CommentId); err != nil {
		return err
	}
	if err := s.replies.CheckAvailabilityReply(del.ReplyId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(del.ReplyId, del.Owner); err != nil {
		return err
	}

	return s.replies.DeleteReply(del.ReplyId)
}
