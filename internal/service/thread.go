package service

import (
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/service/sanitize"
	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	Create(payload domain.Payload) (domain.CreatedThread, error)
	Get(threadId string) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
	likes    LikeStorage
}

type ThreadStorage interface {
	AddThread(thread domain.NewThread) (domain.CreatedThread, error)
	CheckAvailabilityThread(threadId string) error
	GetThread(threadId string) (domain.RawThread, error)
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage) *Thread {
	return &Thread{threads, comments, replies, likes}
}

var _ ThreadService = (*Thread)(nil)

func (s *Thread) Create(payload domain.Payload) (domain.CreatedThread, error) {
	thread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.CreatedThread{}, err
	}
	thread.Title = sanitize.Text(thread.Title)
	thread.Body = sanitize.Text(thread.Body)

	return s.threads.AddThread(thread)
}

// Get assembles the nested thread view: thread -> comments -> replies, with
// per-comment like counts. The initial existence check is a fail-fast gate;
// after it passes, the four fetches are independent and run concurrently.
func (s *Thread) Get(threadId string) (domain.ThreadDetail, error) {
	if err := s.threads.CheckAvailabilityThread(threadId); err != nil {
		return domain.ThreadDetail{}, err
	}

	var (
		thread   domain.RawThread
		comments []domain.RawComment
		replies  []domain.RawReply
		likes    []domain.RawLike
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		thread, err = s.threads.GetThread(threadId)
		return err
	})
	g.Go(func() (err error) {
		comments, err = s.comments.GetCommentsByThreadId(threadId)
		return err
	})
	g.Go(func() (err error) {
		replies, err = s.replies.GetRepliesByThreadId(threadId)
		return err
	})
	g.Go(func() (err error) {
		likes, err = s.likes.GetLikesByThreadId(threadId)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	commentViews, err := domain.RenderComments(comments)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replyViews, err := domain.RenderReplies(replies)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	// Group replies under their comment. Storage returns both collections
	// sorted by creation time ascending; grouping keeps that order and
	// performs no sort of its own.
	repliesByComment := make(map[string][]domain.ReplyView)
	for i, raw := range replies {
		repliesByComment[raw.CommentId] = append(repliesByComment[raw.CommentId], replyViews[i])
	}

	likeCounts := make(map[string]int)
	for _, like := range likes {
		likeCounts[like.CommentId]++
	}

	details := make([]domain.CommentDetail, 0, len(commentViews))
	for i, view := range commentViews {
		commentId := comments[i].Id
		nested := repliesByComment[commentId]
		if nested == nil {
			nested = []domain.ReplyView{}
		}
		details = append(details, domain.CommentDetail{
			CommentView: view,
			Replies:     nested,
			LikeCount:   likeCounts[commentId],
		})
	}

	return domain.RenderThread(thread, details)
}
