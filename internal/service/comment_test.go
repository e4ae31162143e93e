package service

import (
	"testing"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentAdd(t *testing.T) {
	t.Run("valid payload reaches storage after the thread check", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		svc := NewComment(comments, threads)

		created, err := svc.Add(domain.Payload{
			"thread_id": "thread-123",
			"content":   "sebuah komentar",
			"owner":     "user-123",
		})

		require.NoError(t, err)
		assert.Equal(t, "comment-123", created.Id)
		assert.Equal(t, []string{"thread-123"}, threads.checkedThreadIds)
		require.Len(t, comments.addCommentCalls, 1)
		assert.Equal(t, "sebuah komentar", comments.addCommentCalls[0].Content)
	})

	t.Run("missing thread aborts before validation", func(t *testing.T) {
		threads := &MockThreadStorage{}
		threads.checkAvailabilityThreadFunc = func(threadId string) error {
			return errors.NotFound("thread not found")
		}
		comments := &MockCommentStorage{}
		svc := NewComment(comments, threads)

		_, err := svc.Add(domain.Payload{
			"thread_id": "thread-404",
			"content":   "sebuah komentar",
			"owner":     "user-123",
		})

		assert.True(t, errors.IsNotFound(err))
		assert.Empty(t, comments.addCommentCalls)
	})

	t.Run("invalid payload never reaches storage", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		svc := NewComment(comments, threads)

		_, err := svc.Add(domain.Payload{
			"thread_id": "thread-123",
			"owner":     "user-123",
		})

		assert.True(t, errors.IsMissingField(err))
		assert.Empty(t, comments.addCommentCalls)
	})
}

func TestCommentDelete(t *testing.T) {
	validPayload := func() domain.Payload {
		return domain.Payload{
			"thread_id":  "thread-123",
			"comment_id": "comment-123",
			"owner":      "user-123",
		}
	}

	t.Run("owner soft-deletes their comment", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		svc := NewComment(comments, threads)

		err := svc.Delete(validPayload())

		require.NoError(t, err)
		assert.Equal(t, []string{"comment-123"}, comments.deletedCommentIds)
	})

	t.Run("payload validation precedes any storage call", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		svc := NewComment(comments, threads)

		err := svc.Delete(domain.Payload{"thread_id": "thread-123", "owner": "user-123"})
		assert.True(t, errors.IsMissingField(err))

		err = svc.Delete(domain.Payload{"thread_id": "thread-123", "comment_id": 5, "owner": "user-123"})
		assert.True(t, errors.IsTypeMismatch(err))

		assert.Empty(t, threads.checkedThreadIds)
		assert.Empty(t, comments.deletedCommentIds)
	})

	t.Run("missing comment", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		comments.checkAvailabilityCommentFunc = func(commentId string) error {
			return errors.NotFound("comment not found")
		}
		svc := NewComment(comments, threads)

		err := svc.Delete(validPayload())

		assert.True(t, errors.IsNotFound(err))
		assert.Empty(t, comments.deletedCommentIds)
	})

	// Non-owner deletion is refused and the comment stays untouched.
	t.Run("non-owner is forbidden", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		comments.verifyCommentOwnerFunc = func(commentId, owner string) error {
			return errors.Forbidden("not the comment owner")
		}
		svc := NewComment(comments, threads)

		err := svc.Delete(validPayload())

		assert.True(t, errors.IsForbidden(err))
		assert.Empty(t, comments.deletedCommentIds)
	})
}
