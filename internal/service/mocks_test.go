package service

import (
	"sync"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
)

// --- Mocks ---
//
// Hand-rolled mocks with overridable func fields. Defaults are the success
// path; call tracking is guarded so tests may run in parallel.

type MockThreadStorage struct {
	addThreadFunc               func(thread domain.NewThread) (domain.CreatedThread, error)
	checkAvailabilityThreadFunc func(threadId string) error
	getThreadFunc               func(threadId string) (domain.RawThread, error)

	mu                sync.Mutex
	addThreadCalls    []domain.NewThread
	checkedThreadIds  []string
	getThreadCalled   bool
}

func (m *MockThreadStorage) AddThread(thread domain.NewThread) (domain.CreatedThread, error) {
	m.mu.Lock()
	m.addThreadCalls = append(m.addThreadCalls, thread)
	m.mu.Unlock()

	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.CreatedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadStorage) CheckAvailabilityThread(threadId string) error {
	m.mu.Lock()
	m.checkedThreadIds = append(m.checkedThreadIds, threadId)
	m.mu.Unlock()

	if m.checkAvailabilityThreadFunc != nil {
		return m.checkAvailabilityThreadFunc(threadId)
	}
	return nil
}

func (m *MockThreadStorage) GetThread(threadId string) (domain.RawThread, error) {
	m.mu.Lock()
	m.getThreadCalled = true
	m.mu.Unlock()

	if m.getThreadFunc != nil {
		return m.getThreadFunc(threadId)
	}
	return domain.RawThread{Id: threadId, Title: "sebuah thread", Body: "sebuah body", Date: fixedDate, Username: "dicoding"}, nil
}

type MockCommentStorage struct {
	addCommentFunc               func(comment domain.NewComment) (domain.CreatedComment, error)
	checkAvailabilityCommentFunc func(commentId string) error
	verifyCommentOwnerFunc       func(commentId, owner string) error
	deleteCommentFunc            func(commentId string) error
	getCommentsByThreadIdFunc    func(threadId string) ([]domain.RawComment, error)

	mu                  sync.Mutex
	addCommentCalls     []domain.NewComment
	deletedCommentIds   []string
	getCommentsCalled   bool
}

func (m *MockCommentStorage) AddComment(comment domain.NewComment) (domain.CreatedComment, error) {
	m.mu.Lock()
	m.addCommentCalls = append(m.addCommentCalls, comment)
	m.mu.Unlock()

	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.CreatedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentStorage) CheckAvailabilityComment(commentId string) error {
	if m.checkAvailabilityCommentFunc != nil {
		return m.checkAvailabilityCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(commentId, owner string) error {
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(commentId string) error {
	m.mu.Lock()
	m.deletedCommentIds = append(m.deletedCommentIds, commentId)
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId string) ([]domain.RawComment, error) {
	m.mu.Lock()
	m.getCommentsCalled = true
	m.mu.Unlock()

	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

type MockReplyStorage struct {
	addReplyFunc               func(reply domain.NewReply) (domain.CreatedReply, error)
	checkAvailabilityReplyFunc func(replyId string) error
	verifyReplyOwnerFunc       func(replyId, owner string) error
	deleteReplyFunc            func(replyId string) error
	getRepliesByThreadIdFunc   func(threadId string) ([]domain.RawReply, error)

	mu              sync.Mutex
	addReplyCalls   []domain.NewReply
	deletedReplyIds []string
}

func (m *MockReplyStorage) AddReply(reply domain.NewReply) (domain.CreatedReply, error) {
	m.mu.Lock()
	m.addReplyCalls = append(m.addReplyCalls, reply)
	m.mu.Unlock()

	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.CreatedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyStorage) CheckAvailabilityReply(replyId string) error {
	if m.checkAvailabilityReplyFunc != nil {
		return m.checkAvailabilityReplyFunc(replyId)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(replyId, owner string) error {
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReply(replyId string) error {
	m.mu.Lock()
	m.deletedReplyIds = append(m.deletedReplyIds, replyId)
	m.mu.Unlock()

	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(replyId)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByThreadId(threadId string) ([]domain.RawReply, error) {
	if m.getRepliesByThreadIdFunc != nil {
		return m.getRepliesByThreadIdFunc(threadId)
	}
	return nil, nil
}

type MockLikeStorage struct {
	addLikeFunc             func(like domain.NewLike) (string, error)
	verifyAvailableLikeFunc func(threadId, commentId, owner string) (string, error)
	deleteLikeFunc          func(likeId string) error
	getLikesByThreadIdFunc  func(threadId string) ([]domain.RawLike, error)

	mu             sync.Mutex
	addLikeCalls   []domain.NewLike
	deletedLikeIds []string
}

func (m *MockLikeStorage) AddLike(like domain.NewLike) (string, error) {
	m.mu.Lock()
	m.addLikeCalls = append(m.addLikeCalls, like)
	m.mu.Unlock()

	if m.addLikeFunc != nil {
		return m.addLikeFunc(like)
	}
	return "like-123", nil
}

func (m *MockLikeStorage) VerifyAvailableLike(threadId, commentId, owner string) (string, error) {
	if m.verifyAvailableLikeFunc != nil {
		return m.verifyAvailableLikeFunc(threadId, commentId, owner)
	}
	return "", nil
}

func (m *MockLikeStorage) DeleteLike(likeId string) error {
	m.mu.Lock()
	m.deletedLikeIds = append(m.deletedLikeIds, likeId)
	m.mu.Unlock()

	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(likeId)
	}
	return nil
}

func (m *MockLikeStorage) GetLikesByThreadId(threadId string) ([]domain.RawLike, error) {
	if m.getLikesByThreadIdFunc != nil {
		return m.getLikesByThreadIdFunc(threadId)
	}
	return nil, nil
}

type MockAuthStorage struct {
	saveUserFunc                func(user domain.User) (domain.User, error)
	userByUsernameFunc          func(username string) (domain.User, error)
	verifyAvailableUsernameFunc func(username string) error

	mu            sync.Mutex
	savedUsers    []domain.User
}

func (m *MockAuthStorage) SaveUser(user domain.User) (domain.User, error) {
	m.mu.Lock()
	m.savedUsers = append(m.savedUsers, user)
	m.mu.Unlock()

	if m.saveUserFunc != nil {
		return m.saveUserFunc(user)
	}
	user.Id = "user-123"
	return user, nil
}

func (m *MockAuthStorage) UserByUsername(username string) (domain.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

func (m *MockAuthStorage) VerifyAvailableUsername(username string) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token-abc", nil
}
