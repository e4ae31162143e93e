package handler

import (
	"github.com/adiwijaya-dev/forum-api/internal/domain"
)

type MockAuthService struct {
	MockRegister func(username, password, fullname string) (domain.User, error)
	MockLogin    func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(username, password, fullname string) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(username, password, fullname)
	}
	return domain.User{Id: "user-123", Username: username, Fullname: fullname}, nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "token-abc", nil
}

type MockThreadService struct {
	MockCreate func(payload domain.Payload) (domain.CreatedThread, error)
	MockGet    func(threadId string) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload domain.Payload) (domain.CreatedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.CreatedThread{Id: "thread-123"}, nil
}

func (m *MockThreadService) Get(threadId string) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(threadId)
	}
	return domain.ThreadDetail{Id: threadId, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	MockAdd    func(payload domain.Payload) (domain.CreatedComment, error)
	MockDelete func(payload domain.Payload) error
}

func (m *MockCommentService) Add(payload domain.Payload) (domain.CreatedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(payload)
	}
	return domain.CreatedComment{Id: "comment-123"}, nil
}

func (m *MockCommentService) Delete(payload domain.Payload) error {
	if m.MockDelete != nil {
		return m.MockDelete(payload)
	}
	return nil
}

type MockReplyService struct {
	MockAdd    func(payload domain.Payload) (domain.CreatedReply, error)
	MockDelete func(payload domain.Payload) error
}

func (m *MockReplyService) Add(payload domain.Payload) (domain.CreatedReply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(payload)
	}
	return domain.CreatedReply{Id: "reply-123"}, nil
}

func (m *MockReplyService) Delete(payload domain.Payload) error {
	if m.MockDelete != nil {
		return m.MockDelete(payload)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(payload domain.Payload) error
}

func (m *MockLikeService) Toggle(payload domain.Payload) error {
	if m.MockToggle != nil {
		return m.MockToggle(payload)
	}
	return nil
}
