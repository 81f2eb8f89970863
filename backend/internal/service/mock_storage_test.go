package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// MockStorage mocks the ForumStorage interface.
type MockStorage struct {
	addThreadFunc                func(thread domain.AddThread) (domain.AddedThread, error)
	addCommentFunc               func(comment domain.AddComment) (domain.AddedComment, error)
	checkAvailabilityThreadFunc  func(id domain.ThreadId) error
	checkAvailabilityCommentFunc func(id domain.CommentId) error
	checkCommentInThreadFunc     func(id domain.CommentId, threadId domain.ThreadId) error
	verifyCommentOwnerFunc       func(id domain.CommentId, owner domain.UserId) error
	deleteCommentFunc            func(id domain.CommentId) error
	getThreadByIdFunc            func(id domain.ThreadId) (domain.ThreadRow, error)
	getCommentsThreadFunc        func(threadId domain.ThreadId) ([]domain.CommentRow, error)

	mu    sync.Mutex
	calls []string
}

func (m *MockStorage) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *MockStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockStorage) AddThread(_ context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockStorage) AddComment(_ context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-_pby2_123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockStorage) CheckAvailabilityThread(_ context.Context, id domain.ThreadId) error {
	m.record("CheckAvailabilityThread")
	if m.checkAvailabilityThreadFunc != nil {
		return m.checkAvailabilityThreadFunc(id)
	}
	return nil
}

func (m *MockStorage) CheckAvailabilityComment(_ context.Context, id domain.CommentId) error {
	m.record("CheckAvailabilityComment")
	if m.checkAvailabilityCommentFunc != nil {
		return m.checkAvailabilityCommentFunc(id)
	}
	return nil
}

func (m *MockStorage) CheckCommentInThread(_ context.Context, id domain.CommentId, threadId domain.ThreadId) error {
	m.record("CheckCommentInThread")
	if m.checkCommentInThreadFunc != nil {
		return m.checkCommentInThreadFunc(id, threadId)
	}
	return nil
}

func (m *MockStorage) VerifyCommentOwner(_ context.Context, id domain.CommentId, owner domain.UserId) error {
	m.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockStorage) DeleteComment(_ context.Context, id domain.CommentId) error {
	m.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

func (m *MockStorage) GetThreadById(_ context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	m.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadRow{Id: id}, nil
}

func (m *MockStorage) GetCommentsThread(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.record("GetCommentsThread")
	if m.getCommentsThreadFunc != nil {
		return m.getCommentsThreadFunc(threadId)
	}
	return []domain.CommentRow{}, nil
}
