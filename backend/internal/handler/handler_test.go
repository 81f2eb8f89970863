package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockThreadService struct {
	MockAddThread       func(payload domain.Payload) (domain.AddedThread, error)
	MockGetThreadDetail func(threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) AddThread(_ context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.MockAddThread != nil {
		return m.MockAddThread(payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetThreadDetail(_ context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGetThreadDetail != nil {
		return m.MockGetThreadDetail(threadId)
	}
	return domain.ThreadDetail{Id: threadId}, nil
}

type MockCommentService struct {
	MockAddComment    func(payload domain.Payload) (domain.AddedComment, error)
	MockDeleteComment func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) AddComment(_ context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.MockAddComment != nil {
		return m.MockAddComment(payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) DeleteComment(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockDeleteComment != nil {
		return m.MockDeleteComment(threadId, commentId, owner)
	}
	return nil
}

// --- Helpers ---

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// withUser stands in for the auth middleware.
func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(h *Handler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Get("/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(withUser(user))
		r.Post("/threads", h.AddThread)
		r.Post("/threads/{threadId}/comments", h.AddComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})
	return r
}

func newTestHandler(thread *MockThreadService, comment *MockCommentService) *Handler {
	if thread == nil {
		thread = &MockThreadService{}
	}
	if comment == nil {
		comment = &MockCommentService{}
	}
	return New(thread, comment, &MockHealthChecker{}, &config.Config{})
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), "body: %s", rr.Body.String())
	return rr, decoded
}
