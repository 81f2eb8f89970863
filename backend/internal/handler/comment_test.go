package handler

import (
	"net/http"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddCommentHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		var received domain.Payload
		h := newTestHandler(nil, &MockCommentService{
			MockAddComment: func(payload domain.Payload) (domain.AddedComment, error) {
				received = payload
				return domain.AddedComment{Id: "comment-_pby2_abc", Content: "hi", Owner: "user-123"}, nil
			},
		})

		rr, body := serve(t, newTestRouter(h, testUser), http.MethodPost, "/threads/thread-h_123/comments",
			`{"content": "hi", "thread": "thread-other"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, domain.Payload{"content": "hi", "thread": "thread-h_123", "owner": "user-123"}, received)
		assert.Equal(t, map[string]any{"id": "comment-_pby2_abc", "content": "hi", "owner": "user-123"},
			body["data"].(map[string]any)["addedComment"])
	})

	t.Run("MissingContent", func(t *testing.T) {
		h := newTestHandler(nil, &MockCommentService{
			MockAddComment: func(payload domain.Payload) (domain.AddedComment, error) {
				if _, err := domain.NewAddComment(payload); err != nil {
					return domain.AddedComment{}, err
				}
				return domain.AddedComment{}, nil
			},
		})

		rr, body := serve(t, newTestRouter(h, testUser), http.MethodPost, "/threads/thread-h_123/comments", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY", body["message"])
	})

	t.Run("ThreadNotFound", func(t *testing.T) {
		h := newTestHandler(nil, &MockCommentService{
			MockAddComment: func(domain.Payload) (domain.AddedComment, error) {
				return domain.AddedComment{}, internal_errors.NotFound("Thread not found")
			},
		})

		rr, _ := serve(t, newTestRouter(h, testUser), http.MethodPost, "/threads/thread-nope/comments", `{"content": "hi"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("NoUser", func(t *testing.T) {
		rr, _ := serve(t, newTestRouter(newTestHandler(nil, nil), nil), http.MethodPost, "/threads/thread-h_123/comments", `{"content": "hi"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		var gotThread domain.ThreadId
		var gotComment domain.CommentId
		var gotOwner domain.UserId
		h := newTestHandler(nil, &MockCommentService{
			MockDeleteComment: func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
				gotThread, gotComment, gotOwner = threadId, commentId, owner
				return nil
			},
		})

		rr, body := serve(t, newTestRouter(h, testUser), http.MethodDelete, "/threads/thread-h_123/comments/comment-_pby2_abc", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{"status": "success"}, body)
		assert.Equal(t, domain.ThreadId("thread-h_123"), gotThread)
		assert.Equal(t, domain.CommentId("comment-_pby2_abc"), gotComment)
		assert.Equal(t, domain.UserId("user-123"), gotOwner)
	})

	t.Run("NotOwner", func(t *testing.T) {
		h := newTestHandler(nil, &MockCommentService{
			MockDeleteComment: func(domain.ThreadId, domain.CommentId, domain.UserId) error {
				return internal_errors.Unauthorized("You are not the owner of this comment")
			},
		})

		rr, body := serve(t, newTestRouter(h, testUser), http.MethodDelete, "/threads/thread-h_123/comments/comment-_pby2_abc", "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "You are not the owner of this comment", body["message"])
	})

	t.Run("CommentNotFound", func(t *testing.T) {
		h := newTestHandler(nil, &MockCommentService{
			MockDeleteComment: func(domain.ThreadId, domain.CommentId, domain.UserId) error {
				return internal_errors.NotFound("Comment not found")
			},
		})

		rr, _ := serve(t, newTestRouter(h, testUser), http.MethodDelete, "/threads/thread-h_123/comments/comment-nope", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("NoUser", func(t *testing.T) {
		rr, _ := serve(t, newTestRouter(newTestHandler(nil, nil), nil), http.MethodDelete, "/threads/thread-h_123/comments/comment-1", "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
