package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

// Storage is the persistence contract for threads and comments.
// Implementations return errors wrapping errors.ErrNotFound or
// errors.ErrUnauthorized where noted, and opaque errors otherwise.
type Storage interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	// CheckAvailabilityComment fails with ErrNotFound when no comment has this id.
	CheckAvailabilityComment(ctx context.Context, id domain.CommentId) error
	// VerifyCommentOwner fails with ErrNotFound when the comment is absent and
	// with ErrUnauthorized when it belongs to someone else.
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	DeleteComment(ctx context.Context, id domain.CommentId) error
	GetCommentsThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
}

type ThreadReader interface {
	CheckAvailabilityThread(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error)
	// CheckCommentInThread fails with ErrNotFound unless the comment belongs
	// to the thread.
	CheckCommentInThread(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error
}

type ForumStorage interface {
	Storage
	ThreadReader
}
