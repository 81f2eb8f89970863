package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type CommentService interface {
	AddComment(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	DeleteComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	storage ForumStorage
}

func NewComment(storage ForumStorage) CommentService {
	return &Comment{storage}
}

func (b *Comment) AddComment(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	comment, err := domain.NewAddComment(sanitizePayload(payload, "content"))
	if err != nil {
		return domain.AddedComment{}, err
	}
	return b.storage.AddComment(ctx, comment)
}

// DeleteComment runs each check as its own round trip. The sequence is not
// atomic: a comment removed between checks makes DeleteComment a no-op.
func (b *Comment) DeleteComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := b.storage.CheckAvailabilityThread(ctx, threadId); err != nil {
		return err
	}
	if err := b.storage.CheckAvailabilityComment(ctx, commentId); err != nil {
		return err
	}
	if err := b.storage.CheckCommentInThread(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := b.storage.VerifyCommentOwner(ctx, commentId, owner); err != nil {
		return err
	}
	return b.storage.DeleteComment(ctx, commentId)
}
