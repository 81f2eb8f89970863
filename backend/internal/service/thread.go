package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadService interface {
	AddThread(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	storage ForumStorage
}

func NewThread(storage ForumStorage) ThreadService {
	return &Thread{storage}
}

func (b *Thread) AddThread(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(sanitizePayload(payload, "title", "body"))
	if err != nil {
		return domain.AddedThread{}, err
	}
	return b.storage.AddThread(ctx, thread)
}

func (b *Thread) GetThreadDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := b.storage.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	rows, err := b.storage.GetCommentsThread(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	return domain.NewThreadDetail(thread, domain.DetailCommentFromRows(rows)), nil
}
