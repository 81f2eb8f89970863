package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	var id, title, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, s.ids.ThreadId(), thread.Title, thread.Body, thread.Owner).Scan(&id, &title, &owner)
	if err != nil {
		if _, ok := shared_pg.ViolatedConstraint(err, shared_pg.ForeignKeyViolation); ok {
			return domain.AddedThread{}, internal_errors.NotFound("User not found")
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": id, "title": title, "owner": owner})
}

func (s *Storage) CheckAvailabilityThread(ctx context.Context, id domain.ThreadId) error {
	var found domain.ThreadId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM threads WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Thread not found")
		}
		return fmt.Errorf("failed to check thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	var thread domain.ThreadRow
	err := s.db.QueryRowContext(ctx, `
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        INNER JOIN users ON users.id = threads.owner
        WHERE threads.id = $1
    `, id).Scan(
		&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, internal_errors.NotFound("Thread not found")
		}
		return domain.ThreadRow{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}
