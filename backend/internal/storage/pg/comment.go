package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
)

const commentsThreadFkey = "comments_thread_fkey"

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	var id, content, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, content, thread, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.ids.CommentId(), comment.Content, comment.Thread, comment.Owner).Scan(&id, &content, &owner)
	if err != nil {
		if constraint, ok := shared_pg.ViolatedConstraint(err, shared_pg.ForeignKeyViolation); ok {
			if constraint == commentsThreadFkey {
				return domain.AddedComment{}, internal_errors.NotFound("Thread not found")
			}
			return domain.AddedComment{}, internal_errors.NotFound("User not found")
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": id, "content": content, "owner": owner})
}

// CheckAvailabilityComment checks existence only, ownership is not looked at.
func (s *Storage) CheckAvailabilityComment(ctx context.Context, id domain.CommentId) error {
	var found domain.CommentId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM comments WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to check comment: %w", err)
	}
	return nil
}

// CheckCommentInThread reports a comment that lives on another thread as not
// found, so a thread path cannot reach foreign comments.
func (s *Storage) CheckCommentInThread(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error {
	var found domain.CommentId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM comments WHERE id = $1 AND thread = $2", id, threadId).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to check comment thread: %w", err)
	}
	return nil
}

// VerifyCommentOwner does its own lookup and does not rely on a prior
// CheckAvailabilityComment call.
func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var storedOwner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&storedOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if storedOwner != owner {
		return internal_errors.Unauthorized("You are not the owner of this comment")
	}
	return nil
}

// DeleteComment soft-deletes exactly one row. An unknown id is a no-op.
func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		logger.Log.Debug("delete matched no comment", "commentId", id)
	}
	return nil
}

// GetCommentsThread returns every comment of the thread, deleted ones
// included, oldest first.
func (s *Storage) GetCommentsThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT comments.id, users.username, comments.content, comments.date, comments.is_deleted
        FROM comments
        INNER JOIN users ON users.id = comments.owner
        WHERE comments.thread = $1
        ORDER BY comments.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var (
			comment domain.CommentRow
			flag    any // BOOLEAN or legacy 0/1 INTEGER
		)
		if err := rows.Scan(&comment.Id, &comment.Username, &comment.Content, &comment.Date, &flag); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comment.IsDeleted = domain.IsTruthy(flag)
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
