package domain

import (
	"time"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// RedactedContent replaces the content of a soft-deleted comment.
const RedactedContent = "**komentar telah dihapus**"

// AddComment is a validated request to reply to a thread.
type AddComment struct {
	Content CommentContent
	Thread  ThreadId
	Owner   UserId
}

func NewAddComment(payload Payload) (AddComment, error) {
	v, err := requireStrings("ADD_COMMENT", payload, "content", "thread", "owner")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: v[0], Thread: v[1], Owner: v[2]}, nil
}

type AddedComment struct {
	Id      CommentId
	Content CommentContent
	Owner   UserId
}

func NewAddedComment(payload Payload) (AddedComment, error) {
	v, err := requireStrings("ADDED_COMMENT", payload, "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

// CommentRow is a stored comment joined with its owner's username.
// Deleted rows are included; IsDeleted is already normalized.
type CommentRow struct {
	Id        CommentId
	Username  Username
	Content   CommentContent
	Date      time.Time
	IsDeleted bool
}

// CommentView is a comment as shown on a thread page.
type CommentView struct {
	Id       CommentId
	Username Username
	Date     string
	Content  CommentContent
}

type DetailComment struct {
	Comments []CommentView
}

const detailCommentEntity = "DETAIL_COMMENT"

// NewDetailComment remaps raw comment rows into views, redacting the content
// of every row whose is_deleted flag is truthy. Rows that are already views
// (no flag) pass through unchanged.
func NewDetailComment(payload Payload) (DetailComment, error) {
	raw, ok := payload["comments"]
	if !ok || raw == nil {
		return DetailComment{}, internal_errors.NewValidationError(detailCommentEntity, internal_errors.MissingProperty)
	}

	var rows []Payload
	switch list := raw.(type) {
	case []any:
		rows = make([]Payload, 0, len(list))
		for _, item := range list {
			row, ok := item.(Payload)
			if !ok {
				return DetailComment{}, internal_errors.NewValidationError(detailCommentEntity, internal_errors.InvalidType)
			}
			rows = append(rows, row)
		}
	case []Payload:
		rows = list
	default:
		return DetailComment{}, internal_errors.NewValidationError(detailCommentEntity, internal_errors.InvalidType)
	}

	comments := make([]CommentView, 0, len(rows))
	for _, row := range rows {
		view, err := commentViewFromPayload(row)
		if err != nil {
			return DetailComment{}, err
		}
		comments = append(comments, view)
	}
	return DetailComment{Comments: comments}, nil
}

func commentViewFromPayload(row Payload) (CommentView, error) {
	v, err := requireStrings(detailCommentEntity, row, "id", "username", "content")
	if err != nil {
		return CommentView{}, err
	}

	var date string
	switch d := row["date"].(type) {
	case string:
		date = d
	case time.Time:
		date = FormatDate(d)
	case nil:
		return CommentView{}, internal_errors.NewValidationError(detailCommentEntity, internal_errors.MissingProperty)
	default:
		return CommentView{}, internal_errors.NewValidationError(detailCommentEntity, internal_errors.InvalidType)
	}

	return newCommentView(v[0], v[1], date, v[2], IsTruthy(row["is_deleted"])), nil
}

// DetailCommentFromRows builds the projection from rows read by storage.
func DetailCommentFromRows(rows []CommentRow) DetailComment {
	comments := make([]CommentView, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, newCommentView(row.Id, row.Username, FormatDate(row.Date), row.Content, row.IsDeleted))
	}
	return DetailComment{Comments: comments}
}

// newCommentView is the single place where deleted content is redacted.
func newCommentView(id CommentId, username Username, date string, content CommentContent, deleted bool) CommentView {
	if deleted {
		content = RedactedContent
	}
	return CommentView{Id: id, Username: username, Date: date, Content: content}
}
