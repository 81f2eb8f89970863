package domain

import "time"

// AddThread is a validated request to open a thread.
type AddThread struct {
	Title ThreadTitle
	Body  ThreadBody
	Owner UserId
}

func NewAddThread(payload Payload) (AddThread, error) {
	v, err := requireStrings("ADD_THREAD", payload, "title", "body", "owner")
	if err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: v[0], Body: v[1], Owner: v[2]}, nil
}

// AddedThread is what storage reports back after persisting a thread.
// The body is intentionally not echoed.
type AddedThread struct {
	Id    ThreadId
	Title ThreadTitle
	Owner UserId
}

func NewAddedThread(payload Payload) (AddedThread, error) {
	v, err := requireStrings("ADDED_THREAD", payload, "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: v[0], Title: v[1], Owner: v[2]}, nil
}

// ThreadRow is a stored thread joined with its owner's username.
type ThreadRow struct {
	Id       ThreadId
	Title    ThreadTitle
	Body     ThreadBody
	Date     time.Time
	Username Username
}

// ThreadDetail is the read model of a thread page.
type ThreadDetail struct {
	Id       ThreadId
	Title    ThreadTitle
	Body     ThreadBody
	Date     string
	Username Username
	Comments []CommentView
}

func NewThreadDetail(thread ThreadRow, comments DetailComment) ThreadDetail {
	return ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     FormatDate(thread.Date),
		Username: thread.Username,
		Comments: comments.Comments,
	}
}
