package api

import "github.com/itchan-dev/forum/shared/domain"

// Response DTOs. Text is cleaned before it is stored and is returned as is.

type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

type AddThreadResponse struct {
	AddedThread AddedThread `json:"addedThread"`
}

func NewAddThreadResponse(thread domain.AddedThread) AddThreadResponse {
	return AddThreadResponse{AddedThread: AddedThread{
		Id:    thread.Id,
		Title: thread.Title,
		Owner: thread.Owner,
	}}
}

type Thread struct {
	Id       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

type ThreadResponse struct {
	Thread Thread `json:"thread"`
}

func NewThreadResponse(detail domain.ThreadDetail) ThreadResponse {
	comments := make([]Comment, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, newComment(c))
	}
	return ThreadResponse{Thread: Thread{
		Id:       detail.Id,
		Title:    detail.Title,
		Body:     detail.Body,
		Date:     detail.Date,
		Username: detail.Username,
		Comments: comments,
	}}
}
