package api

import "github.com/itchan-dev/forum/shared/domain"

type Comment struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

func newComment(c domain.CommentView) Comment {
	return Comment{
		Id:       c.Id,
		Username: c.Username,
		Date:     c.Date,
		Content:  c.Content,
	}
}

type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

type AddCommentResponse struct {
	AddedComment AddedComment `json:"addedComment"`
}

func NewAddCommentResponse(comment domain.AddedComment) AddCommentResponse {
	return AddCommentResponse{AddedComment: AddedComment{
		Id:      comment.Id,
		Content: comment.Content,
		Owner:   comment.Owner,
	}}
}
