package domain

import "time"

type Comment struct {
	ID        ID             `json:"id"`
	ParentID  *ID            `json:"parent_id"`
	ProductID ID             `json:"product_id"`
	UserID    ID             `json:"user_id"`
	Content   string         `json:"content"`
	Rating    int            `json:"rating"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	User      *CommentAuthor `json:"user,omitempty"`
	Parent    *CommentParent `json:"parent,omitempty"`
}

type CommentAuthor struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// CommentParent is the summary of the comment being replied to.
type CommentParent struct {
	ID   ID             `json:"id"`
	User *CommentAuthor `json:"user,omitempty"`
}

// CommentNode is a comment placed in a display tree. It is rebuilt on every
// fetch and never sent back to the shop API.
type CommentNode struct {
	Comment
	Children        []*CommentNode `json:"children"`
	HasMoreChildren bool           `json:"has_more_children"`
}

type CommentTree struct {
	ProductID ID             `json:"product_id"`
	Total     int            `json:"total"`
	Comments  []*CommentNode `json:"comments"`
}

type CreateCommentInput struct {
	ParentID *ID    `json:"parent_id"`
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type UpdateCommentInput struct {
	ProductID ID     `json:"product_id" validate:"required"`
	Content   string `json:"content" validate:"required,min=1,max=2000"`
}

type CommentVoteInput struct {
	Value int `json:"value" validate:"required,oneof=-1 1"`
}

type CommentVote struct {
	ID        ID  `json:"id"`
	UserID    ID  `json:"user_id"`
	CommentID ID  `json:"comment_id"`
	Value     int `json:"value"`
}

type CommentRating struct {
	Total int `json:"total"`
}
