package models

import "time"

// Post is a peer-support forum entry.
type Post struct {
	ID        string    `json:"id" bson:"id"`
	Author    string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Reply struct {
	ID        string    `json:"id" bson:"id"`
	PostID    string    `json:"postId" bson:"postId"`
	Author    string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PostLike records one like per (post, user email) pair.
type PostLike struct {
	PostID    string `json:"postId" bson:"postId"`
	UserEmail string `json:"userEmail" bson:"userEmail"`
}

// PostView is a post assembled with its replies and like count for display.
type PostView struct {
	Post      Post    `json:"post"`
	Replies   []Reply `json:"replies"`
	LikeCount int     `json:"likeCount"`
	LikedByMe bool    `json:"likedByMe"`
}
