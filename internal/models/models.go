package models

import (
	"time"
)

// User is a row of the CommunityUsers table. Username is looked up through
// the UsernameIndex GSI.
type User struct {
	UserID       string    `json:"userId" dynamodbav:"UserId"`
	Username     string    `json:"username" dynamodbav:"Username"`
	Nickname     string    `json:"nickname" dynamodbav:"Nickname"`
	PasswordHash string    `json:"-" dynamodbav:"PasswordHash"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"CreatedAt"`
}

// Post is a row of the DiscussionPosts table, partitioned by StockCode with
// PostId as the sort key. AuthorName is copied from the author's Nickname at
// creation time.
type Post struct {
	StockCode  string    `json:"stockCode" dynamodbav:"StockCode"`
	PostID     string    `json:"postId" dynamodbav:"PostId"`
	Title      string    `json:"title" dynamodbav:"Title"`
	Content    string    `json:"content" dynamodbav:"Content"`
	UserID     string    `json:"userId" dynamodbav:"UserId"`
	AuthorName string    `json:"authorName" dynamodbav:"AuthorName"`
	Views      int       `json:"views" dynamodbav:"Views"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"CreatedAt"`
}

// Image is an attachment object kept in the bucket under posts/{postId}/.
type Image struct {
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
}
