package model

import "time"

type EventType string

const (
	EventPostCreated EventType = "post.created"
	EventPostDeleted EventType = "post.deleted"
)

// Event is a feed activity entry published after a post changes.
type Event struct {
	ID      string    `json:"id,omitempty"`
	Type    EventType `json:"type"`
	PostID  string    `json:"postId"`
	Kind    Kind      `json:"kind,omitempty"`
	Title   string    `json:"title,omitempty"`
	Mood    string    `json:"mood,omitempty"`
	Created time.Time `json:"created"`
}
