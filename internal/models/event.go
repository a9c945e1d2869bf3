package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published to the message broker.
type EventType string

const (
	EventUserRegistered  EventType = "user.registered"
	EventUserUpdated     EventType = "user.updated"
	EventUserDeleted     EventType = "user.deleted"
	EventUserFollowed    EventType = "user.followed"
	EventUserUnfollowed  EventType = "user.unfollowed"
	EventPostCreated     EventType = "post.created"
	EventPostDeleted     EventType = "post.deleted"
	EventPostLiked       EventType = "post.liked"
	EventPostUnliked     EventType = "post.unliked"
	EventPostCommented   EventType = "post.commented"
	EventPostUncommented EventType = "post.uncommented"
)

// Event is a domain event. UserID is the acting user, SubjectID the affected record.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	Timestamp int64     `json:"timestamp"`
}

// NewEvent stamps a new event with a fresh id and the current time.
func NewEvent(typ EventType, userID, subjectID uuid.UUID) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		UserID:    userID,
		SubjectID: subjectID,
		Timestamp: time.Now().Unix(),
	}
}
