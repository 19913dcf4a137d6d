package domain

import "time"

// Message is immutable once created except for Read, which only ever moves
// false→true and only through the receiver's mark-read action.
type Message struct {
	ID         int32     `json:"id"`
	SenderID   int32     `json:"sender_id"`
	ReceiverID int32     `json:"receiver_id"`
	Text       string    `json:"text"`
	Read       bool      `json:"read"`
	CreatedOn  time.Time `json:"created_on"`
}

// Conversation is a derived view over the message log, keyed by the other
// participant. It is recomputed on demand and never stored.
type Conversation struct {
	CounterpartID int32    `json:"counterpart_id"`
	Counterpart   *User    `json:"counterpart,omitempty"`
	LastMessage   *Message `json:"last_message,omitempty"` // nil for an empty placeholder thread
	UnreadCount   int32    `json:"unread_count"`
}
