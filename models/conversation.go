package models

import (
	"time"
)

// ConversationEntry records one exchange of a session's conversation log
type ConversationEntry struct {
	User      string    `json:"user"`
	AI        Advice    `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}
