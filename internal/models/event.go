package models

// AuthEvent is an audit record published to Kafka after a successful
// registration or login. Publishing is optional; address operations have
// no side effects and never publish.
type AuthEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Action    string `json:"action"` // "register" or "login"
	Timestamp int64  `json:"timestamp"`
}
