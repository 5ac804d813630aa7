// Package queue defines message payloads exchanged over the message broker.
package queue

// TryOnCompletedEvent is published whenever a try-on session ends,
// including sessions displaced by a restart while active. It carries
// enough information for downstream consumers to log or aggregate
// without querying the primary data source. This queue is the only
// place session history survives; the try-on store itself keeps none.
type TryOnCompletedEvent struct {
	SessionID    string `json:"session_id"`
	UserID       string `json:"user_id"`
	ProductID    string `json:"product_id"`
	StartedAt    string `json:"started_at"`
	DurationMS   int64  `json:"duration_ms"`
	Interactions int    `json:"interactions"`
	Converted    bool   `json:"converted"`
	Feedback     *int   `json:"feedback,omitempty"`
	EndedAt      string `json:"ended_at"`
}
