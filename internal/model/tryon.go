package model

import "time"

// TryOnSession records one bounded try-on interaction, from start to
// end. At most one session is current per client at any time; the
// try-on store creates a session on start and discards it on end. No
// session history is kept in-process — completed sessions are handed to
// the analytics queue and forgotten.
//
// Fields:
//  ID           – unique session identifier (ULID, time-ordered).
//  UserID       – id of the user who started the session.
//  ProductID    – id of the selected product. Empty when the session
//                 was started without a selection; see TryOnStore.StartTryOn.
//  StartedAt    – when the session started.
//  Duration     – elapsed time, filled in when the session ends.
//  Interactions – number of user interactions (captures, adjustments).
//  Converted    – whether the session led to a purchase intent.
//  Feedback     – optional 1–5 user rating, nil when not given.
type TryOnSession struct {
	ID           string
	UserID       string
	ProductID    string
	StartedAt    time.Time
	Duration     time.Duration
	Interactions int
	Converted    bool
	Feedback     *int
}
