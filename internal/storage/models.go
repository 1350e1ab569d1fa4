package storage

import "time"

// QueryRecord is one answered question in the history log. Append-only
// audit data: no conversation state is ever read back into the pipeline.
type QueryRecord struct {
	ID         string    // UUID
	Question   string
	Answer     string
	Backend    string  // Generation backend that answered, empty for canned replies
	Confidence float64 // Top admitted context doc score, 0 when nothing was retrieved
	CreatedAt  time.Time
}
