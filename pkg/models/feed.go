package models

// CreateFeedRequest contains fields for registering an RSS/Atom feed.
type CreateFeedRequest struct {
	Route           string `json:"route"`
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	IntervalMinutes int    `json:"interval_minutes,omitempty"`
	Fulltext        bool   `json:"fulltext,omitempty"`
	Enabled         *bool  `json:"enabled,omitempty"`
}

// UpdateFeedRequest contains fields for updating a feed. Nil pointers leave
// the current value unchanged.
type UpdateFeedRequest struct {
	Name            *string `json:"name,omitempty"`
	Category        *string `json:"category,omitempty"`
	IntervalMinutes *int    `json:"interval_minutes,omitempty"`
	Fulltext        *bool   `json:"fulltext,omitempty"`
	Enabled         *bool   `json:"enabled,omitempty"`
}

// PollResult records the outcome of one feed poll for bookkeeping.
type PollResult struct {
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	NewArticles  int    `json:"new_articles"`
	NotModified  bool   `json:"not_modified"`
}
