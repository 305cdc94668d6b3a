package dto

import "time"

// ResourceDTO exposes a tenant-rights article for API consumers. ID is a hex
// string to keep transport simple.
type ResourceDTO struct {
	ID          string    `json:"id"`
	FeedName    string    `json:"feed_name"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
	Excerpt     string    `json:"excerpt"`
	ViewCount   int64     `json:"view_count"`
}
