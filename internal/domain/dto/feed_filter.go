package dto

// FeedFilter narrows the feed. An empty Mood disables the mood filter.
type FeedFilter struct {
	Mood  string
	Query string
}
