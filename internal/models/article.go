package models

// Article is one announcement from the external news feed.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`

	// ImageURL is urlToImage from the feed, or the local placeholder
	// asset when the feed returned null.
	ImageURL string `json:"urlToImage"`
}
