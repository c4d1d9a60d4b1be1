// Package news fetches the announcements feed from the external news API.
package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"context"

	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/models"
	"github.com/sethvargo/go-retry"
)

// PlaceholderImage is the local asset shown when an article has no image.
const PlaceholderImage = "assets/img/noticia.jpg"

// Client issues one GET per announcements view, with the configured search
// term, language and API key. Transient failures (network errors, 5xx) are
// retried with capped exponential backoff; client errors are not.
type Client struct {
	endpoint string
	apiKey   string
	query    string
	language string
	httpc    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.NewsEndpoint,
		apiKey:   cfg.NewsAPIKey,
		query:    cfg.NewsQuery,
		language: cfg.NewsLanguage,
		httpc:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type feedResponse struct {
	Articles []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		URL         string  `json:"url"`
		URLToImage  *string `json:"urlToImage"`
	} `json:"articles"`
}

// Fetch returns the current announcements. A null or empty urlToImage falls
// back to PlaceholderImage, per article.
func (c *Client) Fetch(ctx context.Context) ([]models.Article, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("bad feed endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", c.query)
	q.Set("language", c.language)
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	var articles []models.Article

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return err
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			_, _ = io.Copy(io.Discard, resp.Body)
			return retry.RetryableError(fmt.Errorf("feed returned %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("feed returned %s", resp.Status)
		}

		var payload feedResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("decode feed: %w", err)
		}

		articles = make([]models.Article, 0, len(payload.Articles))
		for _, a := range payload.Articles {
			img := PlaceholderImage
			if a.URLToImage != nil && *a.URLToImage != "" {
				img = *a.URLToImage
			}
			articles = append(articles, models.Article{
				Title:       a.Title,
				Description: a.Description,
				URL:         a.URL,
				ImageURL:    img,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}
