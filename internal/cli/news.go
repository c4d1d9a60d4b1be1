package cli

import (
	"context"
	"fmt"
)

// News fetches and prints the announcements feed.
func (a *App) News(ctx context.Context) error {
	if _, err := a.requireAuth(ctx); err != nil {
		return err
	}

	articles, err := a.news.Fetch(ctx)
	if err != nil {
		printlnFn("Could not load the news feed:", err.Error())
		return err
	}

	if len(articles) == 0 {
		printlnFn("No news right now.")
		return nil
	}

	for _, art := range articles {
		printlnFn(fmt.Sprintf("* %s", art.Title))
		if art.Description != "" {
			printlnFn("  " + art.Description)
		}
		printlnFn("  " + art.URL)
		printlnFn("  [image: " + art.ImageURL + "]")
	}
	return nil
}
