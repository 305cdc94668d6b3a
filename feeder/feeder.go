package feeder

import (
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RssFeedItem is one entry of a tenant-rights feed.
type RssFeedItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// FetchRssFeeds fetches an RSS feed from the given URL.
// If limit is greater than 0, it returns only the first limit items.
func FetchRssFeeds(rssURL string, limit int) ([]RssFeedItem, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(rssURL)
	if err != nil {
		return nil, err
	}

	return ItemsFromFeed(feed, limit), nil
}

// ItemsFromFeed flattens a parsed feed into RssFeedItems. Items without a
// parseable published date fall back to the updated date, then to zero.
func ItemsFromFeed(feed *gofeed.Feed, limit int) []RssFeedItem {
	var items []RssFeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, RssFeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}
