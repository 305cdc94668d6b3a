package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"conmates/config"
	"conmates/db"
	"conmates/feeder"
	"conmates/logger"
	"conmates/models"
	"conmates/parser"
	"conmates/repositories"
)

const (
	itemsPerFeed   = 20
	excerptMaxLen  = 280
	articleTimeout = 30 * time.Second
)

// One-shot ingester: pulls every configured tenant-rights feed, extracts an
// excerpt from each article, and upserts the results. Per-feed and per-item
// failures are logged and skipped; the run continues.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	repo := repositories.NewResourceRepository(db.Database())

	var stored, failed int
	for _, feed := range cfg.ResourceFeeds {
		items, err := feeder.FetchRssFeeds(feed.RSSURL, itemsPerFeed)
		if err != nil {
			logger.Log.Errorf("failed to fetch feed %s (%s): %v", feed.Name, feed.RSSURL, err)
			failed++
			continue
		}

		for _, item := range items {
			doc := models.Resource{
				FeedName:    feed.Name,
				Title:       item.Title,
				Link:        item.Link,
				PublishedAt: item.PublishedAt,
				Excerpt:     fetchExcerpt(item.Link),
			}
			if err := repo.Upsert(ctx, doc); err != nil {
				logger.Log.Errorf("failed to upsert resource %s: %v", item.Link, err)
				failed++
				continue
			}
			stored++
		}
	}

	logger.Log.Infof("resource ingest finished stored=%d failed=%d", stored, failed)
}

// fetchExcerpt pulls the article page and extracts a short teaser. Any
// failure yields an empty excerpt; the resource is still stored with its
// title and link.
func fetchExcerpt(link string) string {
	client := &http.Client{Timeout: articleTimeout}
	resp, err := client.Get(link)
	if err != nil {
		logger.Log.Warnf("failed to fetch article %s: %v", link, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnf("article %s returned status %d", link, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		logger.Log.Warnf("failed to read article %s: %v", link, err)
		return ""
	}

	text, err := parser.ParseHTMLWithReadability(string(body))
	if err != nil {
		logger.Log.Warnf("failed to extract article text %s: %v", link, err)
		return ""
	}
	return parser.Excerpt(text, excerptMaxLen)
}
