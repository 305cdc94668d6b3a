package feeder_test

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/feeder"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tenant Rights Updates</title>
    <item>
      <title>Security deposit limits explained</title>
      <link>https://example.org/deposit-limits</link>
      <pubDate>Mon, 06 Jul 2026 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Notice periods for rent increases</title>
      <link>https://example.org/rent-increase-notice</link>
      <pubDate>Tue, 07 Jul 2026 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>When can a landlord enter?</title>
      <link>https://example.org/landlord-entry</link>
    </item>
  </channel>
</rss>`

func parseSample(t *testing.T) *gofeed.Feed {
	t.Helper()
	feed, err := gofeed.NewParser().ParseString(sampleRSS)
	require.NoError(t, err)
	return feed
}

func TestItemsFromFeed(t *testing.T) {
	items := feeder.ItemsFromFeed(parseSample(t), 0)

	require.Len(t, items, 3)
	assert.Equal(t, "Security deposit limits explained", items[0].Title)
	assert.Equal(t, "https://example.org/deposit-limits", items[0].Link)
	assert.False(t, items[0].PublishedAt.IsZero())

	// No pubDate on the last item: published falls back to zero.
	assert.True(t, items[2].PublishedAt.IsZero())
}

func TestItemsFromFeedLimit(t *testing.T) {
	items := feeder.ItemsFromFeed(parseSample(t), 2)
	require.Len(t, items, 2)
	assert.Equal(t, "Security deposit limits explained", items[0].Title)
	assert.Equal(t, "Notice periods for rent increases", items[1].Title)
}
