package dispatcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssPayload = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Example Markets</title>
  <item>
    <title>Fed holds rates steady</title>
    <link>https://example.com/fed-rates</link>
    <description>The Federal Reserve left rates unchanged.</description>
    <guid>fed-1</guid>
    <pubDate>Mon, 02 Jun 2025 14:30:00 +0000</pubDate>
  </item>
  <item>
    <title>Fulltext story</title>
    <link>https://example.com/full</link>
    <description>Short teaser.</description>
    <content:encoded>The entire article body inline.</content:encoded>
  </item>
  <item>
    <title>No link, dropped</title>
    <description>Broken item.</description>
  </item>
</channel>
</rss>`

const atomPayload = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Atom</title>
  <entry>
    <title>Bank earnings preview</title>
    <link rel="alternate" href="https://example.com/banks"/>
    <summary>What to expect this quarter.</summary>
    <id>banks-1</id>
    <published>2025-06-02T10:00:00Z</published>
  </entry>
</feed>`

func TestParseFeedRSS(t *testing.T) {
	items, err := parseFeed([]byte(rssPayload))
	require.NoError(t, err)
	require.Len(t, items, 2, "item without link is dropped")

	first := items[0]
	assert.Equal(t, "Fed holds rates steady", first.Title)
	assert.Equal(t, "https://example.com/fed-rates", first.Link)
	assert.Equal(t, "The Federal Reserve left rates unchanged.", first.Summary)
	assert.Equal(t, "fed-1", first.GUID)
	require.NotNil(t, first.Published)
	assert.Equal(t, time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC), *first.Published)

	assert.Equal(t, "The entire article body inline.", items[1].Content)
	assert.Nil(t, items[1].Published)
}

func TestParseFeedAtom(t *testing.T) {
	items, err := parseFeed([]byte(atomPayload))
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Bank earnings preview", item.Title)
	assert.Equal(t, "https://example.com/banks", item.Link)
	assert.Equal(t, "banks-1", item.GUID)
	require.NotNil(t, item.Published)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), *item.Published)
}

func TestParseFeedRejectsGarbage(t *testing.T) {
	_, err := parseFeed([]byte(`{"not": "xml"}`))
	assert.Error(t, err)

	_, err = parseFeed([]byte(`<html><body>a web page</body></html>`))
	assert.Error(t, err)
}
