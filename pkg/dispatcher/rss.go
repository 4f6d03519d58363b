package dispatcher

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// feedItem is one headline parsed out of an RSS or Atom payload.
type feedItem struct {
	Title     string
	Link      string
	Summary   string
	Content   string // full body when the feed inlines it
	GUID      string
	Published *time.Time
}

type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Content     string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

type atomDocument struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title   string     `xml:"title"`
	Links   []atomLink `xml:"link"`
	Summary string     `xml:"summary"`
	Content string     `xml:"content"`
	ID      string     `xml:"id"`
	Updated string     `xml:"updated"`
	Publish string     `xml:"published"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// dateLayouts cover the formats seen in the wild: RFC1123 variants for RSS,
// RFC3339 for Atom.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05Z",
}

// parseFeed decodes an RSS 2.0 or Atom payload into items. Items without a
// link are dropped: the link is the dedup key.
func parseFeed(data []byte) ([]feedItem, error) {
	var rss rssDocument
	if err := xml.Unmarshal(data, &rss); err == nil && len(rss.Channel.Items) > 0 {
		return fromRSS(rss), nil
	}

	var atom atomDocument
	if err := xml.Unmarshal(data, &atom); err == nil && len(atom.Entries) > 0 {
		return fromAtom(atom), nil
	}

	return nil, fmt.Errorf("payload is neither RSS nor Atom")
}

func fromRSS(doc rssDocument) []feedItem {
	items := make([]feedItem, 0, len(doc.Channel.Items))
	for _, it := range doc.Channel.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			continue
		}
		items = append(items, feedItem{
			Title:     strings.TrimSpace(it.Title),
			Link:      link,
			Summary:   strings.TrimSpace(it.Description),
			Content:   strings.TrimSpace(it.Content),
			GUID:      strings.TrimSpace(it.GUID),
			Published: parseDate(it.PubDate),
		})
	}
	return items
}

func fromAtom(doc atomDocument) []feedItem {
	items := make([]feedItem, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		link := atomHref(entry.Links)
		if link == "" {
			continue
		}
		published := entry.Publish
		if published == "" {
			published = entry.Updated
		}
		items = append(items, feedItem{
			Title:     strings.TrimSpace(entry.Title),
			Link:      link,
			Summary:   strings.TrimSpace(entry.Summary),
			Content:   strings.TrimSpace(entry.Content),
			GUID:      strings.TrimSpace(entry.ID),
			Published: parseDate(published),
		})
	}
	return items
}

// atomHref prefers the alternate link, falling back to the first.
func atomHref(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "alternate" || l.Rel == "" {
			return strings.TrimSpace(l.Href)
		}
	}
	if len(links) > 0 {
		return strings.TrimSpace(links[0].Href)
	}
	return ""
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
