package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Fed holds rates | Example News</title>
  <meta property="og:title" content="Fed holds rates steady">
  <meta name="author" content="Jane Reporter">
  <meta name="keywords" content="fed, rates, policy">
  <script>trackEverything();</script>
</head>
<body>
  <nav><a href="/">Home</a></nav>
  <article>
    <p>The Federal Reserve held interest rates steady on Wednesday.</p>
    <p>Officials signalled patience on future cuts.</p>
  </article>
  <footer>Copyright Example News</footer>
</body>
</html>`

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractArticleContent(t *testing.T) {
	content := extract(docFrom(t, articleHTML))

	assert.Equal(t, "Fed holds rates steady", content.Title, "og:title preferred")
	assert.Contains(t, content.Text, "held interest rates steady")
	assert.Contains(t, content.Text, "patience on future cuts")
	assert.NotContains(t, content.Text, "trackEverything")
	assert.NotContains(t, content.Text, "Copyright")
	assert.Equal(t, []string{"Jane Reporter"}, content.Authors)
	assert.Equal(t, []string{"fed", "rates", "policy"}, content.Keywords)
	assert.Equal(t, "en", content.Language)
}

func TestExtractFallsBackToBodyParagraphs(t *testing.T) {
	html := `<html><head><title>Bare page</title></head><body>
		<p>First paragraph of a page without semantic containers.</p>
		<p>Second paragraph.</p>
	</body></html>`
	content := extract(docFrom(t, html))

	assert.Equal(t, "Bare page", content.Title)
	assert.Contains(t, content.Text, "First paragraph")
	assert.Contains(t, content.Text, "Second paragraph")
}

func TestScraperFetchStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		blocked bool
	}{
		{"forbidden is blocked", http.StatusForbidden, true},
		{"payment required is blocked", http.StatusPaymentRequired, true},
		{"legal block is blocked", http.StatusUnavailableForLegalReasons, true},
		{"server error is plain failure", http.StatusInternalServerError, false},
		{"not found is plain failure", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p := NewScraperProvider(srv.Client())
			_, err := p.Fetch(context.Background(), Item{ArticleID: "a1", URL: srv.URL})
			require.Error(t, err)
			assert.Equal(t, tt.blocked, errors.Is(err, ErrBlocked))
		})
	}
}

func TestScraperFetchHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	p := NewScraperProvider(srv.Client())
	content, err := p.Fetch(context.Background(), Item{ArticleID: "a1", URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "Fed holds rates steady", content.Title)
	assert.Contains(t, content.Text, "held interest rates steady")
}
