// Package refsource fetches public BPS (Statistics Indonesia) press-release
// pages and extracts their text, used as optional grounding context for the
// narrative. Failures here never affect the analytic pipeline.
package refsource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent     = "census-insight/1.0 (data enrichment; contact: admin@localhost)"
	maxParagraphs = 12
	fetchTimeout  = 15 * time.Second
)

// Article is the extracted text of one reference page.
type Article struct {
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// Text joins the article into a single bounded context string.
func (a *Article) Text() string {
	var b strings.Builder
	b.WriteString(a.Title)
	b.WriteString("\n\n")
	for _, p := range a.Paragraphs {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// FetchArticle downloads and extracts one page.
func FetchArticle(ctx context.Context, url string) (*Article, error) {
	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reference request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reference fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reference fetch returned status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference page: %w", err)
	}
	return extract(doc, url)
}

func extract(doc *goquery.Document, url string) (*Article, error) {
	article := &Article{URL: url, Title: extractTitle(doc)}
	doc.Find("article p, .content p, main p, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		// Skip boilerplate fragments.
		if len(text) < 40 {
			return true
		}
		article.Paragraphs = append(article.Paragraphs, text)
		return len(article.Paragraphs) < maxParagraphs
	})

	if article.Title == "" && len(article.Paragraphs) == 0 {
		return nil, fmt.Errorf("no extractable content at %s", url)
	}
	return article, nil
}

func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
