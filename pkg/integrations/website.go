package integrations

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/trustlane/vetd/pkg/models"
)

// maxBodyBytes caps how much of a homepage is read for metadata extraction.
const maxBodyBytes = 2 << 20

// WebsiteClient fetches a company homepage and extracts basic metadata.
type WebsiteClient struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// NewWebsiteClient creates a website client with a per-fetch timeout.
// Redirects follow the default policy.
func NewWebsiteClient(timeout time.Duration, userAgent string) *WebsiteClient {
	return &WebsiteClient{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Check fetches the URL. A response with any status code is a successful
// probe; only the absence of a response fails it.
func (c *WebsiteClient) Check(ctx context.Context, rawURL string) *models.WebsiteResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := rawURL
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &models.WebsiteResult{Status: models.CheckFailed, Error: err.Error()}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.WebsiteResult{Status: models.CheckFailed, Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &models.WebsiteResult{Status: models.CheckFailed, Error: err.Error()}
	}

	code := resp.StatusCode
	result := &models.WebsiteResult{
		Status:        models.CheckSuccess,
		Reachable:     code >= 200 && code < 400,
		StatusCode:    &code,
		ContentLength: len(body),
	}

	if result.Reachable && strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		// Metadata extraction is best-effort; a broken document keeps
		// the probe successful.
		if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
			if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
				result.Title = &title
			}
			if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
				desc = strings.TrimSpace(desc)
				if desc != "" {
					result.Description = &desc
				}
			}
		}
	}

	return result
}
