// Package news wraps the BigKinds keyword search API.
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultEndpoint = "https://tools.kinds.or.kr/search/news"

var (
	defaultProviders  = []string{"서울경제", "한국경제", "매일경제", "연합뉴스"}
	defaultCategories = []string{"경제", "사회", "정치"}
)

// Article is one search hit. Content is the raw snippet; truncation for
// prompts happens at assembly time.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Provider    string `json:"provider"`
	PublishedAt string `json:"published_at"`
}

type searchRequest struct {
	AccessKey string         `json:"access_key"`
	Argument  searchArgument `json:"argument"`
}

type searchArgument struct {
	Query       string      `json:"query"`
	PublishedAt publishedAt `json:"published_at"`
	Provider    []string    `json:"provider"`
	Category    []string    `json:"category"`
	Sort        sortSpec    `json:"sort"`
	Hilight     int         `json:"hilight"`
	ReturnFrom  int         `json:"return_from"`
	ReturnSize  int         `json:"return_size"`
}

type publishedAt struct {
	From  string `json:"from"`
	Until string `json:"until"`
}

type sortSpec struct {
	Date string `json:"date"`
}

type searchResponse struct {
	ReturnObject struct {
		Documents []Article `json:"documents"`
	} `json:"return_object"`
}

// Client issues keyword searches against BigKinds. Failures are returned as
// errors; a caller treats any error as "no external knowledge available".
type Client struct {
	apiKey     string
	endpoint   string
	pageSize   int
	lookback   time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

func WithPageSize(n int) Option {
	return func(c *Client) { c.pageSize = n }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func NewClient(apiKey string, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		pageSize:   3,
		lookback:   30 * 24 * time.Hour,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one keyword query over the last 30 days, most recent first.
// Without an API key it fails before any request is made.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("bigkinds api key not configured")
	}

	until := time.Now()
	from := until.Add(-c.lookback)

	reqBody := searchRequest{
		AccessKey: c.apiKey,
		Argument: searchArgument{
			Query: query,
			PublishedAt: publishedAt{
				From:  from.Format("2006-01-02"),
				Until: until.Format("2006-01-02"),
			},
			Provider:   defaultProviders,
			Category:   defaultCategories,
			Sort:       sortSpec{Date: "desc"},
			Hilight:    200,
			ReturnFrom: 0,
			ReturnSize: c.pageSize,
		},
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("content-type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bigkinds request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bigkinds status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("bigkinds read body: %w", err)
	}

	var out searchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bigkinds decode: %w", err)
	}

	docs := out.ReturnObject.Documents
	if len(docs) > c.pageSize {
		docs = docs[:c.pageSize]
	}
	c.log.Info("bigkinds search complete",
		zap.String("query", query),
		zap.Int("articles", len(docs)))
	return docs, nil
}
