// Package rbtv is a read-only client for the Rocket Beans TV
// mediathek API.
package rbtv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.rocketbeans.tv/v1"

// pageSize is the limit used when walking paginated endpoints.
const pageSize = 50

// Sentinel errors for mediathek API responses.
var (
	ErrNotFound    = errors.New("record not found")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("mediathek API unavailable")
)

// Client is a mediathek API client. The API requires no
// authentication; all endpoints are read-only.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "rbtv")
	}
}

// New creates a new mediathek API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET request and decodes the data field of the
// response envelope into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
		}
		return fmt.Errorf("mediathek API error: %s", resp.Status)
	}

	var body struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !body.Success {
		return fmt.Errorf("mediathek API rejected request: %s", body.Message)
	}
	if err := json.Unmarshal(body.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}

	if c.log != nil {
		c.log.Debug("API request", "endpoint", endpoint, "duration", time.Since(start))
	}
	return nil
}

// getPaged walks a paginated list endpoint until a short page is
// returned. decode is called once per page with the raw data array.
func (c *Client) getPaged(ctx context.Context, endpoint string, page func(data json.RawMessage) (int, error)) error {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	for offset := 0; ; offset += pageSize {
		var data json.RawMessage
		paged := fmt.Sprintf("%s%soffset=%d&limit=%d", endpoint, sep, offset, pageSize)
		if err := c.get(ctx, paged, &data); err != nil {
			return err
		}
		n, err := page(data)
		if err != nil {
			return err
		}
		if n < pageSize {
			return nil
		}
	}
}

// Show fetches a single show by id.
func (c *Client) Show(ctx context.Context, id int) (*Show, error) {
	var show Show
	if err := c.get(ctx, fmt.Sprintf("/media/show/%d", id), &show); err != nil {
		return nil, fmt.Errorf("get show %d: %w", id, err)
	}
	return &show, nil
}

// Shows fetches every show in the catalog.
func (c *Client) Shows(ctx context.Context) ([]Show, error) {
	var shows []Show
	err := c.getPaged(ctx, "/media/show/all", func(data json.RawMessage) (int, error) {
		var page []Show
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, fmt.Errorf("decode shows: %w", err)
		}
		shows = append(shows, page...)
		return len(page), nil
	})
	if err != nil {
		return nil, fmt.Errorf("get shows: %w", err)
	}
	return shows, nil
}

// Episode fetches a single episode by id.
func (c *Client) Episode(ctx context.Context, id int) (*Episode, error) {
	var batches []episodeBatch
	if err := c.get(ctx, fmt.Sprintf("/media/episode/%d", id), &batches); err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, err)
	}
	eps := flattenBatches(batches)
	if len(eps) != 1 {
		return nil, fmt.Errorf("get episode %d: %w", id, ErrNotFound)
	}
	return &eps[0], nil
}

// EpisodesByShow fetches every episode of a show.
func (c *Client) EpisodesByShow(ctx context.Context, showID int) ([]Episode, error) {
	return c.episodeList(ctx, fmt.Sprintf("/media/episode/byshow/%d", showID))
}

// UnsortedEpisodesByShow fetches the episodes of a show that are not
// assigned to any season.
func (c *Client) UnsortedEpisodesByShow(ctx context.Context, showID int) ([]Episode, error) {
	return c.episodeList(ctx, fmt.Sprintf("/media/episode/byshow/unsorted/%d", showID))
}

// EpisodesBySeason fetches every episode of a season.
func (c *Client) EpisodesBySeason(ctx context.Context, seasonID int) ([]Episode, error) {
	return c.episodeList(ctx, fmt.Sprintf("/media/episode/byseason/%d", seasonID))
}

// EpisodesByBohne fetches every episode a host appears in.
func (c *Client) EpisodesByBohne(ctx context.Context, bohneID int) ([]Episode, error) {
	return c.episodeList(ctx, fmt.Sprintf("/media/episode/bybohne/%d", bohneID))
}

func (c *Client) episodeList(ctx context.Context, endpoint string) ([]Episode, error) {
	var episodes []Episode
	err := c.getPaged(ctx, endpoint, func(data json.RawMessage) (int, error) {
		var batches []episodeBatch
		if err := json.Unmarshal(data, &batches); err != nil {
			return 0, fmt.Errorf("decode episodes: %w", err)
		}
		episodes = append(episodes, flattenBatches(batches)...)
		return len(batches), nil
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", endpoint, err)
	}
	return episodes, nil
}

func flattenBatches(batches []episodeBatch) []Episode {
	var eps []Episode
	for _, b := range batches {
		eps = append(eps, b.Episodes...)
	}
	return eps
}

// Bohne fetches a single host portrait by id.
func (c *Client) Bohne(ctx context.Context, id int) (*Bohne, error) {
	var bohne Bohne
	if err := c.get(ctx, fmt.Sprintf("/bohne/portrait/%d", id), &bohne); err != nil {
		return nil, fmt.Errorf("get bohne %d: %w", id, err)
	}
	return &bohne, nil
}

// Bohnen fetches every host portrait.
func (c *Client) Bohnen(ctx context.Context) ([]Bohne, error) {
	var bohnen []Bohne
	if err := c.get(ctx, "/bohne/portrait/all", &bohnen); err != nil {
		return nil, fmt.Errorf("get bohnen: %w", err)
	}
	return bohnen, nil
}

// BlogPost fetches a single blog post preview by id.
func (c *Client) BlogPost(ctx context.Context, id int) (*BlogPost, error) {
	var post BlogPost
	if err := c.get(ctx, fmt.Sprintf("/blog/preview/%d", id), &post); err != nil {
		return nil, fmt.Errorf("get blog post %d: %w", id, err)
	}
	return &post, nil
}

// BlogPosts fetches every blog post preview.
func (c *Client) BlogPosts(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	err := c.getPaged(ctx, "/blog/preview/all", func(data json.RawMessage) (int, error) {
		var page []BlogPost
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, fmt.Errorf("decode blog posts: %w", err)
		}
		posts = append(posts, page...)
		return len(page), nil
	})
	if err != nil {
		return nil, fmt.Errorf("get blog posts: %w", err)
	}
	return posts, nil
}

// Search performs a full-text search over shows, episodes and blog
// posts.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	var result SearchResult
	endpoint := "/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &result, nil
}
