package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hacker-menu/internal/model"
)

// DefaultBaseAPI is the public Firebase endpoint.
const DefaultBaseAPI = "https://hacker-news.firebaseio.com/v0"

// Client is a minimal Hacker News API client.
// Docs: https://github.com/HackerNews/API
type Client struct {
	baseAPI string
	client  *http.Client
}

// NewClient creates a new Hacker News client. baseAPI should be something like
// "https://hacker-news.firebaseio.com/v0". If empty, it defaults to the v0 endpoint.
func NewClient(baseAPI string) *Client {
	if strings.TrimSpace(baseAPI) == "" {
		baseAPI = DefaultBaseAPI
	}
	return &Client{
		baseAPI: strings.TrimRight(baseAPI, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// hnItem mirrors the subset of HN item fields we care about. Optional fields
// are pointers so that "missing" survives decoding.
type hnItem struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"` // story, job, poll, comment, pollopt
	By          string  `json:"by"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Time        int64   `json:"time"`
	Descendants *int    `json:"descendants"`
	Score       *int    `json:"score"`
	Deleted     bool    `json:"deleted"`
	Dead        bool    `json:"dead"`
}

// ListEndpoint maps a list name (top, new, best, ask, show, job) to its API
// path. Unknown names fall back to top stories.
func ListEndpoint(list string) string {
	switch strings.ToLower(strings.TrimSpace(list)) {
	case "new", "newstories":
		return "newstories"
	case "best", "beststories":
		return "beststories"
	case "ask", "askstories":
		return "askstories"
	case "show", "showstories":
		return "showstories"
	case "job", "jobs", "jobstories":
		return "jobstories"
	default:
		return "topstories"
	}
}

// Stories returns up to limit posts of a list, in the list's rank order.
func (c *Client) Stories(ctx context.Context, list string, limit int) ([]model.Post, error) {
	endpoint := ListEndpoint(list)
	ids, err := c.fetchIDs(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	slog.Info("hackernews: fetching items", "list", endpoint, "count", len(ids))
	return c.itemsByIDs(ctx, ids)
}

// Item fetches a single HN item by ID.
func (c *Client) Item(ctx context.Context, id int) (model.Post, error) {
	it, err := c.item(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	return convertItem(it), nil
}

func (c *Client) item(ctx context.Context, id int) (hnItem, error) {
	var zero hnItem
	endpoint := fmt.Sprintf("%s/item/%d.json", c.baseAPI, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, fmt.Errorf("hackernews: item %d status %d", id, resp.StatusCode)
	}
	var it *hnItem
	if err := json.NewDecoder(resp.Body).Decode(&it); err != nil {
		return zero, fmt.Errorf("hackernews: decode item %d: %w", id, err)
	}
	// the API answers null for ids that do not exist
	if it == nil {
		return zero, fmt.Errorf("hackernews: item %d: %w", id, ErrNotFound)
	}
	return *it, nil
}

// fetchIDs loads a list endpoint such as topstories/newstories/etc.
func (c *Client) fetchIDs(ctx context.Context, list string) ([]int, error) {
	path := fmt.Sprintf("%s/%s.json", c.baseAPI, url.PathEscape(list))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("hackernews: %s status %d", list, resp.StatusCode)
	}
	var ids []int
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("hackernews: decode %s: %w", list, err)
	}
	return ids, nil
}

// itemsByIDs resolves multiple IDs concurrently, keeping the input order.
func (c *Client) itemsByIDs(ctx context.Context, ids []int) ([]model.Post, error) {
	if len(ids) == 0 {
		return []model.Post{}, nil
	}
	// bounded concurrency
	const maxWorkers = 8
	type result struct {
		idx  int
		item hnItem
		err  error
	}
	out := make([]*hnItem, len(ids))
	sem := make(chan struct{}, maxWorkers)
	done := make(chan result, len(ids))
	for i, id := range ids {
		i, id := i, id
		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()
			// Per-item timeout to avoid hanging
			ictx, cancel := context.WithTimeout(ctx, 8*time.Second)
			defer cancel()
			it, err := c.item(ictx, id)
			done <- result{idx: i, item: it, err: err}
		}()
	}
	failed := 0
	for i := 0; i < len(ids); i++ {
		r := <-done
		if r.err != nil {
			// skip failed ones; the rest of the batch is still useful
			failed++
			slog.Debug("hackernews: item failed", "id", ids[r.idx], "error", r.err)
			continue
		}
		it := r.item
		out[r.idx] = &it
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(ids))
	for _, it := range out {
		if it == nil || it.Deleted || it.Dead {
			continue
		}
		posts = append(posts, convertItem(*it))
	}
	if failed > 0 {
		slog.Warn("hackernews: some items could not be fetched", "failed", failed, "total", len(ids))
	}
	return posts, nil
}

// convertItem maps an hnItem to a Post. Absent fields stay absent.
func convertItem(h hnItem) model.Post {
	p := model.Post{
		ID:   h.ID,
		Time: h.Time,
		Type: h.Type,
		By:   h.By,
	}
	if h.Title != nil {
		p.Title = model.Some(*h.Title)
	}
	if h.URL != nil && strings.TrimSpace(*h.URL) != "" {
		p.URL = model.Some(strings.TrimSpace(*h.URL))
	}
	if h.Score != nil {
		p.Score = model.Some(*h.Score)
	}
	if h.Descendants != nil {
		p.Comments = model.Some(*h.Descendants)
	}
	return p
}
