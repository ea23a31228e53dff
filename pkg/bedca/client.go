package bedca

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultBaseURL is the public BEDCA query endpoint.
const DefaultBaseURL = "https://www.bedca.net/bdpub/procquery.php"

const (
	defaultUserAgent = "gobedca (+https://github.com/gobedca/gobedca)"
	httpTimeout      = 10 * time.Second

	// originBEDCA is the origin marker of the canonical dataset; list
	// queries filter on it to exclude third-party contributions.
	originBEDCA = "BEDCA"
)

// Client talks to the BEDCA database. It reuses one underlying HTTP client
// (and thus its connection pool) across calls and attaches the fixed header
// set the upstream service requires before accepting requests.
//
// Calls are synchronous and independent; the client holds no mutable state
// between them, so it is safe for concurrent use as long as the configured
// http.Client is (the default one is). No retries are performed and no
// responses are cached.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different query endpoint.
// Used by tests; the production endpoint is [DefaultBaseURL].
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client. Use this to control
// timeouts, proxies, or transport-level settings.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger attaches a logger; requests and responses are logged at debug
// level with a per-request correlation id.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the public BEDCA endpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: httpTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAllFoods returns a preview of every food in the canonical dataset,
// sorted by Spanish name.
func (c *Client) ListAllFoods(ctx context.Context) ([]FoodPreview, error) {
	query, err := NewQuery(LevelPreview).
		Select(AttrID, AttrSpanishName, AttrEnglishName, AttrOrigin).
		Where(AttrOrigin, RelationEqual, originBEDCA).
		Order(AttrSpanishName, true).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, query)
	if err != nil {
		return nil, err
	}
	return ParsePreviewList(body)
}

// SearchFoodsByName returns previews of foods whose name in the given
// language contains text, sorted by that name.
func (c *Client) SearchFoodsByName(ctx context.Context, text string, lang Language) ([]FoodPreview, error) {
	nameAttr, ok := lang.nameAttribute()
	if !ok {
		return nil, fmt.Errorf("unknown language %q", lang)
	}

	query, err := NewQuery(LevelPreview).
		Select(AttrID, AttrSpanishName, AttrEnglishName, AttrOrigin).
		Where(nameAttr, RelationLike, text).
		Where(AttrOrigin, RelationEqual, originBEDCA).
		Order(nameAttr, true).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, query)
	if err != nil {
		return nil, err
	}
	return ParsePreviewList(body)
}

// GetFoodByID returns the complete record for one food, including its full
// nutrient profile. Returns [ErrNotFound] if no public food has that id.
//
// Sorting by component group preserves the upstream's natural grouping of
// nutrient rows.
func (c *Client) GetFoodByID(ctx context.Context, id int) (*Food, error) {
	query, err := NewQuery(LevelDetail).
		Select(AllAttributes()...).
		Where(AttrID, RelationEqual, strconv.Itoa(id)).
		Order(AttrComponentGroupID, true).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, query)
	if err != nil {
		return nil, err
	}

	food, err := ParseFood(body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return food, nil
}

// post sends one query document and returns the response body. Non-2xx
// statuses and transport failures surface as [ErrNetwork] before any parsing
// is attempted.
func (c *Client) post(ctx context.Context, query string) (string, error) {
	reqID := uuid.NewString()[:8]
	c.logger.Debug("bedca request", "id", reqID, "url", c.baseURL, "bytes", len(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Origin", "https://www.bedca.net")
	req.Header.Set("Referer", "https://www.bedca.net/bdpub/index.php")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	c.logger.Debug("bedca response", "id", reqID, "status", resp.StatusCode, "bytes", len(data))
	return string(data), nil
}
