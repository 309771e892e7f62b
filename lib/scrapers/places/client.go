package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"capstone-leads/lib/ratelimit"
	"capstone-leads/lib/restyutil"
	"capstone-leads/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/scrapers/places")

var ErrMissingKey = errors.New("a places api key is required")

// APIError is returned for any non-2xx response, there is no retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("places search failed (%d): %s", e.StatusCode, e.Body)
}

type Client struct {
	http     *resty.Client
	endpoint string
	pages    *ratelimit.Throttle
}

type ClientOptions struct {
	APIKey string
	// defaults to SearchTextURL
	Endpoint string
	// minimum spacing between page requests, defaults to 1s, negative disables
	PageDelay time.Duration
	Timeout   time.Duration
	Dump      restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingKey
	}
	if opts.Endpoint == "" {
		opts.Endpoint = SearchTextURL
	}
	if opts.PageDelay == 0 {
		opts.PageDelay = time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("X-Goog-Api-Key", opts.APIKey)
	client.SetHeader("X-Goog-FieldMask", FieldMask)

	telemetry.InstrumentResty(client, "capstone-leads/scrapers/places/http")
	restyutil.DumpExchanges(client, opts.Dump)

	return &Client{
		http:     client,
		endpoint: opts.Endpoint,
		pages:    ratelimit.NewThrottle(opts.PageDelay),
	}, nil
}

// SearchText performs a single text search request.
func (c *Client) SearchText(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	if req.PageSize == 0 {
		req.PageSize = PageSize
	}

	var out SearchResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(c.endpoint)
	if err != nil {
		return SearchResponse{}, err
	}
	if res.IsError() {
		return SearchResponse{}, &APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}
	return out, nil
}

// SearchZone runs `query` biased to `zone` and follows continuation tokens
// for at most MaxPages pages. Results of every page are returned in order,
// duplicates included.
func (c *Client) SearchZone(ctx context.Context, query string, zone Zone) ([]Place, error) {
	ctx, span := tracer.Start(ctx, "client:SearchZone")
	defer span.End()
	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("zone", zone.Name),
	)

	req := SearchRequest{
		TextQuery:    query,
		PageSize:     PageSize,
		LocationBias: zone.bias(),
	}

	var results []Place
	for page := 0; page < MaxPages; page++ {
		err := c.pages.Wait(ctx)
		if err != nil {
			return nil, err
		}

		res, err := c.SearchText(ctx, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search failed")
			return nil, err
		}
		results = append(results, res.Places...)
		slog.DebugContext(
			ctx, "search page",
			"query", query,
			"page", page+1,
			"results", len(res.Places),
		)

		if res.NextPageToken == "" {
			break
		}
		req.PageToken = res.NextPageToken
	}

	span.SetAttributes(attribute.Int("results", len(results)))
	return results, nil
}
