package dbpr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"capstone-leads/lib/restyutil"
	"capstone-leads/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/scrapers/dbpr")

// Public extracts published by the Florida DBPR, refreshed weekly.
const (
	ConstructionURL = "https://www2.myfloridalicense.com/sto/file_download/extracts/CONSTRUCTIONLICENSE_1.csv"
	ElectricalURL   = "https://www2.myfloridalicense.com/sto/file_download/extracts/ELECTRICALLICENSE_1.csv"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// StatusError is returned when an extract responds with a non-2xx status.
type StatusError struct {
	Label      string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download %s: %d", e.Label, e.StatusCode)
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// defaults to 5 minutes, the construction extract is large
	Timeout time.Duration
	// routes requests through a browser-like TLS fingerprint, the state
	// site sits behind cloudflare
	CloudflareBypass bool
	// when set, every exchange is written here
	Dump restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", userAgent)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	telemetry.InstrumentResty(client, "capstone-leads/scrapers/dbpr/http")
	restyutil.DumpExchanges(client, opts.Dump)

	return &Client{http: client}
}

// Download fetches a whole extract as text. Any non-2xx status is an error.
func (c *Client) Download(ctx context.Context, url, label string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Download")
	defer span.End()
	span.SetAttributes(attribute.String("label", label))

	slog.InfoContext(ctx, "downloading license data", "label", label)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return "", fmt.Errorf("failed to download %s: %w", label, err)
	}
	if res.IsError() {
		err := &StatusError{Label: label, StatusCode: res.StatusCode()}
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	body := res.String()
	slog.InfoContext(
		ctx, "downloaded license data",
		"label", label,
		"mb", fmt.Sprintf("%.1f", float64(len(body))/1024/1024),
	)
	return body, nil
}
