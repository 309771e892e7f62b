package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"capstone-leads/lib/csvutil"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/ratelimit"
	"capstone-leads/lib/scrapers/places"
	"capstone-leads/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/services/directory")

const (
	OutputDir = "output"
	// output of an all-trades run
	AllTradesFile = "tampa_subcontractors.csv"
)

var (
	ErrEmptyTrade = errors.New("trade must not be empty")
	ErrNoMode     = errors.New("either a trade or all trades must be requested")
)

type Searcher interface {
	SearchZone(ctx context.Context, query string, zone places.Zone) ([]places.Place, error)
}

type Archive interface {
	SaveDirectoryRun(ctx context.Context, run leadstore.DirectoryRun) (string, error)
}

type ServiceOptions struct {
	// minimum spacing between zone searches, defaults to 500ms, negative disables
	ZoneDelay time.Duration
	// minimum spacing between trades of an all-trades run, defaults to 1s,
	// negative disables
	TradeDelay time.Duration
	// defaults to Zones
	Zones []places.Zone
	// defaults to Trades
	Trades []string
	// may be nil
	Archive Archive
}

type Service struct {
	tel     telemetry.API
	search  Searcher
	zones   []places.Zone
	trades  []string
	archive Archive

	zoneThrottle  *ratelimit.Throttle
	tradeThrottle *ratelimit.Throttle
}

func NewService(tel telemetry.API, search Searcher, opts ServiceOptions) Service {
	if opts.ZoneDelay == 0 {
		opts.ZoneDelay = 500 * time.Millisecond
	}
	if opts.TradeDelay == 0 {
		opts.TradeDelay = time.Second
	}
	if opts.Zones == nil {
		opts.Zones = Zones
	}
	if opts.Trades == nil {
		opts.Trades = Trades
	}
	return Service{
		tel:           tel,
		search:        search,
		zones:         opts.Zones,
		trades:        opts.Trades,
		archive:       opts.Archive,
		zoneThrottle:  ratelimit.NewThrottle(opts.ZoneDelay),
		tradeThrottle: ratelimit.NewThrottle(opts.TradeDelay),
	}
}

func (s Service) Zones() []places.Zone {
	return s.zones
}

// ScrapeTrade searches every zone for a trade, a place found in more than
// one zone is kept once, under the first zone that found it.
func (s Service) ScrapeTrade(ctx context.Context, trade string) ([]places.Place, error) {
	ctx, span := tracer.Start(ctx, "ScrapeTrade")
	defer span.End()
	span.SetAttributes(attribute.String("trade", trade))

	slog.InfoContext(ctx, "searching trade", "trade", trade, "zones", len(s.zones))

	dedup := NewDeduper()
	var results []places.Place
	for _, zone := range s.zones {
		err := s.zoneThrottle.Wait(ctx)
		if err != nil {
			return nil, err
		}

		found, err := s.search.SearchZone(ctx, Query(trade, zone), zone)
		if err != nil {
			err = fmt.Errorf("search %s in %s: %w", trade, zone.Name, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		fresh := dedup.Add(found)
		if len(fresh) > 0 {
			slog.InfoContext(ctx, "zone searched", "zone", zone.Name, "new", len(fresh))
		}
		results = append(results, fresh...)
	}

	slog.InfoContext(
		ctx, "trade searched",
		"trade", trade,
		"unique", len(results),
		"zones", len(s.zones),
	)
	s.tel.ReportCount(fmt.Sprintf("trade-%s.places", strings.ReplaceAll(trade, " ", "_")), int64(len(results)))
	return results, nil
}

type Options struct {
	// single trade mode, free text
	Trade string
	// all trades mode, ignored when Trade is set
	All bool
	// defaults to OutputPath
	Output string
}

// NormalizeTrade lower-cases and trims a free text trade.
func NormalizeTrade(trade string) string {
	return strings.ToLower(strings.TrimSpace(trade))
}

// OutputPath is the default report location of a run.
func OutputPath(opts Options) string {
	if opts.Trade == "" {
		return filepath.Join(OutputDir, AllTradesFile)
	}
	name := strings.Join(strings.Fields(NormalizeTrade(opts.Trade)), "_")
	return filepath.Join(OutputDir, fmt.Sprintf("tampa_subs_%s.csv", name))
}

type Result struct {
	Output  string
	Results TradeResultSet
	// empty unless an archive was configured
	RunID string
}

// Run searches either one trade or every trade and writes the report. Any
// failed search aborts the run before the report is written.
func (s Service) Run(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	var trades []string
	scope := "all"
	if opts.Trade != "" {
		trade := NormalizeTrade(opts.Trade)
		if trade == "" {
			return Result{}, ErrEmptyTrade
		}
		opts.Trade = trade
		trades = []string{trade}
		scope = trade
	} else if opts.All {
		trades = s.trades
	} else {
		return Result{}, ErrNoMode
	}
	if opts.Output == "" {
		opts.Output = OutputPath(opts)
	}
	span.SetAttributes(
		attribute.String("scope", scope),
		attribute.String("output", opts.Output),
	)

	var set TradeResultSet
	for _, trade := range trades {
		if len(trades) > 1 {
			err := s.tradeThrottle.Wait(ctx)
			if err != nil {
				return Result{}, err
			}
		}

		found, err := s.ScrapeTrade(ctx, trade)
		if err != nil {
			s.tel.ReportBroken("search", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}
		set = append(set, TradeResults{Trade: trade, Places: found})
	}

	leads := set.Leads()
	rows := make([][]string, len(leads))
	for i, l := range leads {
		rows[i] = Row(l)
	}
	err := csvutil.WriteReport(opts.Output, Header(), rows)
	if err != nil {
		err = fmt.Errorf("write report: %w", err)
		s.tel.ReportBroken("write-report", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	slog.InfoContext(
		ctx, "wrote directory report",
		"path", opts.Output,
		"places", set.Total(),
		"trades", len(set),
	)

	result := Result{Output: opts.Output, Results: set}
	if s.archive != nil {
		id, err := s.archive.SaveDirectoryRun(ctx, leadstore.DirectoryRun{
			Scope:  scope,
			Output: opts.Output,
			Places: leads,
		})
		if err != nil {
			s.tel.ReportWarning("archive", err)
		} else {
			result.RunID = id
		}
	}
	return result, nil
}
