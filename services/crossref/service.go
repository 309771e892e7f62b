package crossref

import (
	"context"
	"fmt"
	"log/slog"

	"capstone-leads/lib/csvutil"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/services/crossref")

const DefaultOutput = "output/tampa_crossref.csv"

type Source interface {
	LatestLicenses(ctx context.Context) ([]leadstore.License, error)
	LatestPlaces(ctx context.Context) ([]leadstore.Place, error)
}

type Options struct {
	Output string
	// defaults to DefaultThreshold
	Threshold float64
}

type Result struct {
	Output   string
	Licenses int
	Places   int
	Matches  []Match
}

type Service struct {
	tel    telemetry.API
	source Source
}

func NewService(tel telemetry.API, source Source) Service {
	return Service{tel: tel, source: source}
}

// Run links the newest archived registry run with the newest archived
// directory run and writes the matches.
func (s Service) Run(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}

	licenses, err := s.source.LatestLicenses(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("load licenses: %w", err)
	}
	directory, err := s.source.LatestPlaces(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("load places: %w", err)
	}

	matches := Link(licenses, directory, opts.Threshold)
	exact := 0
	for _, m := range matches {
		if m.Exact {
			exact++
		}
	}
	s.tel.ReportCount("matches.exact", int64(exact))
	s.tel.ReportCount("matches.similar", int64(len(matches)-exact))
	span.SetAttributes(attribute.Int("matches", len(matches)))

	err = csvutil.WriteReport(opts.Output, Header(), BuildRows(matches))
	if err != nil {
		err = fmt.Errorf("write report: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	slog.InfoContext(
		ctx, "wrote cross reference",
		"path", opts.Output,
		"licenses", len(licenses),
		"places", len(directory),
		"matches", len(matches),
	)

	return Result{
		Output:   opts.Output,
		Licenses: len(licenses),
		Places:   len(directory),
		Matches:  matches,
	}, nil
}
