package registry

import (
	"context"
	"fmt"
	"log/slog"

	"capstone-leads/lib/csvutil"
	"capstone-leads/lib/leadstore"
	"capstone-leads/lib/scrapers/dbpr"
	"capstone-leads/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/services/registry")

// DefaultOutput is where the report is written when no path is given.
const DefaultOutput = "output/tampa_dbpr_contractors.csv"

type Downloader interface {
	Download(ctx context.Context, url, label string) (string, error)
}

type Archive interface {
	SaveRegistryRun(ctx context.Context, run leadstore.RegistryRun) (string, error)
}

type Options struct {
	Output          string
	ConstructionURL string
	ElectricalURL   string
	// defaults to dbpr.TampaCounties
	Counties []string
}

type Result struct {
	Output string
	// sorted, construction and electrical combined
	Records   []dbpr.LicenseRecord
	Breakdown []GroupCount
	// set when the optional electrical extract could not be fetched
	ElectricalSkipped bool
	// empty unless an archive was configured
	RunID string
}

type Service struct {
	tel     telemetry.API
	source  Downloader
	tables  Tables
	archive Archive
}

// NewService creates the registry pipeline, archive may be nil.
func NewService(tel telemetry.API, source Downloader, tables Tables, archive Archive) Service {
	return Service{
		tel:     tel,
		source:  source,
		tables:  tables,
		archive: archive,
	}
}

func (s Service) fetch(ctx context.Context, url, label string, filter dbpr.RegionFilter) ([]dbpr.LicenseRecord, error) {
	text, err := s.source.Download(ctx, url, label)
	if err != nil {
		return nil, err
	}

	records, dropped := dbpr.ParseRecords(text)
	slog.InfoContext(ctx, "parsed license records", "label", label, "total", len(records))
	if dropped > 0 {
		s.tel.ReportCount(fmt.Sprintf("parse-%s.dropped", label), int64(dropped))
	}

	kept := filter.Apply(records)
	slog.InfoContext(ctx, "active licenses in region", "label", label, "count", len(kept))
	return kept, nil
}

// Run downloads both extracts, filters and classifies them and writes
// the report. The construction extract is required, a failed electrical
// download is reported and skipped. Nothing is written on error.
func (s Service) Run(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.ConstructionURL == "" {
		opts.ConstructionURL = dbpr.ConstructionURL
	}
	if opts.ElectricalURL == "" {
		opts.ElectricalURL = dbpr.ElectricalURL
	}
	if opts.Counties == nil {
		opts.Counties = dbpr.TampaCounties
	}
	filter := dbpr.NewRegionFilter(opts.Counties)

	span.SetAttributes(attribute.String("output", opts.Output))

	construction, err := s.fetch(ctx, opts.ConstructionURL, "construction", filter)
	if err != nil {
		s.tel.ReportBroken("download-construction", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	result := Result{Output: opts.Output}

	electrical, err := s.fetch(ctx, opts.ElectricalURL, "electrical", filter)
	if err != nil {
		s.tel.ReportWarning("download-electrical", err)
		result.ElectricalSkipped = true
		electrical = nil
	}

	records := make([]dbpr.LicenseRecord, 0, len(construction)+len(electrical))
	records = append(records, construction...)
	records = append(records, electrical...)
	s.tables.SortRecords(records)

	result.Records = records
	result.Breakdown = s.tables.Breakdown(records)

	licenses := make([]leadstore.License, len(records))
	rows := make([][]string, len(records))
	for i, r := range records {
		licenses[i] = s.tables.License(r)
		rows[i] = Row(licenses[i])
	}

	err = csvutil.WriteReport(opts.Output, Header(), rows)
	if err != nil {
		err = fmt.Errorf("write report: %w", err)
		s.tel.ReportBroken("write-report", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	slog.InfoContext(ctx, "wrote registry report", "path", opts.Output, "rows", len(rows))

	if s.archive != nil {
		id, err := s.archive.SaveRegistryRun(ctx, leadstore.RegistryRun{
			Output:   opts.Output,
			Licenses: licenses,
		})
		if err != nil {
			s.tel.ReportWarning("archive", err)
		} else {
			result.RunID = id
		}
	}

	return result, nil
}
