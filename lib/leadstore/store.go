// Package leadstore archives the rows of each report run in sqlite so
// runs of the two pipelines can be compared later.
package leadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"capstone-leads/lib/leadstore/db"
	"capstone-leads/lib/sqliteutil"
	"capstone-leads/lib/telemetry"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("capstone-leads/leadstore")

// ErrNoRuns is returned when no run of the requested kind was archived.
var ErrNoRuns = errors.New("no archived runs")

const (
	KindRegistry  = "registry"
	KindDirectory = "directory"
)

type License struct {
	Group         string
	Trade         string
	Licensee      string
	DBA           string
	LicenseNumber string
	Class         string
	Address       string
	City          string
	State         string
	Zip           string
	County        string
	LicensedSince string
	Expires       string
}

type Place struct {
	Trade   string
	PlaceID string
	Name    string
	Address string
	Phone   string
	Website string
	Rating  *float64
	Reviews *int
	MapsURL string
}

type RegistryRun struct {
	Output   string
	Licenses []License
}

type DirectoryRun struct {
	// the trade searched, or "all"
	Scope  string
	Output string
	Places []Place
}

type Run struct {
	ID        string
	Kind      string
	Scope     string
	Output    string
	CreatedAt time.Time
	Rows      int64
}

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

// Open opens the archive at path, creating it if needed.
func Open(path string) (Store, error) {
	database, err := sqliteutil.OpenDB(db.Schema, path)
	if err != nil {
		return Store{}, fmt.Errorf("open archive %s: %w", path, err)
	}
	return NewStore(database), nil
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func (s Store) Close() error {
	return s.db.Close()
}

func (s Store) createRun(ctx context.Context, txqry *db.Queries, kind, scope, output string) (string, error) {
	id := ulid.Make()
	err := txqry.CreateRun(ctx, db.CreateRunParams{
		ID:        id.String(),
		Kind:      kind,
		Scope:     scope,
		Output:    output,
		CreatedAt: int64(id.Time()),
	})
	return id.String(), err
}

// SaveRegistryRun archives one registry report and returns the run id.
func (s Store) SaveRegistryRun(ctx context.Context, run RegistryRun) (string, error) {
	ctx, span := tracer.Start(ctx, "SaveRegistryRun")
	defer span.End()
	span.SetAttributes(attribute.Int("rows", len(run.Licenses)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	id, err := s.createRun(ctx, txqry, KindRegistry, "tampa", run.Output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	for i, l := range run.Licenses {
		err := txqry.CreateLicense(ctx, db.CreateLicenseParams{
			RunID:         id,
			Position:      int64(i),
			TradeGroup:    l.Group,
			Trade:         l.Trade,
			Licensee:      l.Licensee,
			Dba:           l.DBA,
			LicenseNumber: l.LicenseNumber,
			Class:         l.Class,
			Address:       l.Address,
			City:          l.City,
			State:         l.State,
			Zip:           l.Zip,
			County:        l.County,
			LicensedSince: l.LicensedSince,
			Expires:       l.Expires,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return id, nil
}

// SaveDirectoryRun archives one directory report and returns the run id.
func (s Store) SaveDirectoryRun(ctx context.Context, run DirectoryRun) (string, error) {
	ctx, span := tracer.Start(ctx, "SaveDirectoryRun")
	defer span.End()
	span.SetAttributes(
		attribute.String("scope", run.Scope),
		attribute.Int("rows", len(run.Places)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	id, err := s.createRun(ctx, txqry, KindDirectory, run.Scope, run.Output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	for i, p := range run.Places {
		params := db.CreatePlaceParams{
			RunID:    id,
			Position: int64(i),
			Trade:    p.Trade,
			PlaceID:  p.PlaceID,
			Name:     p.Name,
			Address:  p.Address,
			Phone:    p.Phone,
			Website:  p.Website,
			MapsUrl:  p.MapsURL,
		}
		if p.Rating != nil {
			params.Rating = sql.NullFloat64{Float64: *p.Rating, Valid: true}
		}
		if p.Reviews != nil {
			params.Reviews = sql.NullInt64{Int64: int64(*p.Reviews), Valid: true}
		}
		err := txqry.CreatePlace(ctx, params)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return id, nil
}

// Runs lists every archived run, newest first.
func (s Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.qry.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Run, len(rows))
	for i, r := range rows {
		out[i] = Run{
			ID:        r.ID,
			Kind:      r.Kind,
			Scope:     r.Scope,
			Output:    r.Output,
			CreatedAt: time.UnixMilli(r.CreatedAt),
			Rows:      r.RowCount,
		}
	}
	return out, nil
}

func (s Store) latestRun(ctx context.Context, kind string) (string, error) {
	id, err := s.qry.GetLatestRunId(ctx, kind)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w of kind %s", ErrNoRuns, kind)
	}
	return id, err
}

// LatestLicenses returns the rows of the newest registry run in report order.
func (s Store) LatestLicenses(ctx context.Context) ([]License, error) {
	ctx, span := tracer.Start(ctx, "LatestLicenses")
	defer span.End()

	id, err := s.latestRun(ctx, KindRegistry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	rows, err := s.qry.GetLicenses(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]License, len(rows))
	for i, r := range rows {
		out[i] = License{
			Group:         r.TradeGroup,
			Trade:         r.Trade,
			Licensee:      r.Licensee,
			DBA:           r.Dba,
			LicenseNumber: r.LicenseNumber,
			Class:         r.Class,
			Address:       r.Address,
			City:          r.City,
			State:         r.State,
			Zip:           r.Zip,
			County:        r.County,
			LicensedSince: r.LicensedSince,
			Expires:       r.Expires,
		}
	}
	return out, nil
}

// LatestPlaces returns the rows of the newest directory run in report order.
func (s Store) LatestPlaces(ctx context.Context) ([]Place, error) {
	ctx, span := tracer.Start(ctx, "LatestPlaces")
	defer span.End()

	id, err := s.latestRun(ctx, KindDirectory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	rows, err := s.qry.GetPlaces(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Place, len(rows))
	for i, r := range rows {
		p := Place{
			Trade:   r.Trade,
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.Address,
			Phone:   r.Phone,
			Website: r.Website,
			MapsURL: r.MapsUrl,
		}
		if r.Rating.Valid {
			rating := r.Rating.Float64
			p.Rating = &rating
		}
		if r.Reviews.Valid {
			reviews := int(r.Reviews.Int64)
			p.Reviews = &reviews
		}
		out[i] = p
	}
	return out, nil
}
