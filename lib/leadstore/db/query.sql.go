package db

import (
	"context"
	"database/sql"
)

const createLicense = `-- name: CreateLicense :exec
insert into licenses (
    run_id, position, trade_group, trade, licensee, dba, license_number,
    class, address, city, state, zip, county, licensed_since, expires
) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateLicenseParams struct {
	RunID         string
	Position      int64
	TradeGroup    string
	Trade         string
	Licensee      string
	Dba           string
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

func (q *Queries) CreateLicense(ctx context.Context, arg CreateLicenseParams) error {
	_, err := q.db.ExecContext(ctx, createLicense,
		arg.RunID,
		arg.Position,
		arg.TradeGroup,
		arg.Trade,
		arg.Licensee,
		arg.Dba,
		arg.LicenseNumber,
		arg.Class,
		arg.Address,
		arg.City,
		arg.State,
		arg.Zip,
		arg.County,
		arg.LicensedSince,
		arg.Expires,
	)
	return err
}

const createPlace = `-- name: CreatePlace :exec
insert into places (
    run_id, position, trade, place_id, name, address, phone, website,
    rating, reviews, maps_url
) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreatePlaceParams struct {
	RunID    string
	Position int64
	Trade    string
	PlaceID  string
	Name     string
	Address  string
	Phone    string
	Website  string
	Rating   sql.NullFloat64
	Reviews  sql.NullInt64
	MapsUrl  string
}

func (q *Queries) CreatePlace(ctx context.Context, arg CreatePlaceParams) error {
	_, err := q.db.ExecContext(ctx, createPlace,
		arg.RunID,
		arg.Position,
		arg.Trade,
		arg.PlaceID,
		arg.Name,
		arg.Address,
		arg.Phone,
		arg.Website,
		arg.Rating,
		arg.Reviews,
		arg.MapsUrl,
	)
	return err
}

const createRun = `-- name: CreateRun :exec
insert into runs (id, kind, scope, output, created_at)
values (?, ?, ?, ?, ?)
`

type CreateRunParams struct {
	ID        string
	Kind      string
	Scope     string
	Output    string
	CreatedAt int64
}

func (q *Queries) CreateRun(ctx context.Context, arg CreateRunParams) error {
	_, err := q.db.ExecContext(ctx, createRun,
		arg.ID,
		arg.Kind,
		arg.Scope,
		arg.Output,
		arg.CreatedAt,
	)
	return err
}

const getLatestRunId = `-- name: GetLatestRunId :one
select id from runs
where kind = ?
order by id desc
limit 1
`

func (q *Queries) GetLatestRunId(ctx context.Context, kind string) (string, error) {
	row := q.db.QueryRowContext(ctx, getLatestRunId, kind)
	var id string
	err := row.Scan(&id)
	return id, err
}

const getLicenses = `-- name: GetLicenses :many
select run_id, position, trade_group, trade, licensee, dba, license_number, class, address, city, state, zip, county, licensed_since, expires from licenses
where run_id = ?
order by position
`

func (q *Queries) GetLicenses(ctx context.Context, runID string) ([]License, error) {
	rows, err := q.db.QueryContext(ctx, getLicenses, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []License
	for rows.Next() {
		var i License
		if err := rows.Scan(
			&i.RunID,
			&i.Position,
			&i.TradeGroup,
			&i.Trade,
			&i.Licensee,
			&i.Dba,
			&i.LicenseNumber,
			&i.Class,
			&i.Address,
			&i.City,
			&i.State,
			&i.Zip,
			&i.County,
			&i.LicensedSince,
			&i.Expires,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPlaces = `-- name: GetPlaces :many
select run_id, position, trade, place_id, name, address, phone, website, rating, reviews, maps_url from places
where run_id = ?
order by position
`

func (q *Queries) GetPlaces(ctx context.Context, runID string) ([]Place, error) {
	rows, err := q.db.QueryContext(ctx, getPlaces, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Place
	for rows.Next() {
		var i Place
		if err := rows.Scan(
			&i.RunID,
			&i.Position,
			&i.Trade,
			&i.PlaceID,
			&i.Name,
			&i.Address,
			&i.Phone,
			&i.Website,
			&i.Rating,
			&i.Reviews,
			&i.MapsUrl,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRuns = `-- name: ListRuns :many
select
    runs.id, runs.kind, runs.scope, runs.output, runs.created_at,
    (select count(*) from licenses where licenses.run_id = runs.id)
        + (select count(*) from places where places.run_id = runs.id) as row_count
from runs
order by runs.id desc
`

type ListRunsRow struct {
	ID        string
	Kind      string
	Scope     string
	Output    string
	CreatedAt int64
	RowCount  int64
}

func (q *Queries) ListRuns(ctx context.Context) ([]ListRunsRow, error) {
	rows, err := q.db.QueryContext(ctx, listRuns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRunsRow
	for rows.Next() {
		var i ListRunsRow
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Scope,
			&i.Output,
			&i.CreatedAt,
			&i.RowCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
