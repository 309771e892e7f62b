package db

import (
	"database/sql"
)

type License struct {
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

type Place struct {
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

type Run struct {
	ID        string
	Kind      string
	Scope     string
	Output    string
	CreatedAt int64
}
