package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrorDump is the log-friendly view of an error chain.
type ErrorDump struct {
	TopMessage string    `json:"top_message"`
	Code       Code      `json:"code,omitempty"`
	Chain      []string  `json:"chain,omitempty"`
	DB         *DBDetail `json:"db,omitempty"`
}

// DBDetail carries what the storage driver reported. Postgres fields come
// from pgx or lib/pq; SQLite fields from go-sqlite3.
type DBDetail struct {
	Driver     string `json:"driver"`
	Code       string `json:"code,omitempty"`
	Extended   string `json:"extended,omitempty"`
	Message    string `json:"message,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	// Transient marks SQLite busy/locked errors, which clear once the
	// competing writer finishes.
	Transient bool `json:"transient,omitempty"`
}

// Dump flattens an error chain plus any database driver details for logging.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.Code()
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	d.DB = dbDetail(err)
	return d
}

// LogFields returns the dump as flat logger fields prefixed with "db_".
func (d ErrorDump) LogFields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
	}
	if d.DB == nil {
		return fields
	}
	fields["db_driver"] = d.DB.Driver
	for key, value := range map[string]string{
		"db_code":       d.DB.Code,
		"db_extended":   d.DB.Extended,
		"db_message":    d.DB.Message,
		"db_detail":     d.DB.Detail,
		"db_table":      d.DB.Table,
		"db_column":     d.DB.Column,
		"db_constraint": d.DB.Constraint,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	if d.DB.Transient {
		fields["db_transient"] = true
	}
	return fields
}

func dbDetail(err error) *DBDetail {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return &DBDetail{
			Driver:     "postgres",
			Code:       pgxErr.Code,
			Message:    pgxErr.Message,
			Detail:     pgxErr.Detail,
			Table:      pgxErr.TableName,
			Column:     pgxErr.ColumnName,
			Constraint: pgxErr.ConstraintName,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &DBDetail{
			Driver:     "postgres",
			Code:       string(pqErr.Code),
			Message:    pqErr.Message,
			Detail:     pqErr.Detail,
			Table:      pqErr.Table,
			Column:     pqErr.Column,
			Constraint: pqErr.Constraint,
		}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return &DBDetail{
			Driver:    "sqlite",
			Code:      sqliteErr.Code.Error(),
			Extended:  sqliteErr.ExtendedCode.Error(),
			Message:   sqliteErr.Error(),
			Transient: sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked,
		}
	}
	return nil
}
