package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"dogs-api/internal/domain/dogs"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: sql.ErrNoRows, want: dogs.ErrNotFound},
		{name: "not null violation", in: &pgconn.PgError{Code: "23502", Message: "null value"}, want: dogs.ErrRejected},
		{name: "invalid text representation", in: &pgconn.PgError{Code: "22P02", Message: "invalid input"}, want: dogs.ErrRejected},
		{name: "wrapped pg error", in: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), want: dogs.ErrRejected},
		{name: "undefined table", in: &pgconn.PgError{Code: "42P01"}, want: nil},
		{name: "network", in: boom, want: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in)
			switch {
			case tt.in == nil:
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
			case tt.want == nil:
				if errors.Is(got, dogs.ErrRejected) || errors.Is(got, dogs.ErrNotFound) {
					t.Fatalf("expected passthrough, got %v", got)
				}
			default:
				if !errors.Is(got, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestMigrationFiles_HaveCreateAndDrop(t *testing.T) {
	files, err := migrationFiles()
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}

	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no migrations embedded")
	}

	b, err := fs.ReadFile(files, entries[0].Name())
	if err != nil {
		t.Fatalf("read %s: %v", entries[0].Name(), err)
	}
	sqlText := string(b)
	if !strings.Contains(sqlText, "CREATE TABLE IF NOT EXISTS dogs") {
		t.Fatalf("first migration does not create dogs table")
	}
	if !strings.Contains(sqlText, "---- create above / drop below ----") {
		t.Fatalf("first migration missing tern down separator")
	}
}
