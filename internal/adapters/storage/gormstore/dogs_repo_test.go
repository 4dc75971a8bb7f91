package gormstore

import (
	"errors"
	"testing"

	"dogs-api/internal/domain/dogs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestPatchColumns_OnlyPresentFields(t *testing.T) {
	breed := "Beagle"
	age := 4.0

	cols := patchColumns(dogs.Patch{Breed: &breed, Age: &age})
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %v", cols)
	}
	if cols["breed"] != "Beagle" || cols["age"] != 4.0 {
		t.Fatalf("unexpected columns %v", cols)
	}
	if _, ok := cols["name"]; ok {
		t.Fatalf("name should not be updated")
	}

	if got := patchColumns(dogs.Patch{}); len(got) != 0 {
		t.Fatalf("empty patch should produce no columns, got %v", got)
	}
}

func TestMapError(t *testing.T) {
	if !errors.Is(mapError(gorm.ErrRecordNotFound), dogs.ErrNotFound) {
		t.Fatalf("record not found should map to ErrNotFound")
	}
	if !errors.Is(mapError(&pgconn.PgError{Code: "23502"}), dogs.ErrRejected) {
		t.Fatalf("not null violation should map to ErrRejected")
	}
}

func TestDogRecord_TableAndConversion(t *testing.T) {
	rec := dogRecord{ID: 7, Name: "Rex", Breed: "Lab", Age: 3, Description: "friendly"}
	if rec.TableName() != "dogs" {
		t.Fatalf("unexpected table %q", rec.TableName())
	}
	want := dogs.Dog{ID: 7, Name: "Rex", Breed: "Lab", Age: 3, Description: "friendly"}
	if rec.toDog() != want {
		t.Fatalf("expected %+v, got %+v", want, rec.toDog())
	}
}
