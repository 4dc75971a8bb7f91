package gormstore

import (
	"context"
	"errors"

	"dogs-api/internal/adapters/storage/postgres"
	"dogs-api/internal/domain/dogs"

	"gorm.io/gorm"
)

// dogRecord es la fila de la tabla dogs vista por gorm.
type dogRecord struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	Breed       string  `gorm:"not null"`
	Age         float64 `gorm:"not null"`
	Description string  `gorm:"not null"`
}

func (dogRecord) TableName() string { return "dogs" }

func (r dogRecord) toDog() dogs.Dog {
	return dogs.Dog{
		ID:          r.ID,
		Name:        r.Name,
		Breed:       r.Breed,
		Age:         r.Age,
		Description: r.Description,
	}
}

type DogsRepo struct {
	db *gorm.DB
}

func NewDogsRepo(db *gorm.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) FindMany(ctx context.Context) ([]dogs.Dog, error) {
	var recs []dogRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, mapError(err)
	}

	out := make([]dogs.Dog, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDog())
	}
	return out, nil
}

func (r *DogsRepo) FindUnique(ctx context.Context, id int64) (dogs.Dog, error) {
	var rec dogRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return dogs.Dog{}, mapError(err)
	}
	return rec.toDog(), nil
}

func (r *DogsRepo) Create(ctx context.Context, in dogs.CreateInput) (dogs.Dog, error) {
	rec := dogRecord{
		Name:        in.Name,
		Breed:       in.Breed,
		Age:         in.Age,
		Description: in.Description,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return dogs.Dog{}, mapError(err)
	}
	return rec.toDog(), nil
}

// Update aplica solo las columnas presentes en el patch y relee el registro.
func (r *DogsRepo) Update(ctx context.Context, id int64, p dogs.Patch) (dogs.Dog, error) {
	cols := patchColumns(p)

	var rec dogRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			res := tx.Model(&dogRecord{}).Where("id = ?", id).Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return dogs.ErrNotFound
			}
		}
		return tx.First(&rec, id).Error
	})
	if err != nil {
		return dogs.Dog{}, mapError(err)
	}
	return rec.toDog(), nil
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&dogRecord{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func patchColumns(p dogs.Patch) map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Breed != nil {
		cols["breed"] = *p.Breed
	}
	if p.Age != nil {
		cols["age"] = *p.Age
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	return cols
}

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, dogs.ErrNotFound) {
		return dogs.ErrNotFound
	}
	return postgres.MapError(err)
}
