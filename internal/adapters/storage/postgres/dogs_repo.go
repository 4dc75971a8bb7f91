package postgres

import (
	"context"
	"database/sql"

	"dogs-api/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `id, name, breed, age, description`

type scanner interface {
	Scan(dest ...any) error
}

func scanDog(s scanner) (dogs.Dog, error) {
	var d dogs.Dog
	err := s.Scan(&d.ID, &d.Name, &d.Breed, &d.Age, &d.Description)
	return d, err
}

func (r *DogsRepo) FindMany(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+dogColumns+` FROM dogs ORDER BY id ASC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *DogsRepo) FindUnique(ctx context.Context, id int64) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = $1`, id)
	d, err := scanDog(row)
	if err != nil {
		return dogs.Dog{}, MapError(err)
	}
	return d, nil
}

func (r *DogsRepo) Create(ctx context.Context, in dogs.CreateInput) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO dogs (name, breed, age, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+dogColumns,
		in.Name,
		in.Breed,
		in.Age,
		in.Description,
	)
	d, err := scanDog(row)
	if err != nil {
		return dogs.Dog{}, MapError(err)
	}
	return d, nil
}

// Update: NULL en un parámetro = no tocar la columna.
func (r *DogsRepo) Update(ctx context.Context, id int64, p dogs.Patch) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE dogs
		SET
			name = COALESCE($2, name),
			breed = COALESCE($3, breed),
			age = COALESCE($4, age),
			description = COALESCE($5, description)
		WHERE id = $1
		RETURNING `+dogColumns,
		id,
		toNullString(p.Name),
		toNullString(p.Breed),
		toNullFloat(p.Age),
		toNullString(p.Description),
	)
	d, err := scanDog(row)
	if err != nil {
		return dogs.Dog{}, MapError(err)
	}
	return d, nil
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Close() error {
	return r.db.Close()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
