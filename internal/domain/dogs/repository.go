package dogs

import "context"

// Repository es el cliente de acceso a datos para la entidad dog.
// Implementaciones: memory, postgres (SQL directo) y gormstore (ORM).
//
// Contrato de errores:
//   - ErrNotFound si el id no existe (FindUnique, Update, Delete).
//   - ErrRejected (envuelto) si el store rechaza los datos.
//   - cualquier otro error = store no disponible.
type Repository interface {
	FindMany(ctx context.Context) ([]Dog, error)
	FindUnique(ctx context.Context, id int64) (Dog, error)
	Create(ctx context.Context, in CreateInput) (Dog, error)
	Update(ctx context.Context, id int64, p Patch) (Dog, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}
