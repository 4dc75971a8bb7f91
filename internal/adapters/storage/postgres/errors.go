package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dogs-api/internal/domain/dogs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapError traduce errores del driver a los del dominio:
//   - sin filas => dogs.ErrNotFound
//   - SQLSTATE clase 22 (data exception) o 23 (integrity) => dogs.ErrRejected
//
// El resto se devuelve tal cual (store no disponible).
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return dogs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23") {
			return fmt.Errorf("%w: %s (%s)", dogs.ErrRejected, pgErr.Message, pgErr.Code)
		}
	}
	return err
}
