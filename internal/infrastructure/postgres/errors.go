package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de las violaciones de restricción que se traducen a errores de dominio.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func isUniqueViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation)
}

// isForeignKeyViolation la fila referencia un registro que no existe.
func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation)
}

// writeErr traduce la violación de UNIQUE a onDuplicate; el resto se envuelve con op.
func writeErr(op string, err error, onDuplicate error) error {
	if isUniqueViolation(err) {
		return onDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}
