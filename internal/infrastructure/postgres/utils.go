package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/pdv-api/internal/domain"
)

// SQLSTATE relevantes para el mapeo a errores de dominio.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeNotNullViolation     = "23502"
	codeCheckViolation       = "23514"
	codeInvalidText          = "22P02"
	codeStringTooLong        = "22001"
	codeNumericOutOfRange    = "22003"
	codeInvalidDatetimeValue = "22007"
)

// pgErrorCode devuelve el SQLSTATE del error o "" si no viene de PostgreSQL.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// writeError traduce errores de INSERT/UPDATE: una FK rota significa que la referencia no existe.
func writeError(op string, err error) error {
	switch pgErrorCode(err) {
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrReferenceNotFound)
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case codeNotNullViolation, codeCheckViolation, codeInvalidText,
		codeStringTooLong, codeNumericOutOfRange, codeInvalidDatetimeValue:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError traduce errores de DELETE: una FK rota significa que otra fila aún referencia el registro.
func deleteError(op string, err error) error {
	if pgErrorCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrReferenced)
	}
	return fmt.Errorf("%s: %w", op, err)
}
