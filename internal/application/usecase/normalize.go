package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// moneyPlaces escala de NUMERIC(12,2).
const moneyPlaces = 2

// units acepta cantidades entre 1 y el máximo de INTEGER.
func units(field string, n int) error {
	if n <= 0 || n > math.MaxInt32 {
		return fmt.Errorf("%w: %s deve estar entre 1 e %d", domain.ErrInvalidInput, field, math.MaxInt32)
	}
	return nil
}

// normalizeUF recorta y pasa a mayúsculas la sigla del estado.
// Un Caser no es seguro entre goroutines: se crea uno por llamada.
func normalizeUF(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

func requireName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	return s, nil
}

// money redondea a centavos y rechaza negativos.
func money(field string, v decimal.Decimal) (decimal.Decimal, error) {
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s negativo", domain.ErrInvalidInput, field)
	}
	return v.Round(moneyPlaces), nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s deve ser YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(entity.DateLayout)
}
