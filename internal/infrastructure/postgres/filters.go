package postgres

import (
	"strconv"
	"strings"

	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// whereBuilder arma un WHERE conjuntivo con parámetros posicionales.
// Cada cláusula lleva un único "?" que se reemplaza por $n; los valores viajan siempre como argumentos.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.Replace(clause, "?", "$"+strconv.Itoa(len(w.args)), 1))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// likeEscaper neutraliza los comodines de LIKE para buscar el texto literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func personWhere(f repository.PersonFilter) (string, []any) {
	var w whereBuilder
	if f.CityID != nil {
		w.add("p.cidade_fk = ?", *f.CityID)
	}
	if f.NeighborhoodID != nil {
		w.add("p.bairro_fk = ?", *f.NeighborhoodID)
	}
	if f.Name != nil {
		w.add(`p.nome ILIKE '%' || ?::text || '%' ESCAPE '\'`, escapeLike(*f.Name))
	}
	return w.sql(), w.args
}

func saleWhere(f repository.SaleFilter) (string, []any) {
	var w whereBuilder
	if f.From != nil {
		w.add("v.data >= ?", *f.From)
	}
	if f.To != nil {
		w.add("v.data <= ?", *f.To)
	}
	if f.PersonID != nil {
		w.add("v.pessoa_fk = ?", *f.PersonID)
	}
	if f.ProductID != nil {
		w.add("EXISTS (SELECT 1 FROM itensvenda iv WHERE iv.venda_fk = v.id AND iv.produto_fk = ?)", *f.ProductID)
	}
	return w.sql(), w.args
}
