package entity

// City representa una ciudad (tabla cidades). UF es la sigla del estado (2 letras).
type City struct {
	ID   int64
	Name string
	UF   string
}
