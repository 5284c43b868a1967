package entity

// Neighborhood representa un barrio (tabla bairros).
type Neighborhood struct {
	ID   int64
	Name string
}
