package entity

// Person representa un cliente del punto de venta (tabla pessoas).
// CityID y NeighborhoodID deben apuntar a filas existentes.
type Person struct {
	ID             int64
	Name           string
	CityID         int64
	NeighborhoodID int64
	PostalCode     string // CEP
	Street         string
	Number         string
	Complement     string
	Phone          string
	Email          string
}
