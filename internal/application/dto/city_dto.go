package dto

// CityRequest alta y modificación de una cidade.
type CityRequest struct {
	Nome string `json:"nome" validate:"required,max=120"`
	UF   string `json:"uf" validate:"required,len=2,alpha"`
}

// CityResponse salida de una cidade.
type CityResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
	UF   string `json:"uf"`
}

// NeighborhoodRequest alta y modificación de un bairro.
type NeighborhoodRequest struct {
	Nome string `json:"nome" validate:"required,max=120"`
}

type NeighborhoodResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
