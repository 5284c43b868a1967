package dto

// PersonRequest conjunto completo de atributos de una pessoa (alta y modificación).
type PersonRequest struct {
	Nome        string `json:"nome" validate:"required,max=150"`
	CidadeFK    int64  `json:"cidade_fk" validate:"required,gt=0"`
	BairroFK    int64  `json:"bairro_fk" validate:"required,gt=0"`
	Cep         string `json:"cep" validate:"max=9"`
	Endereco    string `json:"endereco" validate:"max=200"`
	Numero      string `json:"numero" validate:"max=20"`
	Complemento string `json:"complemento" validate:"max=100"`
	Telefone    string `json:"telefone" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email,max=150"`
}

// PersonResponse salida de una pessoa.
type PersonResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	CidadeFK    int64  `json:"cidade_fk"`
	BairroFK    int64  `json:"bairro_fk"`
	Cep         string `json:"cep"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
}

// PersonFilter filtros opcionales de GET /pessoas; nil = no se aplica.
type PersonFilter struct {
	CidadeID *int64
	BairroID *int64
	Nome     *string
}
