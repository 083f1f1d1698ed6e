package clients

// Client maps a row of the clientes table. Row id 1 is the reserved "C/F"
// walk-in client and can never be deleted.
type Client struct {
	ID        int64  `json:"id"`
	Cedula    string `json:"cedula"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// ProtectedClientID is the walk-in sentinel row.
const ProtectedClientID = 1

// ListFilters narrows the client listing.
type ListFilters struct {
	Q      string
	Limit  int
	Offset int
}

// CreateClientRequest is the POST /api/clientes body.
type CreateClientRequest struct {
	Cedula    string `json:"cedula"`
	Nombre    string `json:"nombre" validate:"required"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateClientRequest is the PUT /api/clientes/{id} body. Only fields present
// in the request are applied.
type UpdateClientRequest struct {
	Cedula    *string `json:"cedula"`
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// Changes carries the validated field set for a partial update.
type Changes struct {
	Cedula    *string
	Nombre    *string
	Apellido  *string
	Telefono  *string
	Direccion *string
}

// Empty reports whether no recognized field is present.
func (c Changes) Empty() bool {
	return c.Cedula == nil && c.Nombre == nil && c.Apellido == nil &&
		c.Telefono == nil && c.Direccion == nil
}
