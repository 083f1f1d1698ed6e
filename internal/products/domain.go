package products

// Product maps a row of the productos table. Codigo is the optional barcode
// used by the scanner lookup.
type Product struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Codigo *string `json:"codigo"`
	Stock  int64   `json:"stock"`
	Precio float64 `json:"precio"`
}

// ListFilters narrows the product listing.
type ListFilters struct {
	Q      string
	Limit  int
	Offset int
}

// CreateProductRequest is the POST /api/productos body.
type CreateProductRequest struct {
	Nombre string   `json:"nombre" validate:"required"`
	Codigo *string  `json:"codigo"`
	Stock  *int64   `json:"stock"`
	Precio *float64 `json:"precio" validate:"required"`
}

// UpdateProductRequest is the PUT /api/productos/{id} body. Only fields
// present in the request are applied.
type UpdateProductRequest struct {
	Nombre *string  `json:"nombre"`
	Codigo *string  `json:"codigo"`
	Stock  *int64   `json:"stock"`
	Precio *float64 `json:"precio"`
}

// Changes carries the validated field set for a partial update.
type Changes struct {
	Nombre *string
	Codigo *string
	Stock  *int64
	Precio *float64
}

// Empty reports whether no recognized field is present.
func (c Changes) Empty() bool {
	return c.Nombre == nil && c.Codigo == nil && c.Stock == nil && c.Precio == nil
}
