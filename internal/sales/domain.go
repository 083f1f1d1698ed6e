package sales

import "time"

// Sale is the ventas header. Total is always computed server-side; Fecha is a
// calendar date.
type Sale struct {
	ID       int64     `json:"id"`
	Cliente  int64     `json:"cliente"`
	Vendedor string    `json:"vendedor"`
	Total    float64   `json:"total"`
	Fecha    time.Time `json:"fecha"`
}

// SaleWithClient is the listing row, joined with the client name.
type SaleWithClient struct {
	Sale
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteApellido string `json:"cliente_apellido"`
}

// SaleItem is a persisted detalle row joined with the product name. Precio is
// the unit price frozen at sale time.
type SaleItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Cantidad  float64 `json:"cantidad"`
	Precio    float64 `json:"precio"`
	Nombre    string  `json:"nombre"`
}

// SaleDetail is a sale header with its line items.
type SaleDetail struct {
	Sale
	Items []SaleItem `json:"items"`
}

// CreateSaleRequest is the POST /api/ventas body.
type CreateSaleRequest struct {
	ClienteID int64             `json:"clienteId"`
	Vendedor  string            `json:"vendedor"`
	FechaISO  string            `json:"fechaISO"`
	Items     []SaleItemRequest `json:"items"`
}

// SaleItemRequest is one requested line. Precio, when present, overrides the
// catalog price for that line only.
type SaleItemRequest struct {
	ProductID int64    `json:"productId"`
	Cantidad  float64  `json:"cantidad"`
	Precio    *float64 `json:"precio"`
}

// CreateSaleResult is returned after a committed sale.
type CreateSaleResult struct {
	ID    int64     `json:"id"`
	Total float64   `json:"total"`
	Fecha time.Time `json:"fecha"`
}

// ProductSnapshot is the product state loaded once at the start of the sale
// transaction. Stock checks and price fallbacks use this snapshot; it is not
// re-read between lines.
type ProductSnapshot struct {
	ID     int64
	Nombre string
	Precio float64
	Stock  float64
}

// SaleItemInsert carries one detalle row to persist.
type SaleItemInsert struct {
	ProductID int64
	Cantidad  float64
	Precio    float64
	SaleID    int64
}
