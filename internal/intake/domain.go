package intake

import "time"

// Intake maps a row of the ingreso_producto table. Only the aggregate total
// of the received goods is stored; individual line items are not persisted.
type Intake struct {
	ID          int64     `json:"id"`
	Descripcion string    `json:"descripcion"`
	Total       float64   `json:"total"`
	Fecha       time.Time `json:"fecha"`
}

// CreateIntakeRequest is the POST /api/ingreso-producto body.
type CreateIntakeRequest struct {
	Descripcion string              `json:"descripcion"`
	Items       []IntakeItemRequest `json:"items"`
}

// IntakeItemRequest is one received product batch. Unlike sales, the price is
// required here.
type IntakeItemRequest struct {
	ProductID int64    `json:"productId"`
	Cantidad  int64    `json:"cantidad"`
	Precio    *float64 `json:"precio"`
}

// CreateIntakeResult is returned after a committed intake.
type CreateIntakeResult struct {
	ID    int64   `json:"id"`
	Total float64 `json:"total"`
}
