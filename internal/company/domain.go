package company

// SingletonID is the fixed identity of the empresa row.
const SingletonID = 1

// Company maps the single empresa row.
type Company struct {
	ID           int64   `json:"id"`
	Nombre       *string `json:"nombre"`
	Ubicacion    *string `json:"ubicacion"`
	Telefono     *string `json:"telefono"`
	Modificacion bool    `json:"modificacion"`
}

// UpsertCompanyRequest is the PUT /api/empresa body. Modificacion defaults to
// true when absent.
type UpsertCompanyRequest struct {
	Nombre       *string `json:"nombre"`
	Ubicacion    *string `json:"ubicacion"`
	Telefono     *string `json:"telefono"`
	Modificacion *bool   `json:"modificacion"`
}
