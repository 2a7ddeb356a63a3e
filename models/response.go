package models

// ProductResponse wraps a single product lookup. Product is null when the key
// is absent.
type ProductResponse struct {
	Product *Product `json:"product"`
}

// ProductListResponse is always returned with status 200 on the list path.
// Error is set (and Products empty) when the store could not be reached, so an
// empty list is ambiguous between "no products" and "fetch failed".
type ProductListResponse struct {
	Products []Product `json:"products"`
	Error    string    `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
