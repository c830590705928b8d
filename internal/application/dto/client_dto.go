package dto

import "time"

// CreateClientRequest entrada para dar de alta un tenant. Slug vacío se deriva del nombre.
type CreateClientRequest struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

// ClientResponse salida de un tenant.
type ClientResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}
