package entity

import "time"

// Tipos de documento válidos para Client.
const (
	DocumentCPF  = "CPF"
	DocumentCNPJ = "CNPJ"
)

// ValidDocumentType informa si t es un tipo de documento aceptado.
func ValidDocumentType(t string) bool {
	return t == DocumentCPF || t == DocumentCNPJ
}

// Client representa un tenant (restaurante). Es la frontera de aislamiento de todos los recursos.
type Client struct {
	ID             int64
	Name           string
	Slug           string // único
	DocumentType   string // CPF, CNPJ
	DocumentNumber string
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClientUser es la membresía de un User en un Client. Se borra en cascada con cualquiera de los dos.
type ClientUser struct {
	ID        int64
	ClientID  int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantOwned se embebe en toda entidad que pertenece a un Client.
type TenantOwned struct {
	ClientID int64
}

// TenantID devuelve el client dueño del recurso.
func (o TenantOwned) TenantID() int64 { return o.ClientID }

// SetTenantID fija el client dueño del recurso.
func (o *TenantOwned) SetTenantID(id int64) { o.ClientID = id }
