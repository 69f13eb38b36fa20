package models

import "time"

// Customer status values
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Cliente is a customer profile
type Cliente struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nombre    string `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido  string `gorm:"type:varchar(100)" json:"apellido,omitempty"`
	CI        string `gorm:"type:varchar(20);column:ci;unique" json:"ci"`
	Telefono  string `gorm:"type:varchar(30)" json:"telefono,omitempty"`
	Direccion string `gorm:"type:text" json:"direccion,omitempty"`

	// "M" or "F"
	Sexo string `gorm:"type:varchar(1)" json:"sexo,omitempty"`

	Estado        string    `gorm:"type:varchar(20);not null;default:activo" json:"estado"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

// TableName specifies the table name
func (Cliente) TableName() string {
	return "clientes"
}
