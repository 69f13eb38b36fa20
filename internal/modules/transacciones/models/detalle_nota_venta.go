package models

import (
	inventario "github.com/LuisGuzman07/backend-smart/internal/modules/inventario/models"
)

// DetalleNotaVenta is a single line item of a sale note
type DetalleNotaVenta struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Cantidad int     `gorm:"type:integer;not null;default:1" json:"cantidad"`
	Codigo   string  `gorm:"type:varchar(50)" json:"codigo,omitempty"`
	Subtotal float64 `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Total    float64 `gorm:"type:decimal(10,2);not null;default:0" json:"total"`

	NotaVentaID uint       `gorm:"not null;index" json:"nota_venta_id"`
	NotaVenta   *NotaVenta `gorm:"foreignKey:NotaVentaID" json:"nota_venta,omitempty"`

	ProductoID uint                 `gorm:"not null;index" json:"producto_id"`
	Producto   *inventario.Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

// TableName specifies the table name
func (DetalleNotaVenta) TableName() string {
	return "detalles_nota_venta"
}

// CalcularTotales prices the line from the product's sale price and
// copies its code when the line has none.
func (d *DetalleNotaVenta) CalcularTotales() {
	if d.Producto == nil {
		return
	}
	d.Subtotal = d.Producto.PrecioVenta * float64(d.Cantidad)
	d.Total = d.Subtotal
	if d.Codigo == "" {
		d.Codigo = d.Producto.Codigo
	}
}
