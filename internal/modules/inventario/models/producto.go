package models

import "time"

// Producto is a catalog item tracked in inventory
type Producto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Product info
	Codigo      string `gorm:"type:varchar(20);not null;unique" json:"codigo"`
	Nombre      string `gorm:"type:varchar(100);not null" json:"nombre"`
	Descripcion string `gorm:"type:text" json:"descripcion,omitempty"`

	// Pricing & stock
	PrecioCompra  float64  `gorm:"type:decimal(10,2);not null" json:"precio_compra"`
	PrecioVenta   float64  `gorm:"type:decimal(10,2);not null" json:"precio_venta"`
	CostoPromedio *float64 `gorm:"type:decimal(10,2)" json:"costo_promedio,omitempty"`
	Stock         int      `gorm:"type:integer;not null;default:0" json:"stock"`

	// Category relation
	CategoriaID *uint      `gorm:"index" json:"categoria_id,omitempty"`
	Categoria   *Categoria `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`

	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

// TableName specifies the table name
func (Producto) TableName() string {
	return "productos"
}

// StockBajo reports whether the product is below the restock threshold.
func (p *Producto) StockBajo() bool {
	return p.Stock < 10
}
