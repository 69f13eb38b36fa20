package models

import (
	"time"

	perfiles "github.com/LuisGuzman07/backend-smart/internal/modules/perfiles/models"
)

// Sale note status values
const (
	EstadoPendiente = "pendiente"
	EstadoPagada    = "pagada"
	EstadoAnulada   = "anulada"
)

// NotaVenta is a sale note (comprobante de venta)
type NotaVenta struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	NumeroComprobante string    `gorm:"type:varchar(50);not null;unique" json:"numero_comprobante"`
	Fecha             time.Time `gorm:"autoCreateTime;index" json:"fecha"`
	Estado            string    `gorm:"type:varchar(20);not null;default:pendiente" json:"estado"`
	Subtotal          float64   `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Total             float64   `gorm:"type:decimal(10,2);not null;default:0" json:"total"`

	ClienteID uint              `gorm:"not null;index" json:"cliente_id"`
	Cliente   *perfiles.Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`

	Detalles []DetalleNotaVenta `gorm:"foreignKey:NotaVentaID" json:"detalles,omitempty"`
}

// TableName specifies the table name
func (NotaVenta) TableName() string {
	return "notas_venta"
}

// Anular marks the sale note as void.
func (n *NotaVenta) Anular() {
	n.Estado = EstadoAnulada
}

// MarcarPagada marks the sale note as paid.
func (n *NotaVenta) MarcarPagada() {
	n.Estado = EstadoPagada
}

// CalcularTotales recomputes subtotal and total from the line items.
// Total equals subtotal: no taxes or discounts apply.
func (n *NotaVenta) CalcularTotales() {
	var subtotal float64
	for _, d := range n.Detalles {
		subtotal += d.Subtotal
	}
	n.Subtotal = subtotal
	n.Total = subtotal
}
