package models

// Categoria groups products in the catalog
type Categoria struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"type:varchar(100);not null;unique" json:"nombre"`
	Descripcion string `gorm:"type:text" json:"descripcion,omitempty"`
}

// TableName specifies the table name
func (Categoria) TableName() string {
	return "categorias"
}
