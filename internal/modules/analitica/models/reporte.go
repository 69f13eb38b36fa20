package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report types
const (
	TipoEstatico      = "ESTATICO"
	TipoPersonalizado = "PERSONALIZADO"
	TipoNatural       = "NATURAL"
)

// Report file formats
const (
	FormatoPDF  = "PDF"
	FormatoXLSX = "XLSX"
)

// Reporte is the persisted record of a generated report
type Reporte struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// Free-text requester name; no auth layer binds this to an account.
	Usuario string `gorm:"type:varchar(100)" json:"usuario,omitempty"`

	Tipo        string `gorm:"type:varchar(20);not null" json:"tipo"`
	Nombre      string `gorm:"type:varchar(200);not null" json:"nombre"`
	Descripcion string `gorm:"type:text" json:"descripcion,omitempty"`

	// The request that produced the report: interpretation payload for
	// NATURAL, field/filter selection for PERSONALIZADO, report key for
	// ESTATICO.
	ConsultaOriginal datatypes.JSON `gorm:"type:jsonb" json:"consulta_original,omitempty"`

	Formato string `gorm:"type:varchar(10);not null" json:"formato"`

	// Path of the rendered file relative to the storage root
	Archivo string `gorm:"type:text" json:"archivo,omitempty"`

	FechaGeneracion     time.Time `gorm:"autoCreateTime;index" json:"fecha_generacion"`
	RegistrosProcesados int       `gorm:"type:integer;not null;default:0" json:"registros_procesados"`
	TiempoGeneracion    float64   `gorm:"type:double precision;not null;default:0" json:"tiempo_generacion"`
}

// TableName specifies the table name
func (Reporte) TableName() string {
	return "reportes"
}

// BeforeCreate sets UUID before creating
func (r *Reporte) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// InterpretarRequest asks for a dry-run interpretation without generating
// a file.
type InterpretarRequest struct {
	Consulta string `json:"consulta" validate:"required,min=3"`
}

// GenerarNaturalRequest generates a report from a natural-language query
type GenerarNaturalRequest struct {
	Consulta string `json:"consulta" validate:"required,min=3"`
	Nombre   string `json:"nombre,omitempty" validate:"max=200"`
	Formato  string `json:"formato" validate:"required,oneof=PDF XLSX"`
	Usuario  string `json:"usuario,omitempty" validate:"max=100"`
}

// GenerarPersonalizadoRequest generates a report from an explicit field
// and filter selection. Fields and filters are validated strictly against
// the entity whitelist.
type GenerarPersonalizadoRequest struct {
	Nombre  string                 `json:"nombre" validate:"required,max=200"`
	Entidad string                 `json:"entidad" validate:"required"`
	Campos  []string               `json:"campos" validate:"required,min=1"`
	Filtros map[string]interface{} `json:"filtros,omitempty"`
	Formato string                 `json:"formato" validate:"required,oneof=PDF XLSX"`
	Usuario string                 `json:"usuario,omitempty" validate:"max=100"`
}

// GenerarEstaticoRequest generates one of the canned reports
type GenerarEstaticoRequest struct {
	TipoReporte string `json:"tipo_reporte" validate:"required"`
	Formato     string `json:"formato" validate:"required,oneof=PDF XLSX"`
	FechaInicio string `json:"fecha_inicio,omitempty"` // YYYY-MM-DD
	FechaFin    string `json:"fecha_fin,omitempty"`    // YYYY-MM-DD
	Usuario     string `json:"usuario,omitempty" validate:"max=100"`
}

// ReporteHistorialItem is the trimmed view returned by the history listing
type ReporteHistorialItem struct {
	ID                  uuid.UUID `json:"id"`
	Tipo                string    `json:"tipo"`
	Nombre              string    `json:"nombre"`
	Formato             string    `json:"formato"`
	FechaGeneracion     time.Time `json:"fecha_generacion"`
	RegistrosProcesados int       `json:"registros_procesados"`
	TiempoGeneracion    float64   `json:"tiempo_generacion"`
}

// Historial converts a full record to its history view.
func (r *Reporte) Historial() ReporteHistorialItem {
	return ReporteHistorialItem{
		ID:                  r.ID,
		Tipo:                r.Tipo,
		Nombre:              r.Nombre,
		Formato:             r.Formato,
		FechaGeneracion:     r.FechaGeneracion,
		RegistrosProcesados: r.RegistrosProcesados,
		TiempoGeneracion:    r.TiempoGeneracion,
	}
}
