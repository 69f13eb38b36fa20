package repositories

import (
	"fmt"

	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReporteRepo interface {
	Create(reporte *models.Reporte) error
	GetByID(id string) (*models.Reporte, error)
	ListRecent(usuario string, limit int) ([]models.Reporte, error)
	UpdateArchivo(id uuid.UUID, archivo string) error
}

type reporteRepo struct {
	db *gorm.DB
}

func NewReporteRepo(db *gorm.DB) ReporteRepo {
	return &reporteRepo{db: db}
}

func (r *reporteRepo) Create(reporte *models.Reporte) error {
	return r.db.Create(reporte).Error
}

func (r *reporteRepo) GetByID(id string) (*models.Reporte, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid report ID: %w", err)
	}

	var reporte models.Reporte
	err = r.db.First(&reporte, "id = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &reporte, nil
}

func (r *reporteRepo) ListRecent(usuario string, limit int) ([]models.Reporte, error) {
	if limit < 1 {
		limit = 20
	}

	query := r.db.Model(&models.Reporte{})
	if usuario != "" {
		query = query.Where("usuario = ?", usuario)
	}

	var reportes []models.Reporte
	err := query.Order("fecha_generacion DESC").Limit(limit).Find(&reportes).Error
	return reportes, err
}

func (r *reporteRepo) UpdateArchivo(id uuid.UUID, archivo string) error {
	return r.db.Model(&models.Reporte{}).
		Where("id = ?", id).
		UpdateColumn("archivo", archivo).Error
}
