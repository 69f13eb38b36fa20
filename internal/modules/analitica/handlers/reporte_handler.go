package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/LuisGuzman07/backend-smart/internal/core/nlquery"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/models"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReporteHandler struct {
	reporteService *services.ReportService
}

func NewReporteHandler(reporteService *services.ReportService) *ReporteHandler {
	return &ReporteHandler{
		reporteService: reporteService,
	}
}

// ListEntidades godoc
// @Summary List reportable entities
// @Description List the entities available for custom reports
// @Tags Reportes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analitica/reportes/entidades [get]
func (h *ReporteHandler) ListEntidades(c *fiber.Ctx) error {
	entidades := make([]fiber.Map, 0)
	for _, def := range nlquery.All() {
		entidades = append(entidades, fiber.Map{
			"id":     def.ID,
			"nombre": def.DisplayName,
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"entidades": entidades,
	})
}

// GetCamposEntidad godoc
// @Summary Get entity fields and filters
// @Description Get the whitelisted fields and filters of one entity
// @Tags Reportes
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/analitica/reportes/entidades/{id}/campos [get]
func (h *ReporteHandler) GetCamposEntidad(c *fiber.Ctx) error {
	def := nlquery.Get(c.Params("id"))
	if def == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Entidad no encontrada",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entidad": def.DisplayName,
		"campos":  def.Fields,
		"filtros": def.Filters,
	})
}

// ListEjemplos godoc
// @Summary Example natural-language queries
// @Description Example queries per entity for the natural-language endpoint
// @Tags Reportes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analitica/reportes/ejemplos-nl [get]
func (h *ReporteHandler) ListEjemplos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"ejemplos": nlquery.ExampleQueries(),
	})
}

// ListDisponibles godoc
// @Summary List static reports
// @Description List the predefined report catalog
// @Tags Reportes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analitica/reportes/disponibles [get]
func (h *ReporteHandler) ListDisponibles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"reportes": services.ListStaticReports(),
	})
}

// Interpretar godoc
// @Summary Interpret a natural-language query
// @Description Dry-run interpretation: entity, filters and suggested fields without generating a file
// @Tags Reportes
// @Accept json
// @Produce json
// @Param request body models.InterpretarRequest true "Query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/analitica/reportes/interpretar [post]
func (h *ReporteHandler) Interpretar(c *fiber.Ctx) error {
	var req models.InterpretarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Consulta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "consulta es requerida",
		})
	}

	interp := h.reporteService.Interpret(req.Consulta)
	if interp.Error != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"error":       interp.Error,
			"sugerencias": nlquery.ExampleQueries(),
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"interpretacion": interp,
	})
}

// GenerarNatural godoc
// @Summary Generate a report from natural language
// @Description Interpret the query, run it and render the report file
// @Tags Reportes
// @Accept json
// @Produce json
// @Param request body models.GenerarNaturalRequest true "Query and format"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/analitica/reportes/generar-natural [post]
func (h *ReporteHandler) GenerarNatural(c *fiber.Ctx) error {
	var req models.GenerarNaturalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if msg := validateGenerarNatural(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}

	generated, err := h.reporteService.GenerateNatural(req)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        "Reporte generado exitosamente desde lenguaje natural",
		"reporte":        generated.Reporte,
		"interpretacion": generated.Interpretacion,
	})
}

// GenerarPersonalizado godoc
// @Summary Generate a custom report
// @Description Generate a report from an explicit field and filter selection
// @Tags Reportes
// @Accept json
// @Produce json
// @Param request body models.GenerarPersonalizadoRequest true "Selection"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/analitica/reportes/generar-personalizado [post]
func (h *ReporteHandler) GenerarPersonalizado(c *fiber.Ctx) error {
	var req models.GenerarPersonalizadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if msg := validateGenerarPersonalizado(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}

	reporte, err := h.reporteService.GeneratePersonalizado(req)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Reporte personalizado generado exitosamente",
		"reporte": reporte,
	})
}

// GenerarEstatico godoc
// @Summary Generate a catalog report
// @Description Generate one of the predefined reports, optionally narrowed by a date range
// @Tags Reportes
// @Accept json
// @Produce json
// @Param request body models.GenerarEstaticoRequest true "Report type and format"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/analitica/reportes/generar-estatico [post]
func (h *ReporteHandler) GenerarEstatico(c *fiber.Ctx) error {
	var req models.GenerarEstaticoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.TipoReporte == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "tipo_reporte es requerido",
		})
	}
	if msg := validateFormato(req.Formato); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}

	reporte, err := h.reporteService.GenerateEstatico(req)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Reporte generado exitosamente",
		"reporte": reporte,
	})
}

// Historial godoc
// @Summary Report history
// @Description Most recent generated reports, optionally filtered by requester
// @Tags Reportes
// @Produce json
// @Param usuario query string false "Requester name"
// @Success 200 {object} map[string]interface{}
// @Router /api/analitica/reportes/historial [get]
func (h *ReporteHandler) Historial(c *fiber.Ctx) error {
	items, err := h.reporteService.Historial(c.Query("usuario"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"reportes": items,
	})
}

// Descargar godoc
// @Summary Download a report file
// @Description Stream the rendered file of a generated report
// @Tags Reportes
// @Produce octet-stream
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /api/analitica/reportes/{id}/descargar [get]
func (h *ReporteHandler) Descargar(c *fiber.Ctx) error {
	reporte, f, err := h.reporteService.Download(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Reporte no encontrado",
			})
		}
		var valErr *services.ValidationError
		if errors.As(err, &valErr) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   valErr.Message,
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	filename := filepath.Base(reporte.Archivo)
	c.Set(fiber.HeaderContentType, h.reporteService.ContentType(reporte.Formato))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.SendStream(f)
}

// renderError maps service errors to HTTP responses.
func (h *ReporteHandler) renderError(c *fiber.Ctx, err error) error {
	var interpErr *services.InterpretationError
	if errors.As(err, &interpErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"error":       interpErr.Message,
			"sugerencias": interpErr.Sugerencias,
		})
	}

	var valErr *services.ValidationError
	if errors.As(err, &valErr) {
		resp := fiber.Map{
			"success": false,
			"error":   valErr.Message,
		}
		if len(valErr.Detalles) > 0 {
			resp["detalles"] = valErr.Detalles
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Error al generar reporte: " + err.Error(),
	})
}

func validateFormato(formato string) string {
	if formato != models.FormatoPDF && formato != models.FormatoXLSX {
		return "formato debe ser PDF o XLSX"
	}
	return ""
}

func validateGenerarNatural(req *models.GenerarNaturalRequest) string {
	if len(req.Consulta) < 3 {
		return "consulta debe tener al menos 3 caracteres"
	}
	return validateFormato(req.Formato)
}

func validateGenerarPersonalizado(req *models.GenerarPersonalizadoRequest) string {
	if req.Nombre == "" {
		return "nombre es requerido"
	}
	if req.Entidad == "" {
		return "entidad es requerida"
	}
	if len(req.Campos) == 0 {
		return "campos no puede estar vacío"
	}
	return validateFormato(req.Formato)
}
