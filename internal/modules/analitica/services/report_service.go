package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LuisGuzman07/backend-smart/internal/core/export"
	"github.com/LuisGuzman07/backend-smart/internal/core/nlquery"
	"github.com/LuisGuzman07/backend-smart/internal/core/storage"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/models"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/repositories"
	"github.com/LuisGuzman07/backend-smart/internal/shared/utils"
)

const dateLayout = "2006-01-02"

// ValidationError is a client mistake: unknown entity, non-whitelisted
// fields or filters, bad dates. Maps to HTTP 400.
type ValidationError struct {
	Message  string
	Detalles []string
}

func (e *ValidationError) Error() string {
	if len(e.Detalles) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Detalles, ", "))
	}
	return e.Message
}

// InterpretationError means the natural-language query could not be
// resolved to an entity. It carries example queries for the client.
type InterpretationError struct {
	Message     string
	Sugerencias map[string][]string
}

func (e *InterpretationError) Error() string {
	return e.Message
}

// InterpretationSummary is the condensed interpretation echoed back with
// a generated natural-language report.
type InterpretationSummary struct {
	Entidad              string                 `json:"entidad"`
	FiltrosAplicados     map[string]interface{} `json:"filtros_aplicados"`
	CamposIncluidos      []string               `json:"campos_incluidos"`
	RegistrosEncontrados int                    `json:"registros_encontrados"`
}

// GeneratedReport bundles the persisted record with the interpretation
// summary (natural-language path only).
type GeneratedReport struct {
	Reporte        *models.Reporte
	Interpretacion *InterpretationSummary
}

// ReportService generates, persists and serves reports: canned catalog
// entries, explicit field/filter selections and natural-language queries.
type ReportService struct {
	repo        repositories.ReporteRepo
	builder     *QueryBuilder
	export      *export.Service
	store       *storage.ReportStore
	interpreter *nlquery.Interpreter
	now         func() time.Time
}

func NewReportService(repo repositories.ReporteRepo, builder *QueryBuilder, exportSvc *export.Service, store *storage.ReportStore) *ReportService {
	return &ReportService{
		repo:        repo,
		builder:     builder,
		export:      exportSvc,
		store:       store,
		interpreter: nlquery.New(),
		now:         time.Now,
	}
}

// Interpret runs the interpreter without generating anything. Failed
// interpretations come back as a result with Error set, not as an error.
func (s *ReportService) Interpret(consulta string) *nlquery.Interpretation {
	return s.interpreter.Interpret(consulta)
}

// GenerateNatural interprets the query, runs it and renders the report.
func (s *ReportService) GenerateNatural(req models.GenerarNaturalRequest) (*GeneratedReport, error) {
	started := time.Now()

	interp := s.interpreter.Interpret(req.Consulta)
	if interp.Error != "" {
		return nil, &InterpretationError{
			Message:     interp.Error,
			Sugerencias: nlquery.ExampleQueries(),
		}
	}

	def := nlquery.Get(interp.Entity)

	campos := interp.SuggestedFields
	if len(campos) == 0 {
		campos = def.FieldIDs()
		if len(campos) > 8 {
			campos = campos[:8]
		}
	}
	filtros := interp.Filters

	var (
		rows []map[string]interface{}
		err  error
	)
	if interp.RequiresGrouping {
		rows, err = s.builder.GroupedRows(interp.Entity, campos, filtros)
	} else {
		rows, err = s.builder.Rows(interp.Entity, campos, filtros)
	}
	if err != nil {
		return nil, err
	}

	nombre := req.Nombre
	if nombre == "" {
		nombre = "Reporte: " + truncate(req.Consulta, 50)
	}

	doc := s.buildDocument(nombre, "Reporte de "+def.DisplayName, def, campos, rows)
	doc.Info = []export.InfoLine{
		{Label: "Entidad", Value: def.DisplayName},
		{Label: "Total de registros", Value: strconv.Itoa(len(rows))},
	}

	consulta, err := json.Marshal(map[string]interface{}{
		"consulta":       req.Consulta,
		"interpretacion": interp,
		"campos":         campos,
		"filtros":        filtros,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize query payload: %w", err)
	}

	reporte := &models.Reporte{
		Usuario:             req.Usuario,
		Tipo:                models.TipoNatural,
		Nombre:              nombre,
		Descripcion:         "Consulta: " + req.Consulta,
		ConsultaOriginal:    consulta,
		Formato:             req.Formato,
		RegistrosProcesados: len(rows),
	}

	if err := s.persistRendered(reporte, doc, interp.Entity+"_natural", started); err != nil {
		return nil, err
	}

	return &GeneratedReport{
		Reporte: reporte,
		Interpretacion: &InterpretationSummary{
			Entidad:              def.DisplayName,
			FiltrosAplicados:     filtros,
			CamposIncluidos:      campos,
			RegistrosEncontrados: len(rows),
		},
	}, nil
}

// GeneratePersonalizado renders a report from an explicit selection. The
// selection is validated strictly: any field or filter outside the entity
// whitelist rejects the whole request.
func (s *ReportService) GeneratePersonalizado(req models.GenerarPersonalizadoRequest) (*models.Reporte, error) {
	started := time.Now()

	def := nlquery.Get(req.Entidad)
	if def == nil {
		return nil, &ValidationError{Message: "Entidad no encontrada"}
	}

	if ok, invalid := nlquery.ValidateFields(req.Entidad, req.Campos); !ok {
		return nil, &ValidationError{Message: "Campos no válidos", Detalles: invalid}
	}
	if ok, invalid := nlquery.ValidateFilters(req.Entidad, req.Filtros); !ok {
		return nil, &ValidationError{Message: "Filtros no válidos", Detalles: invalid}
	}

	var (
		rows []map[string]interface{}
		err  error
	)
	if hasAggregation(def, req.Campos) {
		rows, err = s.builder.GroupedRows(req.Entidad, req.Campos, req.Filtros)
	} else {
		rows, err = s.builder.Rows(req.Entidad, req.Campos, req.Filtros)
	}
	if err != nil {
		return nil, err
	}

	doc := s.buildDocument(req.Nombre, "Reporte de "+def.DisplayName, def, req.Campos, rows)
	doc.Info = []export.InfoLine{
		{Label: "Entidad", Value: def.DisplayName},
		{Label: "Total de registros", Value: strconv.Itoa(len(rows))},
	}

	consulta, err := json.Marshal(map[string]interface{}{
		"entidad": req.Entidad,
		"campos":  req.Campos,
		"filtros": req.Filtros,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize query payload: %w", err)
	}

	reporte := &models.Reporte{
		Usuario:             req.Usuario,
		Tipo:                models.TipoPersonalizado,
		Nombre:              req.Nombre,
		Descripcion:         "Reporte personalizado de " + def.DisplayName,
		ConsultaOriginal:    consulta,
		Formato:             req.Formato,
		RegistrosProcesados: len(rows),
	}

	if err := s.persistRendered(reporte, doc, req.Entidad+"_personalizado", started); err != nil {
		return nil, err
	}
	return reporte, nil
}

// GenerateEstatico renders one of the canned catalog reports, with an
// optional date range narrowing on top of the default filters.
func (s *ReportService) GenerateEstatico(req models.GenerarEstaticoRequest) (*models.Reporte, error) {
	started := time.Now()

	cfg, ok := StaticReportByID(req.TipoReporte)
	if !ok {
		return nil, &ValidationError{Message: "Tipo de reporte no válido"}
	}

	filtros := cfg.ResolveFilters(s.now())
	if req.FechaInicio != "" {
		if _, err := time.Parse(dateLayout, req.FechaInicio); err != nil {
			return nil, &ValidationError{Message: "fecha_inicio no válida", Detalles: []string{req.FechaInicio}}
		}
		filtros["fecha__gte"] = req.FechaInicio
	}
	if req.FechaFin != "" {
		if _, err := time.Parse(dateLayout, req.FechaFin); err != nil {
			return nil, &ValidationError{Message: "fecha_fin no válida", Detalles: []string{req.FechaFin}}
		}
		filtros["fecha__lte"] = req.FechaFin
	}

	rows, err := s.builder.Rows(cfg.Entity, cfg.Campos, filtros)
	if err != nil {
		return nil, err
	}

	// The catalog path labels columns from the raw field names, it never
	// consults the whitelist labels.
	headers := make([]string, len(cfg.Campos))
	for i, campo := range cfg.Campos {
		headers[i] = titleCase(campo)
	}

	doc := export.NewDocument(cfg.Nombre, cfg.Descripcion, headers, stringifyRows(rows, cfg.Campos))
	doc.Style = export.DefaultStyle()
	doc.Info = []export.InfoLine{
		{Label: "Total de registros", Value: strconv.Itoa(len(rows))},
	}

	consulta, err := json.Marshal(map[string]interface{}{
		"tipo_reporte": req.TipoReporte,
		"fecha_inicio": emptyToNil(req.FechaInicio),
		"fecha_fin":    emptyToNil(req.FechaFin),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize query payload: %w", err)
	}

	reporte := &models.Reporte{
		Usuario:             req.Usuario,
		Tipo:                models.TipoEstatico,
		Nombre:              cfg.Nombre,
		Descripcion:         cfg.Descripcion,
		ConsultaOriginal:    consulta,
		Formato:             req.Formato,
		RegistrosProcesados: len(rows),
	}

	if err := s.persistRendered(reporte, doc, req.TipoReporte, started); err != nil {
		return nil, err
	}
	return reporte, nil
}

// Historial returns the most recent reports, optionally scoped to one
// requester.
func (s *ReportService) Historial(usuario string) ([]models.ReporteHistorialItem, error) {
	reportes, err := s.repo.ListRecent(usuario, 20)
	if err != nil {
		return nil, err
	}

	items := make([]models.ReporteHistorialItem, 0, len(reportes))
	for i := range reportes {
		items = append(items, reportes[i].Historial())
	}
	return items, nil
}

// Download opens the stored file of a report for streaming.
func (s *ReportService) Download(id string) (*models.Reporte, *os.File, error) {
	reporte, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if reporte.Archivo == "" {
		return nil, nil, &ValidationError{Message: "Este reporte no tiene archivo asociado"}
	}

	f, err := s.store.Open(reporte.Archivo)
	if err != nil {
		return nil, nil, err
	}
	return reporte, f, nil
}

// ContentType returns the MIME type matching a report's format.
func (s *ReportService) ContentType(formato string) string {
	return s.export.ContentType(export.Format(formato))
}

// persistRendered creates the record, renders the document with the new
// report ID as QR reference and attaches the stored file path.
func (s *ReportService) persistRendered(reporte *models.Reporte, doc *export.Document, filePrefix string, started time.Time) error {
	now := s.now()
	doc.GeneratedAt = now

	reporte.TiempoGeneracion = roundSeconds(time.Since(started))
	if err := s.repo.Create(reporte); err != nil {
		return fmt.Errorf("failed to save report record: %w", err)
	}
	doc.Reference = reporte.ID.String()

	data, _, err := s.export.Render(doc, export.Format(reporte.Formato))
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s_%s%s", filePrefix, now.Format("20060102_150405"), s.export.FileExtension(export.Format(reporte.Formato)))
	relPath, err := s.store.Save(data, filename, now)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateArchivo(reporte.ID, relPath); err != nil {
		return fmt.Errorf("failed to attach report file: %w", err)
	}
	reporte.Archivo = relPath

	utils.LogInfo("report generated", map[string]interface{}{
		"id":        reporte.ID.String(),
		"tipo":      reporte.Tipo,
		"formato":   reporte.Formato,
		"registros": reporte.RegistrosProcesados,
		"segundos":  reporte.TiempoGeneracion,
	})
	return nil
}

// buildDocument assembles headers from whitelist labels and stringifies
// the result rows in field order.
func (s *ReportService) buildDocument(title, subtitle string, def *nlquery.EntityDefinition, campos []string, rows []map[string]interface{}) *export.Document {
	headers := make([]string, len(campos))
	for i, campo := range campos {
		if def.HasField(campo) {
			headers[i] = def.FieldLabel(campo)
		} else {
			headers[i] = titleCase(campo)
		}
	}

	doc := export.NewDocument(title, subtitle, headers, stringifyRows(rows, campos))
	doc.GeneratedAt = s.now()
	return doc
}

func hasAggregation(def *nlquery.EntityDefinition, campos []string) bool {
	for _, f := range def.Fields {
		if f.Kind != nlquery.KindAggregation {
			continue
		}
		for _, campo := range campos {
			if campo == f.ID {
				return true
			}
		}
	}
	return false
}

// stringifyRows renders each row's values in field order. Missing keys
// become empty cells.
func stringifyRows(rows []map[string]interface{}, campos []string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(campos))
		for i, campo := range campos {
			cells[i] = formatCell(row[campo])
		}
		out = append(out, cells)
	}
	return out
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format("2006-01-02 15:04")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// titleCase turns a field path like "cliente__nombre" into "Cliente
// Nombre" for columns without a whitelist label.
func titleCase(campo string) string {
	words := strings.Fields(strings.NewReplacer("__", " ", "_", " ").Replace(campo))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func emptyToNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
