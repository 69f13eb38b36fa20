package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportStore persists rendered report files on the local filesystem
// under <base>/reportes/YYYY/MM/, mirroring the upload layout of the
// download endpoint.
type ReportStore struct {
	basePath string
}

// NewReportStore creates the base directory if needed.
func NewReportStore(basePath string) (*ReportStore, error) {
	if basePath == "" {
		basePath = "storage"
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &ReportStore{basePath: basePath}, nil
}

// Save writes the file and returns its path relative to the storage root.
// A short random suffix keeps concurrent same-second generations apart.
func (s *ReportStore) Save(data []byte, filename string, now time.Time) (string, error) {
	folder := filepath.Join("reportes", now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(filepath.Join(s.basePath, folder), 0755); err != nil {
		return "", fmt.Errorf("failed to create report folder: %w", err)
	}

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	unique := uuid.New().String()[:8]
	finalName := fmt.Sprintf("%s_%s%s", name, unique, ext)

	relPath := filepath.Join(folder, finalName)
	if err := os.WriteFile(filepath.Join(s.basePath, relPath), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return relPath, nil
}

// Open returns an open handle for a stored report. The relative path must
// stay inside the storage root.
func (s *ReportStore) Open(relPath string) (*os.File, error) {
	full, err := s.FullPath(relPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report file not found: %s", relPath)
		}
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	return f, nil
}

// FullPath resolves a stored relative path, rejecting traversal out of
// the storage root.
func (s *ReportStore) FullPath(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid report path: %s", relPath)
	}
	return filepath.Join(s.basePath, cleaned), nil
}

// Delete removes a stored report file.
func (s *ReportStore) Delete(relPath string) error {
	full, err := s.FullPath(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("report file not found: %s", relPath)
		}
		return fmt.Errorf("failed to delete report file: %w", err)
	}
	return nil
}
