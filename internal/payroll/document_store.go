package payroll

import (
	"context"
	"os"
	"path/filepath"
)

// DocumentStore persists rendered payslip documents and returns the URL the
// API hands out. Production deployments point this at object storage; the
// file implementation backs local and single-node setups.
type DocumentStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

type fileDocumentStore struct {
	baseDir string
	baseURL string
}

func NewFileDocumentStore(baseDir, baseURL string) DocumentStore {
	return &fileDocumentStore{baseDir: baseDir, baseURL: baseURL}
}

func (s *fileDocumentStore) Save(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}
