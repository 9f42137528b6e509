package internal

import (
	"context"
	"fmt"
	"strings"
)

type RequestAuditLogger interface {
	LogRequest(ctx context.Context, path string, status *int, accountID *string) error
}

type AuditLogStorage interface {
	Insert(ctx context.Context, path string, status *int, accountID *string) error
}

func NewStorageAuditLogger(storage AuditLogStorage) *StorageAuditLogger {
	return &StorageAuditLogger{auditLogStorage: storage}
}

type StorageAuditLogger struct {
	auditLogStorage AuditLogStorage
}

// LogRequest records a served request. The path is stored without slashes
// around it; account ids are only known for statement requests.
func (l *StorageAuditLogger) LogRequest(ctx context.Context, endpoint string, status *int, accountID *string) error {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	if err := l.auditLogStorage.Insert(ctx, p, status, accountID); err != nil {
		return fmt.Errorf("insert request log: %w", err)
	}
	return nil
}
