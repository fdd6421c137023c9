package service

import (
	"context"

	"vacuum/internal/domain/entity"
)

// DocumentRenderer turns a report view into a printable document.
type DocumentRenderer interface {
	// RenderServiceReport returns the encoded document bytes.
	RenderServiceReport(ctx context.Context, view *entity.ServiceReportView) ([]byte, error)

	// ContentType is the MIME type of rendered documents.
	ContentType() string
}
