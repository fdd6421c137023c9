// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/repository"
	"vacuum/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// normalizeQuery applies listing defaults and rejects windows outside the
// allowed range.
func normalizeQuery(query entity.ListQuery) (entity.ListQuery, error) {
	q := query.WithDefaults()

	if q.Page < 1 {
		return q, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
	}
	if q.Limit < 1 || q.Limit > entity.MaxLimit {
		return q, domainerrors.ErrValidationFailed.WithDetailsf("limit must be between 1 and %d", entity.MaxLimit)
	}
	if q.SortOrder != entity.SortAsc && q.SortOrder != entity.SortDesc {
		return q, domainerrors.ErrValidationFailed.WithDetails("sort_order must be asc or desc")
	}

	return q, nil
}

// ownedBy reports whether actor may see a record owned by ownerID. Admins see
// everything.
func ownedBy(actor *entity.User, ownerID *uuid.UUID) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}

	return ownerID != nil && *ownerID == actor.ID
}

// trimmedOrNil trims value and maps blanks to nil.
func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// purgeReports deletes reports with their parts and files, children first,
// and returns the object keys the files pointed at.
func purgeReports(ctx context.Context, reports repository.ServiceReportRepository, ids []uuid.UUID) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys, err := reports.FindFileKeysByReports(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect report files")
	}
	if err := reports.DeleteFilesByReports(ctx, ids); err != nil {
		return nil, err
	}
	if err := reports.DeletePartsByReports(ctx, ids); err != nil {
		return nil, err
	}
	if err := reports.DeleteServiceReports(ctx, ids); err != nil {
		return nil, err
	}

	return keys, nil
}

// removeObjects deletes stored files once the rows pointing at them are
// gone. Failures are logged and skipped.
func removeObjects(ctx context.Context, store service.ObjectStore, logger *slog.Logger, keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete stored file", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// uniqueIDs merges id lists keeping the first occurrence of each id.
func uniqueIDs(lists ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	merged := make([]uuid.UUID, 0)

	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	return merged
}
