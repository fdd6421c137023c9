package impl

import (
	"context"
	"log/slog"
	"time"

	"vacuum/internal/domain/entity"
	"vacuum/internal/domain/service"
)

// reportAssembler flattens a fully loaded report into its read model.
type reportAssembler struct {
	store            service.ObjectStore
	presignTTL       time.Duration
	organizationName string
}

func (a *reportAssembler) assemble(ctx context.Context, logger *slog.Logger, report *entity.ServiceReport) *entity.ServiceReportView {
	view := &entity.ServiceReportView{
		ID:                report.ID,
		AuthorName:        a.authorName(report.User),
		Problem:           report.Problem,
		Solution:          report.Solution,
		ServicePersonName: report.ServicePersonName,
		Parts:             make([]*entity.ReportPartView, 0, len(report.Parts)),
		Files:             make([]*entity.ReportFileView, 0, len(report.Files)),
		CreatedAt:         report.CreatedAt,
		UpdatedAt:         report.UpdatedAt,
	}
	if report.User != nil {
		view.AuthorEmail = report.User.Email
	}
	if report.ServiceType != nil {
		view.ServiceTypeName = report.ServiceType.Name
	}

	if sold := report.SoldMachine; sold != nil {
		info := &entity.MachineInfo{
			SerialNo:            sold.SerialNo,
			DateOfManufacturing: sold.DateOfManufacturing,
		}
		if sold.Machine != nil {
			info.ModelNo = sold.Machine.ModelNo
			info.PartNo = sold.Machine.PartNo
			info.TypeName = sold.Machine.TypeName()
		}
		view.Machine = info
		view.Customer = &entity.CustomerInfo{
			Company:  sold.CustomerCompany,
			Name:     sold.CustomerName,
			Contact:  sold.CustomerContact,
			Email:    sold.CustomerEmail,
			Address:  sold.CustomerAddress,
			SoldDate: sold.CreatedAt,
		}
	}

	for _, part := range report.Parts {
		line := &entity.ReportPartView{
			ID:        part.ID,
			MachineID: part.MachineID,
			Quantity:  part.Quantity,
		}
		if part.Machine != nil {
			line.ModelNo = part.Machine.ModelNo
			line.PartNo = part.Machine.PartNo
		}
		view.Parts = append(view.Parts, line)
	}

	for _, file := range report.Files {
		view.Files = append(view.Files, &entity.ReportFileView{
			ID:      file.ID,
			FileKey: file.FileKey,
			URL:     fileURL(ctx, a.store, logger, file.FileKey, a.presignTTL),
		})
	}

	return view
}

// authorName prints the organization for reports filed by admins.
func (a *reportAssembler) authorName(author *entity.User) string {
	if author.IsAdmin() {
		return a.organizationName
	}

	return author.DisplayName()
}

// fileURL presigns key and falls back to its public location.
func fileURL(ctx context.Context, store service.ObjectStore, logger *slog.Logger, key string, ttl time.Duration) string {
	url, err := store.PresignURL(ctx, key, ttl)
	if err != nil {
		logger.Warn("Failed to presign file URL", slog.String("key", key), slog.Any("error", err))

		return store.PublicURL(key)
	}

	return url
}
