package postgres

import (
	"vacuum/internal/domain/entity"
	"vacuum/internal/errors"
	"vacuum/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, foreign key and index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// Seed inserts the fixed lookup rows. It is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range entity.DefaultRoles {
			role := model.RoleModel{}
			if err := tx.Where(model.RoleModel{RoleName: name.String()}).FirstOrCreate(&role).Error; err != nil {
				return errors.Wrapf(err, "failed to seed role %s", name)
			}
		}

		for _, name := range entity.DefaultEquipmentTypes {
			equipmentType := model.EquipmentTypeModel{}
			if err := tx.Where(model.EquipmentTypeModel{TypeName: name}).FirstOrCreate(&equipmentType).Error; err != nil {
				return errors.Wrapf(err, "failed to seed equipment type %s", name)
			}
		}

		for _, name := range entity.DefaultServiceTypes {
			serviceType := model.ServiceTypeModel{}
			if err := tx.Where(model.ServiceTypeModel{ServiceType: name}).FirstOrCreate(&serviceType).Error; err != nil {
				return errors.Wrapf(err, "failed to seed service type %s", name)
			}
		}

		return nil
	})
}
