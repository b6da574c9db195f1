package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/pkg/metrics"
)

// PackageOptionRepository reads the fixed set of box sizes the shop
// sells. Options only change through seeding, so there is no write path.
type PackageOptionRepository struct {
	db *gorm.DB
}

func NewPackageOptionRepository(db *gorm.DB) *PackageOptionRepository {
	return &PackageOptionRepository{db: db}
}

func (r *PackageOptionRepository) All() ([]models.PackageOption, error) {
	defer metrics.ObserveDBQuery("package_options.all", time.Now())

	var options []models.PackageOption
	if err := r.db.Order("id asc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *PackageOptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PackageOption{}).Count(&count).Error
	return count, err
}
