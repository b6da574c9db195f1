package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_cookies_table", &CreateCookiesTable{})
	migration.Register("20260301000002_create_package_options_table", &CreatePackageOptionsTable{})
	migration.Register("20260301000003_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: cookies --------

type CreateCookiesTable struct{}

func (m *CreateCookiesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cookie{})
}

func (m *CreateCookiesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cookies")
}

// -------- 0003: package_options --------

type CreatePackageOptionsTable struct{}

func (m *CreatePackageOptionsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.PackageOption{})
}

func (m *CreatePackageOptionsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("package_options")
}

// -------- 0004: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
