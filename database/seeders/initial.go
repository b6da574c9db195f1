package seeders

import (
	"gorm.io/gorm"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/auth"
)

func init() {
	Register("cookies", SeedCookies)
	Register("package_options", SeedPackageOptions)
	Register("admin_user", SeedAdminUser)
}

// SeedCookies inserts the two launch products. The catalogue reset
// endpoint deletes everything above these two rows, so their ids (1 and
// 2) are load-bearing.
func SeedCookies(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cookie{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cookies := []models.Cookie{
		{
			Name:        "Chocolate Chip",
			Description: "Classic chocolate chip cookie with a crisp edge and chewy center",
			BgColor:     "#f5e050",
			Image:       "/images/cookies/chocolate-chip.jpg",
			Stock:       25,
			Nutrition: models.JSONMap{
				"calories": 250,
				"protein":  3,
				"fat":      12,
				"carbs":    36,
			},
			Allergens: models.StringList{"Gluten", "Dairy", "Eggs"},
			TopReviews: models.StringList{
				"Best cookie I've ever had!",
				"Perfect chocolate-to-cookie ratio",
				"My kids absolutely love these",
			},
		},
		{
			Name:        "Oatmeal Raisin",
			Description: "Chewy oatmeal cookie loaded with plump raisins and a hint of cinnamon",
			BgColor:     "#e8c39e",
			Image:       "/images/cookies/oatmeal-raisin.jpg",
			Stock:       18,
			Nutrition: models.JSONMap{
				"calories": 220,
				"protein":  4,
				"fat":      9,
				"carbs":    32,
			},
			Allergens: models.StringList{"Gluten", "Dairy"},
			TopReviews: models.StringList{
				"Reminds me of my grandmother's recipe",
				"Not too sweet, perfectly balanced",
				"Great with afternoon tea",
			},
		},
	}

	return db.Create(&cookies).Error
}

// SeedPackageOptions inserts the three box sizes shown on the order page.
func SeedPackageOptions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PackageOption{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	options := []models.PackageOption{
		{Type: "Standard", Size: "Small (6 cookies)", Price: 9.99, Image: "/images/packages/small.jpg", SavePercentage: 0},
		{Type: "Family", Size: "Medium (12 cookies)", Price: 18.99, Image: "/images/packages/medium.jpg", SavePercentage: 5},
		{Type: "Party", Size: "Large (24 cookies)", Price: 34.99, Image: "/images/packages/large.jpg", SavePercentage: 12},
	}

	return db.Create(&options).Error
}

// SeedAdminUser creates the back-office account if no admin exists.
// The password comes from ADMIN_PASSWORD; the login phone is matched
// against ADMIN_PHONE at authentication time, not stored here.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.AdminPassword())
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName: "Amir",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  hash,
		IsAdmin:   true,
	}
	return db.Create(&admin).Error
}
