package models

import "time"

// PackageOption is a purchasable box size shown on the storefront.
type PackageOption struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"          json:"id"`
	Type           string    `gorm:"size:64;not null"                  json:"type"`
	Size           string    `gorm:"size:128;not null"                 json:"size"`
	Price          float64   `gorm:"not null"                          json:"price"`
	Image          string    `gorm:"size:255"                          json:"image"`
	SavePercentage float64   `gorm:"column:save_percentage;not null;default:0" json:"save_percentage"`
	CreatedAt      time.Time `gorm:"autoCreateTime"                    json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"                    json:"updated_at"`
}

// Order links a user to a cookie and package option. The schema exists for
// the storefront's checkout data; no API surface mutates it yet.
type Order struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"         json:"id"`
	UserID          uint      `gorm:"not null;index"                   json:"user_id"`
	CookieID        uint      `gorm:"column:cookie_id;not null;index"  json:"cookie_id"`
	PackageOptionID uint      `gorm:"column:package_option_id;not null" json:"package_option_id"`
	UserName        string    `gorm:"column:user_name;size:255;not null" json:"user_name"`
	UserPhone       string    `gorm:"column:user_phone;size:32;not null" json:"user_phone"`
	Address         string    `gorm:"type:text;not null"               json:"address"`
	DeliveryTime    string    `gorm:"column:delivery_time;size:64;not null" json:"delivery_time"`
	OrderTime       time.Time `gorm:"column:order_time;autoCreateTime" json:"order_time"`
	Status          string    `gorm:"size:32;not null;default:Pending" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime"                   json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"                   json:"updated_at"`
}
