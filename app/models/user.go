package models

import "time"

// User mirrors the users table. The schema allows any number of is_admin
// rows, but the login flow recognises exactly one admin identified by the
// configured phone number; the flag is kept per-row for schema fidelity,
// not as a general multi-admin scheme.
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"        json:"id"`
	FirstName      string    `gorm:"column:first_name;size:255;not null" json:"first_name"`
	LastName       string    `gorm:"column:last_name;size:255;not null"  json:"last_name"`
	Email          string    `gorm:"uniqueIndex;size:255"            json:"email"`
	Password       string    `gorm:"size:255;not null"               json:"-"` // bcrypt hash, never serialised
	SavedAddresses string    `gorm:"column:saved_addresses;type:text" json:"saved_addresses,omitempty"`
	LastPurchases  string    `gorm:"column:last_purchases;type:text"  json:"last_purchases,omitempty"`
	Gender         string    `gorm:"size:32"                         json:"gender,omitempty"`
	IsAdmin        bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt      time.Time `gorm:"autoCreateTime"                  json:"created_at"`
}
