package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap is an object persisted as serialized text (the nutrition column).
// Scanning NULL, empty or malformed text yields an empty map rather than an
// error: several call sites rely on reads never failing on missing data.
type JSONMap map[string]interface{}

// Value marshals the map for storage; nil serialises as "{}".
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("models: marshal json map: %w", err)
	}
	return string(data), nil
}

// Scan deserializes the stored text, defaulting to an empty map.
func (m *JSONMap) Scan(src interface{}) error {
	*m = JSONMap{}

	raw := asBytes(src)
	if len(raw) == 0 {
		return nil
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		return nil
	}

	*m = parsed
	return nil
}

// StringList is a list of strings persisted as serialized text (the
// allergens and top_reviews columns). Same defaulting rule as JSONMap:
// absent or malformed scans to an empty list.
type StringList []string

// Value marshals the list for storage; nil serialises as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("models: marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan deserializes the stored text, defaulting to an empty list.
func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}

	raw := asBytes(src)
	if len(raw) == 0 {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		return nil
	}

	*l = parsed
	return nil
}

func asBytes(src interface{}) []byte {
	switch v := src.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

// Cookie is the product entity of the storefront.
type Cookie struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"            json:"id"`
	Name        string     `gorm:"size:255;not null"                   json:"name"`
	Description string     `gorm:"type:text"                           json:"description"`
	BgColor     string     `gorm:"column:bg_color;size:32"             json:"bg_color"`
	Image       string     `gorm:"size:255"                            json:"image"`
	Rating      float64    `gorm:"not null;default:0"                  json:"rating"`
	RatingCount int        `gorm:"not null;default:0"                  json:"rating_count"`
	Stock       int        `gorm:"not null;default:0"                  json:"stock"`
	Nutrition   JSONMap    `gorm:"type:text"                           json:"nutrition"`
	Allergens   StringList `gorm:"type:text"                           json:"allergens"`
	TopReviews  StringList `gorm:"column:top_reviews;type:text"        json:"top_reviews"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"                      json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"                      json:"updated_at"`
}
