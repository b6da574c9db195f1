package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/pkg/metrics"
)

// ErrNotFound is returned when a cookie id does not exist.
var ErrNotFound = errors.New("repositories: not found")

// CookieRepository handles database operations for Cookie.
type CookieRepository struct {
	db *gorm.DB
}

func NewCookieRepository(db *gorm.DB) *CookieRepository {
	return &CookieRepository{db: db}
}

// All returns every cookie in the catalogue.
func (r *CookieRepository) All() ([]models.Cookie, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var cookies []models.Cookie
	if err := r.db.Order("id asc").Find(&cookies).Error; err != nil {
		return nil, err
	}
	return cookies, nil
}

// Find looks up a cookie by primary key.
func (r *CookieRepository) Find(id uint) (models.Cookie, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var cookie models.Cookie
	err := r.db.First(&cookie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cookie, ErrNotFound
	}
	return cookie, err
}

// Exists reports whether a cookie with the given id is stored.
func (r *CookieRepository) Exists(id uint) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	if err := r.db.Model(&models.Cookie{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new cookie and returns it with the assigned id.
func (r *CookieRepository) Create(cookie *models.Cookie) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(cookie).Error
}

// Update persists changes to an existing cookie.
func (r *CookieRepository) Update(cookie *models.Cookie) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(cookie).Error
}

// Delete removes a cookie by id.
func (r *CookieRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Cookie{}, id).Error
}

// DeleteAbove removes every cookie with an id greater than keep. The two
// seeded rows occupy ids 1 and 2, so DeleteAbove(2) resets the catalogue
// to its initial state.
func (r *CookieRepository) DeleteAbove(keep uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Where("id > ?", keep).Delete(&models.Cookie{}).Error
}

// Count returns the number of stored cookies.
func (r *CookieRepository) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.Model(&models.Cookie{}).Count(&count).Error
	return count, err
}
