package services

import (
	"fmt"
	"time"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/app/repositories"
	"github.com/ovenfresh/cookieshop/pkg/cache"
	"github.com/ovenfresh/cookieshop/pkg/event"
	"github.com/ovenfresh/cookieshop/pkg/metrics"
)

const (
	// CatalogueCacheKey holds the serialized public cookie list in Redis.
	CatalogueCacheKey = "cookies:all"
	catalogueCacheTTL = time.Minute

	// seedMaxID is the highest id occupied by the seed rows; Reset deletes
	// everything above it.
	seedMaxID = 2

	createBgColor = "#FFDC9C"
	updateBgColor = "#f5e050"
)

// Catalogue mutation events.
const (
	EventCookieCreated = "cookie.created"
	EventCookieUpdated = "cookie.updated"
	EventCookieDeleted = "cookie.deleted"
)

// CookieEvent is the payload fired on every catalogue mutation.
type CookieEvent struct {
	Event string `json:"event"`
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
}

// CookieInput is the request body shape shared by create and update.
// Absent sub-structures default to empty object/list, never to NULL.
type CookieInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	BgColor     string            `json:"bg_color"`
	Image       string            `json:"image"`
	Stock       int               `json:"stock"`
	Nutrition   models.JSONMap    `json:"nutrition"`
	Allergens   models.StringList `json:"allergens"`
	TopReviews  models.StringList `json:"top_reviews"`
}

// CookieService owns catalogue reads and writes, the read-through list
// cache, and the mutation events consumed by the dashboard feed.
type CookieService struct {
	cookies *repositories.CookieRepository
}

func NewCookieService(cookies *repositories.CookieRepository) *CookieService {
	return &CookieService{cookies: cookies}
}

// List returns the full catalogue, served from the Redis cache when warm.
// The cache is best-effort: a cold or unreachable Redis falls through to
// the database.
func (s *CookieService) List() ([]models.Cookie, error) {
	var cached []models.Cookie
	if cache.Get(CatalogueCacheKey, &cached) {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	cookies, err := s.cookies.All()
	if err != nil {
		return nil, fmt.Errorf("services: list cookies: %w", err)
	}

	_ = cache.Set(CatalogueCacheKey, cookies, catalogueCacheTTL)
	return cookies, nil
}

// Get returns one cookie by id; repositories.ErrNotFound for unknown ids.
func (s *CookieService) Get(id uint) (models.Cookie, error) {
	return s.cookies.Find(id)
}

// Create stores a new cookie, applying the storefront defaults for every
// omitted field, and returns the assigned id.
func (s *CookieService) Create(input CookieInput) (uint, error) {
	cookie := models.Cookie{
		Name:        input.Name,
		Description: input.Description,
		BgColor:     orDefault(input.BgColor, createBgColor),
		Image:       input.Image,
		Stock:       input.Stock,
		Nutrition:   orEmptyMap(input.Nutrition),
		Allergens:   orEmptyList(input.Allergens),
		TopReviews:  orEmptyList(input.TopReviews),
	}

	if err := s.cookies.Create(&cookie); err != nil {
		return 0, fmt.Errorf("services: create cookie: %w", err)
	}

	event.Fire(EventCookieCreated, CookieEvent{Event: EventCookieCreated, ID: cookie.ID, Name: cookie.Name})
	return cookie.ID, nil
}

// Update overwrites an existing cookie with the submitted body.
// Returns repositories.ErrNotFound for unknown ids.
func (s *CookieService) Update(id uint, input CookieInput) error {
	cookie, err := s.cookies.Find(id)
	if err != nil {
		return err
	}

	cookie.Name = input.Name
	cookie.Description = input.Description
	cookie.BgColor = orDefault(input.BgColor, updateBgColor)
	cookie.Image = input.Image
	cookie.Stock = input.Stock
	cookie.Nutrition = orEmptyMap(input.Nutrition)
	cookie.Allergens = orEmptyList(input.Allergens)
	cookie.TopReviews = orEmptyList(input.TopReviews)

	if err := s.cookies.Update(&cookie); err != nil {
		return fmt.Errorf("services: update cookie: %w", err)
	}

	event.Fire(EventCookieUpdated, CookieEvent{Event: EventCookieUpdated, ID: cookie.ID, Name: cookie.Name})
	return nil
}

// Delete removes a cookie. Returns repositories.ErrNotFound for unknown ids.
func (s *CookieService) Delete(id uint) error {
	exists, err := s.cookies.Exists(id)
	if err != nil {
		return fmt.Errorf("services: delete cookie: %w", err)
	}
	if !exists {
		return repositories.ErrNotFound
	}

	if err := s.cookies.Delete(id); err != nil {
		return fmt.Errorf("services: delete cookie: %w", err)
	}

	event.Fire(EventCookieDeleted, CookieEvent{Event: EventCookieDeleted, ID: id})
	return nil
}

// Reset deletes every cookie above the seed rows, restoring the catalogue
// to its initial state.
func (s *CookieService) Reset() error {
	if err := s.cookies.DeleteAbove(seedMaxID); err != nil {
		return fmt.Errorf("services: reset catalogue: %w", err)
	}

	event.Fire(EventCookieDeleted, CookieEvent{Event: EventCookieDeleted})
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func orEmptyMap(m models.JSONMap) models.JSONMap {
	if m == nil {
		return models.JSONMap{}
	}
	return m
}

func orEmptyList(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}
