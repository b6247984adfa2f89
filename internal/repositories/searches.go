package repositories

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rohits-web03/plotwise/internal/models"
)

func (s *Store) CreateSearch(search *models.Search) error {
	return s.db.Create(search).Error
}

// SearchesByOwner returns one account's history, newest first.
func (s *Store) SearchesByOwner(userID uuid.UUID) ([]models.Search, error) {
	var searches []models.Search
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&searches).Error
	return searches, err
}

// RecentSearches returns the n most recent searches across all
// accounts, owner preloaded.
func (s *Store) RecentSearches(n int) ([]models.Search, error) {
	var searches []models.Search
	err := s.db.Preload("User").
		Order("created_at desc").
		Limit(n).
		Find(&searches).Error
	return searches, err
}

func (s *Store) CountSearches() (int64, error) {
	var n int64
	err := s.db.Model(&models.Search{}).Count(&n).Error
	return n, err
}

// AveragePricePerSqft averages over every stored search. ok is false
// when there are no searches yet.
func (s *Store) AveragePricePerSqft() (avg float64, ok bool, err error) {
	var result sql.NullFloat64
	err = s.db.Model(&models.Search{}).
		Select("avg(price_per_sqft)").
		Scan(&result).Error
	if err != nil {
		return 0, false, err
	}
	return result.Float64, result.Valid, nil
}
