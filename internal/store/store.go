package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the gorm-backed identity store. One row per external user id.
type Store struct {
	db *gorm.DB
}

func New(driver, dsn string) (*Store, error) {
	dialector, err := GetDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate
	if err := db.AutoMigrate(&models.UserMapping{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// GetMapping returns the mapping for the given external user id.
// A miss returns ErrMappingNotFound. The query fetches up to two rows so the
// duplicate-key invariant can be checked explicitly; finding more than one
// row returns ErrMultipleMappings.
func (s *Store) GetMapping(
	ctx context.Context,
	externalUserID string,
) (*models.UserMapping, error) {
	var mappings []models.UserMapping
	err := s.db.WithContext(ctx).
		Where("external_user_id = ?", externalUserID).
		Limit(2).
		Find(&mappings).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to query user mapping: %w", err)
	}

	switch len(mappings) {
	case 0:
		return nil, ErrMappingNotFound
	case 1:
		return &mappings[0], nil
	default:
		return nil, ErrMultipleMappings
	}
}

// UpsertMapping creates or replaces the row keyed by the mapping's external
// user id. Concurrent writers race with last-writer-wins semantics; the store
// offers no stronger guarantee.
func (s *Store) UpsertMapping(ctx context.Context, m *models.UserMapping) error {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to upsert user mapping: %w", err)
	}
	return nil
}

// CountMappings returns the total number of persisted mappings.
func (s *Store) CountMappings(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.UserMapping{}).Count(&count).Error
	return count, err
}

// CountExpiringMappings returns the number of mappings whose token expires
// within the given window (including already-expired tokens).
func (s *Store) CountExpiringMappings(
	ctx context.Context,
	within time.Duration,
) (int64, error) {
	var count int64
	cutoff := time.Now().Add(within)
	err := s.db.WithContext(ctx).
		Model(&models.UserMapping{}).
		Where("token_expiry < ?", cutoff).
		Count(&count).
		Error
	return count, err
}

// Health pings the underlying database connection.
func (s *Store) Health() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// IsNotFound reports whether err signals an absent mapping.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMappingNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
