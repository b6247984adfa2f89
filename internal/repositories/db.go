// Package repositories is the persistence layer: a Store handle over a
// relational database holding accounts and their search history. The
// handle is created once at startup and passed explicitly to everything
// that touches storage.
package repositories

import (
	"log"

	"github.com/glebarez/sqlite"
	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// Open connects using the process config: a postgres DSN when DB_URL is
// set, otherwise the local sqlite file.
func Open() (*Store, error) {
	if dsn := config.Envs.DB_URL; dsn != "" {
		return openDialector(postgres.Open(dsn))
	}
	return OpenSQLite(config.Envs.DBPath)
}

// OpenSQLite opens a file-backed (or ":memory:") sqlite store.
func OpenSQLite(path string) (*Store, error) {
	return openDialector(sqlite.Open(path))
}

func openDialector(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Surface unique-index violations as gorm.ErrDuplicatedKey so
		// racing writers resolve to a conflict, not a bare driver error.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	// Run migrations
	if err := db.AutoMigrate(&models.User{}, &models.Search{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// EnsureAdmin creates the seed administrator unless an account with the
// configured admin email already exists. Safe to call on every startup.
func (s *Store) EnsureAdmin(seed config.AdminSeed) error {
	var admin models.User
	err := s.db.Where("email = ?", seed.Email).First(&admin).Error
	switch err {
	case nil:
		return nil
	case gorm.ErrRecordNotFound:
		// fall through to create
	default:
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = models.User{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", seed.Email)
	return nil
}
