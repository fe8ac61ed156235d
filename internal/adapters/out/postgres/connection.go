package postgres

import (
	"fmt"
	"time"

	"qrave/internal/adapters/out/postgres/menurepo"
	"qrave/internal/adapters/out/postgres/orderrepo"
	"qrave/internal/adapters/out/postgres/outboxrepo"
	"qrave/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig holds what is needed to reach the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the libpq keyword/value connection string. lib/pq's listener
// accepts the same format.
func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects with error translation enabled, so unique and foreign key
// violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// NewGormConfig is the configuration every connection of the service uses.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OrderEventDTO{},
	)
}
