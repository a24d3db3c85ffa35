package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/config"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Single default template per (user, type). GORM tags cannot express a
	// partial index, so it is created directly.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_auto_responses_one_default
        ON auto_responses (user_id, type)
        WHERE is_default
    `)

	// Backstop for the read-then-create booking race: two confirmed bookings
	// can never share the exact same slot tuple.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_taken
        ON bookings (professional_id, date, time)
        WHERE status IN ('confirmed', 'emergency')
    `)

	db.Exec(`
        UPDATE users
        SET timezone = 'UTC'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Task{},
		&models.TimeEntry{},
		&models.Invoice{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.Event{},
		&models.Message{},
		&models.AutoResponse{},
		&models.AuditLog{},
	)
}
