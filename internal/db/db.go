package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonbook/salon-scheduler/internal/config"
	"github.com/salonbook/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.User{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Client{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	if err := db.Exec(defaultTimezoneBackfillSQL).Error; err != nil {
		log.Fatal("failed to backfill profile timezones", zap.Error(err))
	}

	// No two non-cancelled bookings of one salon may overlap. The exclusion
	// constraint makes the conditional insert hold even if two transactions
	// race past the application-level conflict scan.
	if err := db.Exec(btreeGistExtensionSQL).Error; err != nil {
		log.Fatal("failed to create btree_gist extension", zap.Error(err))
	}
	if err := db.Exec(bookingsNoOverlapSQL).Error; err != nil {
		log.Fatal("failed to create bookings overlap constraint", zap.Error(err))
	}

	return db
}

const defaultTimezoneBackfillSQL = `
        UPDATE profiles
        SET timezone = 'Europe/Bratislava'
        WHERE timezone IS NULL OR timezone = ''
    `

const btreeGistExtensionSQL = `CREATE EXTENSION IF NOT EXISTS btree_gist`

// gorm migrates time.Time columns as timestamptz, so the range expression
// must be tstzrange; tsrange(timestamptz, timestamptz) does not resolve.
const bookingsNoOverlapSQL = `
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
            ) THEN
                ALTER TABLE bookings
                ADD CONSTRAINT bookings_no_overlap
                EXCLUDE USING gist (
                    profile_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                )
                WHERE (status <> 'cancelled');
            END IF;
        END
        $$
    `
