package db

import (
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Connect opens the embedded database at path, creating the file if needed.
func Connect(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Ship{},
		&models.Component{},
		&models.Job{},
		&models.Notification{},
		&models.Session{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// Seed inserts the demo dataset into each collection that is still empty.
// Collections that already hold data are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedShips(db); err != nil {
		return err
	}
	if err := seedComponents(db); err != nil {
		return err
	}
	return seedJobs(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		id       string
		email    string
		password string
		role     models.Role
	}{
		{"1", "admin@entnt.in", "admin123", models.RoleAdmin},
		{"2", "inspector@entnt.in", "inspect123", models.RoleInspector},
		{"3", "engineer@entnt.in", "engine123", models.RoleEngineer},
	}

	users := make([]models.User, 0, len(demo))

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			ID:           d.id,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
		})
	}

	return db.Create(&users).Error
}

func seedShips(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ship{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ships := []models.Ship{
		{ID: "s1", Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive},
		{ID: "s2", Name: "Maersk Alabama", IMO: "9164263", Flag: "USA", Status: models.ShipStatusUnderMaintenance},
	}

	return db.Create(&ships).Error
}

func seedComponents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Component{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	nextEngine := date(2024, 9, 12)
	nextRadar := date(2024, 6, 1)

	components := []models.Component{
		{
			ID:                  "c1",
			ShipID:              "s1",
			Name:                "Main Engine",
			SerialNumber:        "ME-1234",
			InstallDate:         date(2020, 1, 10),
			LastMaintenanceDate: date(2024, 3, 12),
			NextMaintenanceDate: &nextEngine,
			Status:              models.ComponentStatusOperational,
		},
		{
			ID:                  "c2",
			ShipID:              "s2",
			Name:                "Radar",
			SerialNumber:        "RAD-5678",
			InstallDate:         date(2021, 7, 18),
			LastMaintenanceDate: date(2023, 12, 1),
			NextMaintenanceDate: &nextRadar,
			Status:              models.ComponentStatusMaintenanceRequired,
		},
	}

	return db.Create(&components).Error
}

func seedJobs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jobs := []models.Job{
		{
			ID:                 "j1",
			ShipID:             "s1",
			ComponentID:        "c1",
			Type:               models.JobTypeInspection,
			Priority:           models.JobPriorityHigh,
			Status:             models.JobStatusOpen,
			AssignedEngineerID: "3",
			ScheduledDate:      date(2025, 5, 5),
			Notes:              "Regular inspection of main engine",
		},
	}

	return db.Create(&jobs).Error
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
