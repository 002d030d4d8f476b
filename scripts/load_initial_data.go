package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bicycle-maintenance-backend/internal/config"
	"bicycle-maintenance-backend/internal/database"
	"bicycle-maintenance-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML fixtures
type RiderData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type BicycleData struct {
	RiderEmail  string          `yaml:"rider_email"`
	Name        string          `yaml:"name"`
	Brand       string          `yaml:"brand"`
	Model       string          `yaml:"model"`
	Terrain     string          `yaml:"terrain"`
	Weather     string          `yaml:"weather"`
	Particulate string          `yaml:"particulate"`
	Components  []ComponentData `yaml:"components"`
}

type ComponentData struct {
	Type  string `yaml:"type"`
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
}

type RidersFile struct {
	Riders []RiderData `yaml:"riders"`
}

type BicyclesFile struct {
	Bicycles []BicycleData `yaml:"bicycles"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found"
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	riders, err := loadRiders(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load riders: %w", err)
	}

	bicycles, err := loadBicycles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load bicycles: %w", err)
	}

	// Create riders first
	riderMap := make(map[string]*models.User)
	riderCreated := 0
	for _, riderData := range riders {
		rider, created, err := createRider(db, riderData)
		if err != nil {
			return fmt.Errorf("failed to create rider %s: %w", riderData.Email, err)
		}
		riderMap[riderData.Email] = rider
		if created {
			riderCreated++
		}
	}
	log.Printf("Riders: %d created, %d total", riderCreated, len(riders))

	// Create bicycles with their components
	bicycleCreated := 0
	componentCreated := 0
	for _, bicycleData := range bicycles {
		created, components, err := createBicycle(db, bicycleData, riderMap)
		if err != nil {
			return fmt.Errorf("failed to create bicycle %s: %w", bicycleData.Name, err)
		}
		if created {
			bicycleCreated++
		}
		componentCreated += components
	}
	log.Printf("Bicycles: %d created, %d total", bicycleCreated, len(bicycles))
	log.Printf("Components: %d created", componentCreated)

	return nil
}

func loadRiders(dataDir string) ([]RiderData, error) {
	var allRiders []RiderData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "riders") {
			var file RidersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRiders = append(allRiders, file.Riders...)
		}
		return nil
	})

	return allRiders, err
}

func loadBicycles(dataDir string) ([]BicycleData, error) {
	var allBicycles []BicycleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "bicycles") {
			var file BicyclesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBicycles = append(allBicycles, file.Bicycles...)
		}
		return nil
	})

	return allBicycles, err
}

func createRider(db *gorm.DB, riderData RiderData) (*models.User, bool, error) {
	var rider models.User
	if err := db.Where("email = ?", riderData.Email).First(&rider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(riderData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			rider = models.User{
				Name:         riderData.Name,
				Email:        riderData.Email,
				PasswordHash: string(hash),
			}

			if err := db.Create(&rider).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create rider: %w", err)
			}
			return &rider, true, nil
		}
		return nil, false, fmt.Errorf("failed to query rider: %w", err)
	}

	return &rider, false, nil
}

func createBicycle(db *gorm.DB, bicycleData BicycleData, riderMap map[string]*models.User) (bool, int, error) {
	rider := riderMap[bicycleData.RiderEmail]
	if rider == nil {
		return false, 0, fmt.Errorf("rider %s not found for bicycle %s", bicycleData.RiderEmail, bicycleData.Name)
	}

	var bicycle models.Bicycle
	err := db.Where("name = ? AND user_id = ?", bicycleData.Name, rider.ID).First(&bicycle).Error
	if err == nil {
		return false, 0, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, 0, fmt.Errorf("failed to query bicycle: %w", err)
	}

	bicycle = models.Bicycle{
		UserID:      rider.ID,
		Name:        bicycleData.Name,
		Brand:       bicycleData.Brand,
		Model:       bicycleData.Model,
		Terrain:     models.Terrain(bicycleData.Terrain),
		Weather:     models.Weather(bicycleData.Weather),
		Particulate: models.Particulate(bicycleData.Particulate),
	}
	if err := db.Create(&bicycle).Error; err != nil {
		return false, 0, fmt.Errorf("failed to create bicycle: %w", err)
	}

	componentCount := 0
	for _, componentData := range bicycleData.Components {
		component := models.Component{
			BicycleID:     bicycle.ID,
			ComponentType: models.ComponentType(componentData.Type),
			Brand:         componentData.Brand,
			Model:         componentData.Model,
			Status:        models.ComponentStatusActive,
		}
		if err := db.Create(&component).Error; err != nil {
			return true, componentCount, fmt.Errorf("failed to create component %s: %w", componentData.Type, err)
		}
		componentCount++
	}

	return true, componentCount, nil
}
