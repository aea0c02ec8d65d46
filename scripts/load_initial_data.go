package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shift-roster-backend/internal/config"
	"shift-roster-backend/internal/database"
	"shift-roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SectionData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ShiftData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Timezone  string `yaml:"timezone,omitempty"`
	Color     string `yaml:"color,omitempty"`
}

type UserData struct {
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	SectionName string `yaml:"section_name,omitempty"`
	Role        string `yaml:"role"`
	IsActive    bool   `yaml:"is_active"`
}

type PatternDayData struct {
	Day    string `yaml:"day"`
	Shift  string `yaml:"shift,omitempty"`
	OffDay bool   `yaml:"off_day,omitempty"`
}

type PatternData struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	SectionName string           `yaml:"section_name"`
	PatternType string           `yaml:"pattern_type"`
	Days        []PatternDayData `yaml:"days"`
}

type seedFile struct {
	Sections []SectionData `yaml:"sections"`
	Shifts   []ShiftData   `yaml:"shifts"`
	Users    []UserData    `yaml:"users"`
	Patterns []PatternData `yaml:"patterns"`
}

var dayIndex = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
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
	var merged seedFile
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var file seedFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merged.Sections = append(merged.Sections, file.Sections...)
		merged.Shifts = append(merged.Shifts, file.Shifts...)
		merged.Users = append(merged.Users, file.Users...)
		merged.Patterns = append(merged.Patterns, file.Patterns...)
		return nil
	})
	if err != nil {
		return err
	}

	sectionMap := make(map[string]*models.Section)
	for _, data := range merged.Sections {
		section := models.Section{Name: data.Name, Description: data.Description}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&section).Error; err != nil {
			return fmt.Errorf("failed to create section %s: %w", data.Name, err)
		}
		sectionMap[data.Name] = &section
	}
	log.Printf("Sections: %d", len(sectionMap))

	shiftMap := make(map[string]*models.Shift)
	for _, data := range merged.Shifts {
		tz := data.Timezone
		if tz == "" {
			tz = "UTC"
		}
		shift := models.Shift{
			Name:      data.Name,
			StartTime: data.StartTime,
			EndTime:   data.EndTime,
			Timezone:  tz,
			Color:     data.Color,
		}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&shift).Error; err != nil {
			return fmt.Errorf("failed to create shift %s: %w", data.Name, err)
		}
		shiftMap[data.Name] = &shift
	}
	log.Printf("Shifts: %d", len(shiftMap))

	userCount := 0
	for _, data := range merged.Users {
		user := models.User{
			FullName: data.FullName,
			Email:    data.Email,
			Role:     models.UserRole(data.Role),
			IsActive: data.IsActive,
		}
		if section, ok := sectionMap[data.SectionName]; ok {
			user.SectionID = &section.ID
		}
		if err := db.Where("email = ?", data.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		userCount++
	}
	log.Printf("Users: %d", userCount)

	for _, data := range merged.Patterns {
		section, ok := sectionMap[data.SectionName]
		if !ok {
			return fmt.Errorf("pattern %s references unknown section %s", data.Name, data.SectionName)
		}
		pattern := models.ShiftPattern{
			Name:        data.Name,
			Description: data.Description,
			SectionID:   section.ID,
			PatternType: models.PatternType(data.PatternType),
			IsActive:    true,
		}
		if err := db.Where("name = ? AND section_id = ?", data.Name, section.ID).
			FirstOrCreate(&pattern).Error; err != nil {
			return fmt.Errorf("failed to create pattern %s: %w", data.Name, err)
		}
		for _, dayData := range data.Days {
			dow, ok := dayIndex[strings.ToLower(dayData.Day)]
			if !ok {
				return fmt.Errorf("pattern %s has unknown day %q", data.Name, dayData.Day)
			}
			day := models.PatternDay{
				PatternID: pattern.ID,
				DayOfWeek: dow,
				IsOffDay:  dayData.OffDay,
			}
			if dayData.Shift != "" {
				shift, ok := shiftMap[dayData.Shift]
				if !ok {
					return fmt.Errorf("pattern %s references unknown shift %s", data.Name, dayData.Shift)
				}
				day.ShiftID = &shift.ID
			}
			if err := db.Where("pattern_id = ? AND day_of_week = ?", pattern.ID, dow).
				FirstOrCreate(&day).Error; err != nil {
				return fmt.Errorf("failed to create pattern day for %s: %w", data.Name, err)
			}
		}
	}
	log.Printf("Patterns: %d", len(merged.Patterns))

	return nil
}
