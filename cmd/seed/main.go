package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"medical-agent-webhook/config"
	"medical-agent-webhook/internal/domain/entity"
	"medical-agent-webhook/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"Endocrinology",
	"General Practice",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
}

var cities = []string{
	"Springfield",
	"Riverside",
	"Franklin",
	"Greenville",
	"Madison",
}

var dayTimes = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

func main() {
	count := flag.Int("count", 50, "number of doctors to generate")
	days := flag.Int("days", 14, "number of days of availability, starting today")
	out := flag.String("out", "", "write a JSON directory file for the memory driver instead of the database")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.Info("seed starting")

	if err := run(*count, *days, *out); err != nil {
		logrus.Fatalf("Seed failed: %v", err)
	}
}

func run(count, days int, out string) error {
	doctors := generateDoctors(count, days, time.Now())

	if out != "" {
		if err := writeSeedFile(out, doctors); err != nil {
			return fmt.Errorf("write seed file: %w", err)
		}
		logrus.Infof("Wrote %d doctors to %s", len(doctors), out)
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.Warnf("Failed to close database: %v", err)
		}
	}()

	if err := db.Table(cfg.Directory.Table).CreateInBatches(doctors, 100).Error; err != nil {
		return fmt.Errorf("insert doctors: %w", err)
	}

	logrus.Infof("Seeded %d doctors into %s", len(doctors), cfg.Directory.Table)
	return nil
}

func generateDoctors(count, days int, from time.Time) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, count)
	for i := 0; i < count; i++ {
		doctors = append(doctors, entity.Doctor{
			ID:           uuid.New(),
			Name:         "Dr. " + gofakeit.LastName(),
			Specialty:    specialties[gofakeit.Number(0, len(specialties)-1)],
			City:         cities[gofakeit.Number(0, len(cities)-1)],
			Availability: generateAvailability(days, from),
		})
	}
	return doctors
}

// generateAvailability leaves roughly a third of the days without slots
func generateAvailability(days int, from time.Time) entity.Availability {
	availability := entity.Availability{}
	for d := 0; d < days; d++ {
		date := entity.CalendarDateOf(from.AddDate(0, 0, d))
		if gofakeit.Number(0, 2) == 0 {
			continue
		}

		picked := map[string]bool{}
		for n := gofakeit.Number(1, 4); len(picked) < n; {
			picked[dayTimes[gofakeit.Number(0, len(dayTimes)-1)]] = true
		}

		slots := make([]string, 0, len(picked))
		for slot := range picked {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		availability[date.String()] = slots
	}
	return availability
}

func writeSeedFile(path string, doctors []entity.Doctor) error {
	data, err := json.MarshalIndent(doctors, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
