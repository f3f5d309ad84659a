// cmd/seed/main.go
//
// 연간 성경 읽기표 JSON 을 reading_plans 테이블에 적재하는 시딩 도구입니다.
//
//	go run ./cmd/seed -file data/plan.sample.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"bible_read_keep/internal/bible"
	"bible_read_keep/internal/config"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/repository"
)

// planEntry 는 읽기표 JSON 한 줄의 형식입니다 (day 는 연중 일차)
type planEntry struct {
	Day    int      `json:"day"`
	Title  string   `json:"title"`
	Verses []string `json:"verses"`
}

func main() {
	filePath := flag.String("file", "data/plan.sample.json", "읽기표 JSON 파일 경로")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	year := config.Cfg.App.PlanYear
	if year == 0 {
		year = time.Now().Year()
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read plan file %s: %v", *filePath, err)
	}
	var entries []planEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to parse plan file: %v", err)
	}
	if len(entries) == 0 {
		log.Fatal("Plan file contains no entries")
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB from GORM: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	if err := db.AutoMigrate(&model.User{}, &model.ReadingPlan{}, &model.ReadingProgress{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	planRepo := repository.NewGormPlanRepository()
	startDate := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	ctx := context.Background()
	seeded := 0
	for _, entry := range entries {
		if entry.Day < 1 || len(entry.Verses) == 0 {
			slog.Warn("Skipping invalid plan entry", "day", entry.Day, "title", entry.Title)
			continue
		}

		date := startDate.AddDate(0, 0, entry.Day-1).Format("2006-01-02")
		title, verses := bible.ApplyOverlay(entry.Day, entry.Title, entry.Verses)

		plan := &model.ReadingPlan{
			PlanID:    entry.Day,
			Date:      date,
			Title:     title,
			Verses:    verses,
			DayOfYear: entry.Day,
			// 아래 파생 값은 조회 시 다시 계산되지만, 테이블만 봐도
			// 내용을 알 수 있도록 시딩 시점 값을 함께 저장해 둡니다.
			Category: bible.Category(verses),
			Summary:  bible.Keywords(verses),
			ReadTime: bible.ReadingTime(verses),
		}

		if err := planRepo.Upsert(ctx, db, plan); err != nil {
			log.Fatalf("Failed to upsert plan for day %d: %v", entry.Day, err)
		}
		seeded++
	}

	slog.Info("Seeding finished", "year", year, "seeded", seeded, "total_entries", len(entries))
}
