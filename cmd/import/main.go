package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fsnd-trivia/trivia-service/internal/config"
	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/repositories/postgres"
	"github.com/fsnd-trivia/trivia-service/internal/services"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
	"github.com/fsnd-trivia/trivia-service/pkg"
)

// Bulk question import from an xlsx workbook. Expected columns per row:
// question, answer, category type, difficulty. The first row is a header.
func main() {
	var (
		file  = flag.String("file", "", "path to the xlsx workbook")
		sheet = flag.String("sheet", "", "sheet name (default: first sheet)")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: import -file questions.xlsx [-sheet Sheet1]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	defer repoManager.Shutdown(context.Background())

	serviceManager := services.NewServiceManager(repoManager.GetRepository(), logger, validator.New(), events.NewMockEventPublisher(logger))
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	if err := importWorkbook(context.Background(), serviceManager, logger, *file, *sheet); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func importWorkbook(ctx context.Context, sm services.ServiceManager, logger *slog.Logger, path, sheet string) error {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer workbook.Close()

	if sheet == "" {
		sheet = workbook.GetSheetName(0)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return err
	}

	// Category types seen so far, resolved to their ids.
	categoryIDs := make(map[string]uint)
	existing, err := sm.Category().ListAll(ctx)
	if err != nil {
		return err
	}
	for _, category := range existing {
		categoryIDs[strings.ToLower(category.Type)] = category.ID
	}

	var imported, skipped int
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 4 {
			logger.Warn("Skipping short row", "row", i+1)
			skipped++
			continue
		}

		categoryType := strings.TrimSpace(row[2])
		categoryID, ok := categoryIDs[strings.ToLower(categoryType)]
		if !ok {
			category, err := sm.Category().Create(ctx, categoryType)
			if err != nil {
				return err
			}
			categoryID = category.ID
			categoryIDs[strings.ToLower(categoryType)] = categoryID
		}

		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			difficulty = models.MinDifficulty
		}

		_, err = sm.Question().Create(ctx, &services.CreateQuestionRequest{
			Question:   row[0],
			Answer:     row[1],
			Category:   categoryID,
			Difficulty: difficulty,
		})
		if err != nil {
			// Duplicates and bad rows are skipped, everything else aborts.
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) || repositories.IsConflictError(err) {
				logger.Warn("Skipping row", "row", i+1, "error", err)
				skipped++
				continue
			}
			return err
		}
		imported++
	}

	logger.Info("Import finished", "imported", imported, "skipped", skipped)
	return nil
}
