// Command vocab-import creates a vocabulary list from a file, acting as an
// existing admin user, and optionally generates its flashcards.
//
// Usage:
//
//	vocab-import --admin-email=a@example.com --file=words.xlsx --title="Basics"
//	    [--description=...] [--difficulty=beginner] [--generate]
//
// Text files hold one "word - definition" pair per line. Spreadsheets hold
// the word in column A and the definition in column B of the first sheet.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/app"
	"github.com/heartmarshall/vocab-trainer-backend/internal/config"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/flashcard"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/vocab"
)

func main() {
	adminEmail := flag.String("admin-email", "", "email of the admin the list is created as")
	file := flag.String("file", "", "path to a .txt or .xlsx file")
	title := flag.String("title", "", "list title (defaults to the file name)")
	description := flag.String("description", "", "list description")
	difficulty := flag.String("difficulty", string(domain.DifficultyBeginner), "beginner, intermediate or advanced")
	generate := flag.Bool("generate", false, "generate flashcards after import")
	flag.Parse()
	_ = godotenv.Load()

	if *adminEmail == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: vocab-import --admin-email=a@example.com --file=words.txt [--title=...] [--generate]")
		os.Exit(1)
	}
	if *title == "" {
		*title = strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger, importArgs{
		adminEmail:  *adminEmail,
		file:        *file,
		title:       *title,
		description: *description,
		difficulty:  domain.Difficulty(*difficulty),
		generate:    *generate,
	}); err != nil {
		logger.Error("vocab import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type importArgs struct {
	adminEmail  string
	file        string
	title       string
	description string
	difficulty  domain.Difficulty
	generate    bool
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args importArgs) error {
	pairs, err := readPairs(args.file)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	a := app.New(cfg, logger, pool, nil)
	defer a.Close()

	ctx, _, err = a.ActAs(ctx, args.adminEmail)
	if err != nil {
		return err
	}

	list, err := a.Vocab.Import(ctx, vocab.ImportInput{
		Title:       args.title,
		Description: args.description,
		Difficulty:  args.difficulty,
		Pairs:       pairs,
	})
	if err != nil {
		return fmt.Errorf("import list: %w", err)
	}
	fmt.Printf("Successfully uploaded %q with %d words (id %s)\n", list.Title, list.TotalWords, list.ID)

	if !args.generate {
		return nil
	}

	res, err := a.Flashcard.GenerateForList(ctx, flashcard.GenerateInput{VocabListID: list.ID})
	if err != nil {
		return fmt.Errorf("generate flashcards: %w", err)
	}
	fmt.Printf("Generated %d flashcards for %d words\n", res.CardsCreated, res.WordsProcessed)
	return nil
}

func readPairs(path string) ([]domain.WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return vocab.ParseSpreadsheet(f)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vocab.ParseVocabulary(string(raw)), nil
}
