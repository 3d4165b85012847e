// Command study runs a flashcard session in the terminal for an existing
// user. Each answer is recorded through the progress service, exactly as
// the web client does.
//
// Usage:
//
//	study --email=learner@example.com --list=<vocab list id>
//
// Keys: Enter flips the card, y/n answers a flipped card, r restarts a
// finished session, q quits.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/app"
	"github.com/heartmarshall/vocab-trainer-backend/internal/config"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/progress"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/study"
)

func main() {
	email := flag.String("email", "", "email of the studying user")
	listFlag := flag.String("list", "", "id of the vocabulary list to study")
	flag.Parse()
	_ = godotenv.Load()

	listID, err := uuid.Parse(*listFlag)
	if *email == "" || err != nil {
		fmt.Fprintln(os.Stderr, "Usage: study --email=learner@example.com --list=<vocab list id>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Log.Level = "error"
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	a := app.New(cfg, logger, pool, nil)
	defer a.Close()

	ctx, user, err := a.ActAs(ctx, *email)
	if err != nil {
		log.Fatal(err)
	}

	deck, err := a.Study.GetDeck(ctx, listID)
	if err != nil {
		log.Fatalf("load deck: %v", err)
	}

	recorder := study.RecorderFunc(func(ctx context.Context, card domain.StudyCard, correct bool) error {
		_, err := a.Progress.RecordAnswer(ctx, progress.AnswerInput{
			UserID:      user.ID,
			VocabListID: card.VocabListID,
			WordID:      card.WordID,
			Correct:     correct,
		})
		return err
	})

	session, err := study.NewSession(deck.Cards, recorder)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	fmt.Printf("Studying %q (%d cards)\n\n", deck.List.Title, len(deck.Cards))
	if err := loop(ctx, session, bufio.NewScanner(os.Stdin), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func loop(ctx context.Context, s *study.Session, in *bufio.Scanner, out io.Writer) error {
	for {
		if s.IsComplete() {
			t := s.Tally()
			fmt.Fprintf(out, "\nSession complete: %d correct, %d incorrect of %d.\n", t.Correct, t.Incorrect, t.Total)
			fmt.Fprint(out, "[r]estart or [q]uit: ")
		} else {
			card, _ := s.Current()
			i, total := s.Position()
			if s.Flipped() {
				fmt.Fprintf(out, "  %s\nKnew it? [y/n]: ", card.BackText)
			} else {
				fmt.Fprintf(out, "[%d/%d] %s  (Enter to flip) ", i+1, total, card.FrontText)
			}
		}

		if !in.Scan() {
			return in.Err()
		}
		key := strings.ToLower(strings.TrimSpace(in.Text()))

		switch {
		case key == "q":
			return nil
		case s.IsComplete() && key == "r":
			s.Restart()
		case s.IsComplete():
		case !s.Flipped():
			s.Flip()
		case key == "y" || key == "n":
			if err := s.Answer(ctx, key == "y"); err != nil {
				fmt.Fprintf(out, "  (progress not saved: %v)\n", err)
			}
		}
	}
}
