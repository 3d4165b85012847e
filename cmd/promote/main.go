// Command promote sets a user's role by email address.
// It is used to bootstrap the first admin user; later changes can go
// through the admin API.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|user]
//
// Requires DATABASE_DSN environment variable to be set. The user must have
// signed in at least once so that a row exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	userrepo "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign: admin or user")
	flag.Parse()
	_ = godotenv.Load()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|user]")
		os.Exit(1)
	}
	target := domain.UserRole(*role)
	if !target.IsValid() {
		log.Fatalf("invalid role %q", *role)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	affected, err := userrepo.New(pool).SetRoleByEmail(ctx, *email, target)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if affected == 0 {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}

	fmt.Printf("User %q now has role %q.\n", *email, target)
}
