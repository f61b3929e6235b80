package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"eshop/migrations"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	dsn := flag.String("dsn", "", "PostgreSQL connection URL (defaults to $DATABASE_URL)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-dsn url] up|down")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	if *dsn == "" {
		*dsn = os.Getenv("DATABASE_URL")
	}
	if *dsn == "" {
		logger.Error("No database URL: pass -dsn or set DATABASE_URL")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		logger.Error("Connect to database failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("Ping database failed", slog.Any("error", err))
		os.Exit(1)
	}

	direction := migrations.Direction(flag.Arg(0))
	n, err := migrations.Run(ctx, db, direction, logger)
	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migrations applied", slog.Int("count", n), slog.String("direction", string(direction)))
}
