package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/petanque-ratings/internal/database"
	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/roster"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	if value, ok := os.LookupEnv("DB_NAME"); ok {
		config["DB_NAME"] = value
	} else {
		log.Fatalf("Error: Required environment variable %s is not set.", "DB_NAME")
	}
	for _, key := range []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		config[key] = os.Getenv(key)
	}
	return config
}

type seedPlayer struct {
	Name   string
	Gender string
}

// readPlayers reads one "name[;gender]" entry per line. Blank lines and lines
// starting with # are skipped.
func readPlayers(r io.Reader) ([]seedPlayer, error) {
	var players []seedPlayer
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, gender, _ := strings.Cut(text, ";")
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			return nil, fmt.Errorf("line %d: empty player name", line)
		}
		players = append(players, seedPlayer{Name: name, Gender: strings.TrimSpace(gender)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read player list: %w", err)
	}
	return players, nil
}

// seed adds every player whose normalized name is not on the roster yet.
func seed(ctx context.Context, store roster.Store, players []seedPlayer) (added int, err error) {
	existing, err := store.GetAllPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[names.Normalize(p.Name)] = true
	}

	for _, p := range players {
		key := names.Normalize(p.Name)
		if known[key] {
			log.Debug("Player already on roster", "name", p.Name)
			continue
		}
		if _, err := store.AddPlayer(ctx, p.Name, p.Gender); err != nil {
			return added, fmt.Errorf("failed to add player %s: %w", p.Name, err)
		}
		known[key] = true
		added++
	}
	return added, nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: seeder <players.txt>")
		os.Exit(2)
	}
	log.Info("Starting roster seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open player list: %s", err)
	}
	defer f.Close()

	players, err := readPlayers(f)
	if err != nil {
		log.Fatalf("Failed to parse player list: %s", err)
	}

	startTime := time.Now()
	added, err := seed(context.Background(), roster.New(db), players)
	if err != nil {
		log.Fatalf("Failed to seed roster: %s", err)
	}
	log.Info("Roster seeded", "listed", len(players), "added", added, "duration", time.Since(startTime))
}
