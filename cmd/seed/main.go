package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/brickforge/brickforge-api/config"
	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoBuilder"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", userID, username, password)

	builds := []struct {
		name   string
		bricks []entity.Brick
	}{
		{
			name: "Tower",
			bricks: []entity.Brick{
				{X: 0, Y: 0, Z: 0, Width: 2, Depth: 2, Color: 0xC91A09},
				{X: 0, Y: 1, Z: 0, Width: 2, Depth: 2, Color: 0xC91A09},
				{X: 0, Y: 2, Z: 0, Width: 2, Depth: 2, Color: 0xF2CD37, Rotation: 90},
			},
		},
		{
			name: "Wall",
			bricks: []entity.Brick{
				{X: 0, Y: 0, Z: 0, Width: 4, Depth: 1, Color: 0x0055BF},
				{X: 4, Y: 0, Z: 0, Width: 4, Depth: 1, Color: 0x0055BF},
			},
		},
	}

	for _, b := range builds {
		bricks, err := json.Marshal(b.bricks)
		if err != nil {
			log.Fatalf("failed to marshal bricks: %v", err)
		}
		var buildID string
		if err := db.QueryRow(`
			INSERT INTO builds (user_id, name, bricks)
			VALUES ($1, $2, $3)
			RETURNING id
		`, userID, b.name, bricks).Scan(&buildID); err != nil {
			log.Fatalf("failed to seed build %q: %v", b.name, err)
		}
		fmt.Printf("seeded build: id=%s name=%s bricks=%d\n", buildID, b.name, len(b.bricks))
	}
}
