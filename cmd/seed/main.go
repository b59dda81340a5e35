package main

import (
	"context"
	"flag"
	"log"

	"familykitchen/internal/config"
	"familykitchen/internal/database"
	"familykitchen/internal/repository"
	"familykitchen/internal/seed"
)

func main() {
	reset := flag.Bool("reset", false, "delete all rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	if *reset {
		// children first so FK checks pass
		log.Println("Cleaning old data...")
		for _, table := range []string{"comment_likes", "comments", "selections", "dishes", "ingredients", "uploads", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatalf("clean %s: %v", table, err)
			}
		}
	}

	if err := seed.Run(context.Background(), db, seed.Options{}); err != nil {
		log.Fatal("seed failed: ", err)
	}
	log.Println("Seed complete. Members: admin, you, girlfriend / password " + seed.DefaultPassword)
}
