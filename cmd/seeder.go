package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM expenses").Error; err != nil {
				log.Fatalf("failed to clear expenses: %v", err)
			}
			if err := db.Exec("DELETE FROM categories").Error; err != nil {
				log.Fatalf("failed to clear categories: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash demo password: %v", err)
		}

		demoUsername := "demo"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE username = ?", demoUsername).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("demo user already exists; skipping")
			return
		}

		if err := db.Exec("INSERT INTO users (username, password_hash, created_at, updated_at) VALUES (?, ?, now(), now())", demoUsername, string(hash)).Error; err != nil {
			log.Fatalf("failed to insert demo user: %v", err)
		}
		fmt.Println("Seeded demo user:", demoUsername)

		var userID int64
		row = db.Raw("SELECT id FROM users WHERE username = ?", demoUsername).Row()
		if err := row.Scan(&userID); err != nil {
			log.Fatalf("failed to read back demo user: %v", err)
		}

		for _, name := range []string{"Food", "Transport", "Rent"} {
			if err := db.Exec("INSERT INTO categories (name, user_id, created_at) VALUES (?, ?, now())", name, userID).Error; err != nil {
				log.Fatalf("failed to insert category %s: %v", name, err)
			}
			fmt.Println("Seeded category:", name)
		}
	},
}
