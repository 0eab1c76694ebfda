package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/technest/config"
	"github.com/technest/database"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🖼️  Starting Product Image Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("📁 Media directory: %s\n\n", cfg.App.MediaDir)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	// Download and attach images
	if err := database.SeedProductImages(database.DB, cfg.App.MediaDir); err != nil {
		log.Fatal("Failed to attach product images:", err)
	}

	fmt.Println("\n✨ Product images attached successfully!")
}

func showHelp() {
	fmt.Println("Product Image Tool")
	fmt.Println("==================")
	fmt.Println("\nDownloads placeholder images for the seeded catalog and")
	fmt.Println("stores them under the media directory. Products that already")
	fmt.Println("have an image are skipped.")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/addimages/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -help     Show this help message")
	fmt.Println("\nEnvironment:")
	fmt.Println("  MEDIA_DIR   Target directory for images (default ./media)")
}
