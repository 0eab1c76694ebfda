package database

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/technest/models"
	"gorm.io/gorm"
)

// Placeholder image per seeded product name.
var seedProductImages = map[string]string{
	"iPhone 15 Pro Max":        "https://picsum.photos/400/400?random=1",
	"Samsung Galaxy S24 Ultra": "https://picsum.photos/400/400?random=2",
	"Google Pixel 8 Pro":       "https://picsum.photos/400/400?random=3",
	"MacBook Pro 16\" M3":      "https://picsum.photos/400/400?random=4",
	"Dell XPS 15":              "https://picsum.photos/400/400?random=5",
	"ThinkPad X1 Carbon":       "https://picsum.photos/400/400?random=6",
	"iPad Pro 12.9\"":          "https://picsum.photos/400/400?random=7",
	"Samsung Galaxy Tab S9+":   "https://picsum.photos/400/400?random=8",
	"AirPods Pro (2nd Gen)":    "https://picsum.photos/400/400?random=9",
	"Sony WH-1000XM5":          "https://picsum.photos/400/400?random=10",
	"Logitech MX Master 3S":    "https://picsum.photos/400/400?random=11",
	"Apple Watch Series 9":     "https://picsum.photos/400/400?random=12",
	"Samsung Galaxy Watch 6":   "https://picsum.photos/400/400?random=13",
	"Fitbit Charge 6":          "https://picsum.photos/400/400?random=14",
}

// SeedProductImages downloads placeholder images for the seeded products
// and attaches them. Products that already have an image are skipped, and
// a failed download only skips that product, so the batch is safe to
// re-run until every product has an image.
func SeedProductImages(db *gorm.DB, mediaDir string) error {
	productDir := filepath.Join(mediaDir, "products")
	if err := os.MkdirAll(productDir, 0o755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	updated := 0
	for name, url := range seedProductImages {
		var product models.Product
		if err := db.Where("name = ?", name).First(&product).Error; err != nil {
			log.Printf("  ⚠ Product not found: %s", name)
			continue
		}

		if product.ImagePath != nil && *product.ImagePath != "" {
			log.Printf("  • Product already has image: %s", name)
			continue
		}

		log.Printf("  Downloading image for: %s...", name)
		path, err := downloadImage(client, url, productDir, name)
		if err != nil {
			log.Printf("  ⚠ Failed to download image for %s: %v", name, err)
			continue
		}

		if err := db.Model(&product).Update("image_path", path).Error; err != nil {
			log.Printf("  ⚠ Failed to attach image to %s: %v", name, err)
			continue
		}
		updated++
	}

	log.Printf("  ✓ Attached images to %d products", updated)
	return nil
}

func downloadImage(client *http.Client, url, dir, productName string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	filename := imageFilename(productName)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}

	return filepath.Join("products", filename), nil
}

func imageFilename(productName string) string {
	name := strings.ReplaceAll(productName, " ", "_")
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "/", "-")
	return name + ".jpg"
}
