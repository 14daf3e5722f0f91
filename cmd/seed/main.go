package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	db, err := sql.Open("postgres", os.Getenv("DB_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	seedAdmin(db)
	seedCategories(db)
	seedMaterials(db)
	seedProducts(db)

	log.Println("✅ Seed complete")
}

func seedAdmin(db *sql.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@kaynetartsphere.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, email, password, role)
		VALUES ('Admin', $1, $2, 'admin')
		ON CONFLICT (email) DO NOTHING`,
		email, string(hash))
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Seeded admin user: %s", email)
}

func seedCategories(db *sql.DB) {
	categories := []struct {
		name, description string
	}{
		{"Dresses", "Ready to wear dresses"},
		{"Suits", "Tailored suits for all occasions"},
		{"Shirts", "Casual and formal shirts"},
		{"Kaftans", "Traditional and modern kaftans"},
	}

	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO categories (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			c.name, c.description)
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", c.name, err)
		}

		styles := stylesFor(c.name)
		for _, s := range styles {
			_, err := db.Exec(`
				INSERT INTO styles (category_id, name, description, base_price)
				SELECT id, $2, $3, $4 FROM categories WHERE name = $1
				ON CONFLICT DO NOTHING`,
				c.name, s.name, s.description, s.basePrice)
			if err != nil {
				log.Fatalf("Failed to seed style %s: %v", s.name, err)
			}
		}
	}
	log.Printf("Seeded %d categories", len(categories))
}

type styleSeed struct {
	name, description string
	basePrice         float64
}

func stylesFor(category string) []styleSeed {
	switch category {
	case "Dresses":
		return []styleSeed{
			{"A-Line Dress", "Classic A-line silhouette", 250},
			{"Bodycon Dress", "Fitted evening dress", 280},
		}
	case "Suits":
		return []styleSeed{
			{"Two-Piece Suit", "Jacket and trousers", 500},
			{"Three-Piece Suit", "Jacket, waistcoat and trousers", 600},
		}
	case "Shirts":
		return []styleSeed{
			{"Classic Shirt", "Button-down with standard collar", 150},
		}
	case "Kaftans":
		return []styleSeed{
			{"Embroidered Kaftan", "Hand embroidered neckline", 280},
		}
	default:
		return nil
	}
}

func seedMaterials(db *sql.DB) {
	materials := []struct {
		name  string
		price float64
	}{
		{"Cotton", 0},
		{"Linen", 50},
		{"Chiffon", 80},
		{"Silk", 100},
		{"Satin", 120},
		{"Velvet", 150},
	}

	for _, m := range materials {
		_, err := db.Exec(`
			INSERT INTO materials (name, price_per_meter)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			m.name, m.price)
		if err != nil {
			log.Fatalf("Failed to seed material %s: %v", m.name, err)
		}
	}
	log.Printf("Seeded %d materials", len(materials))
}

func seedProducts(db *sql.DB) {
	products := []struct {
		category, name, description string
		price                       float64
		stock                       int
	}{
		{"Dresses", "Ankara Print Dress", "Bold ankara print midi dress", 180, 12},
		{"Dresses", "Evening Gown", "Floor length satin gown", 320, 5},
		{"Shirts", "Linen Shirt", "Breathable summer linen shirt", 95, 20},
		{"Suits", "Navy Classic Suit", "Slim fit navy two-piece", 450, 8},
		{"Kaftans", "Royal Kaftan", "Embroidered ceremonial kaftan", 260, 10},
	}

	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (category_id, name, description, price, stock)
			SELECT id, $2, $3, $4, $5 FROM categories WHERE name = $1
			ON CONFLICT DO NOTHING`,
			p.category, p.name, p.description, p.price, p.stock)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.name, err)
		}
	}
	log.Printf("Seeded %d products", len(products))
}
