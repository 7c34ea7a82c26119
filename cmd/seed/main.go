package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stonevault-backend/internal/config"
	"stonevault-backend/internal/database"
	"stonevault-backend/internal/logging"
	"stonevault-backend/internal/models"
)

// Seeds demo accounts, the starter catalog, FAQs, and content blocks.
// Safe to run repeatedly; existing rows are left untouched.
func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	db := database.DB

	if err := seedUsers(db); err != nil {
		slog.Error("user seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedStones(db); err != nil {
		slog.Error("stone seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedFAQs(db); err != nil {
		slog.Error("faq seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedContent(db); err != nil {
		slog.Error("content seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed completed",
		"admin", "admin@stones.test / Admin@123",
		"demo", "demo@stones.test / Demo@123")
}

func seedUsers(db *gorm.DB) error {
	users := []struct {
		email, name, password, role string
	}{
		{"admin@stones.test", "Admin User", "Admin@123", models.RoleAdmin},
		{"demo@stones.test", "Demo User", "Demo@123", models.RoleUser},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{Email: u.email, Name: u.name, Password: string(hash), Role: u.role}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			slog.Info("user created", "email", u.email, "role", u.role)
		} else {
			slog.Info("user already exists", "email", u.email)
		}
	}
	return nil
}

func seedStones(db *gorm.DB) error {
	stones := []models.Stone{
		{
			Name: "Blue Sapphire", Slug: "blue-sapphire", Type: "SAPPHIRE", Color: "Blue",
			Weight: dec("2.50"), Origin: "Sri Lanka",
			ShortInfo:   "Stunning Ceylon blue sapphire",
			Description: "A magnificent blue sapphire with excellent clarity and deep blue color. This gem exhibits the classic cornflower blue hue that Ceylon sapphires are famous for.",
			Price:       dec("2500.00"), Currency: "USD", Stock: 5, Images: []string{}, IsFeatured: true,
		},
		{
			Name: "Ruby Heart", Slug: "ruby-heart", Type: "RUBY", Color: "Red",
			Weight: dec("1.75"), Origin: "Myanmar",
			ShortInfo:   "Premium Burmese ruby",
			Description: "Rare pigeon blood red ruby with exceptional fire. This precious gemstone displays the most sought-after color in rubies.",
			Price:       dec("3200.00"), Currency: "USD", Stock: 3, Images: []string{}, IsFeatured: true,
		},
		{
			Name: "Emerald Dreams", Slug: "emerald-dreams", Type: "EMERALD", Color: "Green",
			Weight: dec("3.20"), Origin: "Colombia",
			ShortInfo:   "Colombian emerald perfection",
			Description: "Vivid green Colombian emerald with minimal inclusions. The color is intense and the clarity is exceptional for emeralds.",
			Price:       dec("4500.00"), Currency: "USD", Stock: 2, Images: []string{}, IsFeatured: true,
		},
		{
			Name: "Diamond Brilliance", Slug: "diamond-brilliance", Type: "DIAMOND", Color: "Clear",
			Weight: dec("1.00"), Origin: "South Africa",
			ShortInfo:   "1 carat brilliant cut diamond",
			Description: "Flawless round brilliant cut diamond with excellent cut, clarity, and color grades. Perfect for special occasions.",
			Price:       dec("5800.00"), Currency: "USD", Stock: 4, Images: []string{}, IsFeatured: true,
		},
		{
			Name: "Amethyst Majesty", Slug: "amethyst-majesty", Type: "AMETHYST", Color: "Purple",
			Weight: dec("5.50"), Origin: "Brazil",
			ShortInfo:   "Deep purple Brazilian amethyst",
			Description: "Large, eye-clean amethyst with rich royal purple color. Brazilian amethysts are known for their depth of color.",
			Price:       dec("450.00"), Currency: "USD", Stock: 8, Images: []string{},
		},
		{
			Name: "Citrine Sunshine", Slug: "citrine-sunshine", Type: "CITRINE", Color: "Yellow",
			Weight: dec("4.20"), Origin: "Brazil",
			ShortInfo:   "Golden yellow citrine",
			Description: "Bright, cheerful citrine with excellent golden yellow color. Natural citrines are rare and highly prized.",
			Price:       dec("380.00"), Currency: "USD", Stock: 6, Images: []string{},
		},
		{
			Name: "Rose Quartz Serenity", Slug: "rose-quartz-serenity", Type: "QUARTZ", Color: "Pink",
			Weight: dec("8.00"), Origin: "Madagascar",
			ShortInfo:   "Soft pink rose quartz",
			Description: "Beautiful rose quartz with a delicate pink hue. Known as the stone of universal love.",
			Price:       dec("220.00"), Currency: "USD", Stock: 10, Images: []string{},
		},
		{
			Name: "Black Onyx Elegance", Slug: "black-onyx-elegance", Type: "OTHER", Color: "Black",
			Weight: dec("6.50"), Origin: "India",
			ShortInfo:   "Polished black onyx",
			Description: "Sleek and sophisticated black onyx with a mirror-like polish. Perfect for bold jewelry designs.",
			Price:       dec("180.00"), Currency: "USD", Stock: 12, Images: []string{},
		},
		{
			Name: "Rare Pink Diamond", Slug: "rare-pink-diamond", Type: "DIAMOND", Color: "Pink",
			Weight: dec("0.50"), Origin: "Australia",
			ShortInfo:   "Extremely rare pink diamond",
			Description: "Exceptional pink diamond from the Argyle mine. These are among the rarest gemstones in the world.",
			Price:       dec("15000.00"), Currency: "USD", Stock: 1, Images: []string{}, IsFeatured: true,
		},
		{
			Name: "Aquamarine Ocean", Slug: "aquamarine-ocean", Type: "OTHER", Color: "Blue",
			Weight: dec("4.80"), Origin: "Brazil",
			ShortInfo:   "Sea blue aquamarine",
			Description: "Beautiful aquamarine with the color of tropical waters. Eye-clean and perfectly cut.",
			Price:       dec("680.00"), Currency: "USD", Stock: 0, Images: []string{},
		},
	}

	for i := range stones {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&stones[i])
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			slog.Info("stone created", "name", stones[i].Name)
		}
	}
	return nil
}

func seedFAQs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FAQ{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("faqs already seeded", "count", count)
		return nil
	}

	faqs := []models.FAQ{
		{
			Question:  "How do I verify the authenticity of my gemstone?",
			Answer:    "Every gemstone purchased from StoneVault comes with a certificate of authenticity from recognized gemological laboratories. We also provide detailed documentation about the stone's origin, treatment history, and characteristics.",
			SortOrder: 1,
		},
		{
			Question:  "What is your return policy?",
			Answer:    "We offer a 30-day return policy for all gemstones. If you're not completely satisfied with your purchase, you can return it in its original condition for a full refund. The stone must be unused and in the same condition that you received it.",
			SortOrder: 2,
		},
		{
			Question:  "Do you ship internationally?",
			Answer:    "Yes! We ship worldwide. International shipping typically takes 7-14 business days depending on your location. All shipments are fully insured and require a signature upon delivery for security.",
			SortOrder: 3,
		},
		{
			Question:  "How should I care for my gemstone?",
			Answer:    "Different gemstones require different care. Generally, store your stones separately to avoid scratches, clean them with mild soap and water, and avoid exposure to harsh chemicals. We provide specific care instructions with each purchase.",
			SortOrder: 4,
		},
		{
			Question:  "Are your gemstones natural or lab-created?",
			Answer:    "All our gemstones are 100% natural unless explicitly stated otherwise. We clearly label any treated or enhanced stones, and all lab-created stones are marked as such in their descriptions.",
			SortOrder: 5,
		},
		{
			Question:  "What payment methods do you accept?",
			Answer:    "We accept all major credit cards, PayPal, bank transfers, and cryptocurrency for international orders. All transactions are secured with SSL encryption.",
			SortOrder: 6,
		},
		{
			Question:  "Can I request a custom cut or setting?",
			Answer:    "Yes! We work with master craftsmen who can create custom cuts and settings. Contact us with your requirements, and we'll provide a quote and timeline for your custom piece.",
			SortOrder: 7,
		},
		{
			Question:  "How do I know what size gemstone to buy?",
			Answer:    "Gemstone size depends on your intended use. For rings, 1-3 carats is typical for center stones. For earrings, 0.5-1.5 carats per stone works well. We're happy to provide guidance based on your specific needs.",
			SortOrder: 8,
		},
	}

	if err := db.Create(&faqs).Error; err != nil {
		return err
	}
	slog.Info("faqs created", "count", len(faqs))
	return nil
}

func seedContent(db *gorm.DB) error {
	blocks := []models.ContentBlock{
		{Key: "about", Value: "StoneVault curates natural gemstones from trusted mines and cutters around the world. Every stone is inspected, certified, and photographed before it reaches the catalog."},
		{Key: "shipping", Value: "Orders ship fully insured within 2 business days. International delivery takes 7-14 business days and requires a signature."},
	}

	for i := range blocks {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&blocks[i])
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			slog.Info("content block created", "key", blocks[i].Key)
		}
	}
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
