package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type productSeed struct {
	name          string
	price         float64
	originalPrice float64
	image         string
	categorySlug  string
	sizes         []string
	colors        []models.ProductColor
	description   string
	fabric        string
	isNewItem     bool
	isTrending    bool
}

var categorySeeds = []models.Category{
	{Name: "T-Shirts", Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=500&fit=crop"},
	{Name: "Shirts", Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=500&fit=crop"},
	{Name: "Hoodies", Image: "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=500&fit=crop"},
	{Name: "Jackets", Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=500&fit=crop"},
	{Name: "Jeans", Image: "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=500&fit=crop"},
	{Name: "Accessories", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=500&fit=crop"},
}

var categorySlugs = map[string]string{
	"tshirts":     "T-Shirts",
	"shirts":      "Shirts",
	"hoodies":     "Hoodies",
	"jackets":     "Jackets",
	"jeans":       "Jeans",
	"accessories": "Accessories",
}

var productSeeds = []productSeed{
	{
		name:          "Classic Cotton Crew Neck T-Shirt",
		price:         799,
		originalPrice: 1299,
		image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=500&fit=crop",
		categorySlug:  "tshirts",
		sizes:         []string{"S", "M", "L", "XL", "XXL"},
		colors: []models.ProductColor{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Black", Hex: "#000000"},
			{Name: "Navy", Hex: "#1e3a5f"},
		},
		description: "Premium quality 100% cotton t-shirt with a comfortable crew neck design. Perfect for everyday wear.",
		fabric:      "100% Cotton, 180 GSM",
		isNewItem:   true,
	},
	{
		name:          "Slim Fit Oxford Shirt",
		price:         1499,
		originalPrice: 2199,
		image:         "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=500&fit=crop",
		categorySlug:  "shirts",
		sizes:         []string{"S", "M", "L", "XL"},
		colors: []models.ProductColor{
			{Name: "Light Blue", Hex: "#87CEEB"},
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Pink", Hex: "#FFB6C1"},
		},
		description: "Elegant slim fit oxford shirt perfect for both office and casual outings.",
		fabric:      "100% Premium Cotton Oxford",
		isTrending:  true,
	},
	{
		name:          "Premium Fleece Hoodie",
		price:         1999,
		originalPrice: 2999,
		image:         "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=500&fit=crop",
		categorySlug:  "hoodies",
		sizes:         []string{"M", "L", "XL", "XXL"},
		colors: []models.ProductColor{
			{Name: "Grey", Hex: "#808080"},
			{Name: "Black", Hex: "#000000"},
		},
		description: "Warm brushed fleece hoodie with a relaxed fit and kangaroo pocket.",
		fabric:      "80% Cotton, 20% Polyester Fleece",
		isTrending:  true,
	},
	{
		name:          "Slim Tapered Stretch Jeans",
		price:         2299,
		originalPrice: 3499,
		image:         "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=500&fit=crop",
		categorySlug:  "jeans",
		sizes:         []string{"30", "32", "34", "36"},
		colors: []models.ProductColor{
			{Name: "Indigo", Hex: "#3F51B5"},
			{Name: "Black", Hex: "#000000"},
		},
		description: "Mid-rise slim tapered jeans with two-way stretch denim for all-day comfort.",
		fabric:      "98% Cotton, 2% Elastane",
		isNewItem:   true,
	},
	{
		name:         "Water-Resistant Bomber Jacket",
		price:        3999,
		image:        "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=500&fit=crop",
		categorySlug: "jackets",
		sizes:        []string{"M", "L", "XL"},
		colors: []models.ProductColor{
			{Name: "Olive", Hex: "#556B2F"},
			{Name: "Black", Hex: "#000000"},
		},
		description: "Lightweight bomber with a water-resistant shell and ribbed cuffs.",
		fabric:      "100% Nylon Shell, Polyester Lining",
	},
	{
		name:         "Minimal Leather Belt",
		price:        899,
		image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=500&fit=crop",
		categorySlug: "accessories",
		sizes:        []string{"S", "M", "L"},
		colors: []models.ProductColor{
			{Name: "Tan", Hex: "#D2B48C"},
			{Name: "Black", Hex: "#000000"},
		},
		description: "Full-grain leather belt with a brushed metal buckle.",
		fabric:      "Full-Grain Leather",
	},
}

// Run wipes and reloads categories, products and the demo users.
func Run(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	categories := configs.GetCollection(client, "categories")
	products := configs.GetCollection(client, "products")
	users := configs.GetCollection(client, "users")

	for _, coll := range []*mongo.Collection{categories, products} {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clearing %s: %w", coll.Name(), err)
		}
	}

	now := time.Now()

	categoryIds := make(map[string]primitive.ObjectID, len(categorySeeds))
	for _, cat := range categorySeeds {
		cat.Id = primitive.NewObjectID()
		cat.CreatedAt = now
		cat.UpdatedAt = now
		if _, err := categories.InsertOne(ctx, cat); err != nil {
			return fmt.Errorf("inserting category %s: %w", cat.Name, err)
		}
		categoryIds[cat.Name] = cat.Id
	}

	for _, p := range productSeeds {
		product := models.Product{
			Id:            primitive.NewObjectID(),
			Name:          p.name,
			Price:         p.price,
			OriginalPrice: p.originalPrice,
			Image:         p.image,
			Images:        []string{p.image},
			Category:      categoryIds[categorySlugs[p.categorySlug]],
			Sizes:         p.sizes,
			Colors:        p.colors,
			Description:   p.description,
			Fabric:        p.fabric,
			IsNewItem:     p.isNewItem,
			IsTrending:    p.isTrending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if _, err := products.InsertOne(ctx, product); err != nil {
			return fmt.Errorf("inserting product %s: %w", p.name, err)
		}
	}

	seedUsers := []struct {
		firstName, lastName, email, password string
		isAdmin                              bool
	}{
		{"Admin", "User", "admin@udcloth.com", "admin12345", true},
		{"Demo", "Customer", "demo@udcloth.com", "demo12345", false},
	}
	for _, u := range seedUsers {
		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}
		user := models.User{
			Id:        primitive.NewObjectID(),
			FirstName: u.firstName,
			LastName:  u.lastName,
			Email:     u.email,
			Password:  hashed,
			Wishlist:  []primitive.ObjectID{},
			IsAdmin:   u.isAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// Keep existing accounts; the unique email index rejects repeats.
		if _, err := users.InsertOne(ctx, user); err != nil && !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("inserting user %s: %w", u.email, err)
		}
	}

	fmt.Println("Seed data loaded")
	return nil
}
