package productController

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/utils"
	"github.com/UD-Cloth/backend/validators"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Controller struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		products:   configs.GetCollection(client, "products"),
		categories: configs.GetCollection(client, "categories"),
	}
}

// ListFilters are the query parameters of GET /api/products. All present
// filters compose conjunctively.
type ListFilters struct {
	CategoryId *primitive.ObjectID
	// CategoryMiss is set when a category name was given but no such
	// category exists; the list must then match nothing.
	CategoryMiss bool
	IsTrending   bool
	IsNew        bool
	IsSale       bool
	Query        string
}

// BuildProductFilter turns ListFilters into a MongoDB filter document.
func BuildProductFilter(f ListFilters) bson.M {
	filter := bson.M{}

	if f.CategoryMiss {
		// Unknown category name: match no documents.
		filter["category"] = primitive.NilObjectID
		return filter
	}
	if f.CategoryId != nil {
		filter["category"] = *f.CategoryId
	}
	if f.IsTrending {
		filter["isTrending"] = true
	}
	if f.IsNew {
		filter["isNewItem"] = true
	}
	if f.IsSale {
		// "On sale" is computed, not stored.
		filter["$expr"] = bson.M{"$gt": bson.A{"$originalPrice", "$price"}}
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		// QuoteMeta keeps user input from being interpreted as a pattern.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}

func (ctl *Controller) resolveCategory(ctx context.Context, name string) (*primitive.ObjectID, bool, error) {
	var category models.Category
	err := ctl.categories.FindOne(ctx, bson.M{
		"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &category.Id, false, nil
}

// attachCategoryNames denormalizes category names onto the products.
func (ctl *Controller) attachCategoryNames(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	cursor, err := ctl.categories.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return err
	}

	names := make(map[primitive.ObjectID]string, len(categories))
	for _, cat := range categories {
		names[cat.Id] = cat.Name
	}
	for i := range products {
		products[i].CategoryName = names[products[i].Category]
	}
	return nil
}

// GetProducts lists products with the optional conjunctive filters
// category, isTrending, isNew, isSale and q.
func (ctl *Controller) GetProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filters := ListFilters{
		IsTrending: c.Query("isTrending") == "true",
		IsNew:      c.Query("isNew") == "true",
		IsSale:     c.Query("isSale") == "true",
		Query:      c.Query("q"),
	}

	if categoryName := c.Query("category"); categoryName != "" {
		categoryId, miss, err := ctl.resolveCategory(ctx, categoryName)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error resolving category",
			})
		}
		filters.CategoryId = categoryId
		filters.CategoryMiss = miss
	}

	products := []models.Product{}
	cursor, err := ctl.products.Find(ctx, BuildProductFilter(filters))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
		})
	}

	if err := ctl.attachCategoryNames(ctx, products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching categories",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched products",
		Result:  &fiber.Map{"data": products},
	})
}

// GetProductById returns a single product with its category name.
func (ctl *Controller) GetProductById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	var product models.Product
	if err := ctl.products.FindOne(ctx, bson.M{"_id": productId}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
		})
	}

	var category models.Category
	if err := ctl.categories.FindOne(ctx, bson.M{"_id": product.Category}).Decode(&category); err == nil {
		product.CategoryName = category.Name
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched product",
		Result:  &fiber.Map{"data": product},
	})
}

type ProductRequest struct {
	Name          *string               `json:"name"`
	Price         *float64              `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64              `json:"originalPrice" validate:"omitempty,gte=0"`
	Image         *string               `json:"image"`
	Images        []string              `json:"images"`
	Category      *string               `json:"category"`
	Sizes         []string              `json:"sizes"`
	Colors        []models.ProductColor `json:"colors"`
	Description   *string               `json:"description"`
	Fabric        *string               `json:"fabric"`
	IsNewItem     *bool                 `json:"isNewItem"`
	IsTrending    *bool                 `json:"isTrending"`
}

// CreateProduct inserts a product, filling absent fields with sample
// placeholders so a bare POST still yields an editable document.
func (ctl *Controller) CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody ProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if msg := validators.Check(reqBody); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
		})
	}

	now := time.Now()
	product := models.Product{
		Id:          primitive.NewObjectID(),
		Name:        "Sample name",
		Image:       "/images/sample.jpg",
		Images:      []string{},
		Sizes:       []string{},
		Colors:      []models.ProductColor{},
		Description: "Sample description",
		Fabric:      "Sample fabric",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if reqBody.Name != nil && *reqBody.Name != "" {
		product.Name = utils.StripTags(*reqBody.Name)
	}
	if reqBody.Price != nil {
		product.Price = *reqBody.Price
	}
	if reqBody.OriginalPrice != nil {
		product.OriginalPrice = *reqBody.OriginalPrice
	}
	if reqBody.Image != nil && *reqBody.Image != "" {
		product.Image = *reqBody.Image
	}
	if reqBody.Images != nil {
		product.Images = reqBody.Images
	}
	if reqBody.Category != nil && *reqBody.Category != "" {
		categoryId, err := primitive.ObjectIDFromHex(*reqBody.Category)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid category id",
			})
		}
		product.Category = categoryId
	}
	if reqBody.Sizes != nil {
		product.Sizes = reqBody.Sizes
	}
	if reqBody.Colors != nil {
		product.Colors = reqBody.Colors
	}
	if reqBody.Description != nil && *reqBody.Description != "" {
		product.Description = utils.StripTags(*reqBody.Description)
	}
	if reqBody.Fabric != nil && *reqBody.Fabric != "" {
		product.Fabric = *reqBody.Fabric
	}
	if reqBody.IsNewItem != nil {
		product.IsNewItem = *reqBody.IsNewItem
	}
	if reqBody.IsTrending != nil {
		product.IsTrending = *reqBody.IsTrending
	}

	if _, err := ctl.products.InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Product created",
		Result:  &fiber.Map{"data": product},
	})
}

// UpdateProduct applies only the fields present in the request body,
// leaving everything else untouched.
func (ctl *Controller) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	var reqBody ProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if msg := validators.Check(reqBody); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Name != nil && *reqBody.Name != "" {
		update["name"] = utils.StripTags(*reqBody.Name)
	}
	if reqBody.Price != nil {
		update["price"] = *reqBody.Price
	}
	if reqBody.OriginalPrice != nil {
		update["originalPrice"] = *reqBody.OriginalPrice
	}
	if reqBody.Image != nil && *reqBody.Image != "" {
		update["image"] = *reqBody.Image
	}
	if reqBody.Images != nil {
		update["images"] = reqBody.Images
	}
	if reqBody.Category != nil && *reqBody.Category != "" {
		categoryId, err := primitive.ObjectIDFromHex(*reqBody.Category)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid category id",
			})
		}
		update["category"] = categoryId
	}
	if reqBody.Sizes != nil {
		update["sizes"] = reqBody.Sizes
	}
	if reqBody.Colors != nil {
		update["colors"] = reqBody.Colors
	}
	if reqBody.Description != nil && *reqBody.Description != "" {
		update["description"] = utils.StripTags(*reqBody.Description)
	}
	if reqBody.Fabric != nil && *reqBody.Fabric != "" {
		update["fabric"] = *reqBody.Fabric
	}
	if reqBody.IsNewItem != nil {
		update["isNewItem"] = *reqBody.IsNewItem
	}
	if reqBody.IsTrending != nil {
		update["isTrending"] = *reqBody.IsTrending
	}

	var updated models.Product
	err = ctl.products.FindOneAndUpdate(
		ctx,
		bson.M{"_id": productId},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated",
		Result:  &fiber.Map{"data": updated},
	})
}

// DeleteProduct removes a product. Cart and order references are weak,
// deletion does not cascade.
func (ctl *Controller) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	result, err := ctl.products.DeleteOne(ctx, bson.M{"_id": productId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product removed",
	})
}

// SearchProducts is the type-ahead endpoint: a lightweight projection
// capped at a small limit (default 5).
func (ctl *Controller) SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "Fetched products",
			Result:  &fiber.Map{"data": []models.Product{}},
		})
	}

	limit, err := strconv.ParseInt(c.Query("limit", "5"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 5
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	findOptions := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "price": 1, "image": 1, "category": 1})

	products := []models.Product{}
	cursor, err := ctl.products.Find(ctx, bson.M{"name": pattern}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error searching products",
		})
	}
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched products",
		Result:  &fiber.Map{"data": products},
	})
}
