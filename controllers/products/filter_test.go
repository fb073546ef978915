package productController

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilterEmpty(t *testing.T) {
	filter := BuildProductFilter(ListFilters{})
	if len(filter) != 0 {
		t.Errorf("no filters should produce an empty document, got %v", filter)
	}
}

func TestBuildProductFilterConjunction(t *testing.T) {
	categoryId := primitive.NewObjectID()
	filter := BuildProductFilter(ListFilters{
		CategoryId: &categoryId,
		IsTrending: true,
		IsNew:      true,
	})

	if filter["category"] != categoryId {
		t.Errorf("category filter missing: %v", filter)
	}
	if filter["isTrending"] != true {
		t.Errorf("isTrending filter missing: %v", filter)
	}
	if filter["isNewItem"] != true {
		t.Errorf("isNewItem filter missing: %v", filter)
	}
}

func TestBuildProductFilterSaleIsComputed(t *testing.T) {
	filter := BuildProductFilter(ListFilters{IsSale: true})

	expr, ok := filter["$expr"].(bson.M)
	if !ok {
		t.Fatalf("isSale should produce an $expr, got %v", filter)
	}
	gt, ok := expr["$gt"].(bson.A)
	if !ok || len(gt) != 2 || gt[0] != "$originalPrice" || gt[1] != "$price" {
		t.Errorf("unexpected $expr: %v", expr)
	}
}

func TestBuildProductFilterQueryEscaped(t *testing.T) {
	filter := BuildProductFilter(ListFilters{Query: "100% (cotton).*"})

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("query should produce a two-branch $or, got %v", filter)
	}

	nameClause := or[0].(bson.M)
	pattern := nameClause["name"].(primitive.Regex)
	if pattern.Options != "i" {
		t.Errorf("search must be case-insensitive, got options %q", pattern.Options)
	}
	want := `100% \(cotton\)\.\*`
	if pattern.Pattern != want {
		t.Errorf("metacharacters not escaped: got %q, want %q", pattern.Pattern, want)
	}
}

func TestBuildProductFilterBlankQueryIgnored(t *testing.T) {
	filter := BuildProductFilter(ListFilters{Query: "   "})
	if _, ok := filter["$or"]; ok {
		t.Error("whitespace-only query should not add a search clause")
	}
}

func TestBuildProductFilterUnknownCategoryMatchesNothing(t *testing.T) {
	filter := BuildProductFilter(ListFilters{CategoryMiss: true})
	if filter["category"] != primitive.NilObjectID {
		t.Errorf("unknown category should match no documents, got %v", filter)
	}
}
