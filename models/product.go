package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductColor struct {
	Name string `bson:"name" json:"name"`
	Hex  string `bson:"hex" json:"hex"`
}

type Product struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Image         string             `bson:"image" json:"image"`
	Images        []string           `bson:"images" json:"images"`
	Category      primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	CategoryName  string             `bson:"-" json:"categoryName,omitempty"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []ProductColor     `bson:"colors" json:"colors"`
	Rating        float64            `bson:"rating" json:"rating"`
	ReviewCount   int                `bson:"reviewCount" json:"reviewCount"`
	Description   string             `bson:"description" json:"description"`
	Fabric        string             `bson:"fabric" json:"fabric"`
	IsNewItem     bool               `bson:"isNewItem" json:"isNewItem"`
	IsTrending    bool               `bson:"isTrending" json:"isTrending"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Category struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
