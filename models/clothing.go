package models

import "time"

// ClothingItem represents a single garment in a user's wardrobe
type ClothingItem struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ImageBase64 string    `bson:"image_base64" json:"image_base64"`
	Category    string    `bson:"category" json:"category"` // tops, bottoms, shoes, accessories, outerwear, dresses
	Color       string    `bson:"color" json:"color"`
	Style       string    `bson:"style" json:"style"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
