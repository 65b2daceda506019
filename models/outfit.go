package models

import "time"

// GeneratedOutfit represents an AI-generated outfit composite built from a
// user's clothing items. ClothingItems keeps the identifiers exactly as they
// were requested; items deleted later leave dangling identifiers behind.
type GeneratedOutfit struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Style             string    `bson:"style" json:"style"` // casual, trendy, formal, date, sport, party, travel
	ClothingItems     []string  `bson:"clothing_items" json:"clothing_items"`
	OutfitImageBase64 string    `bson:"outfit_image_base64" json:"outfit_image_base64"`
	Description       string    `bson:"description" json:"description"`
	ImageKey          string    `bson:"image_key,omitempty" json:"image_key,omitempty"` // S3 object key when archived
	ImageURL          string    `bson:"-" json:"image_url,omitempty"`                   // presigned, filled on reads
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
