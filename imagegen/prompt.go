package imagegen

import (
	"fmt"
	"strings"

	"github.com/outfitgenius/wardrobe-api/models"
)

// styleDescriptions maps supported style tags to the wording used in prompts
var styleDescriptions = map[string]string{
	"casual": "relaxed, comfortable, everyday wear",
	"trendy": "fashionable, current, stylish",
	"formal": "professional, elegant, sophisticated",
	"date":   "romantic, attractive, stylish",
	"sport":  "athletic, active, sporty",
	"party":  "festive, fun, eye-catching",
	"travel": "comfortable, practical, versatile",
}

// StyleDescription returns the prompt wording for a style tag.
// Unknown tags fall back to "stylish".
func StyleDescription(style string) string {
	if desc, ok := styleDescriptions[style]; ok {
		return desc
	}
	return "stylish"
}

// BuildOutfitPrompt composes the prompt sent to the image model from the
// requested style and the resolved clothing items
func BuildOutfitPrompt(style string, items []models.ClothingItem) string {
	styleDesc := StyleDescription(style)

	itemsDesc := make([]string, 0, len(items))
	for _, item := range items {
		itemsDesc = append(itemsDesc, fmt.Sprintf("%s %s (%s)", item.Color, item.Description, item.Category))
	}

	return fmt.Sprintf(`Create a stylish %s outfit that is %s.
The outfit should feature these clothing items: %s.

Show a complete, coordinated outfit laid out on a clean white background.
The style should be %s and the items should work well together.
Make it look like a professional fashion flat lay photo.`,
		style, styleDesc, strings.Join(itemsDesc, ", "), styleDesc)
}
