package shop

import "emoji-shop/models"

// SeedProducts is the fallback catalog written by the client when the store
// turns up empty on first load.
var SeedProducts = []models.Product{
	{
		ID:          "wireless-headphones",
		Name:        "Wireless Headphones",
		Description: "Premium sound quality with active noise cancellation and 30-hour battery life.",
		Price:       4999,
		Emoji:       "🎧",
		Category:    "Electronics",
		Inventory:   12,
	},
	{
		ID:          "javascript-cookbook",
		Name:        "JavaScript Cookbook",
		Description: "Over 300 recipes for solving real-world JavaScript problems. Updated for ES2024.",
		Price:       2499,
		Emoji:       "📚",
		Category:    "Books",
		Inventory:   35,
	},
	{
		ID:          "pour-over-coffee-set",
		Name:        "Pour-Over Coffee Set",
		Description: "Handcrafted ceramic dripper with a glass carafe. Brew the perfect cup every morning.",
		Price:       3499,
		Emoji:       "☕",
		Category:    "Kitchen",
		Inventory:   8,
	},
	{
		ID:          "soy-candle-collection",
		Name:        "Soy Candle Collection",
		Description: "Set of 3 hand-poured soy candles in calming scents: lavender, cedar, and vanilla.",
		Price:       1999,
		Emoji:       "🕯️",
		Category:    "Home",
		Inventory:   20,
	},
	{
		ID:          "logo-cap",
		Name:        "Logo Cap",
		Description: "Structured six-panel cap with an embroidered logo. One size fits most.",
		Price:       1499,
		Emoji:       "🧢",
		Category:    "Apparel",
		Inventory:   50,
	},
	{
		ID:          "retro-controller",
		Name:        "Retro Controller",
		Description: "USB-C gamepad with tactile d-pad and bumpers. Compatible with PC, Mac, and mobile.",
		Price:       3999,
		Emoji:       "🎮",
		Category:    "Gaming",
		Inventory:   15,
	},
}
