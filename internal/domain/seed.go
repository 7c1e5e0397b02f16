package domain

// SeedProducts returns the sample catalog loaded at startup. Prices are in
// rupees. Production deployments would disable seeding and import instead.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "wireless bluetooth headphones",
			Category:    "electronics",
			Subcategory: "audio",
			Price:       7500,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			Description: "premium wireless headphones with noise cancellation and 30-hour battery life",
		},
		{
			ID:          2,
			Name:        "smartphone 128gb",
			Category:    "electronics",
			Subcategory: "mobile",
			Price:       49999,
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			Description: "latest smartphone with advanced camera system and fast processor",
		},
		{
			ID:          3,
			Name:        "running shoes",
			Category:    "clothing",
			Subcategory: "footwear",
			Price:       2999,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			Description: "lightweight running shoes with responsive cushioning and breathable mesh",
		},
		{
			ID:          4,
			Name:        "coffee maker",
			Category:    "home",
			Subcategory: "kitchen",
			Price:       1350,
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop",
			Description: "programmable coffee maker with built-in grinder and thermal carafe",
		},
		{
			ID:          5,
			Name:        "gaming laptop",
			Category:    "electronics",
			Subcategory: "computers",
			Price:       108300,
			Image:       "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400&h=300&fit=crop",
			Description: "high-performance gaming laptop with rtx graphics and rgb keyboard",
		},
		{
			ID:          6,
			Name:        "yoga mat",
			Category:    "sports",
			Subcategory: "fitness",
			Price:       330,
			Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400&h=300&fit=crop",
			Description: "premium yoga mat with non-slip surface and extra cushioning",
		},
		{
			ID:          7,
			Name:        "winter jacket",
			Category:    "clothing",
			Subcategory: "outerwear",
			Price:       3700,
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=300&fit=crop",
			Description: "waterproof winter jacket with down insulation and multiple pockets",
		},
		{
			ID:          8,
			Name:        "desk lamp led",
			Category:    "home",
			Subcategory: "lighting",
			Price:       1160,
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Description: "adjustable led desk lamp with touch controls and usb charging port",
		},
		{
			ID:          9,
			Name:        "bluetooth speaker",
			Category:    "electronics",
			Subcategory: "audio",
			Price:       3669,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=300&fit=crop",
			Description: "portable bluetooth speaker with 360-degree sound and waterproof design",
		},
		{
			ID:          10,
			Name:        "tennis racket",
			Category:    "sports",
			Subcategory: "equipment",
			Price:       2500,
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQy1ba3rVBRukp1idD-H5QU_zMHtsL-SqROXg&s",
			Description: "professional tennis racket with graphite frame and comfortable grip",
		},
		{
			ID:          11,
			Name:        "backpack travel",
			Category:    "accessories",
			Subcategory: "bags",
			Price:       7500,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300&fit=crop",
			Description: "durable travel backpack with laptop compartment and multiple pockets",
		},
		{
			ID:          12,
			Name:        "kitchen knife set",
			Category:    "home",
			Subcategory: "kitchen",
			Price:       830,
			Image:       "https://images.unsplash.com/photo-1593618998160-e34014e67546?w=400&h=300&fit=crop",
			Description: "professional kitchen knife set with wooden block and sharpening steel",
		},
	}
}
