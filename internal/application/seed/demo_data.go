package seed

import "github.com/jhoicas/Catalogo-api/internal/application/dto"

type demoProduct struct {
	category  int // índice en demoCategories
	name      string
	desc      string
	price     string
	stock     int
	published bool
	props     []dto.PropertyInput
}

var demoCategories = []dto.CreateCategoryRequest{
	{Name: "Electronics", Description: "Latest electronic gadgets and devices"},
	{Name: "Clothing", Description: "Fashionable clothing for all ages"},
	{Name: "Books", Description: "Books for all interests and ages"},
	{Name: "Home & Garden", Description: "Everything for your home and garden"},
}

func props(kv ...string) []dto.PropertyInput {
	out := make([]dto.PropertyInput, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, dto.PropertyInput{Key: kv[i], Value: kv[i+1], Order: i/2 + 1})
	}
	return out
}

var demoProducts = []demoProduct{
	{0, "Smartphone X1", "Latest smartphone with advanced features", "699.99", 50, true,
		props("Color", "Black", "Storage", "128GB", "RAM", "8GB", "Screen Size", "6.1 inches")},
	{0, "Laptop Pro", "Professional laptop for work and gaming", "1299.99", 25, true,
		props("Processor", "Intel i7-12700H", "RAM", "16GB DDR4", "Storage", "512GB SSD", "Graphics", "RTX 3060")},
	{0, "Wireless Headphones", "High-quality wireless headphones", "199.99", 100, true,
		props("Color", "White", "Battery Life", "30 hours", "Connectivity", "Bluetooth 5.0")},
	{1, "Classic T-Shirt", "Comfortable cotton t-shirt", "24.99", 200, true,
		props("Color", "Navy Blue", "Size", "Medium", "Material", "100% Cotton", "Fit", "Regular")},
	{1, "Denim Jeans", "Stylish denim jeans for everyday wear", "59.99", 150, true,
		props("Color", "Dark Blue", "Size", "32x32", "Material", "Denim", "Style", "Straight Leg")},
	{1, "Winter Jacket", "Warm winter jacket for cold weather", "89.99", 75, true,
		props("Color", "Black", "Size", "Large", "Material", "Polyester", "Insulation", "Synthetic")},
	{2, "Python Programming Guide", "Complete guide to Python programming", "39.99", 80, true,
		props("Author", "John Smith", "Pages", "450", "Language", "English", "Format", "Paperback")},
	{2, "Mystery Novel", "Bestselling mystery thriller", "19.99", 120, true,
		props("Author", "Jane Doe", "Pages", "320", "Genre", "Mystery/Thriller", "Format", "Hardcover")},
	{2, "Cookbook Collection", "Delicious recipes from around the world", "29.99", 60, true,
		props("Author", "Chef Maria", "Pages", "280", "Cuisine", "International", "Format", "Hardcover")},
	{3, "Garden Tool Set", "Complete set of essential garden tools", "79.99", 40, true,
		props("Material", "Stainless Steel", "Pieces", "8", "Handle", "Wooden", "Warranty", "2 years")},
	{3, "Kitchen Mixer", "Professional kitchen mixer for baking", "149.99", 30, true,
		props("Color", "Red", "Power", "300W", "Speed Settings", "5", "Material", "Metal")},
	{3, "LED Desk Lamp", "Modern LED desk lamp with adjustable brightness", "49.99", 90, true,
		props("Color", "Silver", "Brightness", "Adjustable", "Power Source", "USB-C", "Material", "Aluminum")},

	// No publicados: no deben aparecer en la API.
	{0, "Coming Soon Product", "This product will be available soon", "99.99", 0, false, nil},
	{1, "Discontinued Item", "This item is no longer available", "29.99", 0, false, nil},
}
