package catalog

import "swastik-storefront/models"

// Per-category product lists for the embedded catalog. Prices are kept as
// display strings exactly as the shop writes them; parsing happens at the
// point of use.

var sofas = []models.Product{
	{
		ID:            "101",
		Name:          "Premium 3-Seater Fabric Sofa",
		Category:      "sofas",
		Price:         "₹24,500",
		OriginalPrice: "₹28,000",
		Image:         "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?q=80&w=2070",
		Description:   "Plush three-seater sofa with washable fabric covers.",
		Dimensions:    "78 x 33 x 34 inches",
		Material:      "Solid Wood Frame, Premium Fabric",
		Bestseller:    true,
	},
	{
		ID:          "105",
		Name:        "L-Shaped Sectional Sofa",
		Category:    "sofas",
		Price:       "₹42,000",
		Image:       "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?q=80&w=2070",
		Description: "Spacious left-facing sectional for large living rooms.",
		Dimensions:  "110 x 84 x 34 inches",
		Material:    "Engineered Wood, Suede Finish",
	},
	{
		ID:            "109",
		Name:          "Compact 2-Seater Sofa",
		Category:      "sofas",
		Price:         "₹15,800",
		OriginalPrice: "₹18,500",
		Image:         "https://images.unsplash.com/photo-1567016432779-094069958ea5?q=80&w=2080",
		Description:   "Apartment-sized two-seater with high-density foam cushions.",
		Dimensions:    "58 x 32 x 33 inches",
		Material:      "Pine Frame, Linen Blend",
		LatestArrival: true,
	},
}

var beds = []models.Product{
	{
		ID:            "103",
		Name:          "King Size Bed with Storage",
		Category:      "beds",
		Price:         "₹32,000",
		OriginalPrice: "₹45,000",
		Image:         "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?q=80&w=2070",
		Description:   "Spacious king-size bed with hydraulic storage.",
		Dimensions:    "78 x 72 inches",
		Material:      "Engineered Wood",
	},
	{
		ID:          "106",
		Name:        "Queen Size Platform Bed",
		Category:    "beds",
		Price:       "₹21,500",
		Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=2071",
		Description: "Low-profile platform bed with a padded headboard.",
		Dimensions:  "66 x 72 inches",
		Material:    "Sheesham Wood",
		Bestseller:  true,
	},
	{
		ID:          "110",
		Name:        "Single Bed with Trundle",
		Category:    "beds",
		Price:       "₹14,000",
		Image:       "https://images.unsplash.com/photo-1588046130717-0eb0c9a3ba15?q=80&w=2069",
		Description: "Space-saving single bed with a pull-out trundle.",
		Dimensions:  "75 x 36 inches",
		Material:    "Rubber Wood",
		Available:   unavailable(),
	},
}

var tables = []models.Product{
	{
		ID:            "102",
		Name:          "Wooden Dining Table (4 Seater)",
		Category:      "tables",
		Price:         "₹18,500",
		OriginalPrice: "₹22,000",
		Image:         "https://images.unsplash.com/photo-1617806118233-18e1de247200?q=80&w=1932",
		Description:   "Classic wooden dining table made from Sheesham wood.",
		Dimensions:    "48 x 36 x 30 inches",
		Material:      "Sheesham Wood",
		Bestseller:    true,
	},
	{
		ID:          "107",
		Name:        "Glass Top Coffee Table",
		Category:    "tables",
		Price:       "₹8,200",
		Image:       "https://images.unsplash.com/photo-1532372320572-cda25653a26d?q=80&w=2070",
		Description: "Tempered glass coffee table with a matte steel base.",
		Dimensions:  "40 x 22 x 17 inches",
		Material:    "Tempered Glass, Powder-Coated Steel",
	},
	{
		ID:            "111",
		Name:          "Foldable Study Table",
		Category:      "tables",
		Price:         "₹5,500",
		OriginalPrice: "₹6,800",
		Image:         "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?q=80&w=2036",
		Description:   "Wall-mounted foldable desk for compact rooms.",
		Dimensions:    "36 x 20 inches",
		Material:      "Engineered Wood",
		LatestArrival: true,
	},
}

var chairs = []models.Product{
	{
		ID:          "104",
		Name:        "Ergonomic Study Chair",
		Category:    "chairs",
		Price:       "₹7,500",
		Image:       "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?q=80&w=1974",
		Description: "Height-adjustable chair with lumbar support.",
		Dimensions:  "24 x 24 x 38 inches",
		Material:    "Mesh, Nylon Base",
	},
	{
		ID:            "108",
		Name:          "Rattan Accent Chair",
		Category:      "chairs",
		Price:         "₹9,800",
		OriginalPrice: "₹12,000",
		Image:         "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?q=80&w=1974",
		Description:   "Hand-woven rattan chair with a teak frame.",
		Dimensions:    "26 x 28 x 32 inches",
		Material:      "Natural Rattan, Teak",
	},
}

var storageUnits = []models.Product{
	{
		ID:          "112",
		Name:        "3-Door Wardrobe with Mirror",
		Category:    "storage",
		Price:       "₹28,500",
		Image:       "https://images.unsplash.com/photo-1595428774223-ef52624120d2?q=80&w=1974",
		Description: "Full-height wardrobe with a central mirror panel.",
		Dimensions:  "54 x 22 x 82 inches",
		Material:    "Engineered Wood, Laminate Finish",
	},
	{
		ID:            "113",
		Name:          "Open Bookshelf (5 Tier)",
		Category:      "storage",
		Price:         "₹6,900",
		OriginalPrice: "₹8,500",
		Image:         "https://images.unsplash.com/photo-1594620302200-9a762244a156?q=80&w=1939",
		Description:   "Ladder-style open shelving for books and decor.",
		Dimensions:    "28 x 14 x 70 inches",
		Material:      "Pine Wood",
		Bestseller:    true,
	},
}

var tvPanels = []models.Product{
	{
		ID:          "114",
		Name:        "Wall-Mounted TV Unit",
		Category:    "tv_panels",
		Price:       "₹12,500",
		Image:       "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?q=80&w=2070",
		Description: "Floating TV panel with concealed cable channels.",
		Dimensions:  "60 x 16 x 48 inches",
		Material:    "Engineered Wood, Matte Laminate",
	},
	{
		ID:            "115",
		Name:          "Entertainment Unit with Storage",
		Category:      "tv_panels",
		Price:         "₹19,800",
		OriginalPrice: "₹23,500",
		Image:         "https://images.unsplash.com/photo-1615873968403-89e068629265?q=80&w=1932",
		Description:   "Low TV console with two drawers and open shelves.",
		Dimensions:    "71 x 18 x 22 inches",
		Material:      "Sheesham Wood",
		LatestArrival: true,
	},
}
