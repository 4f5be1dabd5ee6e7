package catalog

import "github.com/shopspring/decimal"

// SeedProducts returns the demo catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:                 "1",
			Name:               "RG 1/144 RX-78-2 Gundam",
			Price:              money("19.99"),
			OriginalPrice:      moneyPtr("24.99"),
			DiscountPercentage: moneyPtr("20"),
			Description:        "Real Grade 1/144 scale model of the iconic RX-78-2 Gundam. Features incredible detail and articulation with an inner frame system.",
			Category:           CategoryGundam,
			Subcategory:        "Real Grade",
			Scale:              "1/144",
			Series:             "Mobile Suit Gundam",
			Manufacturer:       "Bandai",
			ReleaseDate:        "2010",
			Difficulty:         "Intermediate",
			Rating:             4.8,
			Reviews:            342,
			InStock:            true,
			HasModel3D:         true,
			Features:           []string{"Inner frame system", "Realistic proportions", "Multiple weapons", "Action base compatible"},
			Tags:               []string{"UC", "Federation", "Protagonist", "Classic"},
			PriceRange:         "budget",
		},
		{
			ID:                 "2",
			Name:               "MG 1/100 Strike Freedom Gundam",
			Price:              money("47.99"),
			OriginalPrice:      moneyPtr("59.99"),
			DiscountPercentage: moneyPtr("20"),
			Description:        "Master Grade Strike Freedom with full burst mode wings and dragoon system. Premium detail and engineering.",
			Category:           CategoryGundam,
			Subcategory:        "Master Grade",
			Scale:              "1/100",
			Series:             "Gundam SEED Destiny",
			Manufacturer:       "Bandai",
			ReleaseDate:        "2006",
			Difficulty:         "Advanced",
			Rating:             4.9,
			Reviews:            198,
			InStock:            true,
			HasModel3D:         true,
			Features:           []string{"Full burst mode", "Dragoon system", "LED compatible", "Action base included"},
			Tags:               []string{"CE", "ZAFT", "Protagonist", "Wings"},
			PriceRange:         "premium",
		},
		{
			ID:           "3",
			Name:         "PG 1/60 Unicorn Gundam",
			Price:        money("199.99"),
			Description:  "Perfect Grade Unicorn Gundam with LED unit and transformation mechanism. The ultimate Gunpla experience.",
			Category:     CategoryGundam,
			Subcategory:  "Perfect Grade",
			Scale:        "1/60",
			Series:       "Gundam Unicorn",
			Manufacturer: "Bandai",
			ReleaseDate:  "2014",
			Difficulty:   "Expert",
			Rating:       4.9,
			Reviews:      89,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"LED lighting system", "Transformation mechanism", "Psycho-frame detail", "Premium finish"},
			Tags:         []string{"UC", "Federation", "Newtype", "Transform"},
			PriceRange:   "luxury",
		},
		{
			ID:                 "4",
			Name:               "HG 1/144 Barbatos Lupus Rex",
			Price:              money("15.99"),
			OriginalPrice:      moneyPtr("19.99"),
			DiscountPercentage: moneyPtr("20"),
			Description:        "High Grade Barbatos Lupus Rex from Iron-Blooded Orphans. Features the iconic mace and tail blade.",
			Category:           CategoryGundam,
			Subcategory:        "High Grade",
			Scale:              "1/144",
			Series:             "Iron-Blooded Orphans",
			Manufacturer:       "Bandai",
			ReleaseDate:        "2017",
			Difficulty:         "Beginner",
			Rating:             4.7,
			Reviews:            189,
			InStock:            true,
			HasModel3D:         true,
			Features:           []string{"Iconic weapons", "Color separation", "Action poses", "Stickers included"},
			Tags:               []string{"PD", "Tekkadan", "Protagonist", "Melee"},
			PriceRange:         "budget",
		},
		{
			ID:                 "5",
			Name:               "RG 1/144 Nu Gundam",
			Price:              money("29.99"),
			OriginalPrice:      moneyPtr("34.99"),
			DiscountPercentage: moneyPtr("15"),
			Description:        "Real Grade Nu Gundam with fin funnels and detailed psycho-frame. Amuro's final mobile suit.",
			Category:           CategoryGundam,
			Subcategory:        "Real Grade",
			Scale:              "1/144",
			Series:             "Char's Counterattack",
			Manufacturer:       "Bandai",
			ReleaseDate:        "2018",
			Difficulty:         "Advanced",
			Rating:             4.8,
			Reviews:            267,
			InStock:            true,
			HasModel3D:         true,
			Features:           []string{"Fin funnels", "Psycho-frame detail", "Beam rifle", "Shield with missiles"},
			Tags:               []string{"UC", "Federation", "Newtype", "Funnels"},
			PriceRange:         "standard",
		},
		{
			ID:                 "6",
			Name:               "MG 1/100 Sazabi Ver.Ka",
			Price:              money("69.99"),
			OriginalPrice:      moneyPtr("79.99"),
			DiscountPercentage: moneyPtr("12"),
			Description:        "Master Grade Sazabi Ver.Ka with waterslide decals and premium detail. Char's final mobile suit.",
			Category:           CategoryGundam,
			Subcategory:        "Master Grade",
			Scale:              "1/100",
			Series:             "Char's Counterattack",
			Manufacturer:       "Bandai",
			ReleaseDate:        "2013",
			Difficulty:         "Expert",
			Rating:             4.9,
			Reviews:            156,
			InStock:            true,
			HasModel3D:         true,
			Features:           []string{"Ver.Ka design", "Waterslide decals", "Funnels", "Premium detail"},
			Tags:               []string{"UC", "Neo Zeon", "Antagonist", "Funnels"},
			PriceRange:         "premium",
		},
		{
			ID:           "7",
			Name:         "HG 1/144 Wing Gundam Zero EW",
			Price:        money("18.99"),
			Description:  "High Grade Wing Gundam Zero Endless Waltz version with angel wings and twin buster rifle.",
			Category:     CategoryGundam,
			Subcategory:  "High Grade",
			Scale:        "1/144",
			Series:       "Gundam Wing Endless Waltz",
			Manufacturer: "Bandai",
			ReleaseDate:  "2019",
			Difficulty:   "Intermediate",
			Rating:       4.6,
			Reviews:      234,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"Angel wings", "Twin buster rifle", "Feather effects", "Action base compatible"},
			Tags:         []string{"AC", "Gundam Pilot", "Protagonist", "Wings"},
			PriceRange:   "budget",
		},
		{
			ID:           "8",
			Name:         "RG 1/144 Tallgeese",
			Price:        money("24.99"),
			Description:  "Real Grade Tallgeese with detailed verniers and dober gun. The original mobile suit.",
			Category:     CategoryGundam,
			Subcategory:  "Real Grade",
			Scale:        "1/144",
			Series:       "Gundam Wing",
			Manufacturer: "Bandai",
			ReleaseDate:  "2020",
			Difficulty:   "Intermediate",
			Rating:       4.7,
			Reviews:      178,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"Detailed verniers", "Dober gun", "Shield", "Realistic proportions"},
			Tags:         []string{"AC", "OZ", "Classic", "Prototype"},
			PriceRange:   "standard",
		},
		{
			ID:                 "9",
			Name:               "Nendoroid Saber",
			Price:              money("49.49"),
			OriginalPrice:      moneyPtr("54.99"),
			DiscountPercentage: moneyPtr("10"),
			Description:        "Adorable Nendoroid figure of Saber from Fate/stay night. Includes multiple expressions and accessories.",
			Category:           CategoryFigure,
			Subcategory:        "Nendoroid",
			Series:             "Fate/stay night",
			Manufacturer:       "Good Smile Company",
			ReleaseDate:        "2008",
			Rating:             4.7,
			Reviews:            267,
			InStock:            true,
			HasModel3D:         false,
			Features:           []string{"Multiple face plates", "Interchangeable parts", "Excalibur included", "Stand included"},
			Tags:               []string{"Anime", "Cute", "Collectible", "Popular"},
			PriceRange:         "standard",
		},
		{
			ID:           "10",
			Name:         "Figma Asuka Langley",
			Price:        money("79.99"),
			Description:  "Highly articulated figma of Asuka Langley Soryu from Evangelion. Perfect for dynamic poses.",
			Category:     CategoryFigure,
			Subcategory:  "Figma",
			Series:       "Neon Genesis Evangelion",
			Manufacturer: "Max Factory",
			ReleaseDate:  "2009",
			Rating:       4.6,
			Reviews:      156,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Figma articulation", "Multiple expressions", "Plug suit version", "Action base compatible"},
			Tags:         []string{"Anime", "Evangelion", "Articulated", "Premium"},
			PriceRange:   "premium",
		},
		{
			ID:           "11",
			Name:         "Scale Figure Zero Two",
			Price:        money("129.99"),
			Description:  "Premium 1/7 scale figure of Zero Two from DARLING in the FRANXX. Detailed sculpting and painting.",
			Category:     CategoryFigure,
			Subcategory:  "Scale Figure",
			Series:       "DARLING in the FRANXX",
			Manufacturer: "Kotobukiya",
			ReleaseDate:  "2019",
			Rating:       4.8,
			Reviews:      89,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"1/7 scale", "Premium painting", "Detailed base", "Limited edition"},
			Tags:         []string{"Anime", "Premium", "Limited", "Statue"},
			PriceRange:   "luxury",
		},
		{
			ID:           "12",
			Name:         "Action Base 1",
			Price:        money("12.99"),
			Description:  "Universal action base for displaying your Gunpla in dynamic flying poses. Compatible with most scales.",
			Category:     CategoryAccessories,
			Subcategory:  "Display",
			Manufacturer: "Bandai",
			Rating:       4.5,
			Reviews:      423,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Universal compatibility", "Adjustable height", "Multiple connection points", "Clear parts"},
			Tags:         []string{"Display", "Universal", "Essential", "Clear"},
			PriceRange:   "budget",
		},
		{
			ID:           "13",
			Name:         "LED Unit for PG Unicorn",
			Price:        money("39.99"),
			Description:  "Official LED unit for Perfect Grade Unicorn Gundam. Illuminates psycho-frame with realistic effects.",
			Category:     CategoryAccessories,
			Subcategory:  "LED",
			Manufacturer: "Bandai",
			Rating:       4.9,
			Reviews:      67,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Official Bandai", "Psycho-frame lighting", "Easy installation", "Battery powered"},
			Tags:         []string{"LED", "Unicorn", "Official", "Premium"},
			PriceRange:   "standard",
		},
		{
			ID:           "14",
			Name:         "Panel Line Accent Color Set",
			Price:        money("18.99"),
			Description:  "Professional panel lining markers for enhancing your Gunpla details. Set includes black, gray, and brown.",
			Category:     CategoryTools,
			Subcategory:  "Detailing",
			Manufacturer: "Tamiya",
			Rating:       4.8,
			Reviews:      234,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Fine tip markers", "Quick drying", "Easy cleanup", "Professional results"},
			Tags:         []string{"Tools", "Detailing", "Professional", "Essential"},
			PriceRange:   "budget",
		},
		{
			ID:           "15",
			Name:         "Gundam Marker Set",
			Price:        money("24.99"),
			Description:  "Complete set of Gundam markers for touch-ups and detailing. Includes metallic and basic colors.",
			Category:     CategoryTools,
			Subcategory:  "Painting",
			Manufacturer: "Mr. Color",
			Rating:       4.6,
			Reviews:      189,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Multiple colors", "Metallic finish", "Easy application", "Quick drying"},
			Tags:         []string{"Tools", "Painting", "Metallic", "Complete"},
			PriceRange:   "standard",
		},
		{
			ID:           "16",
			Name:         "Side Cutters Pro",
			Price:        money("34.99"),
			Description:  "Professional grade side cutters for clean part removal. Sharp blades with comfortable grip.",
			Category:     CategoryTools,
			Subcategory:  "Cutting",
			Manufacturer: "Tamiya",
			Rating:       4.9,
			Reviews:      156,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Sharp blades", "Comfortable grip", "Clean cuts", "Professional grade"},
			Tags:         []string{"Tools", "Cutting", "Professional", "Sharp"},
			PriceRange:   "standard",
		},
		{
			ID:           "17",
			Name:         "MG 1/100 Barbatos",
			Price:        money("42.99"),
			Description:  "Master Grade Barbatos with full inner frame and detailed weapons. From Iron-Blooded Orphans.",
			Category:     CategoryGundam,
			Subcategory:  "Master Grade",
			Scale:        "1/100",
			Series:       "Iron-Blooded Orphans",
			Manufacturer: "Bandai",
			ReleaseDate:  "2016",
			Difficulty:   "Advanced",
			Rating:       4.7,
			Reviews:      145,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"Inner frame", "Multiple weapons", "Detailed armor", "Action poses"},
			Tags:         []string{"PD", "Tekkadan", "Protagonist", "Melee"},
			PriceRange:   "premium",
		},
		{
			ID:           "18",
			Name:         "RG 1/144 Sazabi",
			Price:        money("39.99"),
			Description:  "Real Grade Sazabi with detailed psycho-frame and funnel system. Char's iconic mobile suit.",
			Category:     CategoryGundam,
			Subcategory:  "Real Grade",
			Scale:        "1/144",
			Series:       "Char's Counterattack",
			Manufacturer: "Bandai",
			ReleaseDate:  "2019",
			Difficulty:   "Advanced",
			Rating:       4.8,
			Reviews:      203,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"Psycho-frame detail", "Funnel system", "Beam effects", "Premium detail"},
			Tags:         []string{"UC", "Neo Zeon", "Antagonist", "Funnels"},
			PriceRange:   "standard",
		},
		{
			ID:           "19",
			Name:         "HG 1/144 Exia",
			Price:        money("16.99"),
			Description:  "High Grade Exia from Gundam 00. Features GN Sword and sleek design.",
			Category:     CategoryGundam,
			Subcategory:  "High Grade",
			Scale:        "1/144",
			Series:       "Gundam 00",
			Manufacturer: "Bandai",
			ReleaseDate:  "2008",
			Difficulty:   "Beginner",
			Rating:       4.5,
			Reviews:      312,
			InStock:      true,
			HasModel3D:   true,
			Features:     []string{"GN Sword", "Beam sabers", "Sleek design", "Color separation"},
			Tags:         []string{"AD", "Celestial Being", "Protagonist", "Melee"},
			PriceRange:   "budget",
		},
		{
			ID:           "20",
			Name:         "Nendoroid Rem",
			Price:        money("52.99"),
			Description:  "Cute Nendoroid figure of Rem from Re:Zero. Includes multiple expressions and accessories.",
			Category:     CategoryFigure,
			Subcategory:  "Nendoroid",
			Series:       "Re:Zero",
			Manufacturer: "Good Smile Company",
			ReleaseDate:  "2017",
			Rating:       4.8,
			Reviews:      189,
			InStock:      true,
			HasModel3D:   false,
			Features:     []string{"Multiple expressions", "Interchangeable parts", "Morning star included", "Stand included"},
			Tags:         []string{"Anime", "Cute", "Popular", "Maid"},
			PriceRange:   "standard",
		},
	}
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}
