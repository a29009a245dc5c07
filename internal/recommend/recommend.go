// Package recommend maps a quiz outcome to its description and product
// recommendations.
package recommend

import "github.com/abhisek/prakriti/internal/quiz"

// Product is a single recommendation card.
type Product struct {
	Name        string
	Description string
	Image       string
}

// Profile is everything shown for one outcome.
type Profile struct {
	Dominant    quiz.Dominant
	Description string
	Products    [3]Product
}

var (
	kumkumadiOil = Product{"Kumkumadi Face Oil", "Brightening elixir with saffron & 25 herbs", "images/product-1.jpg"}
	triphala     = Product{"Triphala Powder", "Detoxifying herb for inner radiance", "images/product-9.jpg"}
)

var profiles = map[quiz.Dominant]Profile{
	quiz.DominantOf(quiz.CategoryVata): {
		Dominant:    quiz.DominantOf(quiz.CategoryVata),
		Description: "Vata skin tends to be dry, thin, and delicate with fine pores. Your skin benefits from rich, nourishing oils and creams that provide deep hydration and protection.",
		Products: [3]Product{
			{"Shatavari Night Cream", "Nourishing cream for dry skin", "images/product-4.jpg"},
			{"Amla & Argan Hair Mask", "Deep conditioning for dry hair", "images/product-8.jpg"},
			kumkumadiOil,
		},
	},
	quiz.DominantOf(quiz.CategoryPitta): {
		Dominant:    quiz.DominantOf(quiz.CategoryPitta),
		Description: "Pitta skin tends to be sensitive, warm, and prone to redness with medium pores. Your skin benefits from cooling, soothing ingredients that calm irritation and reduce inflammation.",
		Products: [3]Product{
			{"Rose & Neem Face Wash", "Gentle cleanser for balanced skin", "images/product-2.jpg"},
			{"Sandalwood & Turmeric Mask", "Cooling mask for sensitive skin", "images/product-5.jpg"},
			kumkumadiOil,
		},
	},
	quiz.DominantOf(quiz.CategoryKapha): {
		Dominant:    quiz.DominantOf(quiz.CategoryKapha),
		Description: "Kapha skin tends to be oily, thick, and smooth with larger pores. Your skin benefits from lightweight, stimulating formulations that balance oil production and improve circulation.",
		Products: [3]Product{
			{"Manjistha Body Oil", "Detoxifying massage oil for clear skin", "images/product-3.jpg"},
			{"Ginger & Cedar Body Scrub", "Warming scrub for circulation", "images/product-6.jpg"},
			triphala,
		},
	},
	quiz.Balanced: {
		Dominant:    quiz.Balanced,
		Description: "You have a balanced constitution with no strongly dominant dosha. Your skin can benefit from products that maintain this natural balance.",
		Products: [3]Product{
			kumkumadiOil,
			{"Bhringraj Hair Oil", "Strengthening oil for hair growth", "images/product-7.jpg"},
			triphala,
		},
	},
}

// Lookup returns the profile for d. Any unknown outcome gets the Balanced
// profile.
func Lookup(d quiz.Dominant) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[quiz.Balanced]
}

// For returns the three recommended products for d in display order.
func For(d quiz.Dominant) []Product {
	p := Lookup(d)
	out := make([]Product, len(p.Products))
	copy(out, p.Products[:])
	return out
}

// Describe returns the description paragraph for d.
func Describe(d quiz.Dominant) string {
	return Lookup(d).Description
}

// Outcomes returns every outcome with a profile, categories first.
func Outcomes() []quiz.Dominant {
	out := make([]quiz.Dominant, 0, len(profiles))
	for _, c := range quiz.AllCategories() {
		out = append(out, quiz.DominantOf(c))
	}
	return append(out, quiz.Balanced)
}
