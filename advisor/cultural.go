package advisor

import "strings"

type CulturalGuidelines struct {
	Destination      string   `json:"destination"`
	GeneralDressCode []string `json:"general_dress_code"`
	ReligiousSites   []string `json:"religious_site_requirements"`
	BusinessAttire   []string `json:"business_attire"`
	ItemsToPack      []string `json:"cultural_items_to_pack"`
	EtiquetteTips    []string `json:"etiquette_tips"`
	LocalCustoms     []string `json:"local_customs"`
	ColorPreferences []string `json:"color_preferences"`
	Fabrics          []string `json:"fabric_recommendations"`
}

var indiaKeywords = []string{
	"india", "delhi", "mumbai", "bangalore", "chennai", "kolkata",
	"hyderabad", "pune", "jaipur", "goa", "kerala", "rajasthan",
}

// CulturalAdvice returns dress-code and etiquette guidance for a destination,
// adjusted for the planned activities. Destinations outside the table get an
// empty (but non-nil) set of lists.
func CulturalAdvice(destination string, activities []string) CulturalGuidelines {
	dest := strings.ToLower(destination)
	acts := map[string]bool{}
	for _, a := range activities {
		acts[strings.ToLower(strings.TrimSpace(a))] = true
	}

	g := CulturalGuidelines{
		Destination:      destination,
		GeneralDressCode: []string{},
		ReligiousSites:   []string{},
		BusinessAttire:   []string{},
		ItemsToPack:      []string{},
		EtiquetteTips:    []string{},
		LocalCustoms:     []string{},
		ColorPreferences: []string{},
		Fabrics:          []string{},
	}

	if containsAny(dest, indiaKeywords...) {
		g.GeneralDressCode = []string{
			"Dress modestly, especially in rural areas and traditional neighborhoods",
			"Cover shoulders and knees in most public places",
			"Avoid tight-fitting or revealing clothing",
			"Light, breathable fabrics are preferred due to climate",
		}
		g.ReligiousSites = []string{
			"Temples: Covered shoulders, long pants/skirts, remove shoes",
			"Gurudwaras: Head covering mandatory, remove shoes",
			"Mosques: Modest dress, head covering for women, remove shoes",
			"Churches: Respectful attire, covered shoulders recommended",
		}
		g.ItemsToPack = []string{
			"Scarf or dupatta for head covering",
			"Long-sleeve shirts or kurtas",
			"Long pants or modest skirts",
			"Easy-to-remove shoes (slip-ons or sandals)",
			"Socks for walking on temple floors",
		}
		g.EtiquetteTips = []string{
			"Use right hand for eating and greeting",
			"Remove shoes before entering homes and temples",
			"Greet with 'Namaste' (palms together)",
			"Ask permission before photographing people",
			"Avoid pointing feet towards people or religious objects",
		}
		g.LocalCustoms = []string{
			"Bargaining is expected in markets",
			"Tipping is customary in restaurants (10-15%)",
			"Eating with hands is acceptable and common",
			"Public displays of affection should be avoided",
		}

		if containsAny(dest, "rajasthan", "jaipur", "udaipur") {
			g.ColorPreferences = []string{
				"Bright colors are welcomed and appreciated",
				"Traditional Rajasthani colors (red, orange, pink) are respected",
				"Avoid all-black outfits in celebratory contexts",
			}
		}
		if containsAny(dest, "kerala", "goa") {
			g.Fabrics = []string{
				"Cotton and linen for humid coastal climate",
				"Quick-dry fabrics for monsoon season",
				"Light colors to reflect heat",
			}
		}
		if containsAny(dest, "himachal", "kashmir", "ladakh") {
			g.ItemsToPack = append(g.ItemsToPack,
				"Warm layers for mountain temples",
				"Respectful clothing for Buddhist monasteries",
				"Sturdy shoes for mountain terrain",
			)
		}
	}

	if acts["business"] {
		g.BusinessAttire = []string{
			"Formal shirts and trousers/formal pants",
			"Blazer or suit jacket recommended",
			"Leather shoes and belt",
			"Conservative colors (navy, black, grey, white)",
			"Minimal jewelry and accessories",
		}
	}
	if acts["religious"] || acts["temple"] || acts["spiritual"] {
		g.ReligiousSites = append(g.ReligiousSites,
			"Pack extra modest clothing for multiple temple visits",
			"Bring small denominations for donations",
			"Consider white or light-colored clothing for certain temples",
		)
	}
	if acts["festival"] || acts["celebration"] {
		g.ItemsToPack = append(g.ItemsToPack,
			"Festive clothing (bright colors welcome)",
			"Traditional attire if participating in celebrations",
			"Comfortable shoes for standing/walking during events",
		)
	}

	return g
}

// LocalCustomsNote is the one-line dress-code hint used by the packing agent.
func LocalCustomsNote(destination string) string {
	notes := map[string]string{
		"rajasthan": "It is respectful to dress modestly, especially when visiting religious sites. Covering shoulders and knees is recommended. Carry a scarf.",
		"goa":       "Beachwear is common in tourist areas, but it's a good idea to cover up when visiting towns or villages. Light cotton clothing is ideal.",
		"kerala":    "Light, breathable clothing is best for the humid climate. If visiting a temple, men may be required to wear a mundu and women a saree or long skirt.",
	}
	if note, ok := notes[strings.ToLower(destination)]; ok {
		return note
	}
	return "No specific dress code information, but it's always wise to dress respectfully."
}
