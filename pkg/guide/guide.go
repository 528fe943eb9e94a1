// Package guide holds the parenting guide article library and its local
// search. Remote search and summaries go through the gateway.
package guide

import "strings"

// Article is one entry in the guide library.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"imageUrl,omitempty"`
	FullContent string `json:"fullContent"`
	SourceURL   string `json:"sourceUrl"`
}

// Library returns the built-in article set.
func Library() []Article {
	return []Article{
		{
			ID:       "1",
			Title:    "Safe Sleep and SIDS Prevention",
			Category: "Wellness",
			Source:   "American Academy of Pediatrics (AAP)",
			Summary:  "Essential guidelines for reducing the risk of SIDS and ensuring your infant sleeps safely.",
			ImageURL: "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=800&auto=format&fit=crop",
			FullContent: `Safe sleep is one of the most important things you can do for your baby. According to the AAP, infants should always sleep on their backs for every sleep time, including naps.

Key Guidelines:
1. Back to Sleep: Always place babies on their backs.
2. Firm Surface: Use a flat, non-inclined surface.
3. Bare is Best: Keep the crib free of soft objects, toys, pillows, and loose bedding.
4. Room Sharing, Not Bed Sharing: Keep baby close to your bed, but on a separate surface for at least 6 months.
5. Overheating: Do not let your baby get too hot; a simple sleep sack is better than blankets.

These recommendations help reduce the risk of SIDS and other sleep-related infant deaths significantly.`,
			SourceURL: "https://www.aap.org",
		},
		{
			ID:       "2",
			Title:    "Complementary Feeding Guidelines",
			Category: "Nutrition",
			Source:   "World Health Organization (WHO)",
			Summary:  "When and how to introduce solid foods alongside breastfeeding for optimal growth.",
			ImageURL: "https://images.unsplash.com/photo-1596464716127-f2a82984de30?q=80&w=800&auto=format&fit=crop",
			FullContent: `At around 6 months, a baby's need for energy and nutrients starts to exceed what is provided by breast milk. Complementary foods are necessary to fill the gap.

Principles for Feeding:
- Continue frequent, on-demand breastfeeding until 2 years of age or beyond.
- Practice responsive feeding: Feed slowly and encourage, but do not force.
- Hygiene is critical: Prepare and feed food with clean hands and utensils.
- Variety is key: Introduce a diverse range of foods (meat, poultry, fish, eggs, fruits, vegetables).
- Avoid sugary drinks and excessive salt.

The transition to solid foods is a critical window for establishing healthy eating habits for life.`,
			SourceURL: "https://www.who.int",
		},
		{
			ID:       "3",
			Title:    "Managing Screen Time for Preschoolers",
			Category: "Behavior",
			Source:   "Mayo Clinic",
			Summary:  "Balanced strategies for digital play without compromising developmental milestones.",
			ImageURL: "https://images.unsplash.com/photo-1510213338990-2414b47bc7f1?q=80&w=800&auto=format&fit=crop",
			FullContent: `Screen time is a major concern for modern parents. The Mayo Clinic suggests quality over quantity, but still recommends strict limits for children under 5.

Recommended Limits:
- Under 18-24 months: No screen time other than video chatting.
- 2 to 5 years: Limit to 1 hour per day of high-quality programming.

Alpha Parent Strategies:
- Watch together: Co-viewing helps children understand what they see.
- Screen-free zones: No tech in bedrooms or during mealtimes.
- Tech as a tool, not a sitter: Use apps that encourage creativity or movement rather than passive scrolling.

Consistently prioritizing high-touch play over high-tech play ensures healthy brain development and social skills.`,
			SourceURL: "https://www.mayoclinic.org",
		},
	}
}

// FilterLocal returns the articles whose title or summary contains the query,
// case-insensitively. An empty query matches everything.
func FilterLocal(articles []Article, query string) []Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return articles
	}
	var out []Article
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Summary), q) {
			out = append(out, a)
		}
	}
	return out
}
