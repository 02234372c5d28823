// Package render is the presentation surface: it turns evaluation
// results into styled cards, owns all static marketing content, and
// builds the lead-capture mailto link. It never computes ROI figures.
package render

// PlanTier describes one service tier for display.
type PlanTier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlanTiers is the static tier catalog, ordered from entry to top.
func PlanTiers() []PlanTier {
	return []PlanTier{
		{
			ID:          "essential",
			Name:        "Essential",
			Description: "Core controls for smaller footprints with stronger existing maturity; grow as needed.",
		},
		{
			ID:          "standard",
			Name:        "Standard",
			Description: "Targeted risk reduction for balanced footprints with a manageable ops load.",
		},
		{
			ID:          "advanced",
			Name:        "Advanced",
			Description: "Managed controls and governance for larger scale, low maturity or limited IT coverage; fits HIPAA contexts.",
		},
	}
}

// Testimonial is a static "similar organizations" entry.
type Testimonial struct {
	Org   string `json:"org"`
	Size  string `json:"size"`
	Quote string `json:"quote"`
}

// Testimonials returns the static similar-organizations entries shown
// under the results.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Org:   "Regional family clinic",
			Size:  "40 staff, 1 IT FTE",
			Quote: "The quick check matched what our audit later found: too many admin hours going to patching and phishing cleanup.",
		},
		{
			Org:   "Dental group practice",
			Size:  "85 staff, no dedicated IT",
			Quote: "Seeing the monthly cap next to our current workload made the budget conversation with the partners short.",
		},
		{
			Org:   "Community health non-profit",
			Size:  "120 staff, 2 IT FTE",
			Quote: "We used the avoided-loss estimate to justify moving off our minimum-maturity setup within a quarter.",
		},
	}
}

// Page copy shown around the cards.
const (
	PurposeNotice = "This tool estimates the potential value of adoption - in saved workload, reduced risks, and an indicative Investment Cap (max monthly spend with ROI >= 0)."

	ImportantNotice = "The Investment Cap is not our price. It is a value-based budget guide. Actual plans and pricing will be tailored in a conversation with our team."

	LimitationsNotice = "This is a simplified heuristic model. Real outcomes depend on control scope, user behavior, threat landscape, and integration quality. In HIPAA contexts, consider breach notification, downtime, legal, and reputational impacts which may raise loss estimates."
)
