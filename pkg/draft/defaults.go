package draft

// Single source of truth for the per-purpose seed content. Both the
// normalizer and the interpreter's elaboration rule read from here.

// seededBullets caps how many default bullets the normalizer seeds into an
// empty request. Deliberately below MaxBullets so an "add bullets" iteration
// still has room before truncation.
const seededBullets = 4

// FallbackCTAURL is used when a request carries no cta_url at all.
const FallbackCTAURL = "https://mailwright.dev/"

var defaultBulletsByPurpose = map[string][]string{
	PurposeWelcome: {
		"Get started quickly with our docs and templates",
		"Book a 15-min onboarding call if you'd like a walkthrough",
		"Explore examples to see best practices in action",
		"Join our community forum for tips and support",
	},
	PurposeNewsletter: {
		"Highlights from this week's releases",
		"Upcoming webinars and office hours",
		"Customer stories and how-tos you may like",
	},
	PurposePromo: {
		"Limited-time discount for new users",
		"Bundle offer for teams getting started",
		"Early access to upcoming features",
	},
	PurposeOutreach: {
		"Short intro on how we can help your team",
		"Two relevant use cases seen in your industry",
		"Offer to share a tailored demo or example",
	},
	PurposeNotice: {
		"Summary of the change and when it takes effect",
		"What you need to do (if anything)",
		"Links to the full details and support",
	},
	PurposeMaintenance: {
		"Maintenance window and expected impact",
		"What services are affected",
		"Where to track status in real time",
	},
}

var defaultCTAByPurpose = map[string]string{
	PurposeWelcome:     "Start your trial",
	PurposeNewsletter:  "Read the update",
	PurposePromo:       "Claim your offer",
	PurposeOutreach:    "Book a quick demo",
	PurposeNotice:      "Read the notice",
	PurposeMaintenance: "See status page",
}

// DefaultBullets returns a copy of the default bullet list for a purpose,
// falling back to the welcome list for unknown purposes.
func DefaultBullets(purpose string) []string {
	bullets, ok := defaultBulletsByPurpose[purpose]
	if !ok {
		bullets = defaultBulletsByPurpose[PurposeWelcome]
	}
	return append([]string(nil), bullets...)
}

// DefaultCTA returns the default call-to-action text for a purpose, or a
// generic fallback for unknown purposes.
func DefaultCTA(purpose string) string {
	if cta, ok := defaultCTAByPurpose[purpose]; ok {
		return cta
	}
	return "Get started"
}
