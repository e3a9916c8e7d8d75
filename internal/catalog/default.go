package catalog

import "storefront/internal/types"

// Outbound destinations used by the built-in catalog
const (
	PaymentURL = "https://gumroad.com"
	ContactURL = "https://wa.me/447412823824"
)

const freeTools = "Includes Email Verifier + LinkedIn Scraper FREE"

func emailPackages() []types.Product {
	return []types.Product{
		{
			ID:          "starter",
			Icon:        "mail",
			Title:       "Starter",
			Description: "Perfect for testing campaigns. 10,000 niche-specific verified emails.",
			Prices:      []types.Price{{Amount: "$9"}},
			Features: []string{
				"10,000 verified emails",
				"Niche & industry specific",
				"CSV / Excel export",
				"FREE Email Verifier",
				"FREE LinkedIn Scraper",
			},
			FreeAddon: freeTools,
			Link:      PaymentURL,
		},
		{
			ID:          "growth",
			Icon:        "mail",
			Title:       "Growth",
			Description: "Scale your outreach with 100,000 verified, niche-targeted email contacts.",
			Prices:      []types.Price{{Amount: "$49"}},
			Features: []string{
				"100,000 verified emails",
				"Niche & industry specific",
				"Bulk CSV / Excel export",
				"FREE Email Verifier",
				"FREE LinkedIn Scraper",
			},
			Featured:  true,
			Badge:     "Most Popular",
			FreeAddon: freeTools,
			Link:      PaymentURL,
		},
		{
			ID:          "enterprise",
			Icon:        "mail",
			Title:       "Enterprise",
			Description: "Massive 1 million email database for large-scale campaigns.",
			Prices:      []types.Price{{Amount: "$99"}},
			Features: []string{
				"1,000,000 verified emails",
				"Niche & industry specific",
				"Bulk CSV / Excel export",
				"FREE Email Verifier",
				"FREE LinkedIn Scraper",
			},
			FreeAddon: freeTools,
			Link:      PaymentURL,
		},
	}
}

func tools() []types.Product {
	return []types.Product{
		{
			ID:          "email-verifier",
			Icon:        "shield-check",
			Title:       "Email Verifier",
			Description: "Real-time validation, catch-all detection, and bulk verification to crush bounce rates.",
			Prices:      []types.Price{{Amount: "$9"}},
			Link:        PaymentURL,
		},
		{
			ID:          "linkedin-scraper",
			Icon:        "linkedin",
			Title:       "LinkedIn Scraper",
			Description: "Extract names, emails, and titles from LinkedIn with powerful search filters.",
			Prices:      []types.Price{{Amount: "$9"}},
			Link:        PaymentURL,
		},
	}
}

func digitalProducts() []types.Product {
	return []types.Product{
		{
			ID:          "clients-guide",
			Icon:        "book-open",
			Title:       "7 Systems to Get 100+ Clients",
			Description: "Comprehensive PDF guide with proven strategies to land over 100 clients fast.",
			Prices:      []types.Price{{Amount: "$4.99"}},
			Link:        PaymentURL,
		},
		{
			ID:          "shorts-bundle",
			Icon:        "video",
			Title:       "10,000+ Shorts Bundle",
			Description: "Ready-to-post short-form videos across multiple categories — instant download.",
			Prices:      []types.Price{{Amount: "$3"}},
			Link:        PaymentURL,
		},
		{
			ID:          "ai-prompts",
			Icon:        "brain-circuit",
			Title:       "100K AI Prompts",
			Description: "Massive prompt library for business, marketing, content, coding, and more.",
			Prices:      []types.Price{{Amount: "$1.99"}},
			Link:        PaymentURL,
		},
	}
}

func contact() *types.Contact {
	return &types.Contact{
		Prompt:   "Need help or have questions?",
		Label:    "Chat on WhatsApp: +44 7412 823824",
		URL:      ContactURL,
		Footnote: "Instant reply • Secure payment via Gumroad • 24/7 support",
	}
}

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *types.Catalog {
	index := types.Page{
		Slug:        "index",
		Title:       "Scale Your Business Instantly",
		Description: "Verified niche-specific emails, LinkedIn data, AI prompts, and digital products.",
		Hero: types.Hero{
			Eyebrow:   "Premium Digital Products",
			Title:     "Scale Your Business",
			Highlight: "Instantly",
			Description: "Verified niche-specific emails, LinkedIn data, AI prompts, and digital products — " +
				"no login needed. Just pick what you need and buy directly on Gumroad.",
			Actions: []types.Action{
				{Label: "Email Packages", Href: "#emails", Icon: "mail", Primary: true},
				{Label: "Digital Products", Href: "#products", Icon: "sparkles"},
			},
		},
		Sections: []types.Section{
			{
				ID:       "emails",
				Title:    "Niche-Specific Email Lists",
				Subtitle: "Verified, categorized, and ready for outreach. Every email package comes with a",
				Emphasis: "FREE Email Verifier + LinkedIn Scraper",
				Layout:   types.LayoutPricing,
				Columns:  3,
				Products: emailPackages(),
			},
			{
				ID:       "tools",
				Title:    "Standalone Tools",
				Subtitle: "Already have emails? Grab the tools separately for just",
				Emphasis: "$9 each",
				Layout:   types.LayoutCompact,
				Columns:  2,
				Products: tools(),
			},
			{
				ID:       "products",
				Title:    "Digital Products",
				Subtitle: "Resources to grow your business and content — instant delivery.",
				Layout:   types.LayoutCompact,
				Columns:  3,
				Products: digitalProducts(),
			},
		},
		Contact: contact(),
	}

	store := types.Page{
		Slug:        "store",
		Title:       "All Products",
		Description: "Every email package, tool, and digital product in one place.",
		Hero: types.Hero{
			Eyebrow:     "Secure payment via Gumroad",
			Title:       "All",
			Highlight:   "Products",
			Description: "Pick what you need and buy directly on Gumroad. Instant delivery.",
		},
		Sections: []types.Section{
			{
				ID:       "emails",
				Title:    "Email Packages",
				Layout:   types.LayoutCompact,
				Columns:  3,
				Products: emailPackages(),
			},
			{
				ID:       "tools",
				Title:    "Tools",
				Layout:   types.LayoutCompact,
				Columns:  2,
				Products: tools(),
			},
			{
				ID:       "products",
				Title:    "Digital Products",
				Layout:   types.LayoutCompact,
				Columns:  3,
				Products: digitalProducts(),
			},
		},
		Contact: contact(),
	}

	return &types.Catalog{
		PaymentURL: PaymentURL,
		ContactURL: ContactURL,
		Pages:      []types.Page{index, store},
	}
}
