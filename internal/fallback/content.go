// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fallback holds the statically bundled sample content served when
// the CMS/ERP is unreachable or unconfigured. The site must never render an
// empty or broken state, so every remote-backed collection has a bundled
// counterpart here.
package fallback

import "github.com/nexiotech/sitegate/internal/model"

// Products returns the bundled product catalog.
func Products() []model.Product {
	return []model.Product{
		{
			ID:      1,
			Title:   "Entry-E",
			Slug:    "entry-e",
			Summary: "A ready-to-launch digital storefront for small businesses entering e-commerce.",
			Description: "<p>Entry-E bundles a storefront, payment integration and order " +
				"management into a single package that goes live in days, not months.</p>",
			Features: []string{
				"Hosted storefront with your branding",
				"Payment gateway integration",
				"Order and inventory management",
				"Launch support included",
			},
			CTALabel: "Request a demo",
			CTAURL:   "/contact",
		},
		{
			ID:      2,
			Title:   "Business in a Box",
			Slug:    "business-in-a-box",
			Summary: "An integrated suite covering accounting, CRM and HR for growing companies.",
			Description: "<p>Business in a Box replaces a patchwork of spreadsheets with one " +
				"integrated system: finance, customers and people in a single place.</p>",
			Features: []string{
				"Accounting and invoicing",
				"Customer relationship management",
				"HR and payroll basics",
				"Migration from existing tools",
			},
			CTALabel: "Talk to sales",
			CTAURL:   "/contact",
		},
	}
}

// Services returns the bundled service offerings.
func Services() []model.Service {
	return []model.Service{
		{
			ID:          1,
			Title:       "Custom Software Development",
			Slug:        "custom-software-development",
			Summary:     "Web and mobile applications built around your processes.",
			Description: "<p>From discovery to launch, we design and build software tailored to the way your team works.</p>",
			Icon:        "code",
			Benefits:    []string{"Dedicated delivery team", "Transparent milestones", "Post-launch support"},
		},
		{
			ID:          2,
			Title:       "Cloud & DevOps",
			Slug:        "cloud-devops",
			Summary:     "Migration, infrastructure automation and reliability engineering.",
			Description: "<p>We move workloads to the cloud and keep them fast, observable and affordable.</p>",
			Icon:        "cloud",
			Benefits:    []string{"Infrastructure as code", "CI/CD pipelines", "Cost optimization"},
		},
		{
			ID:          3,
			Title:       "ERP Implementation",
			Slug:        "erp-implementation",
			Summary:     "ERPNext rollout, customization and training.",
			Description: "<p>We implement and adapt ERPNext so your operations run on one system of record.</p>",
			Icon:        "layers",
			Benefits:    []string{"Process mapping", "Data migration", "On-site training"},
		},
		{
			ID:          4,
			Title:       "Technology Consulting",
			Slug:        "technology-consulting",
			Summary:     "Architecture reviews, audits and roadmaps.",
			Description: "<p>Independent advice on build-vs-buy decisions, architecture and technology strategy.</p>",
			Icon:        "compass",
			Benefits:    []string{"Vendor-neutral advice", "Actionable roadmaps", "Security reviews"},
		},
	}
}

// Testimonials returns the bundled customer quotes.
func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:       1,
			Quote:    "They delivered our ERP rollout on time and the team actually enjoys using it.",
			Author:   "Amina Khalil",
			Role:     "Operations Director",
			Company:  "Meridian Logistics",
			Rating:   5,
			Featured: true,
		},
		{
			ID:      2,
			Quote:   "Our storefront went live in under three weeks with Entry-E.",
			Author:  "Tomás Rivera",
			Role:    "Founder",
			Company: "Rivera Goods",
			Rating:  5,
		},
		{
			ID:      3,
			Quote:   "Clear communication, honest estimates, solid engineering.",
			Author:  "Sofia Lindqvist",
			Role:    "CTO",
			Company: "Nordica Health",
			Rating:  4,
		},
	}
}

// TeamMembers returns the bundled team roster.
func TeamMembers() []model.TeamMember {
	return []model.TeamMember{
		{ID: 1, Name: "Daniel Mensah", Slug: "daniel-mensah", Role: "Managing Partner", Bio: "Twenty years leading delivery for enterprise clients."},
		{ID: 2, Name: "Priya Raman", Slug: "priya-raman", Role: "Head of Engineering", Bio: "Builds teams that ship reliable software."},
		{ID: 3, Name: "Marek Nowak", Slug: "marek-nowak", Role: "ERP Practice Lead", Bio: "ERPNext specialist across manufacturing and retail."},
	}
}

// CaseStudies returns the bundled project write-ups.
func CaseStudies() []model.CaseStudy {
	return []model.CaseStudy{
		{
			ID:       1,
			Title:    "Warehouse Digitization for Meridian Logistics",
			Slug:     "meridian-logistics-warehouse",
			Client:   "Meridian Logistics",
			Industry: "Logistics",
			Summary:  "Replacing paper picking lists with a scanner-driven workflow.",
			Body:     "<p>A phased ERPNext rollout across four warehouses cut picking errors by 40%.</p>",
			Results:  []string{"40% fewer picking errors", "Same-day inventory visibility"},
			Tags:     []string{"erpnext", "logistics"},
		},
		{
			ID:       2,
			Title:    "Storefront Launch for Rivera Goods",
			Slug:     "rivera-goods-storefront",
			Client:   "Rivera Goods",
			Industry: "Retail",
			Summary:  "From zero online presence to a transacting store in three weeks.",
			Body:     "<p>Entry-E gave a family retailer a storefront, payments and order tracking without hiring IT staff.</p>",
			Results:  []string{"Live in 3 weeks", "30% of revenue online within a year"},
			Tags:     []string{"entry-e", "retail"},
		},
	}
}

// Industries returns the bundled industry verticals.
func Industries() []model.Industry {
	return []model.Industry{
		{ID: 1, Name: "Retail & E-commerce", Slug: "retail", Description: "Storefronts, inventory and fulfilment.", Icon: "shopping-bag"},
		{ID: 2, Name: "Logistics", Slug: "logistics", Description: "Warehouse, fleet and dispatch systems.", Icon: "truck"},
		{ID: 3, Name: "Healthcare", Slug: "healthcare", Description: "Patient-facing portals and compliance-aware systems.", Icon: "heart"},
		{ID: 4, Name: "Manufacturing", Slug: "manufacturing", Description: "Production planning and shop-floor data.", Icon: "settings"},
	}
}

// JobListings returns the bundled open positions.
func JobListings() []model.JobListing {
	return []model.JobListing{
		{
			ID:           1,
			Title:        "Senior Software Engineer",
			Slug:         "senior-software-engineer",
			Department:   "Engineering",
			Location:     "Remote",
			Type:         "full-time",
			Description:  "<p>Lead delivery on client projects across our web and ERP practices.</p>",
			Requirements: []string{"5+ years building production systems", "Comfortable leading client conversations"},
			Active:       true,
		},
		{
			ID:           2,
			Title:        "ERP Implementation Consultant",
			Slug:         "erp-implementation-consultant",
			Department:   "Consulting",
			Location:     "Hybrid",
			Type:         "full-time",
			Description:  "<p>Map client processes onto ERPNext and run rollouts end to end.</p>",
			Requirements: []string{"Hands-on ERPNext or comparable ERP experience", "Willingness to travel"},
			Active:       true,
		},
	}
}

// ClientLogos returns the bundled trust-bar logos.
func ClientLogos() []model.ClientLogo {
	return []model.ClientLogo{
		{ID: 1, Name: "Meridian Logistics", Logo: "/assets/clients/meridian.svg"},
		{ID: 2, Name: "Rivera Goods", Logo: "/assets/clients/rivera.svg"},
		{ID: 3, Name: "Nordica Health", Logo: "/assets/clients/nordica.svg"},
		{ID: 4, Name: "Atlas Manufacturing", Logo: "/assets/clients/atlas.svg"},
	}
}

// FAQItems returns the bundled FAQ entries.
func FAQItems() []model.FAQItem {
	return []model.FAQItem{
		{ID: 1, Question: "How do projects usually start?", Answer: "<p>With a short discovery phase: we map your processes and propose a fixed-scope first milestone.</p>", Category: "process", Order: 1},
		{ID: 2, Question: "Do you work with existing systems?", Answer: "<p>Yes. Most engagements integrate with or migrate from systems already in place.</p>", Category: "process", Order: 2},
		{ID: 3, Question: "What does support look like after launch?", Answer: "<p>Every delivery includes a support window; ongoing retainers are available.</p>", Category: "support", Order: 3},
	}
}

// Pages returns the bundled page content, keyed by slug within the slice.
func Pages() []model.PageContent {
	return []model.PageContent{
		{
			ID:              1,
			Title:           "Home",
			Slug:            "home",
			MetaDescription: "Technology consulting: custom software, cloud and ERP.",
			Sections: []model.PageSection{
				{
					Type:  model.SectionTypeHero,
					Order: 1,
					Hero: &model.HeroSettings{
						Heading:       "Software that moves your business",
						Subheading:    "Custom development, cloud and ERP from one team.",
						PrimaryButton: &model.SectionButton{Label: "Book a consultation", URL: "/contact", Style: "primary"},
					},
				},
				{Type: model.SectionTypeServices, Order: 2, Services: &model.CollectionSettings{Heading: "What we do", Limit: 4}},
				{Type: model.SectionTypeClients, Order: 3, Clients: &model.CollectionSettings{}},
				{Type: model.SectionTypeTestimonials, Order: 4, Testimonials: &model.CollectionSettings{Limit: 3}},
				{
					Type:  model.SectionTypeCTA,
					Order: 5,
					CTA: &model.CTASettings{
						Heading:       "Ready to start?",
						PrimaryButton: &model.SectionButton{Label: "Get in touch", URL: "/contact", Style: "primary"},
					},
				},
			},
		},
		{
			ID:              2,
			Title:           "About",
			Slug:            "about",
			MetaDescription: "Who we are and how we work.",
			Sections: []model.PageSection{
				{Type: model.SectionTypeAbout, Order: 1, About: &model.AboutSettings{Heading: "About us", Body: "<p>A consultancy built around long-term client relationships.</p>"}},
				{Type: model.SectionTypeTeam, Order: 2, Team: &model.CollectionSettings{Heading: "The team"}},
			},
		},
	}
}

// PageBySlug returns the bundled page with the given slug, or nil.
func PageBySlug(slug string) *model.PageContent {
	for _, p := range Pages() {
		if p.Slug == slug {
			page := p
			return &page
		}
	}
	return nil
}
