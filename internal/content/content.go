// Package content holds the fixed copy shown on the ArtistryPrime site.
package content

import "artistryprime-go/internal/model"

const unsplash = "https://images.unsplash.com/"

func image(id string) string {
	return unsplash + id + "?auto=format&fit=crop&q=80"
}

// Projects returns the carousel entries in display order.
func Projects() []model.Project {
	return []model.Project{
		{
			Title:       "Modern Apartment Renovation",
			Description: "Complete interior painting and structural renovation of a 3BHK apartment in the city center.",
			Image:       image("photo-1484154218962-a197022b5858"),
			Category:    "Residential Painting",
		},
		{
			Title:       "Industrial Pen Booth Installation",
			Description: "Custom-designed and constructed pen booth with CO2 welding for a manufacturing facility.",
			Image:       image("photo-1504917595217-d4dc5ebe6122"),
			Category:    "Structure Work",
		},
		{
			Title:       "Commercial Complex Exterior",
			Description: "Large-scale exterior painting project for a five-story commercial building.",
			Image:       image("photo-1545324418-cc1a3fa10c00"),
			Category:    "Residential Painting",
		},
	}
}

func Default() model.Site {
	return model.Site{
		Brand: "ArtistryPrime",
		NavLinks: []model.NavLink{
			{Label: "Home", Anchor: "home"},
			{Label: "Services", Anchor: "services"},
			{Label: "Projects", Anchor: "projects"},
			{Label: "About", Anchor: "about"},
			{Label: "Contact", Anchor: "contact"},
		},

		HeroTitle:    "Transform Your Space with Professional Excellence",
		HeroText:     "We bring your vision to life with expert painting and structural work services. Quality craftsmanship that stands the test of time.",
		HeroImage:    image("photo-1562259949-e8e7689d7828"),
		HeroImageAlt: "Professional painting service",
		HeroCTA:      "Get Started",

		Services: []model.Service{
			{
				Icon:        "home",
				Title:       "Residential Painting",
				Description: "Interior and exterior painting services for homes with premium quality paints and expert finish.",
			},
			{
				Icon:        "tool",
				Title:       "Structure Work",
				Description: "Professional structural modifications, repairs, and installations for both residential and commercial spaces.",
			},
			{
				Icon:        "users",
				Title:       "Commercial Services",
				Description: "Comprehensive painting and structural solutions for offices, retail spaces, and industrial facilities.",
			},
		},
		Projects: Projects(),

		AboutTitle:    "A Decade of Excellence",
		AboutText:     "With over 10 years of industry experience, ArtistryPrime has established itself as a leading name in painting and structural work services. Our commitment to excellence and customer satisfaction has earned us a reputation for delivering exceptional results.",
		AboutImage:    image("photo-1581578731548-c64695cc6952"),
		AboutImageAlt: "Our team at work",
		Stats: []model.Stat{
			{Value: "10+", Label: "Years Experience"},
			{Value: "100%", Label: "Client Satisfaction"},
			{Value: "500+", Label: "Projects Completed"},
			{Value: "50+", Label: "Skilled Workers"},
		},
		Reasons: []string{
			"Highly skilled and experienced workforce",
			"Premium quality materials and tools",
			"Timely project completion",
			"Competitive pricing with no compromise on quality",
		},

		Contact: model.ContactDetails{
			Phone:   "+91 9380869956",
			Email:   "artistryprime5@gmail.com",
			Address: "Bangalore, Karnataka, India",
		},
		Socials: []model.SocialLink{
			{Name: "Facebook", Href: "https://www.facebook.com/profile.php?id=61575720090195"},
			{Name: "Instagram", Href: "#"},
			{Name: "Twitter", Href: "#"},
		},
	}
}
