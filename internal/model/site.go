package model

type Site struct {
	Brand    string
	NavLinks []NavLink

	HeroTitle    string
	HeroText     string
	HeroImage    string
	HeroImageAlt string
	HeroCTA      string

	Services []Service
	Projects []Project

	AboutTitle    string
	AboutText     string
	AboutImage    string
	AboutImageAlt string
	Stats         []Stat
	Reasons       []string

	Contact ContactDetails
	Socials []SocialLink
}

type NavLink struct {
	Label  string
	Anchor string
}

type Service struct {
	Icon        string
	Title       string
	Description string
}

type Stat struct {
	Value string
	Label string
}

type ContactDetails struct {
	Phone   string
	Email   string
	Address string
}

// SocialLink with an empty or "#" Href renders as an inert placeholder.
type SocialLink struct {
	Name string
	Href string
}

func (l SocialLink) External() bool {
	return l.Href != "" && l.Href != "#"
}
