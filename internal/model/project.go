package model

type Project struct {
	Title       string
	Description string
	Image       string
	Category    string
}
