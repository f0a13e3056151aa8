package web

import "embed"

//go:embed templates/*.html
var templateFS embed.FS

// StaticFS holds the stylesheet and script served under /static/.
//
//go:embed static/*
var StaticFS embed.FS
