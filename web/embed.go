package web

import "embed"

//go:embed static
var Static embed.FS

//go:embed static/styles.css
var StylesCSS []byte
