package fsworkspace

import "embed"

//go:embed templates/primer.yaml templates/doctests/*.sql
var templatesFS embed.FS
