// internal/app/features/destinations/templates.go
package destinations

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "destinations",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
