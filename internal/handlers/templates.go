package handlers

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

const dashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

// loadTemplates parses the embedded page templates into the engine.
func loadTemplates(r *gin.Engine) {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)
}
