// Package openapi serves Swagger UI over the OpenAPI document the API
// generates at runtime.
package openapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultSpecPath is where huma serves the generated OpenAPI 3.1 document.
const DefaultSpecPath = "/openapi.json"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{spec}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds Swagger UI routes to the Echo instance. specPath is
// the URL of the OpenAPI document; empty means DefaultSpecPath.
func RegisterRoutes(e *echo.Echo, title, specPath string) {
	if specPath == "" {
		specPath = DefaultSpecPath
	}

	html := strings.NewReplacer("{{title}}", title, "{{spec}}", specPath).Replace(swaggerUIHTML)

	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, html)
	})
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
