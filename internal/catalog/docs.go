package catalog

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPIDoc []byte

const (
	docsPath    = "/swagger"
	redocPath   = "/redoc"
	openAPIPath = "/openapi.json"
)

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Product Inventory API - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '` + openAPIPath + `',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`

const redocHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Product Inventory API - ReDoc</title>
  </head>
  <body>
    <redoc spec-url="` + openAPIPath + `"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openAPIDoc)
}

func serveHTML(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

func redirectToDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, docsPath, http.StatusTemporaryRedirect)
}
