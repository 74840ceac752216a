package apispec

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
)

// RegisterDocsRoutes mounts the contract and a Swagger UI for it:
//
//	GET /docs               Swagger UI
//	GET /docs/openapi       contract as JSON
//	GET /docs/openapi.yaml  contract as embedded
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /docs", serveSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", serveContractJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", serveContractYAML)
}

var contractJSON = sync.OnceValues(func() ([]byte, error) {
	doc, err := Load(context.Background())
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
})

func serveContractJSON(w http.ResponseWriter, _ *http.Request) {
	body, err := contractJSON()
	if err != nil {
		http.Error(w, "contract unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func serveContractYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(specYAML) //nolint:errcheck // client went away
}

func serveSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // client went away
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Card Issuing Sandbox</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => SwaggerUIBundle({ url: '/docs/openapi', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`
