package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/docs"
)

// registerOpenAPIRoutes 提供 /openapi 与 /docs/redoc
func registerOpenAPIRoutes(engine *gin.Engine) {
	engine.GET("/openapi", serveOpenAPI)
	engine.GET("/openapi.yaml", serveOpenAPI)
	engine.GET("/docs/redoc", serveRedoc)
	engine.GET("/docs/ui", serveSwaggerUI)
}

func serveOpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", docs.OpenAPI)
}

// 文档页面的前端资源
const (
	redocScript     = "https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"
	swaggerUICSS    = "https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"
	swaggerUIBundle = "https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"
)

func serveRedoc(c *gin.Context) {
	html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Hexrealm API - Redoc</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
      body{margin:0;padding:0;font-family:-apple-system,Segoe UI,Helvetica,Arial,sans-serif}
      .topbar{position:fixed;top:0;left:0;right:0;height:48px;display:flex;align-items:center;justify-content:space-between;padding:0 12px;background:#f8fafc;border-bottom:1px solid #e5e7eb;z-index:9999}
      .brand{font-weight:600;color:#0f172a}
      .nav a{color:#0f172a;text-decoration:none;margin-left:12px;padding:6px 10px;border-radius:6px;border:1px solid #d1d5db;background:#ffffff}
      .nav a:hover{border-color:#94a3b8}
      .wrap{margin-top:48px}
    </style>
  </head>
  <body>
    <div class="topbar">
      <div class="brand">Hexrealm API</div>
      <div class="nav">
        <a href="/openapi" target="_blank">OpenAPI YAML</a>
        <a href="/docs/ui">Swagger UI</a>
      </div>
    </div>
    <div class="wrap" id="redoc"></div>
    <script src="` + redocScript + `"></script>
    <script>
      Redoc.init('/openapi', {
        expandResponses: '200,201',
        theme: { colors: { primary: { main: '#0ea5e9' } }, sidebar: { width: '280px' } }
      }, document.getElementById('redoc'));
    </script>
  </body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func serveSwaggerUI(c *gin.Context) {
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Hexrealm API - Swagger UI</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link rel="stylesheet" href="` + swaggerUICSS + `">
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="` + swaggerUIBundle + `" crossorigin></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi',
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
        layout: 'BaseLayout'
      })
    </script>
  </body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
