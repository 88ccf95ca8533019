package graph

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Endpoint is the path the GraphQL API and playground are served on.
const Endpoint = "/graphql"

// HandlerOptions configures NewHandler.
type HandlerOptions struct {
	// Playground serves the interactive GraphiQL UI on GET requests.
	Playground bool
	Title      string
}

// NewHandler returns the HTTP handler for the schema:
//   - GraphQL endpoint at /graphql (POST)
//   - GraphiQL playground at /graphql (GET), if enabled
//   - health check at /healthz
func NewHandler(schema *graphql.Schema, opts HandlerOptions) http.Handler {
	if opts.Title == "" {
		opts.Title = "Courses GraphQL"
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.POST(Endpoint, gin.WrapH(&relay.Handler{Schema: schema}))
	if opts.Playground {
		router.GET(Endpoint, gin.WrapH(playground.Handler(opts.Title, Endpoint)))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// requestLogger logs one line per request through slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
