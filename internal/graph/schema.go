package graph

import (
	"bytes"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// SchemaSDL is the GraphQL schema in SDL form.
//
//go:embed schema.graphqls
var SchemaSDL string

// DefaultMaxParallelism bounds how many field resolvers run concurrently per request.
const DefaultMaxParallelism = 10

// NewSchema binds the resolver to the schema and returns an executable schema.
func NewSchema(r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{graphql.MaxParallelism(DefaultMaxParallelism)}, opts...)
	return graphql.ParseSchema(SchemaSDL, r, opts...)
}

// FormatSchema returns the schema pretty-printed, without built-in types.
func FormatSchema() (string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: SchemaSDL})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
	f.FormatSchema(schema)

	return buf.String(), nil
}
