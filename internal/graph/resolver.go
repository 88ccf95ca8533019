package graph

import (
	"log/slog"

	"github.com/courseql/courseql/internal/course"
	"github.com/courseql/courseql/internal/search"
)

// Resolver is the root resolver for the GraphQL schema.
// It serves both the Query and the Mutation type.
type Resolver struct {
	Store *course.Store

	// Index backs searchCourses. Optional; search returns nothing without it.
	Index *search.Index
}

// NewResolver creates a root resolver. When an index is given it is kept in
// sync with topic updates made through the store.
func NewResolver(store *course.Store, index *search.Index) *Resolver {
	if index != nil {
		store.SetOnUpdate(func(c course.Course) {
			if err := index.IndexCourse(c); err != nil {
				slog.Error("failed to reindex course", "id", c.ID, "error", err)
			}
		})
	}
	return &Resolver{Store: store, Index: index}
}
