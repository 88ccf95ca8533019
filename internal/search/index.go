// Package search provides full-text search over courses using Bleve.
package search

import (
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/courseql/courseql/internal/course"
)

// DefaultSearchLimit is the default maximum number of search results.
const DefaultSearchLimit = 100

// Index wraps a Bleve in-memory index for searching courses.
type Index struct {
	index bleve.Index
}

// courseDocument is the structure stored in the Bleve index.
type courseDocument struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Topic       string `json:"topic"`
}

// NewIndex creates a new in-memory Bleve index.
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = "standard"

	courseMapping := bleve.NewDocumentMapping()
	courseMapping.AddFieldMappingsAt("title", textFieldMapping)
	courseMapping.AddFieldMappingsAt("author", textFieldMapping)
	courseMapping.AddFieldMappingsAt("description", textFieldMapping)
	courseMapping.AddFieldMappingsAt("topic", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = courseMapping
	indexMapping.DefaultAnalyzer = "standard"
	indexMapping.IndexDynamic = false
	indexMapping.StoreDynamic = false
	indexMapping.ScoringModel = "bm25"

	return indexMapping
}

// Close closes the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

func toDocument(c course.Course) courseDocument {
	return courseDocument{
		Title:       c.Title,
		Author:      c.Author,
		Description: c.Description,
		Topic:       c.Topic,
	}
}

// IndexCourse adds or replaces a course in the index.
func (idx *Index) IndexCourse(c course.Course) error {
	return idx.index.Index(strconv.Itoa(c.ID), toDocument(c))
}

// IndexCourses indexes multiple courses in one batch.
func (idx *Index) IndexCourses(courses []course.Course) error {
	batch := idx.index.NewBatch()
	for _, c := range courses {
		if err := batch.Index(strconv.Itoa(c.ID), toDocument(c)); err != nil {
			return err
		}
	}
	return idx.index.Batch(batch)
}

// Search runs a query string query and returns matching course ids by
// descending relevance. A limit <= 0 uses DefaultSearchLimit.
//
// The query string syntax supports plain terms ("node"), phrases
// ("\"weird parts\""), wildcards ("java*") and field scoping ("topic:go").
func (idx *Index) Search(queryStr string, limit int) ([]int, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	req := bleve.NewSearchRequest(bleve.NewQueryStringQuery(queryStr))
	req.Size = limit

	result, err := idx.index.Search(req)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(result.Hits))
	for _, hit := range result.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
