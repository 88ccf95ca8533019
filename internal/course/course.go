// Package course holds the Course model, its seed data, and the in-memory store
// the GraphQL resolvers read and mutate.
package course

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Course is a single learning course.
type Course struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Author      string `yaml:"author" json:"author"`
	Description string `yaml:"description" json:"description"`
	Topic       string `yaml:"topic" json:"topic"`
	URL         string `yaml:"url" json:"url"`
}

// Seed returns the built-in course collection.
// Each call returns a fresh slice so callers can't alias each other's data.
func Seed() []Course {
	return []Course{
		{
			ID:          1,
			Title:       "The Complete Node.js Developer Course",
			Author:      "Andrew Mead, Rob Percival",
			Description: "Learn Node.js by building real-world applications with Node, Express, MongoDB, Mocha, and more!",
			Topic:       "Node.js",
			URL:         "https://codingthesmartway.com/courses/nodejs/",
		},
		{
			ID:          2,
			Title:       "Node.js, Express & MongoDB Dev to Deployment",
			Author:      "Brad Traversy",
			Description: "Learn by example building & deploying real-world Node.js applications from absolute scratch",
			Topic:       "Node.js",
			URL:         "https://codingthesmartway.com/courses/nodejs-express-mongodb/",
		},
		{
			ID:          3,
			Title:       "JavaScript: Understanding The Weird Parts",
			Author:      "Anthony Alicea",
			Description: "An advanced JavaScript course for everyone! Scope, closures, prototypes, this, build your own framework, and more.",
			Topic:       "JavaScript",
			URL:         "https://codingthesmartway.com/courses/understand-javascript/",
		},
	}
}

// seedFile is the on-disk layout of a YAML seed file.
type seedFile struct {
	Courses []Course `yaml:"courses"`
}

// LoadSeedFile reads a YAML seed file. Duplicate ids are rejected since the
// rest of the system assumes ids are unique.
func LoadSeedFile(path string) ([]Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	seen := make(map[int]bool, len(sf.Courses))
	for _, c := range sf.Courses {
		if seen[c.ID] {
			return nil, fmt.Errorf("parsing %s: duplicate course id %d", path, c.ID)
		}
		seen[c.ID] = true
	}

	return sf.Courses, nil
}

// ParseID converts a loosely typed id (as found in decoded JSON variables or
// CLI arguments) to a course id. Numeral strings are accepted. Values outside
// the 32-bit range of the GraphQL Int type are rejected.
func ParseID(v any) (int, bool) {
	var n int64
	switch id := v.(type) {
	case int:
		n = int64(id)
	case int32:
		n = int64(id)
	case int64:
		n = id
	case float64:
		if id < math.MinInt32 || id > math.MaxInt32 || id != math.Trunc(id) {
			return 0, false
		}
		n = int64(id)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}
