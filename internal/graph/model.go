package graph

import "github.com/courseql/courseql/internal/course"

// CourseResolver resolves the fields of the Course type.
// Each field is only evaluated when it is part of the selection set.
type CourseResolver struct {
	c course.Course
}

func newCourseResolver(c course.Course) *CourseResolver {
	return &CourseResolver{c: c}
}

// toResolvers wraps courses for the list fields. Never returns nil.
func toResolvers(courses []course.Course) []*CourseResolver {
	result := make([]*CourseResolver, 0, len(courses))
	for _, c := range courses {
		result = append(result, newCourseResolver(c))
	}
	return result
}

func (r *CourseResolver) ID() *int32 {
	id := int32(r.c.ID)
	return &id
}

func (r *CourseResolver) Title() *string {
	return &r.c.Title
}

func (r *CourseResolver) Author() *string {
	return &r.c.Author
}

func (r *CourseResolver) Description() *string {
	return &r.c.Description
}

func (r *CourseResolver) Topic() *string {
	return &r.c.Topic
}

func (r *CourseResolver) URL() *string {
	return &r.c.URL
}

// Course returns the underlying record.
func (r *CourseResolver) Course() course.Course {
	return r.c
}
