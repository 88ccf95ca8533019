package graph

import (
	"context"
	"fmt"
	"log/slog"
)

// Course resolves the course query.
func (r *Resolver) Course(ctx context.Context, args struct{ ID int32 }) *CourseResolver {
	c, ok := r.Store.Get(int(args.ID))
	if !ok {
		return nil
	}
	return newCourseResolver(c)
}

// Courses resolves the courses query.
func (r *Resolver) Courses(ctx context.Context, args struct{ Topic *string }) *[]*CourseResolver {
	var topic string
	if args.Topic != nil {
		topic = *args.Topic
	}

	result := toResolvers(filterByTopic(r.Store.All(), topic))
	return &result
}

// SearchCourses resolves the searchCourses query.
func (r *Resolver) SearchCourses(ctx context.Context, args struct {
	Query string
	Limit *int32
}) ([]*CourseResolver, error) {
	if r.Index == nil || args.Query == "" {
		return []*CourseResolver{}, nil
	}

	limit := 0
	if args.Limit != nil {
		limit = int(*args.Limit)
	}

	ids, err := r.Index.Search(args.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return toResolvers(orderByIDs(r.Store.All(), ids)), nil
}

// UpdateCourseTopic resolves the updateCourseTopic mutation.
func (r *Resolver) UpdateCourseTopic(ctx context.Context, args struct {
	ID    int32
	Topic string
}) *CourseResolver {
	c, ok := r.Store.UpdateTopic(int(args.ID), args.Topic)
	if !ok {
		slog.DebugContext(ctx, "updateCourseTopic: no course with id", "id", args.ID)
		return nil
	}

	slog.DebugContext(ctx, "course topic updated", "id", c.ID, "topic", c.Topic)
	return newCourseResolver(c)
}
