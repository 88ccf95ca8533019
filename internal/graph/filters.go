package graph

import "github.com/courseql/courseql/internal/course"

// filterByTopic keeps the courses whose topic equals topic exactly, in order.
// An empty topic means no filter.
func filterByTopic(courses []course.Course, topic string) []course.Course {
	if topic == "" {
		return courses
	}

	var result []course.Course
	for _, c := range courses {
		if c.Topic == topic {
			result = append(result, c)
		}
	}
	return result
}

// orderByIDs returns the courses named by ids, in the order of ids.
// Ids with no matching course are skipped.
func orderByIDs(courses []course.Course, ids []int) []course.Course {
	byID := make(map[int]course.Course, len(courses))
	for _, c := range courses {
		if _, ok := byID[c.ID]; !ok {
			byID[c.ID] = c
		}
	}

	result := make([]course.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			result = append(result, c)
		}
	}
	return result
}
