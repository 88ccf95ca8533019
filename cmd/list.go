package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/courseql/courseql/internal/course"
	"github.com/courseql/courseql/internal/graph"
	"github.com/courseql/courseql/internal/ui"
)

var (
	listJSON  bool
	listTopic string
	listQuiet bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all courses",
	Long: `Lists all courses in catalog order.

Use --topic to show only courses whose topic matches exactly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		courses := listCourses(cmd.Context(), resolver, listTopic)
		out := cmd.OutOrStdout()

		if listJSON {
			return writeJSON(out, courses)
		}

		// Quiet mode: just IDs
		if listQuiet {
			for _, c := range courses {
				fmt.Fprintln(out, c.ID)
			}
			return nil
		}

		renderCourseTable(out, courses)
		return nil
	},
}

// listCourses goes through the same resolver the courses query uses.
func listCourses(ctx context.Context, r *graph.Resolver, topic string) []course.Course {
	var topicArg *string
	if topic != "" {
		topicArg = &topic
	}

	resolved := r.Courses(ctx, struct{ Topic *string }{Topic: topicArg})
	result := make([]course.Course, 0, len(*resolved))
	for _, cr := range *resolved {
		result = append(result, cr.Course())
	}
	return result
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderCourseTable(w io.Writer, courses []course.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("No courses found."))
		return
	}

	// Calculate max ID width
	maxIDWidth := 2 // minimum for "ID" header
	for _, c := range courses {
		if n := len(strconv.Itoa(c.ID)); n > maxIDWidth {
			maxIDWidth = n
		}
	}
	maxIDWidth += 2 // padding

	idStyle := lipgloss.NewStyle().Width(maxIDWidth)
	topicStyle := lipgloss.NewStyle().Width(14)
	authorStyle := lipgloss.NewStyle().Width(28)
	titleStyle := lipgloss.NewStyle()

	headerCol := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(headerCol.Render("ID")),
		topicStyle.Render(headerCol.Render("TOPIC")),
		authorStyle.Render(headerCol.Render("AUTHOR")),
		titleStyle.Render(headerCol.Render("TITLE")),
	)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, ui.Muted.Render(strings.Repeat("─", maxIDWidth+14+28+30)))

	for _, c := range courses {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(ui.ID.Render(strconv.Itoa(c.ID))),
			topicStyle.Render(ui.RenderTopicText(truncate(c.Topic, 12))),
			authorStyle.Render(truncate(c.Author, 26)),
			titleStyle.Render(truncate(c.Title, 50)),
		)
		fmt.Fprintln(w, row)
	}
}

// truncate shortens s to max runes, ending with "..." when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVarP(&listTopic, "topic", "t", "", "Only show courses with this topic")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only output IDs (one per line)")
	listCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.AddCommand(listCmd)
}
