package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/courseql/courseql/internal/course"
	"github.com/courseql/courseql/internal/graph"
	"github.com/courseql/courseql/internal/ui"
)

var (
	ErrInvalidID      = errors.New("invalid course id")
	ErrCourseNotFound = errors.New("course not found")
)

var (
	showJSON bool
	showRaw  bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a course",
	Long:  `Displays a single course, with its description rendered as markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCourse(cmd.Context(), resolver, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if showJSON {
			return writeJSON(out, c)
		}
		if showRaw {
			fmt.Fprintln(out, c.Description)
			return nil
		}

		return renderCourse(out, c)
	},
}

// findCourse resolves a course from a loosely typed id argument, so "2" and
// " 2 " both find course 2.
func findCourse(ctx context.Context, r *graph.Resolver, arg string) (course.Course, error) {
	id, ok := course.ParseID(arg)
	if !ok {
		return course.Course{}, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	cr := r.Course(ctx, struct{ ID int32 }{ID: int32(id)})
	if cr == nil {
		return course.Course{}, fmt.Errorf("%w: %d", ErrCourseNotFound, id)
	}
	return cr.Course(), nil
}

func renderCourse(w io.Writer, c course.Course) error {
	var header strings.Builder
	header.WriteString(ui.ID.Render(fmt.Sprintf("#%d", c.ID)))
	header.WriteString(" ")
	header.WriteString(ui.RenderTopic(c.Topic))
	header.WriteString("\n")
	header.WriteString(ui.Title.Render(c.Title))
	header.WriteString("\n")
	header.WriteString(ui.Muted.Render("by " + c.Author))
	if c.URL != "" {
		header.WriteString("\n")
		header.WriteString(ui.Link.Render(c.URL))
	}
	header.WriteString("\n")
	header.WriteString(ui.Muted.Render(strings.Repeat("─", 50)))

	headerBox := lipgloss.NewStyle().
		MarginBottom(1).
		Render(header.String())
	fmt.Fprintln(w, headerBox)

	if c.Description == "" {
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := renderer.Render(c.Description)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(w, rendered)
	return nil
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Output the description without styling")
	showCmd.MarkFlagsMutuallyExclusive("json", "raw")
	rootCmd.AddCommand(showCmd)
}
