package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/courseql/courseql/internal/graph"
)

var (
	queryJSON       bool
	queryVariables  string
	queryOperation  string
	querySchemaOnly bool
)

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL query or mutation against the course catalog.

The argument should be a valid GraphQL query or mutation string.

Examples:
  # List all courses
  courseql graphql '{ courses { id title topic } }'

  # Get a specific course
  courseql graphql '{ course(id: 1) { title author url } }'

  # Filter courses by topic
  courseql graphql '{ courses(topic: "Node.js") { id title } }'

  # Use variables
  courseql graphql -v '{"id": 2}' 'query GetCourse($id: Int!) { course(id: $id) { title } }'

  # Pick one operation from a document; the variables must satisfy every
  # operation in it, not only the selected one
  courseql graphql -o Get -v '{"id": 1, "topic": "Go"}' < operations.graphql

  # Read from stdin (useful for complex queries or escaping issues)
  cat query.graphql | courseql graphql

  # Print the schema
  courseql graphql --schema`,
	Args: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		// Allow 0 args if stdin has data, or exactly 1 arg
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return printSchema(cmd.OutOrStdout())
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		variables, err := parseVariables(queryVariables)
		if err != nil {
			return err
		}

		result, err := executeQuery(cmd.Context(), query, variables, queryOperation)
		if err != nil {
			return err
		}

		if queryJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(cmd.OutOrStdout(), string(result))
		} else {
			prettyPrint(cmd.OutOrStdout(), result)
		}

		return nil
	},
}

// readFromStdin reads the query from stdin if data is available.
func readFromStdin() (string, error) {
	// A terminal means nothing was piped in
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// parseVariables decodes the --variables flag. An empty string means no variables.
func parseVariables(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var variables map[string]any
	if err := json.Unmarshal([]byte(raw), &variables); err != nil {
		return nil, fmt.Errorf("invalid variables JSON: %w", err)
	}
	return variables, nil
}

// executeQuery runs a GraphQL document against the in-process schema.
// On success, it returns just the data portion of the response.
func executeQuery(ctx context.Context, query string, variables map[string]any, operationName string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp := schema.Exec(ctx, query, operationName, variables)
	if len(resp.Errors) > 0 {
		return nil, formatGraphQLErrors(resp.Errors)
	}

	return resp.Data, nil
}

// formatGraphQLErrors formats GraphQL errors into a single error.
func formatGraphQLErrors(errs []*gqlerrors.QueryError) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("graphql: %s", errs[0].Message)
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
}

// prettyPrint outputs the JSON with colors and indentation.
func prettyPrint(w io.Writer, data []byte) {
	fmt.Fprintln(w, string(pretty.Color(pretty.Pretty(data), nil)))
}

// printSchema outputs the formatted GraphQL schema.
func printSchema(w io.Writer) error {
	s, err := graph.FormatSchema()
	if err != nil {
		return fmt.Errorf("formatting schema: %w", err)
	}
	fmt.Fprint(w, s)
	return nil
}

func init() {
	graphqlCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Query variables as JSON string")
	graphqlCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name for multi-operation documents (variables must satisfy every operation in the document)")
	graphqlCmd.Flags().BoolVar(&querySchemaOnly, "schema", false, "Print the GraphQL schema and exit")
	rootCmd.AddCommand(graphqlCmd)
}
