package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fancyformats/internal/pipeline"
)

// CourseEntry is one course in the courses listing.
type CourseEntry struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Competitors int    `json:"competitors"`
}

// CoursesResult is the courses command payload.
type CoursesResult struct {
	Event   string        `json:"event"`
	Courses []CourseEntry `json:"courses"`
}

// NewCoursesCommand creates the courses command.
func NewCoursesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "courses <results.xml>",
		Short: "List the courses in a result list",
		Long: `List the event name and the indexed courses of an IOF XML v3 result list.
The index is what score --course expects.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(rootOpts, args[0], cmd)
		},
	}
}

func runCourses(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	event, err := pipeline.LoadEvent(input, pipeline.WithLogger(newLogger(opts, cmd.ErrOrStderr())))
	if err != nil {
		return reportError(formatter, "failed to load result list", err, "")
	}

	result := CoursesResult{Event: event.Name, Courses: make([]CourseEntry, len(event.Courses))}
	for i, c := range event.Courses {
		result.Courses[i] = CourseEntry{Index: i, Name: c.Name, Competitors: len(c.Results)}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintln(w, result.Event)
	for _, c := range result.Courses {
		fmt.Fprintf(w, "  %d  %s (%d)\n", c.Index, c.Name, c.Competitors)
	}
	return nil
}
