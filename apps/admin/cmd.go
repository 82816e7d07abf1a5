package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/colegiosanjose/portal/core/attendance"
	"github.com/colegiosanjose/portal/core/curriculum"
	"github.com/colegiosanjose/portal/core/exam"
	"github.com/colegiosanjose/portal/core/grade"
	"github.com/colegiosanjose/portal/core/nav"
	"github.com/colegiosanjose/portal/core/subject"
	"github.com/colegiosanjose/portal/core/task"
	"github.com/colegiosanjose/portal/core/user"
	"github.com/colegiosanjose/portal/storage/database/inmem"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db      *inmemdb.DB
	courses []string
	out     io.Writer
}

func newCommandLine(db *inmemdb.DB, courses []string, out io.Writer) *commandLine {
	return &commandLine{db: db, courses: courses, out: out}
}

// statsFuncs computes the stats of each catalog kind.
func (cli *commandLine) statsFuncs() map[string]func() interface{} {
	return map[string]func() interface{}{
		"users":               func() interface{} { return user.ComputeStats(cli.db.Users.All()) },
		"exams":               func() interface{} { return exam.ComputeStats(cli.db.Exams.All()) },
		"subjects":            func() interface{} { return subject.ComputeStats(cli.db.Subjects.All()) },
		"grades":              func() interface{} { return grade.ComputeStats(cli.db.Grades.All()) },
		"curriculums":         func() interface{} { return curriculum.ComputeStats(cli.db.Curriculums.All()) },
		"teacher-curriculums": func() interface{} { return curriculum.ComputeStats(cli.db.TeacherCurriculums.All()) },
		"tasks":               func() interface{} { return task.ComputeStats(cli.db.Tasks.All()) },
		"student-tasks":       func() interface{} { return task.NewStudentService(cli.db.StudentTasks).Stats() },
		"attendance":          func() interface{} { return attendance.ComputeStats(cli.db.Attendance.All()) },
	}
}

func (cli *commandLine) kinds() []string {
	kinds := make([]string, 0, len(cli.statsFuncs()))
	for k := range cli.statsFuncs() {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Inspect the San José portal catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	root.AddCommand(
		cli.summaryCmd(),
		cli.statsCmd(),
		cli.menuCmd(),
		cli.examsCmd(),
	)
	return root
}

// run executes the command line; args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	return root.Execute()
}

func (cli *commandLine) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count the records of every catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATALOG\tRECORDS")
			for _, row := range []struct {
				name  string
				count int
			}{
				{"users", cli.db.Users.Len()},
				{"exams", cli.db.Exams.Len()},
				{"subjects", cli.db.Subjects.Len()},
				{"grades", cli.db.Grades.Len()},
				{"curriculums", cli.db.Curriculums.Len()},
				{"teacher-curriculums", cli.db.TeacherCurriculums.Len()},
				{"tasks", cli.db.Tasks.Len()},
				{"student-tasks", cli.db.StudentTasks.Len()},
				{"attendance", cli.db.Attendance.Len()},
			} {
				fmt.Fprintf(w, "%s\t%d\n", row.name, row.count)
			}
			fmt.Fprintf(w, "courses\t%d\n", len(cli.courses))
			return w.Flush()
		},
	}
}

func (cli *commandLine) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "stats KIND",
		Short:     "Print the aggregate stats of a catalog",
		Long:      "Print the aggregate stats of a catalog, one of: " + strings.Join(cli.kinds(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: cli.kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			compute, ok := cli.statsFuncs()[args[0]]
			if !ok {
				return errors.Errorf("unknown kind %q", args[0])
			}
			return writeYAML(cmd.OutOrStdout(), compute())
		},
	}
}

// writeYAML prints v as YAML, keyed by its JSON field names.
func writeYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding stats")
	}
	var doc interface{}
	if err = json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "decoding stats")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return errors.Wrap(err, "writing stats")
	}
	return enc.Close()
}

func (cli *commandLine) menuCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the sidebar shown at a path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := nav.MenuAt(path)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", m.RoleLabel, m.Role)
			for _, items := range [][]nav.Item{m.Items, m.Footer} {
				for _, it := range items {
					marker := " "
					if it.Active {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %-20s %s\n", marker, it.Label, it.Path)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "current path, e.g. /teacher/asistencia")
	return cmd
}

func (cli *commandLine) examsCmd() *cobra.Command {
	var filter exam.QueryFilter
	cmd := &cobra.Command{
		Use:   "exams",
		Short: "List exams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exams := exam.Schema.Filter(cli.db.Exams.All(), filter.Criteria())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tCOURSE\tDATE\tSTATUS\tPROGRESS")
			for _, d := range exam.Details(exams) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d%%\n",
					d.ID, d.Title, d.Subject, d.Course, d.Date, d.StatusLabel, d.Progress)
			}
			fmt.Fprintf(w, "\n%d of %d exams\n", len(exams), cli.db.Exams.Len())
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.Status, "status", "", "scheduled, in_progress, grading or completed")
	cmd.Flags().StringVar(&filter.Subject, "subject", "", "exact subject")
	cmd.Flags().StringVar(&filter.Course, "course", "", "exact course")
	cmd.Flags().StringVar(&filter.Search, "search", "", "text to look for in title, subject, course or teacher")
	return cmd
}
