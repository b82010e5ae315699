package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/srcedit/internal/configloader"
	"github.com/yaklabco/srcedit/internal/ui/pretty"
)

// Command groups shown in the root help.
const (
	groupEdit  = "edit"
	groupSetup = "setup"
)

const usageTemplate = `{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range .Groups}}{{$group := .ID}}

{{heading .Title}}{{range $cmds}}{{if and (eq .GroupID $group) .IsAvailableCommand}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- if not .AllChildCommandsHaveGroup}}

{{heading "Additional Commands:"}}{{range $cmds}}{{if and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}
{{- if .HasAvailableSubCommands}}

Use "{{command (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{description .}}

{{end}}` + usageTemplate

// helpFormatter renders command help with the report styles. Styles are
// resolved on first use so the --color flag has been parsed by then.
type helpFormatter struct {
	colorMode *string
	writer    io.Writer
	styles    *pretty.Styles
}

func newHelpFormatter(colorMode *string, writer io.Writer) *helpFormatter {
	return &helpFormatter{colorMode: colorMode, writer: writer}
}

func (h *helpFormatter) style() *pretty.Styles {
	if h.styles == nil {
		h.styles = pretty.NewStyles(pretty.IsColorEnabled(*h.colorMode, h.writer))
	}
	return h.styles
}

func (h *helpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":     func(s string) string { return h.style().SummaryTitle.Render(s) },
		"command":     func(s string) string { return h.style().FilePath.Render(s) },
		"subcommand":  func(s string) string { return h.style().Op.Render(s) },
		"description": h.description,
		"flags":       h.flags,
		"rpad":        rpad,
	}
}

// apply installs grouped, styled help on root and its subcommands.
func (h *helpFormatter) apply(root *cobra.Command) {
	root.AddGroup(
		&cobra.Group{ID: groupEdit, Title: "Edit Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)
	root.SetHelpCommandGroupID(groupSetup)
	root.SetCompletionCommandGroupID(groupSetup)

	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	root.SetUsageFunc(func(cmd *cobra.Command) error {
		if err := usage.Execute(cmd.OutOrStderr(), cmd); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := help.Execute(cmd.OutOrStdout(), cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
}

// description trims trailing blanks and highlights example invocations,
// the indented lines that start with the binary name.
func (h *helpFormatter) description(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(line, "  ") && strings.HasPrefix(trimmed, "srcedit "):
			command, comment, found := strings.Cut(trimmed, "   ")
			line = "  " + h.style().FilePath.Render(command)
			if found {
				line += "   " + h.style().Dim.Render(strings.TrimLeft(comment, " "))
			}
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " "):
			line = h.style().SummaryTitle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// flags lists the visible flags of fs, one per line, aligned on the usage.
func (h *helpFormatter) flags(fs *pflag.FlagSet) string {
	type row struct {
		name, kind, usage string
	}

	var rows []row
	width := 0
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		kind, usage := pflag.UnquoteUsage(f)
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", --" + f.Name
		}
		if hasDefault(f) {
			usage += " (default " + f.DefValue + ")"
		}
		rows = append(rows, row{name: name, kind: kind, usage: usage})
		width = max(width, len(name)+1+len(kind))
	})

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		plain := len(r.name)
		b.WriteString("  " + h.style().Location.Render(r.name))
		if r.kind != "" {
			b.WriteString(" " + h.style().Dim.Render(r.kind))
			plain += 1 + len(r.kind)
		}
		b.WriteString(strings.Repeat(" ", width-plain+3))
		b.WriteString(r.usage)
	}
	return b.String()
}

func hasDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return false
	}
	return true
}

// environmentHelp lists the SRCEDIT_* overrides for the root description.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	var b strings.Builder
	b.WriteString("Environment:")
	for _, v := range vars {
		b.WriteString("\n  " + rpad(v.Name, width) + "   " + v.Description)
	}
	return b.String()
}

// rpad pads s with spaces to width.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
