package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/triviakit/internal/ui/pretty"
	"github.com/yaklabco/triviakit/pkg/config"
)

// Command groups shown in root help.
const (
	groupRewrite = "rewrite"
	groupList    = "list"
	groupInspect = "inspect"
)

// HelpStyles are the lipgloss styles used by command help.
type HelpStyles struct {
	Command lipgloss.Style
	Heading lipgloss.Style
	Name    lipgloss.Style
	Flag    lipgloss.Style
	Example lipgloss.Style
	Dim     lipgloss.Style
}

// NewHelpStyles returns colored styles, or plain ones when colorEnabled is false.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{plain, plain, plain, plain, plain, plain}
	}
	return &HelpStyles{
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Example: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders cobra help and usage with HelpStyles.
type HelpFormatter struct {
	styles *HelpStyles
	tmpl   *template.Template
}

// NewHelpFormatter creates a formatter whose colors follow mode and w.
func NewHelpFormatter(mode config.ColorMode, w io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(mode, w))}
	h.tmpl = template.Must(template.New("help").Funcs(template.FuncMap{
		"heading":   h.styles.Heading.Render,
		"command":   h.styles.Command.Render,
		"name":      h.styles.Name.Render,
		"example":   h.styles.Example.Render,
		"flags":     h.flagUsages,
		"groupOf":   groupCommands,
		"restTitle": restTitle,
		"trimLong":  func(s string) string { return strings.TrimRight(s, " \t\n") },
		"pad":       func(s string, n int) string { return fmt.Sprintf("%-*s", n, s) },
	}).Parse(helpTemplate))
	return h
}

const helpTemplate = `{{define "usage"}}{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}{{end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{example .Example}}{{end}}
{{- if .HasAvailableSubCommands}}{{$cmd := .}}
{{- range .Groups}}{{$cmds := groupOf $cmd .ID}}{{if $cmds}}

{{heading .Title}}{{range $cmds}}
  {{name (pad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- $rest := groupOf . ""}}{{if $rest}}

{{heading (restTitle .)}}{{range $rest}}
  {{name (pad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}
{{- if .HasAvailableSubCommands}}

Use "{{command .CommandPath}} [command] --help" for more information about a command.{{end}}
{{end}}
{{- define "help"}}{{with (or .Long .Short)}}{{trimLong .}}

{{end}}{{template "usage" .}}{{end}}`

// groupCommands returns the available subcommands of cmd in group id.
func groupCommands(cmd *cobra.Command, id string) []*cobra.Command {
	var out []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.GroupID == id && (sub.IsAvailableCommand() || sub.Name() == "help") {
			out = append(out, sub)
		}
	}
	return out
}

func restTitle(cmd *cobra.Command) string {
	if len(cmd.Groups()) == 0 {
		return "Available Commands:"
	}
	return "Additional Commands:"
}

// flagUsages styles pflag's usage block: flag names in Flag, types in Dim.
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	lines := strings.Split(strings.TrimRight(flags.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = h.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) flagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	names, desc, ok := strings.Cut(trimmed, "   ")
	if !ok {
		return line
	}

	fields := strings.Fields(names)
	for i, field := range fields {
		if !strings.HasPrefix(field, "-") {
			fields[i] = h.styles.Dim.Render(field)
			continue
		}
		comma := strings.HasSuffix(field, ",")
		fields[i] = h.styles.Flag.Render(strings.TrimSuffix(field, ","))
		if comma {
			fields[i] += ","
		}
	}
	return indent + strings.Join(fields, " ") + "   " + strings.TrimLeft(desc, " ")
}

// ApplyToCommand installs the styled help and usage on cmd and, through
// cobra's inheritance, on every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := h.tmpl.ExecuteTemplate(c.OutOrStderr(), "usage", c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.tmpl.ExecuteTemplate(c.OutOrStdout(), "help", c); err != nil {
			c.PrintErrln(err)
		}
	})
}
