// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"notes/internal/domain"
)

const (
	idWidth      = domain.ShortLen
	statusWidth  = len("In Progress")
	createdWidth = len(CreatedLayout)

	// CreatedLayout is the timestamp layout of list rows.
	CreatedLayout = "2006-01-02 15:04"

	// DetailLayout is the timestamp layout of the show view.
	DetailLayout = "2006-01-02T15:04:05Z07:00"
)

// Printer renders tasks to a writer. Styles come from a renderer bound to
// that writer, so colour is only emitted when the writer supports it.
type Printer struct {
	w io.Writer

	header lipgloss.Style
	id     lipgloss.Style
	dim    lipgloss.Style
	status map[domain.Status]lipgloss.Style
}

// NewPrinter creates a Printer for w. With color false every style renders
// as plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true),
		id:     r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:    r.NewStyle().Faint(true),
		status: map[domain.Status]lipgloss.Style{
			domain.Open:       r.NewStyle().Foreground(lipgloss.Color("1")),
			domain.InProgress: r.NewStyle().Foreground(lipgloss.Color("4")),
			domain.Done:       r.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}
}

// Status returns the styled label of s.
func (p *Printer) Status(s domain.Status) string {
	style, ok := p.status[s]
	if !ok {
		return s.Label()
	}
	return style.Render(s.Label())
}

// FormatTask writes one list row.
// Format: "{SHORT ID:<8}  {STATUS:<11}  {CREATED}  {TITLE}\n"
func (p *Printer) FormatTask(task domain.Task) {
	fmt.Fprintf(p.w, "%s  %s  %s  %s\n",
		pad(p.id.Render(task.ID.Short()), len(task.ID.Short()), idWidth),
		pad(p.Status(task.Status), len(task.Status.Label()), statusWidth),
		p.dim.Render(task.CreatedAt.UTC().Format(CreatedLayout)),
		normalizeTitle(task.Title),
	)
}

// FormatList writes a header, one row per task and a page footer.
// An empty store prints "No tasks." only.
func (p *Printer) FormatList(tasks []domain.Task, page, pageSize, total int) {
	if total == 0 {
		fmt.Fprintln(p.w, "No tasks.")
		return
	}
	fmt.Fprintf(p.w, "%s  %s  %s  %s\n",
		pad(p.header.Render("ID"), len("ID"), idWidth),
		pad(p.header.Render("STATUS"), len("STATUS"), statusWidth),
		pad(p.header.Render("CREATED"), len("CREATED"), createdWidth),
		p.header.Render("TITLE"),
	)
	for _, t := range tasks {
		p.FormatTask(t)
	}
	if len(tasks) == 0 {
		fmt.Fprintf(p.w, "No tasks on page %d.\n", page)
	}
	fmt.Fprintln(p.w, p.dim.Render(fmt.Sprintf("Page %d/%d  total: %d  page size: %d", page, PageCount(total, pageSize), total, pageSize)))
}

// FormatDetail writes every field of a task, one per line.
func (p *Printer) FormatDetail(task domain.Task) {
	desc := strings.TrimSpace(task.Description)
	if desc == "" {
		desc = p.dim.Render("(none)")
	}
	fmt.Fprintf(p.w, "ID:          %s\n", p.id.Render(string(task.ID)))
	fmt.Fprintf(p.w, "Title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(p.w, "Description: %s\n", desc)
	fmt.Fprintf(p.w, "Status:      %s\n", p.Status(task.Status))
	fmt.Fprintf(p.w, "Created:     %s\n", task.CreatedAt.UTC().Format(DetailLayout))
	fmt.Fprintf(p.w, "Updated:     %s\n", task.UpdatedAt.UTC().Format(DetailLayout))
}

// FormatChange writes a one-line confirmation such as
// "added  3f2a9c1e  Buy milk".
func (p *Printer) FormatChange(verb string, task domain.Task) {
	fmt.Fprintf(p.w, "%s  %s  %s\n", verb, p.id.Render(task.ID.Short()), normalizeTitle(task.Title))
}

// PageCount returns the number of pages needed for total items, at least 1.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// pad right-pads a rendered cell whose visible width is n.
func pad(rendered string, n, width int) string {
	if n >= width {
		return rendered
	}
	return rendered + strings.Repeat(" ", width-n)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
