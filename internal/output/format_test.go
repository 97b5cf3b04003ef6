package output

import (
	"bytes"
	"testing"
	"time"

	"notes/internal/domain"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func sampleTask(id, title string, status domain.Status) domain.Task {
	return domain.Task{
		ID:        domain.TaskID(id),
		Title:     title,
		Status:    status,
		CreatedAt: epoch,
		UpdatedAt: epoch.Add(90 * time.Second),
	}
}

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want string
	}{
		{
			name: "uuid is shortened",
			task: sampleTask("3f2a9c1e-1111-2222-3333-444455556666", "Buy milk", domain.Open),
			want: "3f2a9c1e  Open         2025-01-01 12:00  Buy milk\n",
		},
		{
			name: "short id is padded",
			task: sampleTask("id-1", "Write report", domain.InProgress),
			want: "id-1      In Progress  2025-01-01 12:00  Write report\n",
		},
		{
			name: "newlines in title",
			task: sampleTask("id-2", "line one\nline two", domain.Done),
			want: "id-2      Done         2025-01-01 12:00  line one line two\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, false).FormatTask(tt.task)
			if got := buf.String(); got != tt.want {
				t.Errorf("FormatTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.FormatList([]domain.Task{
		sampleTask("id-1", "Buy milk", domain.Open),
		sampleTask("id-2", "Call mom", domain.Done),
	}, 1, 20, 2)

	want := "" +
		"ID        STATUS       CREATED           TITLE\n" +
		"id-1      Open         2025-01-01 12:00  Buy milk\n" +
		"id-2      Done         2025-01-01 12:00  Call mom\n" +
		"Page 1/1  total: 2  page size: 20\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatList() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatList_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).FormatList(nil, 1, 20, 0)

	if got, want := buf.String(), "No tasks.\n"; got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}
}

func TestFormatList_PastLastPage(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).FormatList([]domain.Task{}, 3, 2, 5)

	want := "" +
		"ID        STATUS       CREATED           TITLE\n" +
		"No tasks on page 3.\n" +
		"Page 3/3  total: 5  page size: 2\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatList() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	task := sampleTask("id-1", "Buy milk", domain.InProgress)
	p.FormatDetail(task)
	task.Description = "2% lactose-free"
	p.FormatDetail(task)

	want := "" +
		"ID:          id-1\n" +
		"Title:       Buy milk\n" +
		"Description: (none)\n" +
		"Status:      In Progress\n" +
		"Created:     2025-01-01T12:00:00Z\n" +
		"Updated:     2025-01-01T12:01:30Z\n" +
		"ID:          id-1\n" +
		"Title:       Buy milk\n" +
		"Description: 2% lactose-free\n" +
		"Status:      In Progress\n" +
		"Created:     2025-01-01T12:00:00Z\n" +
		"Updated:     2025-01-01T12:01:30Z\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatDetail() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatChange(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).FormatChange("removed", sampleTask("3f2a9c1e-aaaa", "Buy milk", domain.Open))

	if got, want := buf.String(), "removed  3f2a9c1e  Buy milk\n"; got != want {
		t.Errorf("FormatChange() = %q, want %q", got, want)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{5, 2, 3},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Buy milk", "Buy milk"},
		{"", "(untitled)"},
		{"   ", "(untitled)"},
		{"a\r\nb", "a  b"},
	}
	for _, tt := range tests {
		if got := normalizeTitle(tt.input); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatus_Colored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	if got := p.Status(domain.Done); got != "Done" {
		t.Errorf("Status(Done) = %q, want plain label", got)
	}
	if got := p.Status(domain.Status("weird")); got != "weird" {
		t.Errorf("Status(weird) = %q", got)
	}
}
