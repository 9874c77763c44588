package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvarela/taskdeck/internal/models"
)

var (
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Strikethrough(true)
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	doneMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Render("✓")
	openMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261")).Render("·")
)

var priorityStyles = map[models.Priority]lipgloss.Style{
	models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
	models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
	models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")),
}

// colored renders s in the record's own color when it carries one.
func colored(s string, color *string) string {
	if color == nil {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(*color)).Render(s)
}

func renderTask(t models.Task) string {
	var b strings.Builder

	mark := openMark
	if t.IsCompleted {
		mark = doneMark
	}
	b.WriteString(fmt.Sprintf("%s %s %s", idStyle.Render(fmt.Sprintf("%4d", t.ID)), mark, renderTitle(t)))

	if t.Priority != nil {
		if style, ok := priorityStyles[*t.Priority]; ok {
			b.WriteString(" " + style.Render("["+string(*t.Priority)+"]"))
		}
	}
	if t.ScheduledDate != nil {
		b.WriteString(" " + dateStyle.Render("@"+t.ScheduledDate.Local().Format("2006-01-02")))
	}
	if t.DeadlineDate != nil {
		b.WriteString(" " + dateStyle.Render("!"+t.DeadlineDate.Local().Format("2006-01-02")))
	}
	for _, tag := range t.Tags {
		b.WriteString(" " + colored("#"+tag.Name, tag.Color))
	}
	return b.String()
}

func renderTitle(t models.Task) string {
	if t.IsCompleted {
		return dimStyle.Render(t.Title)
	}
	return titleStyle.Render(t.Title)
}

func renderArea(a models.Area) string {
	return fmt.Sprintf("%s %s", idStyle.Render(fmt.Sprintf("%4d", a.ID)), colored(a.Name, a.Color))
}

func renderProject(p models.Project) string {
	mark := openMark
	name := titleStyle.Render(p.Name)
	if p.IsCompleted {
		mark = doneMark
		name = dimStyle.Render(p.Name)
	}
	s := fmt.Sprintf("%s %s %s", idStyle.Render(fmt.Sprintf("%4d", p.ID)), mark, colored(name, p.Color))
	if p.Description != nil {
		s += " " + idStyle.Render(*p.Description)
	}
	return s
}

func renderTag(t models.Tag) string {
	return fmt.Sprintf("%s %s", idStyle.Render(fmt.Sprintf("%4d", t.ID)), colored("#"+t.Name, t.Color))
}

// parseDate parses a YYYY-MM-DD argument in the caller's local timezone.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
