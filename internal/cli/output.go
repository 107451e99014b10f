package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/connect4-go/internal/model"
	"github.com/mcoot/connect4-go/internal/services/session"
)

// minCellWidth keeps short colors from producing a cramped grid
const minCellWidth = 7

// tokenColors maps color names players commonly pick to terminal colors
var tokenColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"purple":  lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"orange":  lipgloss.Color("208"),
	"pink":    lipgloss.Color("205"),
}

// Output handles formatting output based on the configured format
type Output struct {
	format   string
	w        io.Writer
	renderer *lipgloss.Renderer
}

// Ensure Output can display a session
var _ session.Display = (*Output)(nil)

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{
		format:   format,
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// ShowGrid renders the grid
func (o *Output) ShowGrid(grid *model.Grid) {
	if o.format == OutputJSON {
		o.printJSON(GridState{Grid: grid.Occupants()})
		return
	}
	_, _ = fmt.Fprint(o.w, renderGrid(grid, o.paintToken))
}

// ShowMessage outputs a simple message
func (o *Output) ShowMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	_, _ = fmt.Fprintln(o.w, msg)
}

// ShowPrompt asks for input. Text prompts stay on the input line.
func (o *Output) ShowPrompt(prompt string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"prompt": prompt})
		return
	}
	_, _ = fmt.Fprint(o.w, prompt)
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
		return
	}
	switch v := data.(type) {
	case Rules:
		o.printRules(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// paintToken styles a player's token in the color they named. Writers
// without color support get the name unchanged.
func (o *Output) paintToken(name string) string {
	style := o.renderer.NewStyle().Bold(true)
	if c, ok := tokenColors[strings.ToLower(name)]; ok {
		style = style.Foreground(c)
	}
	return style.Render(name)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	_ = enc.Encode(data)
}

func (o *Output) printRules(r Rules) {
	_, _ = fmt.Fprintf(o.w, "Grid: %d rows x %d columns\n", r.Rows, r.Columns)
	_, _ = fmt.Fprintf(o.w, "Connect: %d\n\n", r.Connect)
	for i, rule := range r.Rules {
		_, _ = fmt.Fprintf(o.w, "%d. %s\n", i+1, rule)
	}
}

// GridState is the JSON form of a rendered grid: rows top to bottom,
// "" for empty cells
type GridState struct {
	Grid [][]string `json:"grid"`
}

// Rules response type
type Rules struct {
	Rows    int      `json:"rows"`
	Columns int      `json:"columns"`
	Connect int      `json:"connect"`
	Rules   []string `json:"rules"`
}

// RenderGrid draws the grid as boxes with 1-indexed column numbers above and
// below. Occupied boxes show the player's color.
func RenderGrid(grid *model.Grid) string {
	return renderGrid(grid, func(name string) string { return name })
}

func renderGrid(grid *model.Grid, paint func(string) string) string {
	width := cellWidth(grid)

	var b strings.Builder
	b.WriteString("\n")
	writeColumnLabels(&b, width)
	border := "  +" + strings.Repeat(strings.Repeat("-", width)+"+", model.Columns) + "\n"
	blank := "  |" + strings.Repeat(strings.Repeat(" ", width)+"|", model.Columns) + "\n"

	b.WriteString(border)
	for row := 0; row < model.Rows; row++ {
		b.WriteString(blank)
		b.WriteString("  |")
		for col := 0; col < model.Columns; col++ {
			b.WriteString(centerToken(grid.Cell(row, col), width, paint))
			b.WriteString("|")
		}
		b.WriteString("\n")
		b.WriteString(blank)
		b.WriteString(border)
	}
	writeColumnLabels(&b, width)
	return b.String()
}

func writeColumnLabels(b *strings.Builder, width int) {
	b.WriteString("   ")
	for col := 0; col < model.Columns; col++ {
		b.WriteString(center(fmt.Sprintf("%d", col+1), width))
		b.WriteString(" ")
	}
	b.WriteString("\n")
}

// cellWidth fits the longest color on the grid with a space either side
func cellWidth(grid *model.Grid) int {
	width := minCellWidth
	for row := 0; row < model.Rows; row++ {
		for col := 0; col < model.Columns; col++ {
			if n := utf8.RuneCountInString(grid.Cell(row, col).String()) + 2; n > width {
				width = n
			}
		}
	}
	return width
}

// centerToken pads by the plain name so styling does not shift the box
func centerToken(cell model.Cell, width int, paint func(string) string) string {
	player, ok := cell.Occupant()
	if !ok {
		return strings.Repeat(" ", width)
	}
	name := string(player)
	n := utf8.RuneCountInString(name)
	if n >= width {
		return paint(name)
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + paint(name) + strings.Repeat(" ", width-n-left)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
