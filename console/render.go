// Package console is the text front end of the dispatch simulator.
//
// Renderer turns graph snapshots, traversal orders, routes and crowd events
// into the exact lines an operator sees. Menu reads choices from an
// io.Reader, calls the domain packages, and hands their results to a Renderer.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dispatchsim/core"
	"github.com/katalvlaran/dispatchsim/crowd"
	"github.com/katalvlaran/dispatchsim/dijkstra"
)

// Menu lines, in display order after the header.
var menuItems = []string{
	"1. Display Graph",
	"2. BFS Traversal (Enter starting location, e.g., Hospital)",
	"3. DFS Traversal (Enter starting location, e.g., Hospital)",
	"4. Ambulance Route Optimization (Enter starting and destination locations, e.g., Hospital and Accident Site)",
	"5. Add Person to Crowd Stack (Enter name of person)",
	"6. Remove Person from Crowd Stack",
	"7. Display Crowd Stack",
	"8. Add Person to Crowd Queue (Enter name of person)",
	"9. Remove Person from Crowd Queue",
	"10. Display Crowd Queue",
	"11. Empty Crowd Stack",
	"12. Empty Crowd Queue",
	"13. Exit",
}

const (
	menuHeader   = "Emergency Services Menu:"
	choicePrompt = "Enter your choice: "
	startPrompt  = "Enter starting location (e.g., Hospital): "
	endPrompt    = "Enter destination location (e.g., Accident Site): "
)

// Renderer writes operator-facing text to w.
//
// Styling goes through a lipgloss renderer bound to w, so escape sequences
// appear only when w is a color-capable terminal.
type Renderer struct {
	w      io.Writer
	header lipgloss.Style
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)

	return &Renderer{
		w: w,
		header: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F5F")),
	}
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// Menu prints the blank separator, the header, the 13 items and the choice prompt.
func (r *Renderer) Menu() {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.header.Render(menuHeader))
	b.WriteString("\n")
	for _, item := range menuItems {
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString(choicePrompt)
	_, _ = io.WriteString(r.w, b.String())
}

// Prompt prints text without a line break.
func (r *Renderer) Prompt(text string) {
	_, _ = io.WriteString(r.w, text)
}

// Graph prints every location with its (neighbor, weight) pairs.
func (r *Renderer) Graph(g *core.Graph) {
	var b strings.Builder
	b.WriteString("Graph Representation:\n")
	for _, id := range g.Vertices() {
		b.WriteString(id)
		b.WriteString(" -> ")
		nbs, _ := g.Neighbors(id)
		for _, nb := range nbs {
			fmt.Fprintf(&b, "(%s, %d) ", nb.ID, nb.Weight)
		}
		b.WriteString("\n")
	}
	_, _ = io.WriteString(r.w, b.String())
}

// Traversal prints a BFS or DFS visitation order. kind is "BFS" or "DFS".
func (r *Renderer) Traversal(kind, start string, order []string) {
	r.printf("%s Traversal starting from %s: %s\n", kind, start, spaced(order))
}

// StartNotFound reports an unknown traversal start.
func (r *Renderer) StartNotFound() {
	r.printf("Start node not found in graph.\n")
}

// EndpointNotFound reports an unknown route endpoint.
func (r *Renderer) EndpointNotFound() {
	r.printf("Start or end node not found in graph.\n")
}

// NoRoute reports that end cannot be reached from start.
func (r *Renderer) NoRoute(start, end string) {
	r.printf("No route found from %s to %s\n", start, end)
}

// Route prints an ambulance route and its total distance.
func (r *Renderer) Route(route *dijkstra.Route) {
	r.printf("Optimized Route (Ambulance): %s | Distance: %d\n",
		strings.Join(route.Path, " -> "), route.Distance)
}

// Event prints the outcome of a crowd operation.
func (r *Renderer) Event(ev crowd.Event) {
	c := string(ev.Container)
	switch ev.Kind {
	case crowd.KindAdded:
		r.printf("%s added to %s.\n", first(ev.Names), c)
	case crowd.KindRemoved:
		r.printf("%s removed from %s.\n", first(ev.Names), c)
	case crowd.KindNobody:
		r.printf("No one in the %s.\n", c)
	case crowd.KindDrained:
		r.printf("People removed from %s in order: %s\n", c, spaced(ev.Names))
		r.printf("Crowd %s has been emptied.\n", c)
	case crowd.KindAlreadyEmpty:
		r.printf("Crowd %s is already empty.\n", c)
		r.printf("Crowd %s has been emptied.\n", c)
	case crowd.KindContents:
		r.printf("%s contents: %s\n", c, spaced(ev.Names))
	case crowd.KindEmpty:
		r.printf("%s is empty.\n", c)
	}
}

// Exit prints the farewell line.
func (r *Renderer) Exit() {
	r.printf("Exiting Emergency Services System.\n")
}

// InvalidChoice reports an unrecognized menu selection.
func (r *Renderer) InvalidChoice() {
	r.printf("Invalid choice!\n")
}

// spaced joins names, each followed by one space.
func spaced(names []string) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte(' ')
	}

	return b.String()
}

func first(names []string) string {
	if len(names) == 0 {
		return ""
	}

	return names[0]
}
