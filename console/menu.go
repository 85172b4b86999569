package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/dispatchsim/bfs"
	"github.com/katalvlaran/dispatchsim/core"
	"github.com/katalvlaran/dispatchsim/crowd"
	"github.com/katalvlaran/dispatchsim/dfs"
	"github.com/katalvlaran/dispatchsim/dijkstra"
	"github.com/katalvlaran/dispatchsim/metrics"
)

// Action is a menu selection. Values match the numbers shown to the operator.
type Action int

const (
	ActionDisplayGraph Action = iota + 1
	ActionBFS
	ActionDFS
	ActionRoute
	ActionStackAdd
	ActionStackRemove
	ActionStackDisplay
	ActionQueueAdd
	ActionQueueRemove
	ActionQueueDisplay
	ActionStackEmpty
	ActionQueueEmpty
	ActionExit
)

var actionLabels = map[Action]string{
	ActionDisplayGraph: "display_graph",
	ActionBFS:          "bfs",
	ActionDFS:          "dfs",
	ActionRoute:        "route",
	ActionStackAdd:     "stack_add",
	ActionStackRemove:  "stack_remove",
	ActionStackDisplay: "stack_display",
	ActionQueueAdd:     "queue_add",
	ActionQueueRemove:  "queue_remove",
	ActionQueueDisplay: "queue_display",
	ActionStackEmpty:   "stack_empty",
	ActionQueueEmpty:   "queue_empty",
	ActionExit:         "exit",
}

// String returns the metric label of a; out-of-range values are "invalid".
func (a Action) String() string {
	if s, ok := actionLabels[a]; ok {
		return s
	}

	return "invalid"
}

// ParseAction converts an input token into an Action.
// Non-numeric tokens and numbers outside 1..13 report ok=false.
func ParseAction(token string) (Action, bool) {
	n, err := strconv.Atoi(token)
	if err != nil || n < int(ActionDisplayGraph) || n > int(ActionExit) {
		return 0, false
	}

	return Action(n), true
}

// maxTokenSize bounds a single input word. bufio.Scanner's 64 KiB default
// would end the session on one long name.
const maxTokenSize = 16 << 20

// errEndOfInput stops the loop quietly when the reader is exhausted.
var errEndOfInput = errors.New("console: end of input")

// Menu is the read-eval loop over one Location graph and one crowd Control.
type Menu struct {
	graph  *core.Graph
	crowd  *crowd.Control
	in     *bufio.Scanner
	out    *Renderer
	logger *slog.Logger
	rec    *metrics.Recorder
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithLogger sets the diagnostics logger. Default discards everything.
func WithLogger(l *slog.Logger) MenuOption {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRecorder sets the counters updated by each action.
// By default the Menu creates its own Recorder.
func WithRecorder(r *metrics.Recorder) MenuOption {
	return func(m *Menu) {
		if r != nil {
			m.rec = r
		}
	}
}

// WithCrowd replaces the crowd containers, e.g. to resume a session.
func WithCrowd(c *crowd.Control) MenuOption {
	return func(m *Menu) {
		if c != nil {
			m.crowd = c
		}
	}
}

// NewMenu returns a Menu reading whitespace-separated tokens from in and
// writing to out. g must not be nil.
func NewMenu(g *core.Graph, in io.Reader, out io.Writer, opts ...MenuOption) *Menu {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	m := &Menu{
		graph:  g,
		crowd:  crowd.New(),
		in:     sc,
		out:    NewRenderer(out),
		logger: slog.New(slog.DiscardHandler),
		rec:    metrics.NewRecorder(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Recorder returns the counters this Menu updates.
func (m *Menu) Recorder() *metrics.Recorder { return m.rec }

// Run loops until the operator chooses Exit, input ends, or ctx is cancelled.
// Exit and end of input return nil; cancellation returns ctx.Err().
// Unknown locations, missing routes and empty containers are reported to
// the operator and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.out.Menu()
		token, err := m.next()
		if err != nil {
			return m.finish(err)
		}

		action, ok := ParseAction(token)
		if !ok {
			m.rec.RecordAction(Action(0).String())
			m.logger.Debug("invalid menu choice", slog.Int("length", len(token)))
			m.out.InvalidChoice()
			continue
		}

		m.rec.RecordAction(action.String())
		m.logger.Debug("menu action", slog.String("action", action.String()))
		if action == ActionExit {
			m.out.Exit()
			return nil
		}
		if err := m.dispatch(ctx, action); err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		m.logger.Debug("input closed")
		return nil
	}

	return err
}

// next returns the next input token, errEndOfInput at EOF, or the read error.
func (m *Menu) next() (string, error) {
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", fmt.Errorf("console: read input: %w", err)
	}

	return "", errEndOfInput
}

// ask prints prompt and reads one token.
func (m *Menu) ask(prompt string) (string, error) {
	m.out.Prompt(prompt)

	return m.next()
}

func (m *Menu) dispatch(ctx context.Context, a Action) error {
	switch a {
	case ActionDisplayGraph:
		m.out.Graph(m.graph)
	case ActionBFS, ActionDFS:
		start, err := m.ask(startPrompt)
		if err != nil {
			return err
		}
		return m.traverse(ctx, a, start)
	case ActionRoute:
		start, err := m.ask(startPrompt)
		if err != nil {
			return err
		}
		end, err := m.ask(endPrompt)
		if err != nil {
			return err
		}
		return m.route(start, end)
	case ActionStackAdd:
		name, err := m.ask("Enter person name to add to Stack: ")
		if err != nil {
			return err
		}
		m.event(a, m.crowd.AddToStack(name))
	case ActionStackRemove:
		m.event(a, m.crowd.RemoveFromStack())
	case ActionStackDisplay:
		m.event(a, m.crowd.StackContents())
	case ActionQueueAdd:
		name, err := m.ask("Enter person name to add to Queue: ")
		if err != nil {
			return err
		}
		m.event(a, m.crowd.AddToQueue(name))
	case ActionQueueRemove:
		m.event(a, m.crowd.RemoveFromQueue())
	case ActionQueueDisplay:
		m.event(a, m.crowd.QueueContents())
	case ActionStackEmpty:
		m.event(a, m.crowd.EmptyStack())
	case ActionQueueEmpty:
		m.event(a, m.crowd.EmptyQueue())
	}

	return nil
}

func (m *Menu) traverse(ctx context.Context, a Action, start string) error {
	var (
		order []string
		err   error
		kind  string
	)
	if a == ActionBFS {
		kind = "BFS"
		var res *bfs.BFSResult
		res, err = bfs.BFS(m.graph, start,
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(s bfs.Step) error {
				m.logger.Debug("location reached",
					slog.String("kind", kind),
					slog.String("location", s.Location),
					slog.Int("hops", s.Hops),
					slog.String("from", s.From),
					slog.String("edge", s.Road.EdgeID),
					slog.Int64("weight", s.Road.Weight))
				return nil
			}))
		if err == nil {
			order = res.Order
		}
	} else {
		kind = "DFS"
		var res *dfs.DFSResult
		res, err = dfs.DFS(m.graph, start,
			dfs.WithContext(ctx),
			dfs.WithOnVisit(func(id string) error {
				m.logger.Debug("location reached", slog.String("kind", kind), slog.String("location", id))
				return nil
			}))
		if err == nil {
			order = res.Order
		}
	}

	switch {
	case err == nil:
		m.out.Traversal(kind, start, order)
		m.logger.Debug("traversal finished",
			slog.String("kind", kind), slog.String("start", start), slog.Int("visited", len(order)))
	case errors.Is(err, bfs.ErrStartVertexNotFound), errors.Is(err, dfs.ErrStartVertexNotFound):
		m.soft(a, "not_found", slog.String("start", start))
		m.out.StartNotFound()
	default:
		return fmt.Errorf("console: %s from %q: %w", kind, start, err)
	}

	return nil
}

func (m *Menu) route(start, end string) error {
	r, err := dijkstra.ShortestPath(m.graph, start, end)
	switch {
	case err == nil:
		m.out.Route(r)
		m.logger.Debug("route found",
			slog.String("from", start), slog.String("to", end),
			slog.Int64("distance", r.Distance), slog.Int("hops", len(r.Path)-1))
	case errors.Is(err, dijkstra.ErrVertexNotFound):
		m.soft(ActionRoute, "not_found", slog.String("from", start), slog.String("to", end))
		m.out.EndpointNotFound()
	case errors.Is(err, dijkstra.ErrNoRoute):
		m.soft(ActionRoute, "no_route", slog.String("from", start), slog.String("to", end))
		m.out.NoRoute(start, end)
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		m.logger.Warn("route undefined on negative weights",
			slog.String("from", start), slog.String("to", end), slog.Any("error", err))
		m.rec.RecordSoftFailure(ActionRoute.String(), "negative_weight")
		m.out.NoRoute(start, end)
	default:
		return fmt.Errorf("console: route %q→%q: %w", start, end, err)
	}

	return nil
}

func (m *Menu) event(a Action, ev crowd.Event) {
	if ev.Kind.Soft() {
		m.soft(a, ev.Kind.String(), slog.String("container", string(ev.Container)))
	} else {
		m.logger.Debug("crowd event",
			slog.String("kind", ev.Kind.String()),
			slog.String("container", string(ev.Container)),
			slog.Any("names", ev.Names))
	}
	m.out.Event(ev)
}

func (m *Menu) soft(a Action, reason string, attrs ...slog.Attr) {
	m.rec.RecordSoftFailure(a.String(), reason)
	all := append([]slog.Attr{slog.String("action", a.String()), slog.String("reason", reason)}, attrs...)
	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "soft failure", all...)
}
