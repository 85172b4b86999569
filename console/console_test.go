package console

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispatchsim/config"
	"github.com/katalvlaran/dispatchsim/core"
	"github.com/katalvlaran/dispatchsim/crowd"
	"github.com/katalvlaran/dispatchsim/dijkstra"
)

func seedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := config.Default().Build()
	require.NoError(t, err)

	return g
}

// menuText is what one loop iteration prints before reading a choice.
func menuText() string {
	return "\n" + menuHeader + "\n" + strings.Join(menuItems, "\n") + "\n" + choicePrompt
}

func runMenu(t *testing.T, g *core.Graph, input string, opts ...MenuOption) (string, *Menu) {
	t.Helper()
	var out bytes.Buffer
	m := NewMenu(g, strings.NewReader(input), &out, opts...)
	require.NoError(t, m.Run(context.Background()))

	return out.String(), m
}

func TestRenderer_Graph(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).Graph(seedGraph(t))

	want := "Graph Representation:\n" +
		"Hospital -> (Fire Station, 5) (Police Station, 3) (Accident Site, 10) \n" +
		"Fire Station -> (Hospital, 5) (Accident Site, 8) \n" +
		"Police Station -> (Hospital, 3) (Accident Site, 6) \n" +
		"Accident Site -> (Fire Station, 8) (Police Station, 6) (Hospital, 10) \n"
	assert.Equal(t, want, out.String())
}

func TestRenderer_IsolatedLocation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Harbor"))

	var out bytes.Buffer
	NewRenderer(&out).Graph(g)
	assert.Equal(t, "Graph Representation:\nHarbor -> \n", out.String())
}

func TestRenderer_Route(t *testing.T) {
	route, err := dijkstra.ShortestPath(seedGraph(t), "Hospital", "Accident Site")
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRenderer(&out)
	r.Route(route)
	r.NoRoute("Hospital", "Harbor")
	r.EndpointNotFound()

	assert.Equal(t,
		"Optimized Route (Ambulance): Hospital -> Police Station -> Accident Site | Distance: 9\n"+
			"No route found from Hospital to Harbor\n"+
			"Start or end node not found in graph.\n",
		out.String())
}

func TestRenderer_Events(t *testing.T) {
	tests := []struct {
		name string
		ev   crowd.Event
		want string
	}{
		{"added", crowd.Event{Kind: crowd.KindAdded, Container: crowd.Stack, Names: []string{"Ana"}}, "Ana added to Stack.\n"},
		{"removed", crowd.Event{Kind: crowd.KindRemoved, Container: crowd.Queue, Names: []string{"Ben"}}, "Ben removed from Queue.\n"},
		{"nobody", crowd.Event{Kind: crowd.KindNobody, Container: crowd.Stack}, "No one in the Stack.\n"},
		{"drained", crowd.Event{Kind: crowd.KindDrained, Container: crowd.Stack, Names: []string{"C", "B", "A"}},
			"People removed from Stack in order: C B A \nCrowd Stack has been emptied.\n"},
		{"already empty", crowd.Event{Kind: crowd.KindAlreadyEmpty, Container: crowd.Queue},
			"Crowd Queue is already empty.\nCrowd Queue has been emptied.\n"},
		{"contents", crowd.Event{Kind: crowd.KindContents, Container: crowd.Queue, Names: []string{"A", "B"}}, "Queue contents: A B \n"},
		{"empty", crowd.Event{Kind: crowd.KindEmpty, Container: crowd.Stack}, "Stack is empty.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewRenderer(&out).Event(tt.ev)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestParseAction(t *testing.T) {
	for token, want := range map[string]Action{"1": ActionDisplayGraph, "4": ActionRoute, "13": ActionExit} {
		a, ok := ParseAction(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, a)
	}
	for _, token := range []string{"0", "14", "-1", "x", "2abc", ""} {
		_, ok := ParseAction(token)
		assert.False(t, ok, token)
	}
	assert.Equal(t, "invalid", Action(0).String())
	assert.Equal(t, "route", ActionRoute.String())
}

func TestMenu_Traversals(t *testing.T) {
	out, _ := runMenu(t, seedGraph(t), "2 Hospital\n3 Hospital\n2 Unknown\n13\n")

	want := menuText() + startPrompt +
		"BFS Traversal starting from Hospital: Hospital Fire Station Police Station Accident Site \n" +
		menuText() + startPrompt +
		"DFS Traversal starting from Hospital: Hospital Fire Station Accident Site Police Station \n" +
		menuText() + startPrompt +
		"Start node not found in graph.\n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)
}

func TestMenu_DisplayGraph(t *testing.T) {
	out, _ := runMenu(t, seedGraph(t), "1 13")

	want := menuText() +
		"Graph Representation:\n" +
		"Hospital -> (Fire Station, 5) (Police Station, 3) (Accident Site, 10) \n" +
		"Fire Station -> (Hospital, 5) (Accident Site, 8) \n" +
		"Police Station -> (Hospital, 3) (Accident Site, 6) \n" +
		"Accident Site -> (Fire Station, 8) (Police Station, 6) (Hospital, 10) \n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)
}

func TestMenu_Route(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("Depot", "RingRd", 4)
	g.AddEdge("RingRd", "Clinic", 1)
	g.AddEdge("Depot", "Clinic", 7)
	g.AddEdge("Harbor", "Airport", 2)

	out, m := runMenu(t, g, "4 Depot Clinic 4 Depot Unknown 4 Depot Airport 13")

	want := menuText() + startPrompt + endPrompt +
		"Optimized Route (Ambulance): Depot -> RingRd -> Clinic | Distance: 5\n" +
		menuText() + startPrompt + endPrompt +
		"Start or end node not found in graph.\n" +
		menuText() + startPrompt + endPrompt +
		"No route found from Depot to Airport\n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)

	rec := m.Recorder()
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.ActionsTotal.WithLabelValues("route")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SoftFailuresTotal.WithLabelValues("route", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SoftFailuresTotal.WithLabelValues("route", "no_route")))
}

func TestMenu_CrowdStack(t *testing.T) {
	out, _ := runMenu(t, core.NewGraph(), "6 11 5 A 5 B 5 C 7 6 11 7 13")

	prompt := "Enter person name to add to Stack: "
	want := menuText() + "No one in the Stack.\n" +
		menuText() + "Crowd Stack is already empty.\nCrowd Stack has been emptied.\n" +
		menuText() + prompt + "A added to Stack.\n" +
		menuText() + prompt + "B added to Stack.\n" +
		menuText() + prompt + "C added to Stack.\n" +
		menuText() + "Stack contents: C B A \n" +
		menuText() + "C removed from Stack.\n" +
		menuText() + "People removed from Stack in order: B A \nCrowd Stack has been emptied.\n" +
		menuText() + "Stack is empty.\n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)
}

func TestMenu_CrowdQueue(t *testing.T) {
	out, m := runMenu(t, core.NewGraph(), "9 8 A 8 B 8 C 10 10 9 12 12 10 13")

	prompt := "Enter person name to add to Queue: "
	want := menuText() + "No one in the Queue.\n" +
		menuText() + prompt + "A added to Queue.\n" +
		menuText() + prompt + "B added to Queue.\n" +
		menuText() + prompt + "C added to Queue.\n" +
		menuText() + "Queue contents: A B C \n" +
		menuText() + "Queue contents: A B C \n" +
		menuText() + "A removed from Queue.\n" +
		menuText() + "People removed from Queue in order: B C \nCrowd Queue has been emptied.\n" +
		menuText() + "Crowd Queue is already empty.\nCrowd Queue has been emptied.\n" +
		menuText() + "Queue is empty.\n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)

	s, err := m.Recorder().Summary()
	require.NoError(t, err)
	assert.Equal(t, 11, s.Total())
	assert.Equal(t, 3, s.SoftFailures)
}

func TestMenu_InvalidChoices(t *testing.T) {
	out, m := runMenu(t, core.NewGraph(), "0 14 abc 13")

	want := menuText() + "Invalid choice!\n" +
		menuText() + "Invalid choice!\n" +
		menuText() + "Invalid choice!\n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Recorder().ActionsTotal.WithLabelValues("invalid")))
}

func TestMenu_EndOfInput(t *testing.T) {
	out, _ := runMenu(t, core.NewGraph(), "")
	assert.Equal(t, menuText(), out)

	out, _ = runMenu(t, seedGraph(t), "4 Hospital")
	assert.Equal(t, menuText()+startPrompt+endPrompt, out)
}

func TestMenu_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(core.NewGraph(), strings.NewReader("1 13"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

func TestMenu_SharedCrowdAndRecorder(t *testing.T) {
	c := crowd.New()
	c.AddToQueue("Ana")

	out, _ := runMenu(t, core.NewGraph(), "10 13", WithCrowd(c), WithRecorder(nil), WithLogger(nil))
	assert.Contains(t, out, "Queue contents: Ana \n")
}

func TestMenu_LogsSoftFailures(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runMenu(t, seedGraph(t), "3 Nowhere 13", WithLogger(logger))

	assert.Contains(t, logs.String(), "msg=\"soft failure\"")
	assert.Contains(t, logs.String(), "action=dfs")
	assert.Contains(t, logs.String(), "reason=not_found")
	assert.Contains(t, logs.String(), "start=Nowhere")
	assert.Contains(t, logs.String(), "msg=\"soft failure\" action=dfs reason=not_found start=Nowhere\n")
}

func TestMenu_LongToken(t *testing.T) {
	name := strings.Repeat("x", 70000)
	out, _ := runMenu(t, core.NewGraph(), "5 "+name+" 7 13")

	prompt := "Enter person name to add to Stack: "
	want := menuText() + prompt + name + " added to Stack.\n" +
		menuText() + "Stack contents: " + name + " \n" +
		menuText() + "Exiting Emergency Services System.\n"
	assert.Equal(t, want, out)
}

func TestMenu_LogsTraversalSteps(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runMenu(t, seedGraph(t), "2 Hospital 3 Hospital 13", WithLogger(logger))

	text := logs.String()
	assert.Equal(t, 8, strings.Count(text, "msg=\"location reached\""), "four locations per traversal")
	assert.Contains(t, text, "kind=BFS location=\"Police Station\" hops=1 from=Hospital edge=e2 weight=3")
	assert.Contains(t, text, "kind=DFS location=\"Accident Site\"")
	assert.Contains(t, text, "msg=\"traversal finished\" kind=DFS start=Hospital visited=4")
}
