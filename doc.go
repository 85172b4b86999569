// Package dispatchsim is an in-memory emergency services simulator:
// a small city network for routing ambulances, plus two crowd containers
// for tracking people at a scene.
//
// What is inside?
//
//   - core: undirected weighted Location graph, insertion-ordered
//   - bfs, dfs: breadth-first and depth-first traversals with hooks
//   - dijkstra: single-source distances and the two-point ambulance route
//   - stack: last-in first-out container of names
//   - queue: first-in first-out container of names
//   - crowd: one Stack plus one Queue, reporting structured events
//   - console: renderer and the 13-item operator menu
//   - config: YAML seed network and log level, validated
//   - metrics: per-session Prometheus counters
//
// The dispatchsim command under cmd/ wires them together:
//
//	go run ./cmd/dispatchsim --log-level debug
//
// Quick ASCII example of the built-in network:
//
//	   [Hospital]──5──[Fire Station]
//	     │    \             │
//	     3     10           8
//	     │       \          │
//	[Police Station]──6──[Accident Site]
//
// The fastest ambulance route from Hospital to Accident Site goes through
// Police Station and takes 9.
package dispatchsim
