// Package rograph holds the oscillator-network graph: dense integer
// node labels bound to hexgrid cells, an undirected simple edge set,
// and the degree-6 coupling cap of the physical lattice.
//
// What:
//
//   - Edge: an unordered pair of distinct node labels (canonical U < V).
//   - Builder: the only way to assemble a Graph; enforces every
//     structural rule at insertion time (bounds, occupancy, loops,
//     duplicates, degree cap, hex adjacency).
//   - Graph: the immutable result. Once Build succeeds the graph is
//     connected and never mutated again.
//
// Why:
//
//   - The generator needs cheap degree/adjacency queries while wiring.
//   - Downstream consumers (enable synthesis, netlist writers) must be
//     able to trust the invariants without re-checking them.
//
// Invariants (checked, not assumed):
//
//   - Every edge connects two nodes whose cells are hex-adjacent,
//     except explicitly flagged repair edges (see Builder.AddRepairEdge).
//   - Every node's degree ≤ MaxDegree (6).
//   - Build refuses to expose a disconnected graph (ErrDisconnected).
//
// Complexity:
//
//   - AddNode/AddEdge/HasEdge/Degree: O(1) expected.
//   - Build (connectivity sweep): O(V+E).
//
// Errors: see the sentinels in types.go; branch with errors.Is.
package rograph
