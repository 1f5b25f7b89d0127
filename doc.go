// Package skyroute plans drone flights across a 2D elevation grid and
// compares a cost-aware A* search with greedy best-first search.
//
// Moving between orthogonally adjacent cells costs energy that depends on
// the elevation change: climbing is three times as expensive per unit as
// descending, and obstacles (no-fly zones) are never entered.
//
// The library is split into small packages:
//
//	terrain/     elevation grid, obstacles, start/goal, cost function, reachability
//	search/      A*, greedy best-first and uniform-cost search with observation hooks
//	generator/   seeded random terrains
//	render/      text maps (S start, G goal, * path, # obstacle, digits elevation)
//	report/      per-run summaries and side-by-side comparison tables
//	export/      GeoJSON of terrain and paths
//	view/        interactive terminal viewer
//	server/      HTTP route search API
//
// Two commands sit on top: cmd/skyroute prints a generated terrain with
// every strategy's path, and cmd/skyrouted serves the HTTP API.
//
// Quick example:
//
//	m, _ := generator.Generate(10, 10, generator.WithSeed(42))
//	res := search.AStar(m)
//	fmt.Println(res.Found(), res.Steps(), res.Cost)
//
//	go get github.com/katalvlaran/skyroute
package skyroute
