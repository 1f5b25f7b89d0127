package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/katalvlaran/skyroute/generator"
	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

// generateRequest asks for a random terrain instead of an explicit one.
// Nil pointers select the generator defaults.
type generateRequest struct {
	Width         int   `json:"width"`
	Height        int   `json:"height"`
	Seed          int64 `json:"seed"`
	MaxElevation  *int  `json:"max_elevation,omitempty"`
	NoFlyZones    *int  `json:"no_fly_zones,omitempty"`
	ReachableGoal bool  `json:"reachable_goal,omitempty"`
}

// routeRequest describes one search. Exactly one of Generate or the
// explicit grid fields is used; Generate wins when present.
type routeRequest struct {
	Width     int              `json:"width,omitempty"`
	Height    int              `json:"height,omitempty"`
	Elevation [][]int          `json:"elevation,omitempty"`
	Obstacles [][2]int         `json:"obstacles,omitempty"`
	Start     *[2]int          `json:"start,omitempty"`
	Goal      *[2]int          `json:"goal,omitempty"`
	Strategy  string           `json:"strategy,omitempty"`
	Generate  *generateRequest `json:"generate,omitempty"`
}

type routeResponse struct {
	ID        string   `json:"id"`
	Strategy  string   `json:"strategy"`
	Start     [2]int   `json:"start"`
	Goal      [2]int   `json:"goal"`
	Reachable bool     `json:"reachable"` // start and goal share a region of valid cells
	Found     bool     `json:"found"`
	Path      [][2]int `json:"path"`
	Visited   int      `json:"visited"`
	Cost      float64  `json:"cost"`
	ElapsedMS float64  `json:"elapsed_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStrategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"strategies": search.Names()})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	if req.Strategy == "" {
		req.Strategy = search.NameAStar
	}
	strategy, err := search.Lookup(req.Strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	m, err := s.buildMap(req)
	if err != nil {
		writeError(w, err)
		return
	}

	res := strategy(m)
	id := uuid.New()
	s.logger.Printf("[SEARCH] [INFO] run %s strategy=%s found=%t visited=%d cost=%.2f",
		id, req.Strategy, res.Found(), res.Visited, res.Cost)

	start, _ := m.Start()
	goal, _ := m.Goal()
	resp := routeResponse{
		ID:        id.String(),
		Strategy:  req.Strategy,
		Start:     [2]int{start.X, start.Y},
		Goal:      [2]int{goal.X, goal.Y},
		Reachable: m.Connected(start, goal),
		Found:     res.Found(),
		Path:      make([][2]int, len(res.Path)),
		Visited:   res.Visited,
		Cost:      res.Cost,
		ElapsedMS: res.ElapsedMillis(),
	}
	for i, c := range res.Path {
		resp.Path[i] = [2]int{c.X, c.Y}
	}
	writeJSON(w, http.StatusOK, resp)
}

// buildMap turns a request into a terrain with start and goal set.
func (s *Server) buildMap(req routeRequest) (*terrain.Map, error) {
	if req.Generate != nil {
		return s.generate(*req.Generate)
	}

	var m *terrain.Map
	switch {
	case req.Elevation != nil:
		h := len(req.Elevation)
		w := 0
		if h > 0 {
			w = len(req.Elevation[0])
		}
		if (req.Width != 0 && req.Width != w) || (req.Height != 0 && req.Height != h) {
			return nil, fmt.Errorf("%w: elevation is %dx%d, declared %dx%d", ErrInvalidRequest, w, h, req.Width, req.Height)
		}
		if err := s.checkSize(w, h); err != nil {
			return nil, err
		}
		var err error
		if m, err = terrain.FromElevations(req.Elevation); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	case req.Width > 0 && req.Height > 0:
		if err := s.checkSize(req.Width, req.Height); err != nil {
			return nil, err
		}
		m = terrain.New(req.Width, req.Height)
	default:
		return nil, fmt.Errorf("%w: need elevation, width and height, or generate", ErrInvalidRequest)
	}

	for _, o := range req.Obstacles {
		if !m.AddObstacle(o[0], o[1]) {
			return nil, fmt.Errorf("%w: obstacle (%d,%d)", ErrInvalidCell, o[0], o[1])
		}
	}
	if req.Start == nil || !m.SetStart(req.Start[0], req.Start[1]) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidEndpoint, req.Start)
	}
	if req.Goal == nil || !m.SetGoal(req.Goal[0], req.Goal[1]) {
		return nil, fmt.Errorf("%w: goal %v", ErrInvalidEndpoint, req.Goal)
	}

	return m, nil
}

func (s *Server) generate(g generateRequest) (*terrain.Map, error) {
	if g.Width < 1 || g.Height < 1 {
		return nil, fmt.Errorf("%w: generate size %dx%d", ErrInvalidRequest, g.Width, g.Height)
	}
	if err := s.checkSize(g.Width, g.Height); err != nil {
		return nil, err
	}

	opts := []generator.Option{generator.WithSeed(g.Seed)}
	if g.MaxElevation != nil {
		if *g.MaxElevation < 1 {
			return nil, fmt.Errorf("%w: max_elevation %d", ErrInvalidRequest, *g.MaxElevation)
		}
		opts = append(opts, generator.WithMaxElevation(*g.MaxElevation))
	}
	if g.NoFlyZones != nil {
		if *g.NoFlyZones < 0 {
			return nil, fmt.Errorf("%w: no_fly_zones %d", ErrInvalidRequest, *g.NoFlyZones)
		}
		opts = append(opts, generator.WithNoFlyZones(*g.NoFlyZones))
	}
	if g.ReachableGoal {
		opts = append(opts, generator.WithReachableGoal())
	}

	m, err := generator.Generate(g.Width, g.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return m, nil
}

func (s *Server) checkSize(w, h int) error {
	if w > s.maxCells || h > s.maxCells || w*h > s.maxCells {
		return fmt.Errorf("%w: %dx%d > %d cells", ErrGridTooLarge, w, h, s.maxCells)
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
