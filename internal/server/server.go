package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/appengine-ltd/trailbound/internal/game"
	"github.com/appengine-ltd/trailbound/internal/savestore"
)

// Server exposes runs over HTTP. Live runs are held in memory keyed by id;
// saves go through the store and can be restored after a restart.
type Server struct {
	log     *zap.Logger
	store   *savestore.Store
	catalog *game.Catalog
	policy  game.Policy

	mu   sync.Mutex
	runs map[string]*liveRun
}

// liveRun pairs an in-memory run with the lock that serializes it. The
// engine is single-threaded; handlers hold the lock across the engine call
// and the response encode.
type liveRun struct {
	mu sync.Mutex
	g  *game.GameState
}

func New(log *zap.Logger, store *savestore.Store, catalog *game.Catalog, policy game.Policy) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:     log,
		store:   store,
		catalog: catalog,
		policy:  policy,
		runs:    make(map[string]*liveRun),
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/runs", func(r chi.Router) {
		r.Post("/", s.handleCreateRun)
		r.Get("/", s.handleListRuns)

		r.Route("/{runID}", func(r chi.Router) {
			r.Get("/", s.handleGetRun)
			r.Delete("/", s.handleDeleteRun)

			r.Post("/advance", s.handleAdvance)
			r.Post("/camp", s.handleCamp)
			r.Post("/hunt", s.handleHunt)
			r.Post("/choose", s.handleChoose)

			r.Post("/quote", s.handleQuote)
			r.Post("/purchase", s.handlePurchase)

			r.Post("/bribe", s.handleBribe)
			r.Post("/permit", s.handlePermit)
			r.Post("/refuse", s.handleRefuse)
			r.Post("/vote", s.handleVote)

			r.Post("/pace", s.handleSetPace)
			r.Post("/diet", s.handleSetDiet)
			r.Post("/medkit", s.handleMedkit)

			r.Post("/save", s.handleSave)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// getRun fetches a live run, falling back to the save store and rehydrating.
func (s *Server) getRun(ctx context.Context, id string) (*liveRun, error) {
	s.mu.Lock()
	lr, ok := s.runs[id]
	s.mu.Unlock()
	if ok {
		return lr, nil
	}
	if s.store == nil {
		return nil, savestore.ErrNotFound
	}

	g, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := g.Rehydrate(s.catalog, s.policy, s.log); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent request may have restored the run first; keep that one.
	if racing, ok := s.runs[id]; ok {
		return racing, nil
	}
	lr = &liveRun{g: g}
	s.runs[id] = lr
	return lr, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, savestore.ErrNotFound)
}
