package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/appengine-ltd/trailbound/internal/game"
	"github.com/appengine-ltd/trailbound/internal/savestore"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) respondErr(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, errorResponse{Error: err.Error()})
}

// gameErrorStatus maps engine rejections onto HTTP statuses: validation
// failures are 422, everything else a plain 400.
func gameErrorStatus(err error) int {
	var funds *game.FundsError
	var cap *game.CapacityError
	if errors.As(err, &funds) || errors.As(err, &cap) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createRunRequest struct {
	Name          string `json:"name"`
	Seed          int64  `json:"seed"`
	Mode          string `json:"mode"`
	Pace          string `json:"pace"`
	Diet          string `json:"diet"`
	Persona       string `json:"persona"`
	StartingCents int64  `json:"starting_cents"`
}

type createRunResponse struct {
	ID    string          `json:"id"`
	State *game.GameState `json:"state"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	cfg := game.RunConfig{
		Seed:          req.Seed,
		GameMode:      game.ModeStandard,
		Pace:          game.PaceSteady,
		Diet:          game.DietMeager,
		Persona:       game.PersonaDrifter,
		StartingCents: req.StartingCents,
	}
	if req.Mode != "" {
		cfg.GameMode = game.GameMode(req.Mode)
	}
	if req.Pace != "" {
		cfg.Pace = game.Pace(req.Pace)
	}
	if req.Diet != "" {
		cfg.Diet = game.Diet(req.Diet)
	}
	if req.Persona != "" {
		cfg.Persona = game.Persona(req.Persona)
	}
	if cfg.StartingCents == 0 {
		cfg.StartingCents = 50000
	}

	g, err := game.New(cfg, s.catalog, s.policy, s.log)
	if err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}

	id := savestore.NewRunID()
	s.mu.Lock()
	s.runs[id] = &liveRun{g: g}
	s.mu.Unlock()

	s.log.Info("run created",
		zap.String("run_id", id),
		zap.Int64("seed", g.Seed),
		zap.String("persona", string(g.Persona)))
	s.respond(w, http.StatusCreated, createRunResponse{ID: id, State: g})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respond(w, http.StatusOK, []savestore.RunSummary{})
		return
	}
	runs, err := s.store.List(r.Context())
	if err != nil {
		s.respondErr(w, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []savestore.RunSummary{}
	}
	s.respond(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	s.respond(w, http.StatusOK, lr.g)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")
	s.mu.Lock()
	delete(s.runs, id)
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Delete(r.Context(), id); err != nil && !isNotFound(err) {
			s.respondErr(w, http.StatusInternalServerError, err)
			return
		}
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	record, err := lr.g.AdvanceDay()
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, record)
}

func (s *Server) handleCamp(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	record, err := lr.g.Camp()
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, record)
}

func (s *Server) handleHunt(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	record, err := lr.g.Hunt()
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, record)
}

type chooseRequest struct {
	Choice string `json:"choice"`
}

// handleChoose applies the encounter choice. The day stays open afterwards;
// the next advance resumes the interrupted leg.
func (s *Server) handleChoose(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	var req chooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.ChooseEncounter(req.Choice); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, lr.g)
}

type purchaseRequest struct {
	Lines []game.PurchaseLine `json:"lines"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	receipt, err := lr.g.QuotePurchase(req.Lines)
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, receipt)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	receipt, err := lr.g.Purchase(req.Lines)
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, receipt)
}

func (s *Server) handleBribe(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.PayBribe(); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	lr.g.EndOfDay()
	s.respond(w, http.StatusOK, lr.g)
}

func (s *Server) handlePermit(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.ShowPermit(); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	lr.g.EndOfDay()
	s.respond(w, http.StatusOK, lr.g)
}

func (s *Server) handleRefuse(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.RefuseBribe(); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	lr.g.EndOfDay()
	s.respond(w, http.StatusOK, lr.g)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	kind, err := lr.g.ResolveBossVote()
	if err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	lr.g.EndOfDay()
	s.respond(w, http.StatusOK, map[string]any{"ending": kind, "state": lr.g})
}

type paceRequest struct {
	Pace string `json:"pace"`
}

func (s *Server) handleSetPace(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	var req paceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.SetPace(game.Pace(req.Pace)); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, lr.g)
}

type dietRequest struct {
	Diet string `json:"diet"`
}

func (s *Server) handleSetDiet(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	var req dietRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := lr.g.SetDiet(game.Diet(req.Diet)); err != nil {
		s.respondErr(w, gameErrorStatus(err), err)
		return
	}
	s.respond(w, http.StatusOK, lr.g)
}

func (s *Server) handleMedkit(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.g.UseMedkit()
	s.respond(w, http.StatusOK, lr.g)
}

type saveRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	lr, ok := s.run(w, r)
	if !ok {
		return
	}
	if s.store == nil {
		s.respondErr(w, http.StatusServiceUnavailable, errors.New("no save store configured"))
		return
	}
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		req.Name = "unnamed run"
	}
	id := chi.URLParam(r, "runID")
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if err := s.store.Save(r.Context(), id, req.Name, lr.g); err != nil {
		s.respondErr(w, http.StatusInternalServerError, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"id": id})
}

// run resolves the path run id and writes the 404 itself on a miss.
func (s *Server) run(w http.ResponseWriter, r *http.Request) (*liveRun, bool) {
	id := chi.URLParam(r, "runID")
	lr, err := s.getRun(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.respondErr(w, http.StatusNotFound, err)
		} else {
			s.respondErr(w, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return lr, true
}
