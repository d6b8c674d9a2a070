package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rbrindha8-hub/moodtunes/internal/analysis"
	"github.com/rbrindha8-hub/moodtunes/internal/db"
	"github.com/rbrindha8-hub/moodtunes/internal/encode"
	"github.com/rbrindha8-hub/moodtunes/internal/mood"
	"github.com/rbrindha8-hub/moodtunes/internal/synth"
	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

// TrackStore is the persistence surface the handlers need. *db.DB's
// TrackRepository satisfies it.
type TrackStore interface {
	Insert(ctx context.Context, track *db.Track, audio []byte) error
	Get(ctx context.Context, id uuid.UUID) (*db.Track, error)
	GetAudio(ctx context.Context, id uuid.UUID) ([]byte, error)
	List(ctx context.Context) ([]db.Track, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	store    TrackStore
	renderer synth.Renderer
}

// NewHandlers creates handlers backed by the given store.
func NewHandlers(store TrackStore) *Handlers {
	return &Handlers{
		store:    store,
		renderer: synth.Renderer{Workers: runtime.NumCPU()},
	}
}

// trackResponse is the JSON shape of a generated track.
type trackResponse struct {
	ID              uuid.UUID `json:"id"`
	SourceText      string    `json:"source_text,omitempty"`
	Mood            string    `json:"mood"`
	Confidence      float64   `json:"confidence"`
	Tempo           int       `json:"tempo"`
	Key             string    `json:"key"`
	Scale           string    `json:"scale"`
	Rhythm          string    `json:"rhythm"`
	Seed            int64     `json:"seed"`
	DurationSeconds float64   `json:"duration_seconds"`
	SampleRate      int       `json:"sample_rate"`
	Energy          float64   `json:"energy"`
	Brightness      float64   `json:"brightness"`
	CreatedAt       time.Time `json:"created_at"`
}

func toTrackResponse(t *db.Track) trackResponse {
	return trackResponse{
		ID:              t.ID,
		SourceText:      t.SourceText,
		Mood:            t.Mood,
		Confidence:      t.Confidence,
		Tempo:           t.Tempo,
		Key:             t.Key,
		Scale:           t.Scale,
		Rhythm:          t.Rhythm,
		Seed:            t.Seed,
		DurationSeconds: t.DurationSeconds,
		SampleRate:      t.SampleRate,
		Energy:          t.Energy,
		Brightness:      t.Brightness,
		CreatedAt:       t.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// createTrackRequest asks for a track from either free text or an
// explicit mood name. Exactly one of the two must be set.
type createTrackRequest struct {
	Text string `json:"text"`
	Mood string `json:"mood"`
	Seed int64  `json:"seed"`
}

// CreateTrack renders a new track, stores it, and returns its metadata.
func (h *Handlers) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var req createTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if (req.Text == "") == (req.Mood == "") {
		writeError(w, http.StatusBadRequest, "provide exactly one of text or mood")
		return
	}

	var m mood.Mood
	confidence := 1.0
	if req.Text != "" {
		m, confidence = mood.Classify(req.Text)
	} else {
		m = mood.Mood(req.Mood)
		if !knownMood(m) {
			writeError(w, http.StatusBadRequest, "unknown mood: "+req.Mood)
			return
		}
	}

	params := mood.ParamsFor(m)

	renderer := h.renderer
	renderer.Seed = req.Seed
	buf, err := renderer.Render(r.Context(), params)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("rendering track: %v", err)
		writeError(w, http.StatusInternalServerError, "rendering failed")
		return
	}

	features := analysis.Extract(buf, params)
	audio, err := encode.WAVBytes(buf)
	if err != nil {
		log.Printf("encoding track: %v", err)
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}

	track := &db.Track{
		ID:              uuid.New(),
		SourceText:      req.Text,
		Mood:            string(m),
		Confidence:      confidence,
		Tempo:           params.Tempo,
		Key:             params.Key,
		Scale:           string(params.Scale),
		Rhythm:          params.Rhythm,
		Seed:            req.Seed,
		DurationSeconds: buf.Duration(),
		SampleRate:      buf.SampleRate,
		Energy:          features.Energy,
		Brightness:      features.Brightness,
	}
	if err := h.store.Insert(r.Context(), track, audio); err != nil {
		log.Printf("storing track: %v", err)
		writeError(w, http.StatusInternalServerError, "storing track failed")
		return
	}

	writeJSON(w, http.StatusCreated, toTrackResponse(track))
}

// ListTracks returns metadata for every stored track, newest first.
func (h *Handlers) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("listing tracks: %v", err)
		writeError(w, http.StatusInternalServerError, "listing tracks failed")
		return
	}

	resp := make([]trackResponse, 0, len(tracks))
	for i := range tracks {
		resp = append(resp, toTrackResponse(&tracks[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTrack returns metadata for a single track.
func (h *Handlers) GetTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTrackID(w, r)
	if !ok {
		return
	}

	track, err := h.store.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "track not found")
		return
	}
	if err != nil {
		log.Printf("getting track: %v", err)
		writeError(w, http.StatusInternalServerError, "getting track failed")
		return
	}
	writeJSON(w, http.StatusOK, toTrackResponse(track))
}

// GetTrackAudio streams the stored WAV bytes for a track.
func (h *Handlers) GetTrackAudio(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTrackID(w, r)
	if !ok {
		return
	}

	audio, err := h.store.GetAudio(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "track not found")
		return
	}
	if err != nil {
		log.Printf("getting track audio: %v", err)
		writeError(w, http.StatusInternalServerError, "getting track audio failed")
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		log.Printf("writing track audio: %v", err)
	}
}

// DeleteTrack removes a track and its audio.
func (h *Handlers) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTrackID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "track not found")
		return
	}
	if err != nil {
		log.Printf("deleting track: %v", err)
		writeError(w, http.StatusInternalServerError, "deleting track failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// moodResponse describes one available mood and its music parameters.
type moodResponse struct {
	Mood   string `json:"mood"`
	Tempo  int    `json:"tempo"`
	Key    string `json:"key"`
	Scale  string `json:"scale"`
	Rhythm string `json:"rhythm"`
}

// ListMoods returns the canonical moods and the parameters each one
// resolves to.
func (h *Handlers) ListMoods(w http.ResponseWriter, r *http.Request) {
	resp := make([]moodResponse, 0, len(mood.All))
	for _, m := range mood.All {
		p := mood.ParamsFor(m)
		resp = append(resp, moodResponse{
			Mood:   string(m),
			Tempo:  p.Tempo,
			Key:    p.Key,
			Scale:  string(p.Scale),
			Rhythm: p.Rhythm,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// clusterRequest tunes the library grouping. Zero values fall back to
// the defaults.
type clusterRequest struct {
	NumGroups    int `json:"num_groups"`
	MinGroupSize int `json:"min_group_size"`
}

// clusterResponse is one named group of similar-sounding tracks.
type clusterResponse struct {
	Name     string            `json:"name"`
	TrackIDs []uuid.UUID       `json:"track_ids"`
	Centroid analysis.Features `json:"centroid"`
}

// ClusterLibrary groups the stored tracks by audio feature similarity.
func (h *Handlers) ClusterLibrary(w http.ResponseWriter, r *http.Request) {
	cfg := analysis.DefaultConfig()
	if r.ContentLength > 0 {
		var req clusterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.NumGroups > 0 {
			cfg.NumGroups = req.NumGroups
		}
		if req.MinGroupSize > 0 {
			cfg.MinGroupSize = req.MinGroupSize
		}
	}

	tracks, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("listing tracks: %v", err)
		writeError(w, http.StatusInternalServerError, "listing tracks failed")
		return
	}

	points := make([]analysis.TrackPoint, 0, len(tracks))
	for _, t := range tracks {
		points = append(points, analysis.TrackPoint{
			ID:   t.ID,
			Mood: t.Mood,
			Features: analysis.FromStored(
				t.Energy, t.Brightness, t.Tempo, theory.Mode(t.Scale),
			),
		})
	}

	groups, outliers, err := analysis.GroupTracks(points, cfg)
	if err != nil {
		log.Printf("clustering tracks: %v", err)
		writeError(w, http.StatusInternalServerError, "clustering failed")
		return
	}

	respGroups := make([]clusterResponse, 0, len(groups))
	for _, g := range groups {
		respGroups = append(respGroups, clusterResponse{
			Name:     g.Name,
			TrackIDs: g.TrackIDs,
			Centroid: g.Centroid,
		})
	}
	if outliers == nil {
		outliers = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"groups":   respGroups,
		"outliers": outliers,
	})
}

func parseTrackID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid track id")
		return uuid.Nil, false
	}
	return id, true
}

func knownMood(m mood.Mood) bool {
	for _, known := range mood.All {
		if m == known {
			return true
		}
	}
	return false
}
