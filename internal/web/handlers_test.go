package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rbrindha8-hub/moodtunes/internal/db"
	"github.com/rbrindha8-hub/moodtunes/internal/synth"
)

// fakeStore is an in-memory TrackStore for handler tests.
type fakeStore struct {
	tracks map[uuid.UUID]*db.Track
	audio  map[uuid.UUID][]byte
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tracks: make(map[uuid.UUID]*db.Track),
		audio:  make(map[uuid.UUID][]byte),
	}
}

func (s *fakeStore) Insert(_ context.Context, track *db.Track, audio []byte) error {
	if s.err != nil {
		return s.err
	}
	copied := *track
	s.tracks[track.ID] = &copied
	s.audio[track.ID] = audio
	return nil
}

func (s *fakeStore) Get(_ context.Context, id uuid.UUID) (*db.Track, error) {
	if s.err != nil {
		return nil, s.err
	}
	track, ok := s.tracks[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return track, nil
}

func (s *fakeStore) GetAudio(_ context.Context, id uuid.UUID) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	audio, ok := s.audio[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return audio, nil
}

func (s *fakeStore) List(_ context.Context) ([]db.Track, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]uuid.UUID, 0, len(s.tracks))
	for id := range s.tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	tracks := make([]db.Track, 0, len(ids))
	for _, id := range ids {
		tracks = append(tracks, *s.tracks[id])
	}
	return tracks, nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.tracks[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.tracks, id)
	delete(s.audio, id)
	return nil
}

// testServer builds a server over a fake store with a small, fast
// render configuration.
func testServer(t *testing.T, store *fakeStore) *Server {
	t.Helper()
	s := NewServer(ServerConfig{Addr: DefaultAddr, Store: store})
	s.handlers.renderer = synth.Renderer{
		SampleRate: 8000,
		Seconds:    2,
		Workers:    1,
		Seed:       1,
	}
	return s
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTrackFromMood(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	rec := doRequest(s, http.MethodPost, "/api/tracks", map[string]any{"mood": "happy"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	var resp trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Mood != "happy" {
		t.Errorf("mood = %q, want happy", resp.Mood)
	}
	if resp.Tempo != 120 || resp.Key != "C" || resp.Scale != "major" {
		t.Errorf("params = %d/%s/%s, want 120/C/major", resp.Tempo, resp.Key, resp.Scale)
	}
	if resp.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0 for explicit mood", resp.Confidence)
	}

	audio, ok := store.audio[resp.ID]
	if !ok {
		t.Fatal("audio not stored")
	}
	if !bytes.HasPrefix(audio, []byte("RIFF")) {
		t.Errorf("stored audio is not a WAV: % x", audio[:12])
	}
}

func TestCreateTrackFromText(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	rec := doRequest(s, http.MethodPost, "/api/tracks", map[string]any{
		"text": "feeling so sad and lonely tonight",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	var resp trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Mood != "sad" {
		t.Errorf("mood = %q, want sad", resp.Mood)
	}
	if resp.Scale != "minor" {
		t.Errorf("scale = %q, want minor", resp.Scale)
	}
	if resp.Confidence <= 0 || resp.Confidence > 1 {
		t.Errorf("confidence = %f, want in (0, 1]", resp.Confidence)
	}
	if resp.SourceText == "" {
		t.Error("source_text missing from response")
	}
}

func TestCreateTrackValidation(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"empty body", map[string]any{}},
		{"both text and mood", map[string]any{"text": "happy", "mood": "happy"}},
		{"unknown mood", map[string]any{"mood": "grumpy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/api/tracks", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
	if len(store.tracks) != 0 {
		t.Errorf("store has %d tracks after rejected requests", len(store.tracks))
	}
}

func TestGetAndDeleteTrack(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	rec := doRequest(s, http.MethodPost, "/api/tracks", map[string]any{"mood": "calm"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	var created trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rec = doRequest(s, http.MethodGet, "/api/tracks/"+created.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d, want 200", rec.Code)
	}

	rec = doRequest(s, http.MethodGet, "/api/tracks/"+created.ID.String()+"/audio", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("audio status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "audio/wav" {
		t.Errorf("audio Content-Type = %q, want audio/wav", ct)
	}

	rec = doRequest(s, http.MethodDelete, "/api/tracks/"+created.ID.String(), nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}

	rec = doRequest(s, http.MethodGet, "/api/tracks/"+created.ID.String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestTrackNotFoundAndBadID(t *testing.T) {
	s := testServer(t, newFakeStore())

	rec := doRequest(s, http.MethodGet, "/api/tracks/"+uuid.New().String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}

	rec = doRequest(s, http.MethodGet, "/api/tracks/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestListMoods(t *testing.T) {
	s := testServer(t, newFakeStore())

	rec := doRequest(s, http.MethodGet, "/api/moods", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var moods []moodResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &moods); err != nil {
		t.Fatal(err)
	}
	if len(moods) != 10 {
		t.Fatalf("got %d moods, want 10", len(moods))
	}
	for _, m := range moods {
		if m.Tempo <= 0 || m.Key == "" || m.Rhythm == "" {
			t.Errorf("mood %q has incomplete params: %+v", m.Mood, m)
		}
		if m.Scale != "major" && m.Scale != "minor" {
			t.Errorf("mood %q has scale %q", m.Mood, m.Scale)
		}
	}
}

func TestListTracks(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	for _, m := range []string{"happy", "sad"} {
		rec := doRequest(s, http.MethodPost, "/api/tracks", map[string]any{"mood": m})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %s status = %d", m, rec.Code)
		}
	}

	rec := doRequest(s, http.MethodGet, "/api/tracks", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var tracks []trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &tracks); err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Errorf("got %d tracks, want 2", len(tracks))
	}
}

func TestClusterLibrary(t *testing.T) {
	store := newFakeStore()
	s := testServer(t, store)

	// Two synthetic groups with clearly separated features.
	for i := 0; i < 3; i++ {
		id := uuid.New()
		store.tracks[id] = &db.Track{
			ID: id, Mood: "energetic", Tempo: 140 + i, Scale: "major",
			Energy: 0.3 + 0.01*float64(i), Brightness: 0.3,
		}
	}
	for i := 0; i < 3; i++ {
		id := uuid.New()
		store.tracks[id] = &db.Track{
			ID: id, Mood: "sad", Tempo: 65 + i, Scale: "minor",
			Energy: 0.05 + 0.01*float64(i), Brightness: 0.04,
		}
	}

	rec := doRequest(s, http.MethodPost, "/api/library/clusters", map[string]any{
		"num_groups": 2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Groups   []clusterResponse `json:"groups"`
		Outliers []uuid.UUID       `json:"outliers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(resp.Groups))
	}
	total := 0
	for _, g := range resp.Groups {
		if g.Name == "" {
			t.Error("group has empty name")
		}
		total += len(g.TrackIDs)
	}
	if total+len(resp.Outliers) != 6 {
		t.Errorf("grouped %d + outliers %d, want 6 total", total, len(resp.Outliers))
	}
}

func TestClusterLibraryEmpty(t *testing.T) {
	s := testServer(t, newFakeStore())

	rec := doRequest(s, http.MethodPost, "/api/library/clusters", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"outliers":[]`) {
		t.Errorf("empty library response = %s", rec.Body)
	}
}
