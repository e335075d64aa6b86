package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"fiveline/config"
	"fiveline/score"
)

// Server exposes a score over HTTP: a token-auth login, a user list,
// the derived export, and the pitch-editing operations the browser
// frontend calls.
type Server struct {
	editor *score.Editor
	users  []config.User

	// edMu serializes all editor access. The editor expects one event
	// at a time, but net/http serves each request on its own goroutine.
	edMu sync.Mutex

	mu     sync.Mutex
	tokens map[string]config.User // token -> account
}

// NewServer wraps an editor with the HTTP surface. Users come from
// config; tokens live in memory for the process lifetime.
func NewServer(editor *score.Editor, users []config.User) *Server {
	return &Server{
		editor: editor,
		users:  users,
		tokens: make(map[string]config.User),
	}
}

// Router builds the route table with CORS enabled for browser clients.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	router.HandleFunc("/auth/users", s.requireToken(s.handleUsers)).Methods("GET")
	router.HandleFunc("/score", s.handleScore).Methods("GET")
	router.HandleFunc("/score/pitch", s.requireToken(s.handleChangePitch)).Methods("PATCH")
	router.HandleFunc("/score/combine", s.requireToken(s.handleCombine)).Methods("POST")
	return cors.AllowAll().Handler(router)
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
