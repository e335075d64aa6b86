package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"fiveline/config"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// handleLogin authenticates a user and returns a bearer token plus
// basic account info.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password required")
		return
	}

	for _, u := range s.users {
		if u.Username == req.Username && u.Password == req.Password {
			token := uuid.NewString()
			s.mu.Lock()
			s.tokens[token] = u
			s.mu.Unlock()
			writeJSON(w, http.StatusOK, loginResponse{
				Token:    token,
				Username: u.Username,
				Email:    u.Email,
			})
			return
		}
	}

	writeDetail(w, http.StatusBadRequest, "Invalid credentials")
}

// requireToken gates a handler behind "Authorization: Token <token>".
func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Token ")
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "token required")
			return
		}

		s.mu.Lock()
		_, valid := s.tokens[token]
		s.mu.Unlock()
		if !valid {
			writeDetail(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}

type userInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// handleUsers returns every configured account, without passwords.
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	out := make([]userInfo, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, userInfo{Username: u.Username, Email: u.Email})
	}
	writeJSON(w, http.StatusOK, out)
}

// testToken registers a token directly, bypassing login. Test helper.
func (s *Server) testToken(u config.User) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = u
	s.mu.Unlock()
	return token
}
