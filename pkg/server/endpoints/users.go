package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/odmforest/treesurvey/pkg/config"
	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterUsersEndpoints(s *server.Server) {
	router := s.Router
	usersStore := s.UsersStore

	// POST /users - Sign up a new user
	router.HandleFunc("/users", handleSignup(usersStore)).Methods("POST")

	// POST /login - Authenticate by email and password
	router.HandleFunc("/login", handleLogin(usersStore)).Methods("POST")
}

// SignupRequest represents a signup request body
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func handleSignup(usersStore store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		role := strings.TrimSpace(req.Role)
		if role == "" {
			role = "user"
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.Get().BcryptCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Error inserting record")
			return
		}

		user := &model.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			FullName: req.FullName,
			Role:     role,
		}
		if err := usersStore.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "Email or username already taken")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Error inserting record")
			return
		}

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Record inserted successfully",
			"user_id": user.UserID,
		})
	}
}

func handleLogin(usersStore store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		user, err := usersStore.FindUserByEmail(req.Email)
		if err != nil {
			// An unknown email answers exactly like a bad password so the
			// response doesn't leak which accounts exist.
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"user":    user,
		})
	}
}
