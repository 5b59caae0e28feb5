package handlers

import (
	"encoding/json"
	"net/http"

	"aether/backend/services/console-service/internal/auth"
)

type loginRequest struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

// NewLoginHandler returns POST /auth/login handler.
func NewLoginHandler(registry *auth.Registry, tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		operator, err := registry.Authenticate(req.Operator, req.Password)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := tokens.GenerateToken(operator.Name, operator.Role)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
			"role":  operator.Role,
		})
	}
}
