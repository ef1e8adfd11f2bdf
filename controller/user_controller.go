package controller

import (
	"net/http"
	"strings"

	"ecofinds/usecase"
)

type UserController struct {
	users *usecase.UserUsecase
	auth  *Authenticator
}

func NewUserController(users *usecase.UserUsecase, auth *Authenticator) *UserController {
	return &UserController{users: users, auth: auth}
}

// HandleUsers serves GET /users/me and GET /users/{id}.
func (c *UserController) HandleUsers(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		writeError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	id := parts[1]

	if id == "me" {
		id = c.auth.UserID(r)
		if id == "" {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
	}

	user, err := c.users.GetUser(id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
