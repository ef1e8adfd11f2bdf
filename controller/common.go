package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecofinds/usecase"
)

// errorResponse matches the {"detail": ...} error body the client expects.
type errorResponse struct {
	Detail string `json:"detail"`
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeUsecaseError maps domain errors to their HTTP shape.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase.ErrItemUnavailable):
		writeError(w, http.StatusBadRequest, "Item not available")
	case errors.Is(err, usecase.ErrSelfPurchase):
		writeError(w, http.StatusBadRequest, "Cannot purchase your own item")
	case errors.Is(err, usecase.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, usecase.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "Message content is empty")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
