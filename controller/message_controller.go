package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"ecofinds/model"
	"ecofinds/usecase"
)

type MessageController struct {
	messages *usecase.MessageUsecase
	auth     *Authenticator
}

func NewMessageController(messages *usecase.MessageUsecase, auth *Authenticator) *MessageController {
	return &MessageController{messages: messages, auth: auth}
}

type sendMessageRequest struct {
	ItemID     string `json:"item_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// HandleSend serves POST /messages.
func (c *MessageController) HandleSend(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	senderID := c.auth.UserID(r)
	if senderID == "" {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == "" || req.ReceiverID == "" {
		writeError(w, http.StatusBadRequest, "Missing item_id or receiver_id")
		return
	}

	msg, err := c.messages.Send(req.ItemID, senderID, req.ReceiverID, req.Content)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// HandleThread serves GET /messages/{itemId}.
func (c *MessageController) HandleThread(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	requesterID := c.auth.UserID(r)
	if requesterID == "" {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		writeError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	itemID := parts[1]

	msgs, err := c.messages.List(itemID, requesterID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
