package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"ecofinds/model"
	"ecofinds/usecase"
)

type ItemController struct {
	items *usecase.ItemUsecase
	auth  *Authenticator
}

func NewItemController(items *usecase.ItemUsecase, auth *Authenticator) *ItemController {
	return &ItemController{items: items, auth: auth}
}

type createItemRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Condition   string          `json:"condition"`
	Images      []string        `json:"images"`
}

type purchaseResponse struct {
	Message         string `json:"message"`
	EcoPointsEarned int    `json:"eco_points_earned"`
}

// HandleItems serves GET /items?category=&search= and POST /items.
func (c *ItemController) HandleItems(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodGet:
		items, err := c.items.SearchItems(r.URL.Query().Get("category"), r.URL.Query().Get("search"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}
		if items == nil {
			items = []model.Item{}
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		sellerID := c.auth.UserID(r)
		if sellerID == "" {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Price.IsNegative() {
			writeError(w, http.StatusBadRequest, "Invalid item fields")
			return
		}
		item, err := c.items.CreateItem(sellerID, req.Title, req.Description, req.Price, req.Category, req.Condition, req.Images)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleItemDetail serves GET /items/{id} and POST /items/{id}/purchase.
func (c *ItemController) HandleItemDetail(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// path: /items/{id} or /items/{id}/purchase
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 {
		writeError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	id := parts[1]

	if len(parts) == 3 && parts[2] == "purchase" {
		c.handlePurchase(w, r, id)
		return
	}
	if len(parts) != 2 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	item, err := c.items.GetItemByID(id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) handlePurchase(w http.ResponseWriter, r *http.Request, itemID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	buyerID := c.auth.UserID(r)
	if buyerID == "" {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	points, err := c.items.Purchase(itemID, buyerID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchaseResponse{Message: "Purchase successful", EcoPointsEarned: points})
}
