package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ecofinds/model"
)

// Client is the REST client for the EcoFINDS backend. The server is the
// source of truth for item availability, point balances and history; the
// client never mutates a cached copy, it re-fetches.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *Session
}

func New(baseURL string, session *Session) *Client {
	return newClient(&http.Client{Timeout: 30 * time.Second}, baseURL, session)
}

// newClient is the internal constructor; tests inject the http.Client and
// baseURL.
func newClient(httpClient *http.Client, baseURL string, session *Session) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

type tokenEnvelope struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

type registerPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ItemDraft carries the seller-supplied fields of a new listing; the
// server assigns id, seller, reward and availability.
type ItemDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Condition   string          `json:"condition"`
	Images      []string        `json:"images"`
}

type sendMessagePayload struct {
	ItemID     string `json:"item_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

type purchaseEnvelope struct {
	Message         string `json:"message"`
	EcoPointsEarned int    `json:"eco_points_earned"`
}

// Register creates an account, stores the returned token in the session
// and loads the new user.
func (c *Client) Register(ctx context.Context, email, username, fullName, password string) (*model.User, error) {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/auth/register",
		registerPayload{Email: email, Username: username, FullName: fullName, Password: password}, &env, false)
	if err != nil {
		return nil, err
	}
	c.session.SetToken(env.AccessToken)
	return c.Me(ctx)
}

// Login authenticates, stores the token in the session and loads the user.
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/auth/login", loginPayload{Email: email, Password: password}, &env, false)
	if err != nil {
		return nil, err
	}
	c.session.SetToken(env.AccessToken)
	return c.Me(ctx)
}

// Items fetches the listing with optional category and text filters; empty
// strings mean no filter. Ordering is whatever the backend returns.
func (c *Client) Items(ctx context.Context, category, search string) ([]model.Item, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if search != "" {
		params.Set("search", search)
	}
	path := "/items"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, path, nil, &items, false); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Item(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodGet, "/items/"+id, nil, &item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, draft ItemDraft) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodPost, "/items", draft, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

// Purchase attempts the Available -> Sold transition for one item and
// returns the eco points earned. The local availability flag is only a
// hint; an already-sold item surfaces here as ErrItemUnavailable.
func (c *Client) Purchase(ctx context.Context, itemID string) (int, error) {
	var env purchaseEnvelope
	err := c.do(ctx, http.MethodPost, "/items/"+itemID+"/purchase", nil, &env, true)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
			strings.Contains(apiErr.Detail, "not available") {
			return 0, ErrItemUnavailable
		}
		return 0, err
	}
	return env.EcoPointsEarned, nil
}

func (c *Client) Messages(ctx context.Context, itemID string) ([]model.Message, error) {
	var msgs []model.Message
	if err := c.do(ctx, http.MethodGet, "/messages/"+itemID, nil, &msgs, true); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, itemID, receiverID, content string) (*model.Message, error) {
	var msg model.Message
	err := c.do(ctx, http.MethodPost, "/messages",
		sendMessagePayload{ItemID: itemID, ReceiverID: receiverID, Content: content}, &msg, true)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Me fetches the current user and stores it in the session. Called after
// any operation that can change the point balance.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user, true); err != nil {
		return nil, err
	}
	c.session.SetUser(&user)
	return &user, nil
}

func (c *Client) User(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &txs, true); err != nil {
		return nil, err
	}
	return txs, nil
}

// do issues one request. Authenticated calls fail fast with
// ErrUnauthorized when the session has been invalidated, and any 401
// response invalidates it.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authRequired bool) error {
	if authRequired && !c.session.Authenticated() {
		return ErrUnauthorized
	}

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if header := c.session.AuthHeader(); header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Invalidate()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorEnvelope
		detail := "request failed"
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			detail = e.Detail
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Detail: "malformed response body"}
	}
	return nil
}

type errorEnvelope struct {
	Detail string `json:"detail"`
}
