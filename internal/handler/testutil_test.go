package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openboard/backend/internal/config"
	"github.com/openboard/backend/internal/model"
	"github.com/openboard/backend/internal/service"
)

// fakeStore is an in-memory stand-in for db.Postgres covering both store
// interfaces the services need.
type fakeStore struct {
	nextID   int64
	byEmail  map[string]*model.User
	byID     map[int64]*model.User
	messages []model.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[int64]*model.User),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, passwordHash string) (*model.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	user := &model.User{ID: f.nextID, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.byEmail[email] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) InsertMessage(_ context.Context, id uuid.UUID, authorID int64, text string) error {
	f.messages = append(f.messages, model.Message{ID: id, AuthorID: authorID, Text: text, CreatedAt: time.Now()})
	return nil
}

func (f *fakeStore) ListMessages(_ context.Context) ([]model.MessageEntry, error) {
	list := []model.MessageEntry{}
	for _, m := range f.messages {
		author := ""
		if user, ok := f.byID[m.AuthorID]; ok {
			author = user.Name
		}
		list = append(list, model.MessageEntry{ID: m.ID, Author: author, Text: m.Text, CreatedAt: m.CreatedAt})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func newTestRouter(t *testing.T, store *fakeStore) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := service.NewTokenService(config.AuthConfig{JWTSecret: "test-secret", JWTAccessTTL: "1h"})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	authH := NewAuthHandler(service.NewAuthService(store, tokens))
	msgH := NewMessageHandler(service.NewMessageService(store))

	r := gin.New()
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.GET("/messages", msgH.List)
	r.POST("/messages", AuthMiddleware(tokens), msgH.Create)
	return r, tokens
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}
