package httptransport_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/a-osman/recipe-api/internal/domain"
	httptransport "github.com/a-osman/recipe-api/internal/transport/http"
	"github.com/a-osman/recipe-api/internal/transport/http/handler"
	"github.com/a-osman/recipe-api/internal/transport/http/middleware"
	"github.com/a-osman/recipe-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUsers satisfies the user handler's usecase dependency. Routing tests never
// reach the usecase layer, so every method fails loudly if called.
type stubUsers struct{ t *testing.T }

func (s stubUsers) Create(context.Context, usecase.CreateUserInput) (*domain.User, error) {
	s.t.Error("user usecase called during routing test")
	return nil, errors.New("unexpected")
}

func (s stubUsers) GetByID(context.Context, string) (*domain.User, error) {
	return &domain.User{ID: "user-1", Email: "test@example.com"}, nil
}

func (s stubUsers) Update(context.Context, string, usecase.UpdateUserInput) (*domain.User, error) {
	s.t.Error("user usecase called during routing test")
	return nil, errors.New("unexpected")
}

type stubIssuer struct{ t *testing.T }

func (s stubIssuer) IssueToken(context.Context, string, string) (string, error) {
	s.t.Error("auth usecase called during routing test")
	return "", errors.New("unexpected")
}

type stubRecipes struct{ t *testing.T }

func (s stubRecipes) Create(context.Context, usecase.CreateRecipeInput) (*domain.Recipe, error) {
	s.t.Error("recipe usecase called during routing test")
	return nil, errors.New("unexpected")
}

func (s stubRecipes) List(context.Context, string) ([]*domain.Recipe, error) {
	return nil, nil
}

func (s stubRecipes) GetByID(context.Context, string, string) (*domain.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}

func (s stubRecipes) Update(context.Context, string, string, usecase.UpdateRecipeInput) (*domain.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}

func (s stubRecipes) Delete(context.Context, string, string) error {
	return domain.ErrRecipeNotFound
}

type grantAll struct{}

func (grantAll) Authenticate(context.Context, string) (*domain.User, error) {
	return &domain.User{ID: "user-1", IsActive: true}, nil
}

type denyAll struct{}

func (denyAll) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrTokenInvalid
}

func newRouter(t *testing.T, authMW gin.HandlerFunc) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return httptransport.NewRouter(logger,
		handler.NewUserHandler(stubUsers{t}, logger),
		handler.NewAuthHandler(stubIssuer{t}, logger),
		handler.NewRecipeHandler(stubRecipes{t}, logger),
		authMW)
}

func TestRouter_PostToProfile_Returns405(t *testing.T) {
	r := newRouter(t, middleware.Auth(grantAll{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/me", nil)
	req.Header.Set("Authorization", "Token some-key")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestRouter_ProtectedRoutes_RequireToken(t *testing.T) {
	r := newRouter(t, middleware.Auth(denyAll{}))

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users/me"},
		{http.MethodGet, "/recipes"},
		{http.MethodPost, "/recipes"},
		{http.MethodGet, "/recipes/recipe-1"},
		{http.MethodPut, "/recipes/recipe-1"},
		{http.MethodPatch, "/recipes/recipe-1"},
		{http.MethodDelete, "/recipes/recipe-1"},
	}

	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", route.method, route.path, w.Code)
		}
	}
}

func TestRouter_ProfileReachableWithValidToken(t *testing.T) {
	r := newRouter(t, middleware.Auth(grantAll{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Token some-key")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
