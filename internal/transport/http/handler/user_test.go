package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/transport/http/handler"
	"github.com/a-osman/recipe-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// fakeAuthed injects a fixed userID the way the auth middleware would.
func fakeAuthed(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// fakeUserUsecase implements the unexported userUsecaser interface via method matching.
type fakeUserUsecase struct {
	create  func(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	getByID func(ctx context.Context, id string) (*domain.User, error)
	update  func(ctx context.Context, userID string, input usecase.UpdateUserInput) (*domain.User, error)
}

func (f *fakeUserUsecase) Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	return f.create(ctx, input)
}

func (f *fakeUserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.getByID(ctx, id)
}

func (f *fakeUserUsecase) Update(ctx context.Context, userID string, input usecase.UpdateUserInput) (*domain.User, error) {
	return f.update(ctx, userID, input)
}

func newUserEngine(uc *fakeUserUsecase) *gin.Engine {
	h := handler.NewUserHandler(uc, testLogger())

	r := gin.New()
	r.POST("/users/create", h.Create)
	r.GET("/users/me", fakeAuthed("user-1"), h.Me)
	r.PATCH("/users/me", fakeAuthed("user-1"), h.UpdateMe)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Create ----

func TestCreateUser_Success_Returns201WithoutPassword(t *testing.T) {
	uc := &fakeUserUsecase{
		create: func(_ context.Context, input usecase.CreateUserInput) (*domain.User, error) {
			return &domain.User{
				ID:           "user-1",
				Email:        input.Email,
				Name:         input.Name,
				PasswordHash: "$2a$10$secret",
			}, nil
		},
	}

	w := postJSON(newUserEngine(uc), "/users/create",
		`{"email":"test@example.com","password":"testpass123","name":"Test Name"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "secret") {
		t.Errorf("response leaks password material: %s", body)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp["email"] != "test@example.com" || resp["name"] != "Test Name" {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestCreateUser_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(newUserEngine(&fakeUserUsecase{}), "/users/create", `{bad json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateUser_InvalidEmail_Returns400(t *testing.T) {
	w := postJSON(newUserEngine(&fakeUserUsecase{}), "/users/create",
		`{"email":"not-an-email","password":"testpass123"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateUser_ShortPassword_Returns400WithField(t *testing.T) {
	uc := &fakeUserUsecase{
		create: func(_ context.Context, _ usecase.CreateUserInput) (*domain.User, error) {
			return nil, domain.NewValidationError("password", "password must be at least 5 characters long")
		},
	}

	w := postJSON(newUserEngine(uc), "/users/create",
		`{"email":"test@example.com","password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"field":"password"`) {
		t.Errorf("missing field detail: %s", w.Body.String())
	}
}

func TestCreateUser_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeUserUsecase{
		create: func(_ context.Context, _ usecase.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	w := postJSON(newUserEngine(uc), "/users/create",
		`{"email":"test@example.com","password":"testpass123"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateUser_UsecaseFailure_Returns500(t *testing.T) {
	uc := &fakeUserUsecase{
		create: func(_ context.Context, _ usecase.CreateUserInput) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}

	w := postJSON(newUserEngine(uc), "/users/create",
		`{"email":"test@example.com","password":"testpass123"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Me ----

func TestMe_ReturnsProfileForAuthenticatedUser(t *testing.T) {
	uc := &fakeUserUsecase{
		getByID: func(_ context.Context, id string) (*domain.User, error) {
			if id != "user-1" {
				t.Errorf("looked up %q, want user-1", id)
			}
			return &domain.User{ID: id, Email: "test@example.com", Name: "Test Name"}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	newUserEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp["email"] != "test@example.com" || resp["name"] != "Test Name" {
		t.Errorf("unexpected body: %v", resp)
	}
}

// ---- UpdateMe ----

func TestUpdateMe_PatchesNameAndPassword(t *testing.T) {
	var gotInput usecase.UpdateUserInput
	uc := &fakeUserUsecase{
		update: func(_ context.Context, userID string, input usecase.UpdateUserInput) (*domain.User, error) {
			if userID != "user-1" {
				t.Errorf("updated %q, want user-1", userID)
			}
			gotInput = input
			return &domain.User{ID: userID, Email: "test@example.com", Name: *input.Name}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/me",
		strings.NewReader(`{"name":"New Name","password":"newpass123"}`))
	req.Header.Set("Content-Type", "application/json")
	newUserEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotInput.Name == nil || *gotInput.Name != "New Name" {
		t.Error("name not passed through")
	}
	if gotInput.Password == nil || *gotInput.Password != "newpass123" {
		t.Error("password not passed through")
	}
}
