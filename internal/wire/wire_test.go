package wire

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/utils"

	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	repo, err := repository.NewMemoryRepository(zap.NewNop())
	if err != nil {
		t.Fatalf("seed repository: %v", err)
	}

	config := &utils.Config{}
	config.Session.ExpiryHours = 24
	return Wiring(repo, config, zap.NewNop())
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)

	var env envelope
	if rr.Body.Len() > 0 && rr.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid json from %s %s: %v", method, path, err)
		}
	}
	return rr.Code, env
}

func login(t *testing.T, app *App) string {
	t.Helper()
	code, env := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "espectador@email.com",
		"password": "password123",
	})
	if code != 200 {
		t.Fatalf("login: want 200, got %d (%s)", code, env.Message)
	}

	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatal(err)
	}
	if auth.Token == "" {
		t.Fatal("login returned empty token")
	}
	return auth.Token
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("want 200, got %d", rr.Code)
	}
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, "GET", "/api/catalog", "", nil)
	if code != 200 {
		t.Fatalf("catalog: want 200, got %d", code)
	}
	var all []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 24 {
		t.Fatalf("want 24 unified titles, got %d", len(all))
	}

	code, _ = doJSON(t, app, "GET", "/api/contents/1", "", nil)
	if code != 200 {
		t.Fatalf("content by id: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/contents/9999", "", nil)
	if code != 404 {
		t.Fatalf("absent content: want 404, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/contents/abc", "", nil)
	if code != 400 {
		t.Fatalf("non-numeric id: want 400, got %d", code)
	}

	code, env = doJSON(t, app, "GET", "/api/contents/1/related?seed=42", "", nil)
	if code != 200 {
		t.Fatalf("related: want 200, got %d", code)
	}
	var related []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &related); err != nil {
		t.Fatal(err)
	}
	if len(related) != 6 {
		t.Fatalf("want 6 related, got %d", len(related))
	}

	code, _ = doJSON(t, app, "GET", "/api/categories/populares", "", nil)
	if code != 200 {
		t.Fatalf("category: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/genres", "", nil)
	if code != 200 {
		t.Fatalf("genres: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/genres/Drama?seed=1", "", nil)
	if code != 200 {
		t.Fatalf("by genre: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/genres/Faroeste?seed=1", "", nil)
	if code != 404 {
		t.Fatalf("unknown genre: want 404, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/catalog/metadata?kind=collection&value=populares", "", nil)
	if code != 200 {
		t.Fatalf("metadata: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "GET", "/api/catalog/metadata?kind=bogus&value=populares", "", nil)
	if code != 400 {
		t.Fatalf("bad metadata kind: want 400, got %d", code)
	}
}

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "nouser@x.com",
		"password": "any",
	})
	if code != 401 {
		t.Fatalf("unknown email: want 401, got %d", code)
	}

	code, _ = doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"email":    "espectador@email.com",
		"password": "wrong",
	})
	if code != 401 {
		t.Fatalf("wrong password: want 401, got %d", code)
	}

	token := login(t, app)

	code, _ = doJSON(t, app, "POST", "/api/logout", token, nil)
	if code != 200 {
		t.Fatalf("logout: want 200, got %d", code)
	}

	// The revoked token no longer opens protected routes
	code, _ = doJSON(t, app, "GET", "/api/my-list", token, nil)
	if code != 401 {
		t.Fatalf("revoked token: want 401, got %d", code)
	}
}

func TestMyListRoutes(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, "GET", "/api/my-list", "", nil)
	if code != 401 {
		t.Fatalf("anonymous my-list: want 401, got %d", code)
	}

	token := login(t, app)

	code, env := doJSON(t, app, "GET", "/api/my-list", token, nil)
	if code != 200 {
		t.Fatalf("my-list: want 200, got %d", code)
	}
	var items []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Fatalf("want 4 seeded items, got %d", len(items))
	}

	code, _ = doJSON(t, app, "POST", "/api/my-list/7", token, nil)
	if code != 200 && code != 201 {
		t.Fatalf("add to list: got %d", code)
	}

	// Repeating the add is reported as a no-op, not an error
	code, env = doJSON(t, app, "POST", "/api/my-list/7", token, nil)
	if code != 200 {
		t.Fatalf("repeat add: want 200, got %d (%s)", code, env.Message)
	}

	code, _ = doJSON(t, app, "DELETE", "/api/my-list/7", token, nil)
	if code != 200 {
		t.Fatalf("remove: want 200, got %d", code)
	}

	code, env = doJSON(t, app, "GET", "/api/my-list", token, nil)
	if code != 200 {
		t.Fatalf("my-list after round trip: want 200, got %d", code)
	}
	items = nil
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	for _, item := range items {
		if item.ID == 7 {
			t.Fatal("id 7 still on list after removal")
		}
	}
}

func TestCommentRoutes(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, "GET", "/api/contents/1/comments", "", nil)
	if code != 200 {
		t.Fatalf("get comments: want 200, got %d", code)
	}
	var thread struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &thread); err != nil {
		t.Fatal(err)
	}
	if thread.Total != 4 {
		t.Fatalf("want 4 total comments (replies included), got %d", thread.Total)
	}

	code, _ = doJSON(t, app, "POST", "/api/contents/1/comments", "", map[string]string{"text": "oi"})
	if code != 401 {
		t.Fatalf("anonymous post: want 401, got %d", code)
	}

	token := login(t, app)

	code, env = doJSON(t, app, "POST", "/api/contents/1/comments", token, map[string]string{
		"text": "Assisti ontem, recomendo!",
	})
	if code != 201 {
		t.Fatalf("post comment: want 201, got %d (%s)", code, env.Message)
	}

	code, _ = doJSON(t, app, "POST", "/api/contents/1/comments/2/like", token, nil)
	if code != 200 {
		t.Fatalf("like: want 200, got %d", code)
	}

	code, _ = doJSON(t, app, "POST", "/api/contents/1/comments/999/like", token, nil)
	if code != 404 {
		t.Fatalf("like unknown comment: want 404, got %d", code)
	}

	code, env = doJSON(t, app, "POST", "/api/contents/1/comments/2/replies", token, map[string]string{
		"text": "Concordo!",
	})
	if code != 201 {
		t.Fatalf("reply: want 201, got %d (%s)", code, env.Message)
	}

	code, _ = doJSON(t, app, "POST", "/api/contents/1/comments", token, map[string]string{"text": ""})
	if code != 400 {
		t.Fatalf("empty comment: want 400, got %d", code)
	}
}

func TestRatingRoute(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, "GET", "/api/contents/1/rating", "", nil)
	if code != 200 {
		t.Fatalf("rating: want 200, got %d", code)
	}

	var summary struct {
		Average float64 `json:"average"`
		Total   int     `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Total == 0 {
		t.Fatal("empty rating summary")
	}
}

func TestPasswordFlowRoutes(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, "POST", "/api/recover-password", "", map[string]string{
		"email": "espectador@email.com",
	})
	if code != 200 {
		t.Fatalf("recover: want 200, got %d", code)
	}
	if env.Message == "" {
		t.Fatal("empty acknowledgement message")
	}

	code, _ = doJSON(t, app, "POST", "/api/reset-password", "", map[string]string{
		"password":         "novasenha",
		"confirm_password": "diferente",
	})
	if code != 400 {
		t.Fatalf("mismatched reset: want 400, got %d", code)
	}
}

func TestRegisterRoute(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, "POST", "/api/register", "", map[string]string{
		"name":     "Novo Usuário",
		"email":    "novo@email.com",
		"password": "segredo123",
	})
	if code != 201 {
		t.Fatalf("register: want 201, got %d (%s)", code, env.Message)
	}

	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatal(err)
	}
	if auth.Token == "" {
		t.Fatal("register did not auto-login")
	}

	code, _ = doJSON(t, app, "GET", "/api/my-list", auth.Token, nil)
	if code != 200 {
		t.Fatalf("my-list with fresh account: want 200, got %d", code)
	}
}
