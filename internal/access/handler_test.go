package access

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func postVerify(t *testing.T, app *fiber.App, payload verifyRequest) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/access/verify", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res
}

func TestVerifyEndpoint_Entitled(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(&stubRoster{match: true}, []byte("s"))).RegisterPublicRoutes(app)

	res := postVerify(t, app, verifyRequest{Email: "dona@doce.com"})
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token"] == "" {
		t.Fatal("expected a token in the response")
	}
	if body["email"] != "dona@doce.com" {
		t.Fatalf("unexpected email %q", body["email"])
	}
}

func TestVerifyEndpoint_Rejected(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(&stubRoster{match: false}, []byte("s"))).RegisterPublicRoutes(app)

	res := postVerify(t, app, verifyRequest{Email: "x@y.com"})
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "não cadastrado") {
		t.Fatalf("unexpected message: %s", b)
	}
}

func TestVerifyEndpoint_ForeignRedirectDropped(t *testing.T) {
	t.Setenv("APP_URL", "https://cardapio.example.com")

	app := fiber.New()
	NewHandler(NewService(&stubRoster{match: true}, []byte("s"))).RegisterPublicRoutes(app)

	res := postVerify(t, app, verifyRequest{
		Email:    "dona@doce.com",
		Redirect: "https://evil.example.org/phish",
	})
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["redirect"] != "" {
		t.Fatalf("foreign redirect must be dropped, got %q", body["redirect"])
	}

	res2 := postVerify(t, app, verifyRequest{
		Email:    "dona@doce.com",
		Redirect: "https://cardapio.example.com/doce-mel/admin",
	})
	var body2 map[string]string
	if err := json.NewDecoder(res2.Body).Decode(&body2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body2["redirect"] != "https://cardapio.example.com/doce-mel/admin" {
		t.Fatalf("same-origin redirect must be echoed, got %q", body2["redirect"])
	}
}

func TestHTTPRoster_ParsesMatch(t *testing.T) {
	var gotPath, gotKey string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotKey = r.Header.Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"email":"dona@doce.com"}]`))
	}))
	defer backend.Close()

	roster := NewHTTPRoster(backend.URL, "anon-key", zap.NewNop().Sugar())
	ok, err := roster.HasEmail(context.Background(), "dona@doce.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if gotKey != "anon-key" {
		t.Fatalf("apikey header missing, got %q", gotKey)
	}
	if !strings.Contains(gotPath, "users_hub") || !strings.Contains(gotPath, "email=eq.dona%40doce.com") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
}

func TestHTTPRoster_EmptyResultIsNoMatch(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	roster := NewHTTPRoster(backend.URL, "k", zap.NewNop().Sugar())
	ok, err := roster.HasEmail(context.Background(), "x@y.com")
	if err != nil || ok {
		t.Fatalf("expected no match without error, got ok=%v err=%v", ok, err)
	}
}

func TestHTTPRoster_ServerErrorIsLookupError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	roster := NewHTTPRoster(backend.URL, "k", zap.NewNop().Sugar())
	if _, err := roster.HasEmail(context.Background(), "x@y.com"); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}
