package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubSettings struct {
	number  string
	message string
}

func (s *stubSettings) WhatsappSettings(_ context.Context, slug string) (string, string, error) {
	if slug != "doce-mel" {
		return "", "", errors.New("not found")
	}
	return s.number, s.message, nil
}

func TestCheckoutLink(t *testing.T) {
	app := fiber.New()
	NewHandler(&stubSettings{number: "(11) 99999-9999"}).RegisterPublicRoutes(app)

	payload := checkoutRequest{
		Cart: []Line{
			{ProductID: "p1", ProductName: "Bolo", SizeID: "u", SizeName: "Único", Price: 40, Quantity: 1, Type: LineProduct},
		},
		Customer: Customer{Name: "Ana", Phone: "11 91234-5678"},
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/store/doce-mel/checkout-link", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		URL   string  `json:"url"`
		Total float64 `json:"total"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(body.URL, "https://wa.me/1199999999?text=") {
		t.Fatalf("unexpected url %s", body.URL)
	}
	if body.Total != 40 {
		t.Fatalf("unexpected total %v", body.Total)
	}
}

func TestCheckoutLink_EmptyCart(t *testing.T) {
	app := fiber.New()
	NewHandler(&stubSettings{number: "5511999999999"}).RegisterPublicRoutes(app)

	b, _ := json.Marshal(checkoutRequest{Customer: Customer{Name: "Ana", Phone: "11"}})
	req := httptest.NewRequest("POST", "/api/v1/store/doce-mel/checkout-link", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestCheckoutLink_MissingCustomer(t *testing.T) {
	app := fiber.New()
	NewHandler(&stubSettings{number: "5511999999999"}).RegisterPublicRoutes(app)

	b, _ := json.Marshal(checkoutRequest{
		Cart: []Line{{ProductID: "p1", Price: 10, Quantity: 1}},
	})
	req := httptest.NewRequest("POST", "/api/v1/store/doce-mel/checkout-link", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestCheckoutLink_UnknownSlug(t *testing.T) {
	app := fiber.New()
	NewHandler(&stubSettings{number: "5511999999999"}).RegisterPublicRoutes(app)

	b, _ := json.Marshal(checkoutRequest{
		Cart:     []Line{{ProductID: "p1", Price: 10, Quantity: 1}},
		Customer: Customer{Name: "Ana", Phone: "11"},
	})
	req := httptest.NewRequest("POST", "/api/v1/store/outra/checkout-link", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
