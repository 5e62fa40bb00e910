package checkout

import (
	"strings"
	"testing"
)

func TestAdd_MergesSameProductAndSize(t *testing.T) {
	cart := []Line{}
	cart = Add(cart, Line{ProductID: "p1", SizeID: "m", Price: 55, Quantity: 1, Type: LineProduct})
	cart = Add(cart, Line{ProductID: "p1", SizeID: "g", Price: 75, Quantity: 1, Type: LineProduct})
	cart = Add(cart, Line{ProductID: "p1", SizeID: "m", Price: 55, Quantity: 2, Type: LineProduct})

	if len(cart) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", cart[0].Quantity)
	}
}

func TestTotal(t *testing.T) {
	cart := []Line{
		{Price: 55, Quantity: 3},
		{Price: 75, Quantity: 1},
		{Price: 12, Quantity: 2},
	}
	if got := Total(cart); got != 55*3+75+12*2 {
		t.Fatalf("unexpected total %v", got)
	}
}

func TestStripPhone(t *testing.T) {
	cases := map[string]string{
		"(11) 99999-9999":   "1199999999",
		"+55 11 98888-7777": "5511988887777",
		"5511999999999":     "5511999999999",
		"abc":               "",
	}
	for in, want := range cases {
		if got := StripPhone(in); got != want {
			t.Errorf("StripPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	cart := []Line{
		{ProductID: "p1", ProductName: "Bolo de Chocolate", SizeID: "m", SizeName: "Médio (20cm)", Price: 55, Quantity: 2, Type: LineProduct},
	}
	link, err := BuildWhatsAppLink("(11) 99999-9999", "", cart, Customer{Name: "Ana", Phone: "11 91234-5678", Note: "sem açúcar"})
	if err != nil {
		t.Fatalf("expected link, got %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/1199999999?text=") {
		t.Fatalf("formatting characters leaked into the number: %s", link)
	}
	// encodeURIComponent-style escaping: no '+' for spaces
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must be percent-encoded, got %s", link)
	}
	for _, want := range []string{
		"Ol%C3%A1%21%20Gostaria%20de%20confirmar%20meu%20pedido",
		"Bolo%20de%20Chocolate",
		"Subtotal%3A%20R%24%20110.00",
		"Total%3A%20R%24%20110.00",
		"sem%20a%C3%A7%C3%BAcar",
	} {
		if !strings.Contains(link, want) {
			t.Fatalf("expected %q inside link %s", want, link)
		}
	}
}

func TestBuildWhatsAppLink_RequiresCustomer(t *testing.T) {
	cart := []Line{{ProductID: "p1", Price: 10, Quantity: 1}}
	if _, err := BuildWhatsAppLink("5511999999999", "", cart, Customer{Name: " ", Phone: ""}); err != ErrMissingCustomer {
		t.Fatalf("expected ErrMissingCustomer, got %v", err)
	}
}

func TestBuildWhatsAppLink_RequiresNumber(t *testing.T) {
	cart := []Line{{ProductID: "p1", Price: 10, Quantity: 1}}
	if _, err := BuildWhatsAppLink("sem número", "", cart, Customer{Name: "Ana", Phone: "11"}); err != ErrNoWhatsapp {
		t.Fatalf("expected ErrNoWhatsapp, got %v", err)
	}
}
