package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrMissingCustomer = errors.New("customer name and phone are required")
	ErrNoWhatsapp      = errors.New("bakery has no whatsapp number configured")
)

// LineType discriminates what a cart line points at.
type LineType string

const (
	LineProduct LineType = "product"
	LineExtra   LineType = "extra"
)

// Line is one cart entry. Name, size name and price are snapshots taken when
// the item was added; the cart never goes back to the catalog. Lines exist
// only for the browsing session and are never persisted.
type Line struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	SizeID      string   `json:"sizeId"`
	SizeName    string   `json:"sizeName"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Type        LineType `json:"type"`
}

// Customer is what the checkout form collects.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Note  string `json:"note,omitempty"`
}

// Add merges the line into the cart: a line with the same (productId, sizeId)
// pair has its quantity incremented, anything else is appended.
func Add(lines []Line, line Line) []Line {
	for i, existing := range lines {
		if existing.ProductID == line.ProductID && existing.SizeID == line.SizeID {
			lines[i].Quantity += line.Quantity
			return lines
		}
	}
	return append(lines, line)
}

// Total is the sum of price x quantity over all lines.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// StripPhone keeps only digits; "(11) 99999-9999" becomes "1199999999".
func StripPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

const defaultMessage = "Olá! Gostaria de confirmar meu pedido:"

// BuildWhatsAppLink assembles the wa.me checkout URL from the cart, the
// customer form and the bakery's configured number/message.
func BuildWhatsAppLink(number, baseMessage string, lines []Line, customer Customer) (string, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		return "", ErrMissingCustomer
	}
	phone := StripPhone(number)
	if phone == "" {
		return "", ErrNoWhatsapp
	}
	if baseMessage == "" {
		baseMessage = defaultMessage
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s\n\n", baseMessage)
	fmt.Fprintf(&msg, "👤 *Nome:* %s\n", customer.Name)
	fmt.Fprintf(&msg, "📱 *Telefone:* %s\n\n", customer.Phone)
	msg.WriteString("*Itens:*\n")
	for i, l := range lines {
		fmt.Fprintf(&msg, "%d. %s - %s\n", i+1, l.ProductName, l.SizeName)
		fmt.Fprintf(&msg, "   Quantidade: %dx\n", l.Quantity)
		fmt.Fprintf(&msg, "   Subtotal: R$ %.2f\n\n", l.Price*float64(l.Quantity))
	}
	fmt.Fprintf(&msg, "*Total: R$ %.2f*\n", Total(lines))
	if note := strings.TrimSpace(customer.Note); note != "" {
		fmt.Fprintf(&msg, "\n📝 *Observações:* %s", note)
	}

	// percent-encode spaces so the text survives every WhatsApp client
	text := strings.ReplaceAll(url.QueryEscape(msg.String()), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + text, nil
}
