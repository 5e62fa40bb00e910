package checkout

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// SettingsSource yields the whatsapp number and base message configured for
// a slug. Satisfied by a small adapter over the catalog service in main.
type SettingsSource interface {
	WhatsappSettings(ctx context.Context, slug string) (number, message string, err error)
}

type Handler struct {
	settings SettingsSource
}

type checkoutRequest struct {
	Cart     []Line   `json:"cart"`
	Customer Customer `json:"customer"`
}

func NewHandler(settings SettingsSource) *Handler {
	return &Handler{settings: settings}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/store/:slug/checkout-link", h.buildLink)
}

func (h *Handler) buildLink(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Cart) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Carrinho vazio"})
	}

	number, message, err := h.settings.WhatsappSettings(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Confeitaria não encontrada"})
	}

	link, err := BuildWhatsAppLink(number, message, payload.Cart, payload.Customer)
	if err != nil {
		switch err {
		case ErrMissingCustomer:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Por favor, preencha seu nome e telefone."})
		case ErrNoWhatsapp:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "WhatsApp não configurado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"url":   link,
		"total": Total(payload.Cart),
	})
}
