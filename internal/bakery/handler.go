package bakery

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type signupRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfectioneryName string `json:"confectioneryName"`
	UserID            string `json:"userId,omitempty"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-up", h.signup)
	app.Get("/api/v1/bakery/:slug", h.getBySlug)
}

// signup validates the form and creates the tenant record. Credentials are
// only checked for shape here; account creation itself belongs to the
// external auth provider, which hands us the user id.
func (h *Handler) signup(c *fiber.Ctx) error {
	payload := new(signupRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Email == "" || payload.Password == "" || payload.ConfectioneryName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Preencha todos os campos"})
	}
	if len(payload.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A senha deve ter no mínimo 6 caracteres"})
	}

	created, err := h.service.Signup(c.Context(), payload.ConfectioneryName, payload.UserID)
	if err != nil {
		if err == ErrSlugExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Já existe uma confeitaria com esse nome. Tente outro."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Não foi possível criar a confeitaria"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getBySlug(c *fiber.Ctx) error {
	b, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Confeitaria não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(b)
}
