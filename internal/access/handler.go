package access

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/brumatteo/caseiros-cardapio-digital/internal/appurl"
)

type Handler struct {
	service *Service
}

type verifyRequest struct {
	Email string `json:"email"`
	// optional post-verification redirect, echoed back only when it points
	// at our own domain
	Redirect string `json:"redirect,omitempty"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/access/verify", h.verify)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/access/session", h.session)
}

// verify exchanges a roster-listed email for a time-bounded admin token.
// Links that carried the email as a URL parameter post it here once; the
// token they get back is what gets stored, never the email flag itself.
func (h *Handler) verify(c *fiber.Ctx) error {
	payload := new(verifyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	token, err := h.service.Verify(c.Context(), payload.Email)
	if err != nil {
		switch err {
		case ErrNotEntitled:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "E-mail não cadastrado. Faça seu cadastro pelo seu Plano de Ação Interativo.",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Falha ao validar e-mail. Tente novamente."})
		}
	}

	res := fiber.Map{
		"token": token,
		"email": NormalizeEmail(payload.Email),
	}
	if payload.Redirect != "" && appurl.IsValidAppURL(payload.Redirect) {
		res["redirect"] = payload.Redirect
	}
	return c.JSON(res)
}

// session reports who the current token belongs to; the JWT middleware has
// already rejected missing or expired tokens by the time this runs.
func (h *Handler) session(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	email, _ := claims["email"].(string)
	return c.JSON(fiber.Map{"email": email})
}
