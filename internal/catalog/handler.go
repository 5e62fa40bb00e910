package catalog

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SlugResolver maps a public URL slug to the owning bakery id. Implemented
// by the bakery service; declared here so this package does not depend on it.
type SlugResolver interface {
	ResolveSlug(ctx context.Context, slug string) (string, error)
}

type Handler struct {
	service *Service
	slugs   SlugResolver
}

func NewHandler(service *Service, slugs SlugResolver) *Handler {
	return &Handler{service: service, slugs: slugs}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/store/:slug", h.getStorefront)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/catalog/:slug", h.getCatalog)
	app.Put("/api/v1/catalog/:slug", h.saveCatalog)
}

func (h *Handler) getStorefront(c *fiber.Ctx) error {
	data, err := h.loadBySlug(c)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Confeitaria não encontrada"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(BuildStorefront(data))
}

func (h *Handler) getCatalog(c *fiber.Ctx) error {
	data, err := h.loadBySlug(c)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Confeitaria não encontrada"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(data)
}

// loadBySlug resolves the slug and loads the aggregate; unknown slugs
// collapse into ErrNotFound so both read handlers answer the same way.
func (h *Handler) loadBySlug(c *fiber.Ctx) (Data, error) {
	bakeryID, err := h.slugs.ResolveSlug(c.Context(), c.Params("slug"))
	if err != nil {
		return Data{}, ErrNotFound
	}
	return h.service.Load(c.Context(), bakeryID)
}

func (h *Handler) saveCatalog(c *fiber.Ctx) error {
	bakeryID, err := h.slugs.ResolveSlug(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Confeitaria não encontrada"})
	}

	payload := new(Data)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// the admin editor's save-guard: reject before anything is persisted
	if ves := validateData(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if err := h.service.Save(c.Context(), bakeryID, *payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Não foi possível salvar os dados"})
	}
	return c.JSON(fiber.Map{"message": "Dados salvos com sucesso"})
}

func validateData(data *Data) map[string]string {
	errs := map[string]string{}
	for i, p := range data.Products {
		if p.ID == "" {
			errs[fmt.Sprintf("products[%d].id", i)] = "id is required"
		}
		if p.Name == "" {
			errs[fmt.Sprintf("products[%d].name", i)] = "name is required"
		}
		for j, size := range p.Sizes {
			if size.Price <= 0 {
				errs[fmt.Sprintf("products[%d].sizes[%d].price", i, j)] = "price must be > 0"
			}
		}
	}
	for i, s := range data.Sections {
		if s.ID == "" {
			errs[fmt.Sprintf("sections[%d].id", i)] = "id is required"
		}
		if s.Name == "" {
			errs[fmt.Sprintf("sections[%d].name", i)] = "name is required"
		}
	}
	for i, t := range data.Tags {
		if t.ID == "" {
			errs[fmt.Sprintf("tags[%d].id", i)] = "id is required"
		}
	}
	return errs
}
