package main

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brumatteo/caseiros-cardapio-digital/internal/access"
	"github.com/brumatteo/caseiros-cardapio-digital/internal/bakery"
	"github.com/brumatteo/caseiros-cardapio-digital/internal/catalog"
	"github.com/brumatteo/caseiros-cardapio-digital/internal/checkout"
	"github.com/brumatteo/caseiros-cardapio-digital/internal/fallback"
	"github.com/brumatteo/caseiros-cardapio-digital/internal/imaging"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	var (
		bakeryRepo  bakery.Repository
		catalogRepo catalog.Repository
	)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db := mustOpenDB(dbURL, log)
		defer db.Close()
		bootstrapSchema(db, log)
		bakeryRepo = bakery.NewPostgresRepository(db)
		catalogRepo = catalog.NewPostgresRepository(db, log)
	} else {
		// demo mode: one fixed bakery served from a local data file
		log.Warn("DATABASE_URL is not set, running in demo mode with a local data file")
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = filepath.Join("data", "cardapio.json")
		}
		seed := catalog.DefaultData()
		bakeryRepo = bakery.NewInMemoryRepository([]bakery.Bakery{{
			ID:   "demo",
			Slug: bakery.GenerateSlug(seed.Settings.BrandName),
			Name: seed.Settings.BrandName,
		}})
		catalogRepo = fallback.NewStore(dataFile, log)
	}

	bakeryService := bakery.NewService(bakeryRepo)
	bakeryHandler := bakery.NewHandler(bakeryService)
	bakeryHandler.RegisterPublicRoutes(app)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService, bakeryService)
	catalogHandler.RegisterPublicRoutes(app)

	checkoutHandler := checkout.NewHandler(&whatsappSource{
		bakeries: bakeryService,
		catalogs: catalogService,
	})
	checkoutHandler.RegisterPublicRoutes(app)

	planoURL := os.Getenv("PLANO_URL")
	planoKey := os.Getenv("PLANO_ANON_KEY")
	if planoURL == "" || planoKey == "" {
		log.Warn("PLANO_URL / PLANO_ANON_KEY not set, admin access verification will fail")
	}
	roster := access.NewHTTPRoster(planoURL, planoKey, log)
	accessHandler := access.NewHandler(access.NewService(roster, []byte(jwtSecret)))
	accessHandler.RegisterPublicRoutes(app)

	// serve normalized uploads
	app.Static("/uploads", "./uploads")

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(jwtSecret),
	}))

	accessHandler.RegisterProtectedRoutes(app)
	catalogHandler.RegisterProtectedRoutes(app)
	app.Post("/upload", uploadImage(log))

	addr := ":" + envOr("PORT", "8080")
	log.Infow("starting server", "addr", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Infow("request",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
		)
		return err
	}
}

func mustOpenDB(dbURL string, log *zap.SugaredLogger) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalw("could not open database", "err", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalw("could not reach database", "err", err)
	}
	return db
}

// bootstrapSchema creates the five catalog tables when missing. Collection
// ids are client-assigned per bakery, so their primary keys are composite.
func bootstrapSchema(db *sql.DB, log *zap.SugaredLogger) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bakeries (
			id TEXT PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			confectionery_name TEXT,
			settings JSONB NOT NULL DEFAULT '{}',
			user_id TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT NOT NULL,
			bakery_id TEXT NOT NULL,
			name TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			description TEXT,
			image_url TEXT,
			sizes JSONB,
			tags TEXT[],
			show_image BOOLEAN NOT NULL DEFAULT TRUE,
			product_order INT NOT NULL DEFAULT 0,
			PRIMARY KEY (bakery_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT NOT NULL,
			bakery_id TEXT NOT NULL,
			name TEXT,
			visible BOOLEAN NOT NULL DEFAULT TRUE,
			section_order INT NOT NULL DEFAULT 0,
			product_ids TEXT[],
			PRIMARY KEY (bakery_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS extras (
			id TEXT NOT NULL,
			bakery_id TEXT NOT NULL,
			name TEXT,
			description TEXT,
			image_url TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			extra_order INT NOT NULL DEFAULT 0,
			PRIMARY KEY (bakery_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT NOT NULL,
			bakery_id TEXT NOT NULL,
			name TEXT,
			color TEXT,
			emoji TEXT,
			PRIMARY KEY (bakery_id, id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalw("schema bootstrap failed", "err", err)
		}
	}
}

// whatsappSource adapts the bakery + catalog services to what the checkout
// handler needs: the configured number and base message for a slug.
type whatsappSource struct {
	bakeries *bakery.Service
	catalogs *catalog.Service
}

func (w *whatsappSource) WhatsappSettings(ctx context.Context, slug string) (string, string, error) {
	id, err := w.bakeries.ResolveSlug(ctx, slug)
	if err != nil {
		return "", "", err
	}
	data, err := w.catalogs.Load(ctx, id)
	if err != nil {
		return "", "", err
	}
	return data.Settings.WhatsappNumber, data.Settings.WhatsappMessage, nil
}

func uploadImage(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "file is required"})
		}
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		defer f.Close()
		raw, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}

		normalized, err := imaging.Normalize(raw)
		if err != nil {
			if err == imaging.ErrTooLarge {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
					"message": "Imagem muito grande. Use uma imagem menor ou comprima-a antes de enviar.",
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}

		name := uuid.NewString() + ".jpg"
		if err := os.MkdirAll("./uploads", 0o755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		if err := os.WriteFile(filepath.Join("uploads", name), normalized, 0o644); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}

		log.Infow("image uploaded", "file", name, "bytes", len(normalized))
		return c.JSON(fiber.Map{"url": "/uploads/" + name})
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
