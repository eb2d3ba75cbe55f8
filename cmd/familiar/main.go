package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"familiar/internal/config"
	"familiar/internal/http/handlers"
	applog "familiar/internal/log"
	"familiar/internal/repos"
	"familiar/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Secret: []byte(cfg.JWTSecret)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))

	// ---------- Static assets ----------
	log.Printf("[static] /static -> %s", cfg.StaticDir)
	app.Static("/static", cfg.StaticDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)

	app.Get("/", deps.HomeHandler.Home)

	api := app.Group("/api")

	// Auth (login/register throttled)
	authLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.auth.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	})
	api.Post("/register", authLimiter, authH.Register)
	api.Post("/login", authLimiter, authH.Login)
	api.Post("/logout", authH.Logout)
	api.Get("/user", handlers.RequireUser(authSvc), authH.Me)

	// Species & pet care
	api.Get("/species", deps.PetHandler.Species)
	pet := api.Group("/pet", handlers.RequireUser(authSvc))
	pet.Get("/", deps.PetHandler.Get)
	pet.Post("/adopt", deps.PetHandler.Adopt)
	pet.Post("/feed", deps.PetHandler.Feed)
	pet.Post("/maintain", deps.PetHandler.Maintain)
	pet.Post("/play", deps.PetHandler.Play)

	// Shop & inventory
	api.Get("/shop", deps.ShopHandler.Items)
	api.Post("/shop/purchase", handlers.RequireUser(authSvc), deps.ShopHandler.Purchase)
	api.Get("/inventory", handlers.RequireUser(authSvc), deps.ShopHandler.Inventory)
	api.Post("/inventory/equip", handlers.RequireUser(authSvc), deps.ShopHandler.Equip)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
