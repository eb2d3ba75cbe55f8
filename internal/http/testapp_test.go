package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"familiar/internal/config"
	"familiar/internal/http/handlers"
	"familiar/internal/repos"
	"familiar/internal/services"
)

// buildApp wires the API routes the way cmd/familiar does, minus templates
// and rate limiting, against an in-memory store.
func buildApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Secret: []byte("test-secret")}
	authH := &handlers.AuthHandler{Auth: authSvc}
	deps := handlers.NewDeps(db, config.Config{})

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)
	api.Post("/logout", authH.Logout)
	api.Get("/user", handlers.RequireUser(authSvc), authH.Me)
	api.Get("/species", deps.PetHandler.Species)

	pet := api.Group("/pet", handlers.RequireUser(authSvc))
	pet.Get("/", deps.PetHandler.Get)
	pet.Post("/adopt", deps.PetHandler.Adopt)
	pet.Post("/feed", deps.PetHandler.Feed)
	pet.Post("/maintain", deps.PetHandler.Maintain)
	pet.Post("/play", deps.PetHandler.Play)

	api.Get("/shop", deps.ShopHandler.Items)
	api.Post("/shop/purchase", handlers.RequireUser(authSvc), deps.ShopHandler.Purchase)
	api.Get("/inventory", handlers.RequireUser(authSvc), deps.ShopHandler.Inventory)
	api.Post("/inventory/equip", handlers.RequireUser(authSvc), deps.ShopHandler.Equip)

	return app, db
}

func jsonReq(method, path, body, token string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

// loginAs returns a bearer token for a seeded user.
func loginAs(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/login", `{"username":"`+username+`","password":"Passw0rd!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("login returned no token")
	}
	return tok
}
