package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterLoginAndMe(t *testing.T) {
	app, _ := buildApp(t)

	// register a new player
	resp, err := app.Test(jsonReq("POST", "/api/register",
		`{"username":"pilot","email":"pilot@familiar.test","password":"Sup3rSecret!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("register returned no token")
	}

	// the bearer token resolves the principal
	resp, err = app.Test(jsonReq("GET", "/api/user", "", tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", resp.StatusCode)
	}
	me := decodeBody(t, resp)
	user, _ := me["user"].(map[string]any)
	if user["username"] != "pilot" {
		t.Fatalf("unexpected user payload: %+v", me)
	}
	if gears, _ := user["gears"].(float64); gears != 100 {
		t.Fatalf("new players should start with 100 gears, got %v", user["gears"])
	}

	// duplicate registration conflicts
	resp, err = app.Test(jsonReq("POST", "/api/register",
		`{"username":"pilot","email":"other@familiar.test","password":"Sup3rSecret!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := buildApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/login", `{"username":"tess","password":"wrongpass!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("POST", "/api/login", `{"username":"nobody","password":"Passw0rd!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", resp.StatusCode)
	}
}

func TestSessionCookieResolvesPrincipal(t *testing.T) {
	app, _ := buildApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/login", `{"username":"tess","password":"Passw0rd!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}
	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c.Value
		}
	}
	if sid == "" {
		t.Fatal("login did not set a sid cookie")
	}

	// no bearer token, session cookie only
	req := jsonReq("GET", "/api/user", "", "")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with session cookie, got %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := buildApp(t)

	for _, path := range []string{"/api/user", "/api/pet/", "/api/inventory"} {
		resp, err := app.Test(jsonReq("GET", path, "", ""))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without credentials, got %d", path, resp.StatusCode)
		}
	}

	resp, err := app.Test(jsonReq("GET", "/api/pet/", "", "not-a-real-token"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", resp.StatusCode)
	}
}
