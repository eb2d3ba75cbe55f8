package handlers_test

import (
	"net/http"
	"testing"
)

func TestShopCatalogSortedByPrice(t *testing.T) {
	app, _ := buildApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/shop", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	items, _ := body["items"].([]any)
	if len(items) == 0 {
		t.Fatal("no items seeded")
	}
	prev := -1.0
	for _, raw := range items {
		it := raw.(map[string]any)
		price := it["price"].(float64)
		if price < prev {
			t.Fatalf("items not sorted by price: %v after %v", price, prev)
		}
		prev = price
	}
}

func TestPurchaseEndpoint(t *testing.T) {
	app, _ := buildApp(t)
	tok := loginAs(t, app, "miro") // 50 gears

	resp, err := app.Test(jsonReq("POST", "/api/shop/purchase", `{"itemId":"itm-wrench"}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["remainingGears"].(float64) != 20 {
		t.Fatalf("expected 20 gears remaining, got %v", body["remainingGears"])
	}

	// too expensive now
	resp, err = app.Test(jsonReq("POST", "/api/shop/purchase", `{"itemId":"itm-feast"}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected 402 for insufficient gears, got %d", resp.StatusCode)
	}

	// unknown item
	resp, err = app.Test(jsonReq("POST", "/api/shop/purchase", `{"itemId":"itm-missing"}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", resp.StatusCode)
	}

	// the purchase landed in inventory
	resp, err = app.Test(jsonReq("GET", "/api/inventory", "", tok))
	if err != nil {
		t.Fatal(err)
	}
	body = decodeBody(t, resp)
	inv, _ := body["inventory"].([]any)
	if len(inv) != 1 {
		t.Fatalf("expected one inventory row, got %d", len(inv))
	}
}

func TestEquipEndpoint(t *testing.T) {
	app, _ := buildApp(t)
	tok := loginAs(t, app, "tess") // 100 gears

	resp, err := app.Test(jsonReq("POST", "/api/shop/purchase", `{"itemId":"itm-scarf"}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("purchase failed: %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("GET", "/api/inventory", "", tok))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeBody(t, resp)
	inv, _ := body["inventory"].([]any)
	entry := inv[0].(map[string]any)
	entryID := entry["id"].(string)

	resp, err = app.Test(jsonReq("POST", "/api/inventory/equip", `{"inventoryId":"`+entryID+`","equipped":true}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body = decodeBody(t, resp); body["equipped"] != true {
		t.Fatalf("expected equipped true, got %v", body["equipped"])
	}

	// someone else's entry reads as missing
	tok2 := loginAs(t, app, "miro")
	resp, err = app.Test(jsonReq("POST", "/api/inventory/equip", `{"inventoryId":"`+entryID+`","equipped":true}`, tok2))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign entry, got %d", resp.StatusCode)
	}

	// missing equipped flag is a validation error
	resp, err = app.Test(jsonReq("POST", "/api/inventory/equip", `{"inventoryId":"`+entryID+`"}`, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without equipped flag, got %d", resp.StatusCode)
	}
}
