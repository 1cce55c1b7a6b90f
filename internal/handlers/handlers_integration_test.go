package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"bakery/internal/handlers"
	"bakery/internal/repositories"
	"bakery/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app *fiber.App
}

func newTestEnv() *testEnv {
	userRepo := repositories.NewMockUserRepository()
	orderRepo := repositories.NewMockOrderRepository()
	contactRepo := repositories.NewMockContactRepository()

	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	wishlistService := services.NewWishlistService(userRepo)
	orderService := services.NewOrderService(orderRepo, nil)
	contactService := services.NewContactService(contactRepo, nil)

	app := fiber.New()
	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)
	handlers.NewContactHandler(contactService).RegisterRoutes(app)

	return &testEnv{app: app}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := e.app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	parsed := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return res.StatusCode, parsed
}

func (e *testEnv) signup(t *testing.T, name, email string) string {
	t.Helper()
	status, body := e.do(t, "POST", "/signup",
		`{"name":"`+name+`","email":"`+email+`","password":"password123"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	return user["id"].(string)
}

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv()

	userID := env.signup(t, "Ana", "a@x.com")
	assert.NotEmpty(t, userID)

	// Duplicate email: success=false, no second user, 200 per the contract
	status, body := env.do(t, "POST", "/signup",
		`{"name":"Ana Again","email":"a@x.com","password":"password123"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists", body["message"])

	// Valid login returns the user and a token
	status, body = env.do(t, "POST", "/login", `{"email":"a@x.com","password":"password123"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	_, exposed := user["password"]
	assert.False(t, exposed, "password must not appear in responses")

	// Bad password
	status, body = env.do(t, "POST", "/login", `{"email":"a@x.com","password":"nope"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	// Signup with missing fields
	status, body = env.do(t, "POST", "/signup", `{"name":"NoEmail"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", body["message"])
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv()
	userID := env.signup(t, "Ana", "a@x.com")

	status, body := env.do(t, "GET", "/api/profile/"+userID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = env.do(t, "GET", "/api/profile/no-such-user", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "User not found", body["message"])
}

func TestWishlistEndpoints(t *testing.T) {
	env := newTestEnv()
	userID := env.signup(t, "Ana", "a@x.com")

	// Add
	status, body := env.do(t, "POST", "/wishlist/add",
		`{"userId":"`+userID+`","item":{"name":"Chocolate Cake"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item added to wishlist", body["message"])
	wishlist := body["wishlist"].([]interface{})
	require.Len(t, wishlist, 1)

	// Add same name again: still one entry
	status, body = env.do(t, "POST", "/wishlist/add",
		`{"userId":"`+userID+`","item":{"name":"Chocolate Cake"}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["wishlist"].([]interface{}), 1)

	// Set quantity
	status, body = env.do(t, "PUT", "/wishlist/quantity",
		`{"userId":"`+userID+`","itemName":"Chocolate Cake","quantity":3}`)
	assert.Equal(t, fiber.StatusOK, status)
	entry := body["wishlist"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(3), entry["quantity"])

	// Quantity for unknown item
	status, body = env.do(t, "PUT", "/wishlist/quantity",
		`{"userId":"`+userID+`","itemName":"Carrot Cake","quantity":2}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Item not found in wishlist", body["message"])

	// Read back
	status, body = env.do(t, "GET", "/api/wishlist/"+userID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["wishlist"].([]interface{}), 1)

	// Remove
	status, body = env.do(t, "POST", "/wishlist/remove",
		`{"userId":"`+userID+`","itemName":"Chocolate Cake"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Item removed from wishlist", body["message"])
	assert.Empty(t, body["wishlist"].([]interface{}))

	// Remove of an absent name still succeeds
	status, body = env.do(t, "POST", "/wishlist/remove",
		`{"userId":"`+userID+`","itemName":"Chocolate Cake"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Missing user
	status, body = env.do(t, "GET", "/api/wishlist/no-such-user", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "User not found", body["message"])

	// Add with missing fields
	status, body = env.do(t, "POST", "/wishlist/add", `{"userId":"`+userID+`","item":{}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", body["message"])
}

func TestOrderEndpoints(t *testing.T) {
	env := newTestEnv()
	userID := env.signup(t, "Ana", "a@x.com")

	// Place an order
	status, body := env.do(t, "POST", "/order",
		`{"userId":"`+userID+`","items":[{"name":"Vanilla Cake"}]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order placed successfully!", body["message"])

	// Empty items rejected, nothing persisted
	status, body = env.do(t, "POST", "/order", `{"userId":"`+userID+`","items":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", body["message"])

	// List: one pending order with defaulted quantity
	status, body = env.do(t, "GET", "/api/orders/"+userID, "")
	assert.Equal(t, fiber.StatusOK, status)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	order := orders[0].(map[string]interface{})
	assert.Equal(t, "Pending", order["status"])
	items := order["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), items[0].(map[string]interface{})["quantity"])
	orderID := order["id"].(string)

	// Update line-item quantity
	status, body = env.do(t, "PUT", "/api/orders/"+orderID+"/item",
		`{"itemName":"Vanilla Cake","quantity":4}`)
	assert.Equal(t, fiber.StatusOK, status)
	updated := body["order"].(map[string]interface{})
	assert.Equal(t, float64(4), updated["items"].([]interface{})[0].(map[string]interface{})["quantity"])

	// Unknown item / unknown order
	status, body = env.do(t, "PUT", "/api/orders/"+orderID+"/item",
		`{"itemName":"Carrot Cake","quantity":1}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Item not found in order", body["message"])

	status, body = env.do(t, "PUT", "/api/orders/no-such-order/item",
		`{"itemName":"Vanilla Cake","quantity":1}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Order not found", body["message"])

	// Delete, then the list is empty; deleting again still succeeds
	status, body = env.do(t, "DELETE", "/api/orders/"+orderID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = env.do(t, "GET", "/api/orders/"+userID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["orders"].([]interface{}))

	status, body = env.do(t, "DELETE", "/api/orders/"+orderID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
}

func TestContactEndpoint(t *testing.T) {
	env := newTestEnv()

	status, body := env.do(t, "POST", "/contact",
		`{"name":"Ana","email":"a@x.com","phone":"555-0101","message":"Do you deliver?"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Message sent successfully!", body["message"])

	status, body = env.do(t, "POST", "/contact", `{"name":"Ana"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", body["message"])
}
