package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stonevault-backend/internal/config"
	"stonevault-backend/internal/database"
	"stonevault-backend/internal/handlers"
	"stonevault-backend/internal/middleware"
	"stonevault-backend/internal/models"
	"stonevault-backend/internal/services"
	"stonevault-backend/internal/session"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	// The health handler pings through the package-level handle.
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	cfg := &config.Config{
		SessionTTL:  time.Hour,
		UploadDir:   t.TempDir(),
		Port:        "0",
		CORSOrigins: "http://localhost:5173",
	}
	store := session.NewStore(db, cfg.SessionTTL)

	h := &Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(db), store, cfg),
		Health:   handlers.NewHealthHandler(),
		Stones:   handlers.NewStoneHandler(services.NewCatalogService(db), cfg),
		Cart:     handlers.NewCartHandler(services.NewCartService(db)),
		Orders:   handlers.NewOrderHandler(services.NewOrderService(db)),
		Wishlist: handlers.NewWishlistHandler(services.NewWishlistService(db)),
		Address:  handlers.NewAddressHandler(services.NewAddressService(db)),
		Content:  handlers.NewContentHandler(services.NewContentService(db)),
	}

	app := fiber.New()
	app.Use(middleware.LoadSession(store))
	Setup(app, cfg, h)
	return app, db
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sidCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func registerUser(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"name":     "Test User",
		"password": "supersecret",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sidCookie(t, resp)
	require.NotNil(t, cookie, "register should set the session cookie")
	return cookie
}

func TestRegisterLoginMeFlow(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "alice@example.com", me["email"])
	assert.Equal(t, models.RoleUser, me["role"])
	assert.NotContains(t, me, "password")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "alice@example.com")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "alice@example.com",
		"name":     "Impostor",
		"password": "otherpassword",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPasswordSetsNoSession(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "alice@example.com")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sidCookie(t, resp))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCartRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectAnonymousAndNonAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cookie := registerUser(t, app, "user@example.com")
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminCanListOrders(t *testing.T) {
	app, db := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:    "admin@stones.test",
		Name:     "Admin User",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "admin@stones.test",
		"password": "Admin@123",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sidCookie(t, resp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCartAddAndCheckoutOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	cookie := registerUser(t, app, "demo@stones.test")

	stone := models.Stone{
		Name: "Blue Sapphire", Slug: "blue-sapphire", Type: "SAPPHIRE", Color: "Blue",
		Weight: decimal.RequireFromString("2.50"), Origin: "Sri Lanka",
		ShortInfo: "s", Description: "d",
		Price: decimal.RequireFromString("2500.00"), Currency: "USD", Stock: 5, Images: []string{},
	}
	require.NoError(t, db.Create(&stone).Error)

	req := jsonRequest(http.MethodPost, "/api/cart", fiber.Map{"stoneId": stone.ID, "quantity": 2})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = jsonRequest(http.MethodPost, "/api/orders", fiber.Map{
		"items": []fiber.Map{{
			"stoneId":   stone.ID,
			"quantity":  2,
			"unitPrice": "2500.00",
			"lineTotal": "5000.00",
		}},
		"subtotal":    "5000.00",
		"shippingFee": "15.00",
		"total":       "5015.00",
	})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestPublicCatalogAndContent(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&models.FAQ{Question: "q", Answer: "a", SortOrder: 1}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stones", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestContactValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact", fiber.Map{
		"name":  "Alice",
		"email": "not-an-email",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/contact", fiber.Map{
		"name":    "Alice",
		"email":   "alice@example.com",
		"message": "Hello",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
