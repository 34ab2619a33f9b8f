package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/configs"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/storage"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outbox struct {
	mu   sync.Mutex
	msgs []mailer.Message
}

func (o *outbox) Enqueue(m mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, m)
	return nil
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.msgs)
}

type api struct {
	t *testing.T
	r *gin.Engine
}

func newAPI(t *testing.T) (*api, *outbox) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	images, err := storage.NewLocalImageStore(dir, "/uploads")
	require.NoError(t, err)

	box := &outbox{}
	r := gin.New()
	RegisterRoutes(r, Deps{
		DB: testutil.NewDB(t),
		Config: &configs.Config{
			JWTSecret:   "route-secret",
			JWTTTL:      time.Hour,
			AdminEmail:  "ops@royal.com",
			UploadDir:   dir,
			CORSOrigins: []string{"*"},
		},
		Composer: mailer.NewComposer(mailer.DefaultBrand()),
		Notifier: box,
		Images:   images,
	})
	return &api{t: t, r: r}, box
}

func (a *api) do(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return a.send(req, token)
}

func (a *api) send(req *http.Request, token string) (int, map[string]any) {
	a.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func (a *api) signUpAndLogin(name, email, phone, role string) string {
	a.t.Helper()
	code, body := a.do(http.MethodPost, "/api/user/signup", "", gin.H{
		"fullName": name, "email": email, "password": "secret123", "phoneNumber": phone, "role": role,
	})
	require.Equal(a.t, http.StatusCreated, code, body)

	code, body = a.do(http.MethodPost, "/api/user/login", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(a.t, http.StatusOK, code, body)
	return body["token"].(string)
}

func productForm(t *testing.T, fields map[string]string, images int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for i := 0; i < images; i++ {
		part, err := w.CreateFormFile("image", fmt.Sprintf("dish%d.png", i))
		require.NoError(t, err)
		require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestOrderingFlow(t *testing.T) {
	a, box := newAPI(t)

	adminTok := a.signUpAndLogin("Boss", "boss@royal.com", "0700", "Admin")
	userTok := a.signUpAndLogin("Ada", "ada@example.com", "0801", "")

	// signup never echoes the hash
	code, body := a.do(http.MethodPost, "/api/user/signup", "", gin.H{
		"fullName": "Eve", "email": "eve@example.com", "password": "pw", "phoneNumber": "0802",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.NotContains(t, body["user"], "password")

	// product: admin only
	form, ctype := productForm(t, map[string]string{"productName": "Jollof", "description": "Party rice", "price": "10.00"}, 2)
	req := httptest.NewRequest(http.MethodPost, "/api/product/create-product", form)
	req.Header.Set("Content-Type", ctype)
	code, _ = a.send(req, userTok)
	assert.Equal(t, http.StatusForbidden, code)

	form, ctype = productForm(t, map[string]string{"productName": "Jollof", "description": "Party rice", "price": "10.00"}, 2)
	req = httptest.NewRequest(http.MethodPost, "/api/product/create-product", form)
	req.Header.Set("Content-Type", ctype)
	code, body = a.send(req, adminTok)
	require.Equal(t, http.StatusCreated, code, body)
	product := body["product"].(map[string]any)
	assert.Len(t, product["image"], 2)
	productID := product["id"]

	code, body = a.do(http.MethodGet, "/api/product/all-product", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["product"], 1)

	code, _ = a.do(http.MethodGet, "/api/product/one-product/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// order
	code, _ = a.do(http.MethodPost, "/api/order/create-order", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = a.do(http.MethodPost, "/api/order/create-order", userTok, gin.H{
		"items":      []gin.H{{"productId": productID, "qty": 2}},
		"payment":    gin.H{"method": "Payment"},
		"pickUpDate": "Morning",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Len(t, body, 1, "failure carries only a message")

	code, body = a.do(http.MethodPost, "/api/order/create-order", userTok, gin.H{
		"items":      []gin.H{{"productId": productID, "qty": 2}},
		"payment":    gin.H{"method": "Payment", "detail": "Card"},
		"pickUpDate": "Morning",
		"notes":      "extra pepper",
	})
	require.Equal(t, http.StatusCreated, code, body)
	order := body["newOrder"].(map[string]any)
	assert.EqualValues(t, 1000, order["orderId"])
	assert.Equal(t, "20", order["totalAmount"])
	assert.Equal(t, "Pending", order["status"])
	orderID := order["id"]

	code, _ = a.do(http.MethodPut, fmt.Sprintf("/api/order/status/%v", orderID), userTok, gin.H{"status": "Ready"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = a.do(http.MethodPut, "/api/order/status/9999", adminTok, gin.H{"status": "Ready"})
	assert.Equal(t, http.StatusNotFound, code)

	code, body = a.do(http.MethodPut, fmt.Sprintf("/api/order/status/%v", orderID), adminTok, gin.H{"status": "Approved"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Approved", body["order"].(map[string]any)["status"])

	code, body = a.do(http.MethodGet, "/api/order/all-order", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	rows := body["data"].([]any)
	require.Len(t, rows, 1)
	buyer := rows[0].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", buyer["email"])

	code, body = a.do(http.MethodGet, "/api/order/my-orders", userTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"], 1)

	// admin dashboard
	code, body = a.do(http.MethodGet, "/api/admin/stats", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 0, stats["pendingOrders"])
	assert.EqualValues(t, 2, stats["newCustomersToday"])

	code, body = a.do(http.MethodGet, "/api/admin/activity", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["activity"], 4)

	code, body = a.do(http.MethodGet, "/api/admin/users", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["users"], 2)

	code, body = a.do(http.MethodGet, "/api/admin/verify-token", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "boss@royal.com", body["user"].(map[string]any)["email"])

	// welcome x3, admin notify, order confirmed, status change
	assert.Equal(t, 6, box.count())
}

func TestWaitlistFlow(t *testing.T) {
	a, box := newAPI(t)
	adminTok := a.signUpAndLogin("Boss", "boss@royal.com", "0700", "Admin")
	before := box.count()

	code, _ := a.do(http.MethodPost, "/api/admin/waitlist/send", adminTok, gin.H{"subject": "Hi", "body": "Soon"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = a.do(http.MethodPost, "/api/user/waitlist", "", gin.H{"fullName": "Bola", "email": "bola@example.com"})
	require.Equal(t, http.StatusCreated, code)
	code, _ = a.do(http.MethodPost, "/api/user/waitlist", "", gin.H{"fullName": "Bola", "email": "BOLA@example.com"})
	assert.Equal(t, http.StatusConflict, code)

	code, body := a.do(http.MethodGet, "/api/admin/waitlist", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["waitlist"], 1)

	code, body = a.do(http.MethodPost, "/api/admin/waitlist/send", adminTok, gin.H{"subject": "Hi", "body": "Soon"})
	require.Equal(t, http.StatusOK, code, body)
	assert.EqualValues(t, 1, body["recipients"])
	assert.Equal(t, before+1, box.count())
}

func TestAuthErrors(t *testing.T) {
	a, _ := newAPI(t)
	a.signUpAndLogin("Ada", "ada@example.com", "0801", "")

	code, body := a.do(http.MethodPost, "/api/user/signup", "", gin.H{
		"fullName": "Ada", "email": "ada@example.com", "password": "x", "phoneNumber": "0999",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already exists", body["message"])

	code, wrong := a.do(http.MethodPost, "/api/admin/login", "", gin.H{"email": "ada@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	code2, unknown := a.do(http.MethodPost, "/api/user/login", "", gin.H{"email": "who@example.com", "password": "nope"})
	assert.Equal(t, code, code2)
	assert.Equal(t, wrong["message"], unknown["message"])

	code, body = a.do(http.MethodGet, "/api/admin/stats", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token", body["message"])

	code, _ = a.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
}
