package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const base = utils.APIBasePath

type apiFixture struct {
	db           *gorm.DB
	router       http.Handler
	student      *models.User
	admin        *models.User
	studentToken string
	adminToken   string
	course       *models.Course
}

func setupAPI(t *testing.T) apiFixture {
	t.Helper()
	db := utils.SetupTestDB(t)
	f := apiFixture{
		db:      db,
		router:  SetupRouter(),
		student: utils.CreateTestUser(t, db, "student@example.com", models.RoleStudent),
		admin:   utils.CreateTestUser(t, db, "admin@example.com", models.RoleAdmin),
		course:  utils.CreateTestCourse(t, db, "Go Web Services", "100.00", "Routing", "Middleware"),
	}
	f.studentToken = utils.GetTestToken(t, f.student)
	f.adminToken = utils.GetTestToken(t, f.admin)
	return f
}

func data(t *testing.T, resp utils.TestResponse) map[string]interface{} {
	t.Helper()
	d, ok := resp.Body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", resp.Raw)
	return d
}

func TestRegisterAndLogin(t *testing.T) {
	f := setupAPI(t)

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/users/register",
		Body:   map[string]string{"username": "newbie", "name": "New Bie", "email": "newbie@example.com", "password": "Secret123!"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/users/register",
		Body:   map[string]string{"username": "again", "name": "Again", "email": "newbie@example.com", "password": "Secret123!"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/users/login",
		Body:   map[string]string{"email": "newbie@example.com", "password": "Secret123!"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	d := data(t, resp)
	assert.Equal(t, "student", d["role"])
	token, _ := d["token"].(string)
	assert.NotEmpty(t, token)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/users/logout",
		Token:  token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/users/login",
		Body:   map[string]string{"email": "newbie@example.com", "password": "Wrong123!"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCourseCatalog(t *testing.T) {
	f := setupAPI(t)
	for i := 1; i <= 11; i++ {
		utils.CreateTestCourse(t, f.db, fmt.Sprintf("Extra %02d", i), "5")
	}

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/courses?page=2&size=5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, ok := resp.Body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 5)
	pagination := resp.Body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["totalPages"])

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/courses?page=0"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: fmt.Sprintf("%s/courses/%d", base, f.course.ID)})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, data(t, resp)["modules"], 2)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/courses/9999"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/courses/abc"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCourseManagement(t *testing.T) {
	f := setupAPI(t)
	body := map[string]interface{}{
		"title":    "Testing in Go",
		"price":    "29.99",
		"duration": 60,
		"modules":  []map[string]string{{"title": "testify"}, {"title": "httptest"}},
	}

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/courses", Body: body, Token: f.studentToken})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/courses", Body: body, Token: f.adminToken})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	id := data(t, resp)["id"].(float64)

	body["modules"] = []map[string]string{{"title": "benchmarks"}}
	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPut, Path: fmt.Sprintf("%s/courses/%d", base, int(id)), Body: body, Token: f.adminToken})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Len(t, data(t, resp)["modules"], 1)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   base + "/courses",
		Body:   map[string]interface{}{"price": "10"},
		Token:  f.adminToken,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestPurchaseFlow(t *testing.T) {
	f := setupAPI(t)
	coupon := utils.CreateTestCoupon(t, f.db, "SAVE20", 20, 3, 24*time.Hour)
	path := fmt.Sprintf("%s/courses/%d/purchase", base, f.course.ID)

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: path, Body: map[string]string{"paymentMethod": "paypal"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: path, Body: map[string]string{"paymentMethod": "paypal"}, Token: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: path, Body: map[string]string{"paymentMethod": "cash"}, Token: f.studentToken})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   path,
		Body:   map[string]string{"paymentMethod": "credit_card", "couponCode": "SAVE20"},
		Token:  f.studentToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	d := data(t, resp)
	assert.Equal(t, "80", d["paidAmount"])
	assert.Equal(t, "20", d["discountApplied"])
	assert.Equal(t, "SAVE20", d["couponCode"])

	var reloaded models.Coupon
	require.NoError(t, f.db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 2, reloaded.Quota)

	utils.CreateTestCoupon(t, f.db, "NOMORE1", 20, 0, time.Hour)
	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{
		Method: http.MethodPost,
		Path:   path,
		Body:   map[string]string{"paymentMethod": "debit_card", "couponCode": "NOMORE1"},
		Token:  f.studentToken,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCouponAdministration(t *testing.T) {
	f := setupAPI(t)
	body := map[string]interface{}{
		"couponCode":    "WINTER25",
		"discountValue": 25,
		"quota":         10,
		"expiryDate":    time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	}

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/coupons", Body: body})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/coupons", Body: body, Token: f.studentToken})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/coupons", Body: body, Token: f.adminToken})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	id := int(data(t, resp)["couponId"].(float64))

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: base + "/coupons", Body: body, Token: f.adminToken})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/coupons"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Body["data"], 1)

	body["quota"] = 4
	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPut, Path: fmt.Sprintf("%s/coupons/%d", base, id), Body: body, Token: f.adminToken})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, float64(4), data(t, resp)["quota"])

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPut, Path: base + "/coupons/9999", Body: body, Token: f.adminToken})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodDelete, Path: fmt.Sprintf("%s/coupons/%d", base, id), Token: f.adminToken})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/coupons"})
	assert.Len(t, resp.Body["data"], 0)
}

func TestTransactionsEndpoints(t *testing.T) {
	f := setupAPI(t)
	other := utils.CreateTestUser(t, f.db, "other@example.com", models.RoleStudent)
	path := fmt.Sprintf("%s/courses/%d/purchase", base, f.course.ID)

	var purchaseIDs []int
	for _, token := range []string{f.studentToken, utils.GetTestToken(t, other)} {
		resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodPost, Path: path, Body: map[string]string{"paymentMethod": "debit_card"}, Token: token})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
		purchaseIDs = append(purchaseIDs, int(data(t, resp)["purchaseId"].(float64)))
	}

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/transactions", Token: f.studentToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := resp.Body["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, float64(purchaseIDs[0]), rows[0].(map[string]interface{})["transactionId"])

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/transactions?sortBy=sideways", Token: f.studentToken})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/transactions", Token: f.adminToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Body["data"], 2)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/transactions/export", Token: f.studentToken})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: base + "/transactions/export", Token: f.adminToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Equal(t, "PK", string(resp.Raw[:2]))

	receipt := fmt.Sprintf("%s/transactions/%d/receipt", base, purchaseIDs[0])
	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: receipt, Token: f.studentToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "%PDF", string(resp.Raw[:4]))

	otherReceipt := fmt.Sprintf("%s/transactions/%d/receipt", base, purchaseIDs[1])
	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: otherReceipt, Token: f.studentToken})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	f := setupAPI(t)

	resp := utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: "/healthz"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", resp.Body["status"])

	resp = utils.MakeTestRequest(t, f.router, utils.TestRequest{Method: http.MethodGet, Path: "/metrics"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Raw), "go_goroutines")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
