package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TestJWTSecret signs tokens issued by test helpers
const TestJWTSecret = "test-secret"

// SetupTestDB opens a private in-memory sqlite database, migrates it and
// installs it as config.DB for the duration of the test
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		Env:      "test",
	}
	db, err := config.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	previous := config.DB
	config.DB = db
	SetJWTSecret(TestJWTSecret)

	t.Cleanup(func() {
		config.DB = previous
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateTestUser creates a user with the given role and password "Secret123!"
func CreateTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := HashPassword("Secret123!")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{
		Name:     "Test User",
		Username: email,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestCourse creates a course with the given price and titled modules
func CreateTestCourse(t *testing.T, db *gorm.DB, title string, price string, modules ...string) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:       title,
		Description: title + " description",
		Price:       decimal.RequireFromString(price),
		Duration:    90,
	}
	for i, m := range modules {
		course.Modules = append(course.Modules, models.Module{Title: m, Content: m + " content", Position: i + 1})
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return course
}

// CreateTestCoupon creates a coupon expiring after ttl (negative for an expired one)
func CreateTestCoupon(t *testing.T, db *gorm.DB, code string, pct int64, quota int, ttl time.Duration) *models.Coupon {
	t.Helper()

	coupon := &models.Coupon{
		Code:        code,
		DiscountPct: decimal.NewFromInt(pct),
		Quota:       quota,
		ExpiryDate:  time.Now().UTC().Add(ttl),
	}
	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("Failed to create test coupon: %v", err)
	}
	return coupon
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Token   string
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
	Raw        []byte
	Header     http.Header
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router http.Handler, req TestRequest) TestResponse {
	t.Helper()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	var responseBody map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
			t.Fatalf("Failed to unmarshal response body: %v", err)
		}
	}

	return TestResponse{
		StatusCode: w.Code,
		Body:       responseBody,
		Raw:        w.Body.Bytes(),
		Header:     w.Header(),
	}
}

// GetTestToken generates a JWT token for user
func GetTestToken(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}
	return token
}
