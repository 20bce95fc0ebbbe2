package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"charges/internal/domain"
	"charges/internal/middleware"
	"charges/internal/service"
	"charges/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(auth service.AuthService, roles ...domain.MarketParticipantRole) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth), middleware.RequireRole(roles...))
	r.POST("/test", func(c *gin.Context) {
		id, _ := middleware.GetMarketParticipantID(c)
		c.JSON(http.StatusOK, gin.H{"market_participant_id": id})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "valid-token").Return(&service.Claims{
		MarketParticipantID: "5790000000001",
		Role:                domain.RoleGridAccessProvider,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	newProtectedRouter(mockAuth, domain.RoleGridAccessProvider).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "5790000000001", resp["market_participant_id"])
	mockAuth.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/test", http.NoBody)
	newProtectedRouter(mockAuth, domain.RoleGridAccessProvider).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuth.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "expired").Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer expired")
	newProtectedRouter(mockAuth, domain.RoleGridAccessProvider).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "supplier-token").Return(&service.Claims{
		MarketParticipantID: "5790000000009",
		Role:                domain.RoleEnergySupplier,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer supplier-token")
	newProtectedRouter(mockAuth, domain.RoleGridAccessProvider, domain.RoleSystemOperator).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetMarketParticipantID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetMarketParticipantID(c)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
