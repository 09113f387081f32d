package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/database"
	"github.com/skillnet/skillnet-api/internal/dto"
	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"github.com/skillnet/skillnet-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequestHandlerTestSuite defines the test suite for RequestHandler
type RequestHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RequestHandler
	service *services.RequestService
}

// SetupTest runs before each test
func (suite *RequestHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Request{},
		&models.Message{},
		&models.UserRating{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	requestRepo := repository.NewRequestRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.service = services.NewRequestService(requestRepo, userRepo)
	suite.handler = NewRequestHandler(suite.service)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RequestHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *RequestHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

// Helper function to create authenticated context
func (suite *RequestHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	return c, w
}

func (suite *RequestHandlerTestSuite) TestCreateRequest() {
	sender := suite.createTestUser("sender@example.com")
	receiver := suite.createTestUser("receiver@example.com")

	body, _ := json.Marshal(map[string]uint64{"receiver_id": receiver.ID})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests", body, sender.ID)

	suite.handler.CreateRequest(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.RequestDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(sender.ID, response.SenderID)
	suite.Equal(receiver.ID, response.ReceiverID)
	suite.Equal(models.RequestStatusPending, response.Status)
}

func (suite *RequestHandlerTestSuite) TestCreateRequest_Self() {
	user := suite.createTestUser("loner@example.com")

	body, _ := json.Marshal(map[string]uint64{"receiver_id": user.ID})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests", body, user.ID)

	suite.handler.CreateRequest(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RequestHandlerTestSuite) TestCreateRequest_DuplicateEitherDirection() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	// Bob asking Alice while her request is still pending is also a duplicate
	body, _ := json.Marshal(map[string]uint64{"receiver_id": alice.ID})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests", body, bob.ID)

	suite.handler.CreateRequest(c)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RequestHandlerTestSuite) TestCreateRequest_AfterRejection() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	request, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.service.Respond(request.ID, bob.ID, models.RequestStatusRejected)
	suite.Require().NoError(err)

	// A rejected request does not block trying again
	body, _ := json.Marshal(map[string]uint64{"receiver_id": bob.ID})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests", body, alice.ID)

	suite.handler.CreateRequest(c)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *RequestHandlerTestSuite) TestRespondToRequest_Accept() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	body, _ := json.Marshal(map[string]string{"status": "accepted"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/respond", body, bob.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.RespondToRequest(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.RequestDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(models.RequestStatusAccepted, response.Status)
}

func (suite *RequestHandlerTestSuite) TestRespondToRequest_NotReceiver() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	// The sender cannot accept their own request
	body, _ := json.Marshal(map[string]string{"status": "accepted"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/respond", body, alice.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.RespondToRequest(c)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RequestHandlerTestSuite) TestRespondToRequest_AlreadyResolved() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	request, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.service.Respond(request.ID, bob.ID, models.RequestStatusAccepted)
	suite.Require().NoError(err)

	body, _ := json.Marshal(map[string]string{"status": "rejected"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/respond", body, bob.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.RespondToRequest(c)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *RequestHandlerTestSuite) TestRespondToRequest_InvalidStatus() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	body, _ := json.Marshal(map[string]string{"status": "pending"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/respond", body, bob.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.RespondToRequest(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RequestHandlerTestSuite) TestCancelRequest() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/cancel", nil, alice.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.CancelRequest(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.RequestDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(models.RequestStatusRejected, response.Status)
}

func (suite *RequestHandlerTestSuite) TestCancelRequest_NotSender() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodPost, "/api/requests/1/cancel", nil, bob.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.CancelRequest(c)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RequestHandlerTestSuite) TestListRequests_IncomingPending() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	carol := suite.createTestUser("carol@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.service.Create(bob.ID, carol.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodGet, "/api/requests?direction=incoming&status=pending", nil, bob.ID)

	suite.handler.ListRequests(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Requests []dto.RequestDTO `json:"requests"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Requests, 1)
	suite.Equal(alice.ID, response.Requests[0].SenderID)
}

func (suite *RequestHandlerTestSuite) TestListConnections() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	carol := suite.createTestUser("carol@example.com")

	request, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.service.Respond(request.ID, bob.ID, models.RequestStatusAccepted)
	suite.Require().NoError(err)

	// A pending request is not a connection
	_, err = suite.service.Create(carol.ID, bob.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodGet, "/api/connections", nil, bob.ID)

	suite.handler.ListConnections(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Connections []dto.RequestDTO `json:"connections"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Connections, 1)
	suite.Equal(models.RequestStatusAccepted, response.Connections[0].Status)
}

func (suite *RequestHandlerTestSuite) TestDeleteRequest() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/requests/1", nil, alice.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.DeleteRequest(c)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Request{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *RequestHandlerTestSuite) TestDeleteRequest_NotSender() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	_, err := suite.service.Create(alice.ID, bob.ID)
	suite.Require().NoError(err)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/requests/1", nil, bob.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.DeleteRequest(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Request{}).Count(&count)
	suite.Equal(int64(1), count)
}

func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
