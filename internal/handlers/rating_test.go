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

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	db             *gorm.DB
	handler        *RatingHandler
	requestService *services.RequestService
}

// SetupTest runs before each test
func (suite *RatingHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Request{},
		&models.Message{},
		&models.UserRating{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	ratingRepo := repository.NewRatingRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	requestRepo := repository.NewRequestRepository(suite.db)
	suite.requestService = services.NewRequestService(requestRepo, userRepo)
	ratingService := services.NewRatingService(ratingRepo, userRepo, suite.requestService)
	suite.handler = NewRatingHandler(ratingService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RatingHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RatingHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *RatingHandlerTestSuite) connect(a, b *models.User) {
	request, err := suite.requestService.Create(a.ID, b.ID)
	suite.Require().NoError(err)
	_, err = suite.requestService.Respond(request.ID, b.ID, models.RequestStatusAccepted)
	suite.Require().NoError(err)
}

func (suite *RatingHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
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

func (suite *RatingHandlerTestSuite) TestCreateRating() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	suite.connect(alice, bob)

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   4,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)

	suite.handler.CreateRating(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.RatingDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(alice.ID, response.RaterID)
	suite.Equal(bob.ID, response.RatedID)
	suite.Equal(4, response.Rating)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_OutOfRange() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	suite.connect(alice, bob)

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   6,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)

	suite.handler.CreateRating(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_ZeroRating() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	suite.connect(alice, bob)

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   0,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)

	suite.handler.CreateRating(c)

	// Zero is out of range, not a malformed body
	suite.Equal(http.StatusBadRequest, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(services.ErrRatingOutOfRange.Error(), response.Message)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_Self() {
	alice := suite.createTestUser("alice@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": alice.ID,
		"rating":   5,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)

	suite.handler.CreateRating(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_NotConnected() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   3,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)

	suite.handler.CreateRating(c)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RatingHandlerTestSuite) TestCreateRating_Duplicate() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	suite.connect(alice, bob)

	body, _ := json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   4,
	})
	c, w := suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)
	suite.handler.CreateRating(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	body, _ = json.Marshal(map[string]interface{}{
		"rated_id": bob.ID,
		"rating":   2,
	})
	c, w = suite.createAuthContext(http.MethodPost, "/api/ratings", body, alice.ID)
	suite.handler.CreateRating(c)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RatingHandlerTestSuite) TestListRatings() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")
	carol := suite.createTestUser("carol@example.com")
	suite.connect(alice, carol)
	suite.connect(bob, carol)

	suite.db.Create(&models.UserRating{RaterID: alice.ID, RatedID: carol.ID, Rating: 5})
	suite.db.Create(&models.UserRating{RaterID: bob.ID, RatedID: carol.ID, Rating: 2})

	c, w := suite.createAuthContext(http.MethodGet, "/api/users/3/ratings", nil, alice.ID)
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	suite.handler.ListRatings(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.RatingSummaryDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Ratings, 2)
	suite.Equal(int64(2), response.RatingCount)
	suite.InDelta(3.5, response.AverageRating, 0.001)
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
