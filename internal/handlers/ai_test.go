package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"github.com/skillnet/skillnet-api/internal/database"
	"github.com/skillnet/skillnet-api/internal/models"
	"github.com/skillnet/skillnet-api/internal/repository"
	"github.com/skillnet/skillnet-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// cannedChatCompleter always replies with the same text.
type cannedChatCompleter struct {
	reply string
}

func (c *cannedChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: c.reply}},
		},
	}, nil
}

func setupAIHandler(t *testing.T, reply string, configured bool) (*AIHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	var aiService *services.AIService
	if configured {
		client := &cannedChatCompleter{reply: reply}
		aiService = services.NewAIServiceWithClient(client, 1, time.Millisecond)
	}

	skillRepo := repository.NewSkillRepository(db)
	userRepo := repository.NewUserRepository(db)
	skillService := services.NewSkillService(skillRepo, userRepo, aiService)

	gin.SetMode(gin.TestMode)

	return NewAIHandler(skillService), db
}

func aiPostContext(url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	return c, w
}

func TestAIHandler_ExtractSkills(t *testing.T) {
	handler, _ := setupAIHandler(t,
		`[{"name": "Go", "description": "A programming language", "proficiencyLevel": "Expert"}]`,
		true,
	)

	body, _ := json.Marshal(map[string]string{
		"content": "I have been writing Go services in production for ten years.",
	})
	c, w := aiPostContext("/api/ai/extract-skills", body, 1)

	handler.ExtractSkills(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Skills []services.ExtractedSkill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Skills, 1)
	require.Equal(t, "Go", response.Skills[0].Name)
}

func TestAIHandler_ExtractSkills_NotConfigured(t *testing.T) {
	handler, _ := setupAIHandler(t, "", false)

	body, _ := json.Marshal(map[string]string{"content": "some resume text"})
	c, w := aiPostContext("/api/ai/extract-skills", body, 1)

	handler.ExtractSkills(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAIHandler_ExtractSkills_UnparseableReply(t *testing.T) {
	handler, _ := setupAIHandler(t, "Sorry, I cannot help with that.", true)

	body, _ := json.Marshal(map[string]string{"content": "some resume text"})
	c, w := aiPostContext("/api/ai/extract-skills", body, 1)

	handler.ExtractSkills(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAIHandler_ExtractSkills_MissingContent(t *testing.T) {
	handler, _ := setupAIHandler(t, "", true)

	c, w := aiPostContext("/api/ai/extract-skills", []byte(`{}`), 1)

	handler.ExtractSkills(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIHandler_Recommendations_NeverFails(t *testing.T) {
	handler, db := setupAIHandler(t, "total garbage, not json", true)

	user := &models.User{Email: "user@example.com", PasswordHash: "hashed"}
	require.NoError(t, db.Create(user).Error)
	skill := &models.Skill{Name: "Go"}
	require.NoError(t, db.Create(skill).Error)
	require.NoError(t, db.Create(&models.UserSkill{
		UserID:      user.ID,
		SkillID:     skill.ID,
		Proficiency: models.ProficiencyExpert,
	}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/ai/recommendations", nil)
	c.Set("user_id", user.ID)

	handler.Recommendations(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response services.RecommendationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, services.SourceDefault, response.Source)
	require.NotEmpty(t, response.Recommendations)
}
