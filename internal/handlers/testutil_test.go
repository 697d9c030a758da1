package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harukimori/study-log-api/internal/auth"
	"github.com/harukimori/study-log-api/internal/models"
	"github.com/harukimori/study-log-api/internal/repository"
	"github.com/harukimori/study-log-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiTestEnv struct {
	router      *gin.Engine
	tokens      *auth.Manager
	authService *services.AuthService
	itemService *services.StudyItemService
	logService  *services.LogService
}

// setupAPITestEnv builds the whole HTTP surface over an in-memory
// database, exactly as main wires it.
func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.StudyItem{}, &models.Log{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewStudyItemRepository(db)
	logRepo := repository.NewLogRepository(db)

	tokens := auth.NewManager([]byte("test-secret"), time.Hour)
	authService := services.NewAuthService(userRepo, tokens)
	itemService := services.NewStudyItemService(itemRepo)
	logService := services.NewLogService(logRepo, itemRepo)
	statsService := services.NewStatsService(itemRepo, logRepo)

	router := gin.New()
	RegisterRoutes(
		router,
		tokens,
		NewAuthHandler(authService),
		NewStudyItemHandler(itemService),
		NewLogHandler(logService),
		NewStatsHandler(statsService),
	)

	return apiTestEnv{
		router:      router,
		tokens:      tokens,
		authService: authService,
		itemService: itemService,
		logService:  logService,
	}
}

// registerUser creates an account through the service layer and returns
// the user with a valid bearer token.
func (env apiTestEnv) registerUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Email:    email,
		Username: "tester",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Generate(user.ID)
	require.NoError(t, err)

	return user, token
}

// doJSON performs a request against the router. A non-empty token is sent
// as a bearer Authorization header; a nil payload sends no body.
func (env apiTestEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
