package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/dto"
	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
	"github.com/yuzuhara/survey-admin-api/internal/services"
)

type teamTestEnv struct {
	db          *gorm.DB
	handler     *TeamHandler
	teamService *services.TeamService
	userService *services.UserService
}

func setupTeamTestEnv(t *testing.T) teamTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamService := services.NewTeamService(teamRepo, userRepo)
	userService := services.NewUserService(userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return teamTestEnv{
		db:          db,
		handler:     NewTeamHandler(teamService),
		teamService: teamService,
		userService: userService,
	}
}

func teamTestContext(method, url string, body []byte, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	return c, w
}

func createTeamTestUser(t *testing.T, env teamTestEnv, email string) *models.User {
	t.Helper()

	user, err := env.userService.CreateUser(services.CreateUserInput{
		Name:     "Team User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func TestTeamHandler_CreateTeam(t *testing.T) {
	env := setupTeamTestEnv(t)
	manager := createTeamTestUser(t, env, "manager@example.com")

	body, err := json.Marshal(map[string]any{"name": "Eng", "manager": manager.ID})
	require.NoError(t, err)

	c, w := teamTestContext(http.MethodPost, "/v1/teams", body, nil)
	env.handler.CreateTeam(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.TeamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Eng", response.Name)
	require.Equal(t, manager.ID, response.Manager)
	require.Empty(t, response.Users)
	require.Equal(t, models.StatusActive, response.Status)
}

func TestTeamHandler_CreateTeam_UnknownManager(t *testing.T) {
	env := setupTeamTestEnv(t)

	body, err := json.Marshal(map[string]any{"name": "Eng", "manager": 9999})
	require.NoError(t, err)

	c, w := teamTestContext(http.MethodPost, "/v1/teams", body, nil)
	env.handler.CreateTeam(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandler_AddAndRemoveUser(t *testing.T) {
	env := setupTeamTestEnv(t)
	manager := createTeamTestUser(t, env, "manager@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:      "Eng",
		ManagerID: manager.ID,
	})
	require.NoError(t, err)

	params := gin.Params{{Key: "id", Value: fmt.Sprint(team.ID)}}
	body, err := json.Marshal(map[string]any{"user": manager.ID})
	require.NoError(t, err)

	c, w := teamTestContext(http.MethodPost, "/v1/teams/1/users", body, params)
	env.handler.AddUser(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TeamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, []uint64{manager.ID}, response.Users)

	// duplicate add is a client error
	c, w = teamTestContext(http.MethodPost, "/v1/teams/1/users", body, params)
	env.handler.AddUser(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	c, w = teamTestContext(http.MethodDelete, "/v1/teams/1/users", body, params)
	env.handler.RemoveUser(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Users)

	// removing a non-member is a client error
	c, w = teamTestContext(http.MethodDelete, "/v1/teams/1/users", body, params)
	env.handler.RemoveUser(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamHandler_AddUser_TeamNotFound(t *testing.T) {
	env := setupTeamTestEnv(t)
	user := createTeamTestUser(t, env, "user@example.com")

	body, err := json.Marshal(map[string]any{"user": user.ID})
	require.NoError(t, err)

	params := gin.Params{{Key: "id", Value: "9999"}}
	c, w := teamTestContext(http.MethodPost, "/v1/teams/9999/users", body, params)
	env.handler.AddUser(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamHandler_DeleteTeam_SoftThenHard(t *testing.T) {
	env := setupTeamTestEnv(t)
	manager := createTeamTestUser(t, env, "manager@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:      "Eng",
		ManagerID: manager.ID,
	})
	require.NoError(t, err)

	params := gin.Params{{Key: "id", Value: fmt.Sprint(team.ID)}}

	c, w := teamTestContext(http.MethodDelete, "/v1/teams/1", nil, params)
	env.handler.DeleteTeam(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TeamDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.StatusInvalid, response.Status)

	c, w = teamTestContext(http.MethodDelete, "/v1/teams/1?hardDelete=true", nil, params)
	env.handler.DeleteTeam(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = teamTestContext(http.MethodGet, "/v1/teams/1", nil, params)
	env.handler.GetTeam(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamHandler_ListTeams_FilterAndPaging(t *testing.T) {
	env := setupTeamTestEnv(t)
	manager := createTeamTestUser(t, env, "manager@example.com")

	for i := 0; i < 12; i++ {
		_, err := env.teamService.CreateTeam(services.CreateTeamInput{
			Name:      fmt.Sprintf("team-%02d", i),
			ManagerID: manager.ID,
		})
		require.NoError(t, err)
	}

	c, w := teamTestContext(http.MethodGet, "/v1/teams?limit=5&page=3&sortBy=name:asc", nil, nil)
	env.handler.ListTeams(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PageDTO[dto.TeamDTO]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 12, response.TotalResults)
	require.Equal(t, 3, response.TotalPages)
	require.Len(t, response.Results, 2)
	require.Equal(t, "team-10", response.Results[0].Name)
}
