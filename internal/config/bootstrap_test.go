package config

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/testdb"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "bootstrap-secret"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   any             `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()

	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"Great job!"}`))
	}))
	t.Cleanup(webhook.Close)

	v := viper.New()
	setDefaults(v)
	v.Set("auth.jwt_secret", testSecret)
	v.Set("llm.provider", "webhook")
	v.Set("llm.webhook_url", webhook.URL)

	log := logrus.New()
	log.SetOutput(io.Discard)

	api := NewAPI(v, log)
	_, cleanup, err := Bootstrap(context.Background(), &BootstrapConfig{
		Api:       api,
		Config:    v,
		DB:        testdb.New(t),
		Log:       log,
		Validator: validate.NewValidator(),
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return api
}

func call(t *testing.T, api *fiber.App, method, path, body string, authorized bool) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		token, err := auth.GenerateAccessToken(auth.User{ID: "user-1", Email: "u1@example.com"}, testSecret, time.Now())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := api.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func TestBootstrap_RequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	status, env := call(t, api, http.MethodGet, "/words", "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = call(t, api, http.MethodGet, "/health", "", false)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestBootstrap_Flow(t *testing.T) {
	api := newTestAPI(t)

	for _, w := range [][2]string{{"cat", "قطة"}, {"dog", "كلب"}, {"sun", "شمس"}} {
		status, env := call(t, api, http.MethodPost, "/words", `{"english":"`+w[0]+`","arabic":"`+w[1]+`"}`, true)
		require.Equal(t, fiber.StatusCreated, status, env.Message)
	}

	status, env := call(t, api, http.MethodPost, "/words", `{"english":"   ","arabic":"x"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotNil(t, env.Error)

	status, env = call(t, api, http.MethodGet, "/words?q=ca", "", true)
	require.Equal(t, fiber.StatusOK, status)
	var words []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &words))
	assert.Len(t, words, 1)

	status, env = call(t, api, http.MethodPost, "/chatbot/sessions/s1", `{"message":"hello"}`, true)
	require.Equal(t, fiber.StatusOK, status)
	var reply map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, "Great job!", reply["response"])
	assert.Equal(t, false, reply["fallback"])

	status, env = call(t, api, http.MethodPost, "/revisions", "", true)
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var revision map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &revision))
	assert.Len(t, revision["questions"], 3)

	status, _ = call(t, api, http.MethodGet, "/revisions/does-not-exist", "", true)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = call(t, api, http.MethodGet, "/statistics", "", true)
	require.Equal(t, fiber.StatusOK, status)
	var report map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, float64(3), report["total_words"])
	assert.Equal(t, float64(1), report["current_streak"])

	status, _ = call(t, api, http.MethodPut, "/goals", `{"daily_word_goal":0,"weekly_revision_goal":1,"ai_chat_time_goal":1}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, api, http.MethodGet, "/preferences", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, api, http.MethodGet, "/metrics", "", false)
	assert.Equal(t, fiber.StatusOK, status)
}
