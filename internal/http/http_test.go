package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hashcipher/internal/config"
	"github.com/allisson/hashcipher/internal/metrics"
	"github.com/allisson/hashcipher/internal/transform/domain"
	transformHTTP "github.com/allisson/hashcipher/internal/transform/http"
	"github.com/allisson/hashcipher/internal/transform/service"
	"github.com/allisson/hashcipher/internal/transform/usecase"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server with a discarding logger.
func createTestServer() *Server {
	return NewServer("localhost", 0, discardLogger())
}

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		MaxInputBytes:           1024,
		DefaultOutputFormat:     "hex",
		RateLimitEnabled:        false,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsNamespace:        "test_app",
	}
}

// createFullServer wires the real transform stack behind the router.
func createFullServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	uc := usecase.NewTransformUseCase(
		service.NewHashService(service.NewDigestRegistry()),
		service.NewCipherService(service.NewCipherManager()),
		service.NewEncoder(),
		cfg.DefaultOutputFormat,
	)
	server := createTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server.SetupRouter(ctx, cfg, transformHTTP.NewTransformHandler(uc, cfg.MaxInputBytes, discardLogger()), nil)
	return server
}

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	return w
}

// TestHealthHandler tests the health check endpoint handler.
func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

// TestReadinessHandler tests the readiness endpoint before and after start.
func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_BeforeStart", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready"}`, w.Body.String())
	})

	t.Run("Ready_WhenServing", func(t *testing.T) {
		server := createTestServer()
		server.ready.Store(true)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})
}

// TestRecoveryMiddleware tests Gin's built-in recovery middleware.
func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestRouter_Transform exercises the full router with the real transform stack.
func TestRouter_Transform(t *testing.T) {
	server := createFullServer(t, testConfig())
	handler := server.GetHandler()

	t.Run("Success_HashSha256", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": "hello", "hash": "sha256"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(
			t,
			`{"result":"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}`,
			w.Body.String(),
		)
	})

	t.Run("Success_HashEndpointDefaultsToSha1", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform/hash", map[string]string{"input": "hello"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"}`, w.Body.String())
	})

	t.Run("Success_SlashAliasMatchesCanonicalName", func(t *testing.T) {
		canonical := postJSON(t, handler, "/v1/transform/hash", map[string]string{
			"input":     "hello",
			"algorithm": "sha512-256",
		})
		require.Equal(t, http.StatusOK, canonical.Code)

		for _, alias := range []string{"sha512/256", "sha2-512/256"} {
			w := postJSON(t, handler, "/v1/transform/hash", map[string]string{"input": "hello", "algorithm": alias})

			assert.Equal(t, http.StatusOK, w.Code, alias)
			assert.JSONEq(t, canonical.Body.String(), w.Body.String(), alias)
		}
	})

	t.Run("Error_PaddedHashName", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": "x", "hash": " sha256"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "must not contain leading or trailing whitespace")
	})

	t.Run("Success_EncryptGCMFrame", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform/encrypt", map[string]string{
			"input":         "hello",
			"algorithm":     "aes-256-gcm",
			"cipher_key":    "passphrase",
			"output_format": "base64",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		raw, err := base64.StdEncoding.DecodeString(response["result"])
		require.NoError(t, err)
		assert.Len(t, raw, domain.IVSize+domain.TagSize+len("hello"))
	})

	t.Run("Error_EmptyInput", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": ""})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"invalid_input","message":"Input string is required"}`, w.Body.String())
	})

	t.Run("Error_MissingKey", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": "x", "cipher": "aes-256-cbc"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(
			t,
			`{"error":"invalid_input","message":"Cipher key is required when using cipher algorithms"}`,
			w.Body.String(),
		)
	})

	t.Run("Error_UnknownDigest", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": "x", "hash": "whirlpool"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(
			t,
			`{"error":"invalid_input","message":"Hash 'whirlpool' failed: Digest method not supported"}`,
			w.Body.String(),
		)
	})

	t.Run("Error_InputTooLarge", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform", map[string]string{"input": string(make([]byte, 2048))})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})

	t.Run("Success_Algorithms", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/transform/algorithms", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "chacha20-poly1305")
	})

	t.Run("Success_RequestIDHeader", func(t *testing.T) {
		w := postJSON(t, handler, "/v1/transform/overview", map[string]string{"input": "hello"})

		assert.Equal(t, http.StatusOK, w.Code)
		parsed, err := uuid.Parse(w.Header().Get("X-Request-Id"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})
}

// TestRouter_NotFoundEndpoint tests 404 handling.
func TestRouter_NotFoundEndpoint(t *testing.T) {
	server := createFullServer(t, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

// TestRouter_NoMetricsEndpoint verifies the API router does not expose /metrics.
func TestRouter_NoMetricsEndpoint(t *testing.T) {
	server := createFullServer(t, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestRouter_RateLimited verifies the transform group is rate limited when enabled.
func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequestsPerSec = 0.01
	cfg.RateLimitBurst = 1
	server := createFullServer(t, cfg)
	handler := server.GetHandler()

	w := postJSON(t, handler, "/v1/transform/hash", map[string]string{"input": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, handler, "/v1/transform/hash", map[string]string{"input": "hello"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestServer_StartWithoutRouter verifies Start refuses to run without routes.
func TestServer_StartWithoutRouter(t *testing.T) {
	server := createTestServer()

	err := server.Start(context.Background())

	assert.Error(t, err)
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server := createFullServer(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(ctx)
	}()

	// Give server time to start
	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	assert.NoError(t, err)
	assert.NoError(t, <-errChan)
	assert.False(t, server.ready.Load())
}

// TestRequestIDMiddleware_HeaderPresent verifies X-Request-Id header is present in response.
func TestRequestIDMiddleware_HeaderPresent(t *testing.T) {
	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	requestID := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, requestID, "X-Request-Id header should be present")

	parsedUUID, err := uuid.Parse(requestID)
	require.NoError(t, err, "X-Request-Id should be a valid UUID")
	assert.NotEqual(t, uuid.Nil, parsedUUID, "X-Request-Id should not be nil UUID")
}

// TestMetricsServer_Endpoints tests the metrics server endpoints.
func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
