package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	users_middleware "fieldtrack/internal/features/users/middleware"
	users_services "fieldtrack/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RouteRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter mounts the given controllers behind the real auth
// middleware, the same way main.go wires the protected group.
func CreateTestRouter(controllers ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func MakeRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	method, url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()

	w := MakeAPIRequest(router, method, url, authToken, body)
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, "POST", url, authToken, body, expectedStatus, out)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	MakeRequestAndUnmarshal(t, router, "GET", url, authToken, nil, expectedStatus, out)
}
