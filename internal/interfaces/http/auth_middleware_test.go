package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/zamretail/smartinvoice/internal/interfaces/http"
	pkgjwt "github.com/zamretail/smartinvoice/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "7"
	testUserName  = "Chileshe"
	testIssuer    = "smartinvoice-test"
	testExpMin    = 60
)

// buildTestApp mounts a dummy protected route behind the auth middleware.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":   apphttp.GetUserID(c),
				"user_name": apphttp.GetUserName(c),
			})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ValidTokenLoadsOperatorIdentity(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUserName, body["user_name"])
}

func TestAuthMiddleware_MissingHeaderReturns401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedHeaderReturns401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_GarbageTokenReturns401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecretReturns401(t *testing.T) {
	tok, err := pkgjwt.Generate("a-completely-different-secret", testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWT_GenerateAndParseRoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, userName, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUserName, userName)
}

func TestJWT_ExpiredTokenReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}
