package unit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propadmin/prop-admin-backend/internal/bootstrap"
	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// fakeUploader records uploads and returns a predictable URL.
type fakeUploader struct {
	uploaded []string
}

func (f *fakeUploader) Upload(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://assets.test/" + filename, nil
}

func setupAPI(t *testing.T) (*gin.Engine, *fakeUploader, func()) {
	gin.SetMode(gin.TestMode)
	client, mr := setupTestRedis(t)

	uploader := &fakeUploader{}
	router, _ := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "prop-admin-backend",
		Version:     "test",
		Store:       client,
		Uploader:    uploader,
	})

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return router, uploader, cleanup
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthEndpoints(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	t.Run("login resolves a seeded email", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"email":"juan@demo.com"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			User domain.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "1", resp.User.ID)
		assert.Equal(t, domain.RoleOwner, resp.User.Role)
	})

	t.Run("login with unknown email returns 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"email":"nope@demo.com"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("login without email returns 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register then login round-trips", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
			`{"id":"u-3","name":"Pedro","email":"pedro@demo.com","role":"collaborator"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"email":"pedro@demo.com"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPropertyEndpoints(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	t.Run("list returns the seeded property", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/properties", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Properties []domain.Property `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Properties, 1)
		assert.Equal(t, "prop-1", resp.Properties[0].ID)
	})

	t.Run("owner filter excludes other owners", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/properties?owner_id=someone-else", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Properties []domain.Property `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Properties)
	})

	t.Run("create requires ownerId", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/properties", `{"name":"Sin dueno"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create, update, delete lifecycle", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/properties",
			`{"id":"prop-2","name":"Casa Sur","type":"house","currency":"ARS","ownerId":"1"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodPut, "/api/v1/properties/prop-2",
			`{"name":"Casa Sur Ampliada","type":"house","currency":"ARS","ownerId":"1"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/v1/properties/prop-2", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Property domain.Property `json:"property"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Casa Sur Ampliada", resp.Property.Name)

		w = doJSON(router, http.MethodDelete, "/api/v1/properties/prop-2", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(router, http.MethodDelete, "/api/v1/properties/prop-2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update of missing property returns 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/v1/properties/ghost", `{"name":"Nada"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContractEndpoints(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	t.Run("new contract deactivates the previous one and updates the tenant", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/properties/prop-1/contracts",
			`{"id":"t1","tenantId":"2","startDate":"2024-01-01","endDate":"2026-01-01","amount":500,"currency":"USD"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodPost, "/api/v1/properties/prop-1/contracts",
			`{"id":"t2","tenantId":"3","startDate":"2024-06-01","endDate":"2026-06-01","amount":650,"currency":"USD"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, http.MethodGet, "/api/v1/properties/prop-1/contracts", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Contracts []domain.TenantContract `json:"contracts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Contracts, 2)
		assert.False(t, resp.Contracts[0].IsActive)
		assert.True(t, resp.Contracts[1].IsActive)

		w = doJSON(router, http.MethodGet, "/api/v1/properties/prop-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		var propResp struct {
			Property domain.Property `json:"property"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &propResp))
		assert.Equal(t, "3", propResp.Property.TenantID)
	})

	t.Run("contract without tenantId returns 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/properties/prop-1/contracts", `{"amount":650}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestImageUpload(t *testing.T) {
	router, uploader, cleanup := setupAPI(t)
	defer cleanup()

	t.Run("uploaded image URL is appended to the property", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "front.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"front.jpg"}, uploader.uploaded)

		var resp struct {
			Property domain.Property `json:"property"`
			URL      string          `json:"url"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://assets.test/front.jpg", resp.URL)
		assert.Contains(t, resp.Property.Images, resp.URL)
	})

	t.Run("upload to missing property returns 404", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "x.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/ghost/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	t.Run("reports store status", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"store":"up"`)
	})
}
