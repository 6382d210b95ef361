package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/schoolregistry/internal/modules/faculty/dto"
	"anoa.com/schoolregistry/internal/modules/faculty/repository"
	faculty "anoa.com/schoolregistry/internal/modules/faculty/service"
	"anoa.com/schoolregistry/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := faculty.NewFacultyService(repository.NewFacultyRepository(testutil.NewDB(t)), nil)
	h := NewFacultyHandler(svc)

	r := gin.New()
	r.POST("/faculty", h.CreateFaculty)
	r.GET("/faculty", h.FindFaculties)
	r.GET("/faculty/name_or_color", h.FindByNameOrColor)
	r.GET("/faculty/:id", h.GetFaculty)
	r.PUT("/faculty/:id", h.UpdateFaculty)
	r.DELETE("/faculty/:id", h.DeleteFaculty)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestFacultyCRUD(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/faculty", `{"id":77,"name":"Gryffindor","color":"red"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.FacultyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, uint(77), created.ID)
	assert.Equal(t, "Gryffindor", created.Name)

	w = do(r, http.MethodPut, "/faculty/1", `{"color":"scarlet"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.FacultyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Gryffindor", updated.Name)
	assert.Equal(t, "scarlet", updated.Color)

	w = do(r, http.MethodGet, "/faculty/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/faculty/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/faculty/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/faculty/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFacultyBadInput(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/faculty/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/faculty", `{"name":`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/faculty/5", `{"name":"x"}`).Code)
}

func TestFacultyFiltersBlankReturnEmpty(t *testing.T) {
	r := setupRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/faculty", `{"name":"Gryffindor","color":"red"}`).Code)

	w := do(r, http.MethodGet, "/faculty?color=", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodGet, "/faculty?color=red", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Gryffindor","color":"red"}]`, w.Body.String())

	w = do(r, http.MethodGet, "/faculty/name_or_color?value=GRYFFINDOR", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Gryffindor","color":"red"}]`, w.Body.String())

	w = do(r, http.MethodGet, "/faculty/name_or_color?value=%20", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}
