package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-cms-svc/internal/config"
	"menu-cms-svc/internal/database"
	"menu-cms-svc/internal/export"
	"menu-cms-svc/internal/handler"
	"menu-cms-svc/internal/middleware"
	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/models/response"
	"menu-cms-svc/internal/render"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/internal/upload"
	"menu-cms-svc/pkg/logger"
)

const testPassword = "let-me-in"

type testServer struct {
	*httptest.Server
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(&config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "menu.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	log := logger.Discard()
	uploadDir := filepath.Join(t.TempDir(), "uploads")
	store := upload.NewStore(uploadDir, log)

	menuRepo := repository.NewMenuRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	dishRepo := repository.NewDishRepository(db.DB)
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(db.DB), log)

	services := handler.Services{
		Menu:      service.NewMenuService(menuRepo, store, log),
		Category:  service.NewCategoryService(categoryRepo, log),
		Dish:      service.NewDishService(dishRepo, store, log),
		Settings:  settingsService,
		Dashboard: service.NewDashboardService(repository.NewDashboardRepository(db.DB), settingsService, log),
		Catalog:   service.NewCatalogService(menuRepo, categoryRepo, dishRepo, settingsService, log),
		Auth:      service.NewAuthService(testPassword, log),
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.NoRoute(middleware.NoRouteHandler())
	sessions := session.NewManager("test-secret", "menu_session", 7*24*time.Hour, false)
	handler.SetupRoutes(router, services, sessions, render.JSONRenderer{}, uploadDir, log)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testServer{Server: srv, client: client}
}

type pageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Page    string          `json:"page"`
		Admin   bool            `json:"admin"`
		Flashes []session.Flash `json:"flashes"`
		Data    json.RawMessage `json:"data"`
	} `json:"data"`
}

func (s *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := s.client.Get(s.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := s.client.PostForm(s.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

type file struct {
	name string
	body []byte
}

func (s *testServer) postMultipart(t *testing.T, path string, fields map[string]string, image *file) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", image.name)
		require.NoError(t, err)
		_, err = part.Write(image.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	resp, err := s.client.Post(s.URL+path, w.FormDataContentType(), &buf)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// login authenticates the client and consumes the welcome flash
func (s *testServer) login(t *testing.T) {
	t.Helper()
	resp := s.postForm(t, "/admin/login", url.Values{"password": {testPassword}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
	require.Equal(t, http.StatusOK, s.get(t, "/admin").StatusCode)
}

func decodePage(t *testing.T, resp *http.Response, data interface{}) pageBody {
	t.Helper()
	var body pageBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if data != nil {
		require.NoError(t, json.Unmarshal(body.Data.Data, data))
	}
	return body
}

func messages(flashes []session.Flash) []string {
	var out []string
	for _, f := range flashes {
		out = append(out, f.Message)
	}
	return out
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	resp := s.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminGuardRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/admin", "/admin/menus", "/admin/categories/1/edit", "/admin/dishes", "/admin/export.xlsx"} {
		resp := s.get(t, path)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/admin/login", resp.Header.Get("Location"), path)
	}

	// POST bodies never run either
	resp := s.postForm(t, "/admin/menus", url.Values{"action": {"create"}, "slug": {"x"}, "title_ru": {"a"}, "title_kz": {"b"}, "title_en": {"c"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	s.login(t)
	var list response.MenuListResponse
	decodePage(t, s.get(t, "/admin/menus"), &list)
	assert.Empty(t, list.Menus)
}

func TestLoginLogout(t *testing.T) {
	s := newTestServer(t)

	resp := s.postForm(t, "/admin/login", url.Values{"password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodePage(t, resp, nil)
	assert.Equal(t, render.PageLogin, body.Data.Page)
	assert.Equal(t, []string{"Неверный пароль"}, messages(body.Data.Flashes))

	resp = s.postForm(t, "/admin/login", url.Values{"password": {testPassword}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	resp = s.get(t, "/admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash response.DashboardResponse
	body = decodePage(t, resp, &dash)
	assert.True(t, body.Data.Admin)
	assert.Equal(t, []string{"Вы вошли как админ."}, messages(body.Data.Flashes))
	assert.Equal(t, models.DefaultPhone, models.StringValue(dash.Settings.Phone))

	// flashes are shown once
	body = decodePage(t, s.get(t, "/admin"), nil)
	assert.Empty(t, body.Data.Flashes)

	resp = s.get(t, "/admin/logout")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))

	body = decodePage(t, s.get(t, "/admin/login"), nil)
	assert.False(t, body.Data.Admin)
	assert.Equal(t, []string{"Вы вышли."}, messages(body.Data.Flashes))

	resp = s.get(t, "/admin")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestEndToEndCatalog(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postMultipart(t, "/admin/menus", map[string]string{
		"action": "create", "slug": "main", "title_ru": "Меню", "title_kz": "Мәзір", "title_en": "Menu",
	}, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/menus", resp.Header.Get("Location"))

	var menus response.MenuListResponse
	body := decodePage(t, s.get(t, "/admin/menus"), &menus)
	require.Len(t, menus.Menus, 1)
	assert.Equal(t, []string{"Меню добавлено"}, messages(body.Data.Flashes))
	menuID := menus.Menus[0].ID

	resp = s.postForm(t, "/admin/categories", url.Values{
		"action": {"create"}, "menu_id": {itoa(menuID)}, "slug": {"salads"},
		"name_ru": {"Салаты"}, "name_kz": {"Салаттар"}, "name_en": {"Salads"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var cats response.CategoryListResponse
	decodePage(t, s.get(t, "/admin/categories"), &cats)
	require.Len(t, cats.Categories, 1)
	assert.Equal(t, menuID, cats.Categories[0].MenuID)
	require.Len(t, cats.Menus, 1)

	resp = s.postMultipart(t, "/admin/dishes", map[string]string{
		"action": "create", "category_id": itoa(cats.Categories[0].ID), "slug": "greek-salad",
		"title_ru": "Греческий салат", "title_kz": "Грек салаты", "title_en": "Greek salad", "price": "4590",
	}, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = s.get(t, "/?lang=en")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view response.PublicMenuResponse
	decodePage(t, resp, &view)
	require.Len(t, view.Menus, 1)
	require.Len(t, view.Categories, 1)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "main", view.Menus[0].Slug)
	assert.Equal(t, "salads", view.Categories[0].Slug)
	assert.Equal(t, "greek-salad", view.Items[0].Slug)
	assert.Equal(t, 4590, view.Items[0].Price)
	assert.Equal(t, "", view.Items[0].IngRu)
	assert.Equal(t, "en", view.Lang)
	assert.Equal(t, models.DefaultPhone, view.Phone)

	// the chosen language sticks through the cookie
	decodePage(t, s.get(t, "/"), &view)
	assert.Equal(t, "en", view.Lang)

	resp = s.get(t, "/admin/export.xlsx")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "menu_export_")
}

func TestCreateValidationRerendersList(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postForm(t, "/admin/menus", url.Values{
		"action": {"create"}, "slug": {" main "}, "title_ru": {"Меню"}, "title_kz": {""}, "title_en": {"Menu"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var list struct {
		Menus []*models.Menu    `json:"menus"`
		Form  service.MenuInput `json:"form"`
	}
	body := decodePage(t, resp, &list)
	assert.Equal(t, render.PageMenus, body.Data.Page)
	assert.Equal(t, []string{"Заполните все поля"}, messages(body.Data.Flashes))
	assert.Equal(t, "main", list.Form.Slug)
	assert.Empty(t, list.Menus)
}

func TestUpdateConflictRerendersStoredEntity(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	for _, slug := range []string{"main", "bar"} {
		resp := s.postForm(t, "/admin/menus", url.Values{
			"action": {"create"}, "slug": {slug}, "title_ru": {"ru"}, "title_kz": {"kz"}, "title_en": {"en"},
		})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	resp := s.postForm(t, "/admin/menus/2/edit", url.Values{
		"action": {"update"}, "slug": {"main"}, "title_ru": {"new"}, "title_kz": {"new"}, "title_en": {"new"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var edit response.MenuEditResponse
	body := decodePage(t, resp, &edit)
	assert.Contains(t, messages(body.Data.Flashes), "Другое меню с таким slug уже существует")
	assert.Equal(t, "bar", edit.Menu.Slug)
	assert.Equal(t, "ru", edit.Menu.TitleRu)

	// keeping its own slug succeeds and goes back to the list
	resp = s.postForm(t, "/admin/menus/2/edit", url.Values{
		"action": {"update"}, "slug": {"bar"}, "title_ru": {"Бар"}, "title_kz": {"Бар"}, "title_en": {"Bar"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/menus", resp.Header.Get("Location"))
}

func TestEditMissingIsNotFound(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	for _, path := range []string{"/admin/menus/42/edit", "/admin/categories/42/edit", "/admin/dishes/42/edit", "/admin/dishes/abc/edit"} {
		resp := s.get(t, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}

	resp := s.postForm(t, "/admin/dishes/42/edit", url.Values{
		"action": {"update"}, "category_id": {"1"}, "slug": {"x"}, "title_ru": {"a"}, "title_kz": {"b"}, "title_en": {"c"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCascadesAndIgnoresMissing(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postForm(t, "/admin/menus", url.Values{
		"action": {"create"}, "slug": {"main"}, "title_ru": {"ru"}, "title_kz": {"kz"}, "title_en": {"en"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = s.postForm(t, "/admin/categories", url.Values{
		"action": {"create"}, "menu_id": {"1"}, "slug": {"salads"}, "name_ru": {"a"}, "name_kz": {"b"}, "name_en": {"c"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = s.postForm(t, "/admin/dishes", url.Values{
		"action": {"create"}, "category_id": {"1"}, "slug": {"greek"}, "title_ru": {"a"}, "title_kz": {"b"}, "title_en": {"c"}, "price": {"abc"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var dishes response.DishListResponse
	decodePage(t, s.get(t, "/admin/dishes"), &dishes)
	require.Len(t, dishes.Dishes, 1)
	assert.Equal(t, 0, dishes.Dishes[0].Price)

	resp = s.postForm(t, "/admin/menus", url.Values{"action": {"delete"}, "id": {"99"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	body := decodePage(t, s.get(t, "/admin/menus"), nil)
	assert.Empty(t, body.Data.Flashes)

	resp = s.postForm(t, "/admin/menus", url.Values{"action": {"delete"}, "id": {"x1"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = s.postForm(t, "/admin/menus", url.Values{"action": {"delete"}, "id": {"1"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var view response.PublicMenuResponse
	decodePage(t, s.get(t, "/"), &view)
	assert.Empty(t, view.Menus)
	assert.Empty(t, view.Categories)
	assert.Empty(t, view.Items)
}

func TestUploadCollisionAndRejection(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postForm(t, "/admin/menus", url.Values{
		"action": {"create"}, "slug": {"main"}, "title_ru": {"ru"}, "title_kz": {"kz"}, "title_en": {"en"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = s.postForm(t, "/admin/categories", url.Values{
		"action": {"create"}, "menu_id": {"1"}, "slug": {"salads"}, "name_ru": {"a"}, "name_kz": {"b"}, "name_en": {"c"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	for i, slug := range []string{"first", "second"} {
		resp = s.postMultipart(t, "/admin/dishes", map[string]string{
			"action": "create", "category_id": "1", "slug": slug, "title_ru": "a", "title_kz": "b", "title_en": "c",
		}, &file{name: "photo.png", body: []byte("image-" + slug)})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode, i)
	}

	var view response.PublicMenuResponse
	decodePage(t, s.get(t, "/"), &view)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "/static/uploads/photo.png", view.Items[0].Image)
	assert.Equal(t, "/static/uploads/photo_1.png", view.Items[1].Image)

	for _, item := range view.Items {
		resp = s.get(t, item.Image)
		require.Equal(t, http.StatusOK, resp.StatusCode, item.Image)
		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "image-"+item.Slug, string(got))
	}

	resp = s.get(t, "/uploads/photo_1.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// a rejected extension leaves the stored image alone
	resp = s.postMultipart(t, "/admin/dishes/1/edit", map[string]string{
		"action": "update", "category_id": "1", "slug": "first", "title_ru": "a", "title_kz": "b", "title_en": "c",
	}, &file{name: "malware.exe", body: []byte("MZ")})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var edit response.DishEditResponse
	decodePage(t, s.get(t, "/admin/dishes/1/edit"), &edit)
	assert.Equal(t, "/static/uploads/photo.png", models.StringValue(edit.Dish.Image))

	resp = s.get(t, "/uploads/malware.exe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardUpdatesSettings(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postForm(t, "/admin", url.Values{"phone": {"+7 701 000 00 00"}, "brand": {"#00ff00"}, "bg": {""}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	var dash response.DashboardResponse
	body := decodePage(t, s.get(t, "/admin"), &dash)
	assert.Equal(t, []string{"Настройки обновлены"}, messages(body.Data.Flashes))
	assert.Equal(t, "+7 701 000 00 00", models.StringValue(dash.Settings.Phone))
	assert.Equal(t, "#00ff00", models.StringValue(dash.Settings.Brand))
	assert.Equal(t, models.DefaultBg, models.StringValue(dash.Settings.Bg))
}

func TestUnknownActionShowsList(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	resp := s.postForm(t, "/admin/categories", url.Values{"action": {"noop"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodePage(t, resp, nil)
	assert.Equal(t, render.PageCategories, body.Data.Page)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
