package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"Staff/internal/auth"
	"Staff/internal/cache"
	dom "Staff/internal/domain"
	"Staff/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

type memEmployeeRepo struct {
	byID  map[string]dom.Employee
	order []string
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byID: map[string]dom.Employee{}}
}

func (m *memEmployeeRepo) List(ctx context.Context) ([]dom.Employee, error) {
	var list []dom.Employee
	for _, id := range m.order {
		list = append(list, m.byID[id])
	}
	return list, nil
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (dom.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return dom.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (m *memEmployeeRepo) Create(ctx context.Context, f dom.EmployeeFields) (dom.Employee, error) {
	e := dom.Employee{
		ID:               uuid.NewString(),
		Name:             f.Name,
		Position:         f.Position,
		Department:       f.Department,
		ContactInfo:      f.ContactInfo,
		EmploymentStatus: f.EmploymentStatus,
	}
	m.byID[e.ID] = e
	m.order = append(m.order, e.ID)
	return e, nil
}

func (m *memEmployeeRepo) Update(ctx context.Context, id string, f dom.EmployeeFields) (dom.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return dom.Employee{}, pgx.ErrNoRows
	}
	e.Name, e.Position, e.Department = f.Name, f.Position, f.Department
	e.ContactInfo, e.EmploymentStatus = f.ContactInfo, f.EmploymentStatus
	m.byID[id] = e
	return e, nil
}

func (m *memEmployeeRepo) Delete(ctx context.Context, id string) (dom.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return dom.Employee{}, pgx.ErrNoRows
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return e, nil
}

type memUserRepo struct {
	nextID     int64
	byID       map[int64]dom.User
	byUsername map[string]dom.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[int64]dom.User{}, byUsername: map[string]dom.User{}}
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUserRepo) Create(ctx context.Context, username, passwordHash, email, displayName string) (dom.User, error) {
	if _, ok := m.byUsername[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	m.nextID++
	u := dom.User{ID: m.nextID, Username: username, PasswordHash: passwordHash, Email: email, DisplayName: displayName}
	m.byID[u.ID] = u
	m.byUsername[username] = u
	return u, nil
}

func (m *memUserRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	u, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	m.byID[id] = u
	m.byUsername[u.Username] = u
	return nil
}

type testEnv struct {
	router    *gin.Engine
	employees *memEmployeeRepo
	users     *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := &testEnv{
		employees: newMemEmployeeRepo(),
		users:     newMemUserRepo(),
	}

	sessions := auth.NewStore(rdb, time.Hour)
	userSvc := service.NewUserService(env.users)
	authHandler := NewAuthHandler(sessions, userSvc)

	employeeCache := cache.NewEmployeeCache(rdb, time.Minute)
	employeeSvc := service.NewEmployeeService(env.employees, employeeCache)
	employeeHandler := NewEmployeeHandler(employeeSvc)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.tmpl")

	anon := r.Group("", auth.RedirectIfAuthenticated(sessions))
	anon.GET("/login", authHandler.LoginForm)
	anon.POST("/login", authHandler.LoginSubmit)
	anon.GET("/register", authHandler.RegisterForm)
	anon.POST("/register", authHandler.RegisterSubmit)

	protected := r.Group("", auth.RequireSession(sessions))
	protected.GET("/employee_records", employeeHandler.List)
	protected.GET("/employee_records/create", employeeHandler.CreateForm)
	protected.POST("/employee_records/create", employeeHandler.CreateSubmit)
	protected.GET("/employee_records/update", employeeHandler.UpdatePicker)
	protected.GET("/employee_records/:id/edit", employeeHandler.EditForm)
	protected.POST("/employee_records/:id/update", employeeHandler.UpdateSubmit)
	protected.GET("/employee_records/delete", employeeHandler.DeleteList)
	protected.POST("/employee_records/delete/:id", employeeHandler.DeleteSubmit)
	protected.GET("/logout", authHandler.Logout)
	protected.GET("/change_password", authHandler.ChangePasswordForm)
	protected.POST("/change_password", authHandler.ChangePasswordSubmit)

	env.router = r
	return env
}

func (e *testEnv) do(method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// mergeCookies applies the response's Set-Cookie headers on top of the jar.
func mergeCookies(jar []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, ck := range jar {
		byName[ck.Name] = ck
	}
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(byName, ck.Name)
			continue
		}
		byName[ck.Name] = ck
	}
	var out []*http.Cookie
	for _, ck := range byName {
		out = append(out, ck)
	}
	return out
}

// register creates an account over HTTP and returns the authenticated cookie jar.
func (e *testEnv) register(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := e.do(http.MethodPost, "/register", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("register: expected redirect, got %d", w.Code)
	}
	return mergeCookies(nil, w)
}
