package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rhythmicmansion/server/internal/application"
	"github.com/rhythmicmansion/server/internal/container"
	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
	"github.com/rhythmicmansion/server/internal/errs"
	handlers "github.com/rhythmicmansion/server/internal/interface/http"
	"github.com/rhythmicmansion/server/internal/router/modules"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repositories backing a full router for request-level tests.

type memUserRepo struct{ users []entity.User }

var _ repository.UserRepository = (*memUserRepo)(nil)

func (m *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	return append(make([]entity.User, 0, len(m.users)), m.users...), nil
}
func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			cpy := m.users[i]
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (m *memUserRepo) Insert(_ context.Context, u *entity.User) error {
	u.ID = "u" + strconv.Itoa(len(m.users)+1)
	m.users = append(m.users, *u)
	return nil
}
func (m *memUserRepo) UpdateRole(_ context.Context, id string, role entity.Role) (int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			return 1, nil
		}
	}
	return 0, nil
}
func (m *memUserRepo) Delete(_ context.Context, id string) (int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memClassRepo struct{ classes []entity.Class }

var _ repository.ClassRepository = (*memClassRepo)(nil)

func (m *memClassRepo) List(_ context.Context) ([]entity.Class, error) {
	return append([]entity.Class(nil), m.classes...), nil
}
func (m *memClassRepo) Top(_ context.Context, limit int) ([]entity.Class, error) {
	out := append([]entity.Class(nil), m.classes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Students > out[j].Students })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (m *memClassRepo) Insert(_ context.Context, cl *entity.Class) error {
	cl.ID = "c" + strconv.Itoa(len(m.classes)+1)
	m.classes = append(m.classes, *cl)
	return nil
}
func (m *memClassRepo) Delete(_ context.Context, id string) (int64, error) {
	for i := range m.classes {
		if m.classes[i].ID == id {
			m.classes = append(m.classes[:i], m.classes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memInstructorRepo struct{ instructors []entity.Instructor }

var _ repository.InstructorRepository = (*memInstructorRepo)(nil)

func (m *memInstructorRepo) List(_ context.Context) ([]entity.Instructor, error) {
	return append([]entity.Instructor(nil), m.instructors...), nil
}

type memCartRepo struct{ items []entity.CartItem }

var _ repository.CartRepository = (*memCartRepo)(nil)

func (m *memCartRepo) ListByEmail(_ context.Context, email string) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}
func (m *memCartRepo) Insert(_ context.Context, item *entity.CartItem) error {
	item.ID = "i" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, *item)
	return nil
}
func (m *memCartRepo) Delete(_ context.Context, id string) (int64, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type testEnv struct {
	engine *gin.Engine
	jwt    *helpers.JWTManager

	users   *memUserRepo
	classes *memClassRepo
	carts   *memCartRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	container.SetLogger(logger)
	container.SetRedis(nil) // limiter falls back to pass-through

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	container.SetJWT(jwt)

	users := &memUserRepo{}
	classes := &memClassRepo{}
	instructors := &memInstructorRepo{}
	carts := &memCartRepo{}

	userSvc := application.NewUserService(users, logger)
	classSvc := application.NewClassService(classes, logger)
	instructorSvc := application.NewInstructorService(instructors)
	cartSvc := application.NewCartService(carts, logger)

	engine := gin.New()
	reg := NewRegistry(engine)
	reg.Add(modules.NewHealthModule())
	reg.Add(modules.NewTokenModule(handlers.NewTokenHandler(jwt, logger)))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	reg.Add(modules.NewClassModule(handlers.NewClassHandler(classSvc, logger), jwt))
	reg.Add(modules.NewInstructorModule(handlers.NewInstructorHandler(instructorSvc, logger)))
	reg.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger), jwt))
	reg.RegisterAll()

	return &testEnv{engine: engine, jwt: jwt, users: users, classes: classes, carts: carts}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, _, err := e.jwt.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return token
}

func TestLiveness(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Rhythm in the mansion", w.Body.String())
}

func TestIssueToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/jwt", "", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := env.jwt.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims["email"])
}

func TestListUsers_GuardMatrix(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/users", "bogus", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/users", env.token(t, "a@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestRegisterUser_Duplicate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@x.com", "name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	var first struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.True(t, first.Acknowledged)
	require.NotEmpty(t, first.InsertedID)

	w = env.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"user already exists","insertedId":null}`, w.Body.String())
	require.Len(t, env.users.users, 1)
}

func TestRoleProbeAndGrantFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "a@x.com")

	w := env.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	id := env.users.users[0].ID

	// probing someone else's email is forbidden even though the record exists
	w = env.do(t, http.MethodGet, "/users/admin/a@x.com", env.token(t, "b@x.com"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/users/admin/a@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"admin":false}`, w.Body.String())

	// the grant route itself carries no guard
	w = env.do(t, http.MethodPatch, "/users/admin/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/users/admin/a@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"admin":true}`, w.Body.String())

	// instructor grant overwrites admin
	w = env.do(t, http.MethodPatch, "/users/instructor/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/users/instructor/a@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"instructor":true}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/users/admin/a@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestRoleProbe_AbsentUserIsFalse(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/users/admin/ghost@x.com", env.token(t, "ghost@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestTopClasses_Ordering(t *testing.T) {
	env := newTestEnv(t)
	for i, students := range []int{5, 2, 9, 1, 7, 3, 8} {
		env.classes.classes = append(env.classes.classes, entity.Class{
			ID:       "c" + strconv.Itoa(i+1),
			Name:     "Class " + strconv.Itoa(i+1),
			Students: students,
		})
	}

	w := env.do(t, http.MethodGet, "/top-classes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Students     int `json:"students"`
		StudentCount int `json:"studentCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 6)

	counts := make([]int, 0, len(out))
	for _, cl := range out {
		require.Equal(t, cl.Students, cl.StudentCount)
		counts = append(counts, cl.StudentCount)
	}
	require.Equal(t, []int{9, 8, 7, 5, 3, 2}, counts)
}

func TestCreateClass_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	payload := map[string]any{"name": "Salsa Foundations", "price": 49}

	w := env.do(t, http.MethodPost, "/class", "", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/class", env.token(t, "maya@rhythmicmansion.com"), payload)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.classes.classes, 1)
}

func TestCartOwnershipScenario(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/carts", "", map[string]any{"email": "a@x.com", "classId": "c1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/carts?email=a@x.com", env.token(t, "a@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []entity.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "c1", items[0].ClassID)
	require.Equal(t, "a@x.com", items[0].Email)

	// someone else's token cannot read this cart
	w = env.do(t, http.MethodGet, "/carts?email=a@x.com", env.token(t, "b@x.com"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/carts/"+items[0].ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())
}

func TestDeleteUser_Unguarded(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []entity.User{{ID: "u1", Email: "a@x.com"}}

	w := env.do(t, http.MethodDelete, "/users/u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/users/u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
}
