package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"friendlink-api/models"
)

type fakeAccounts struct {
	byEmail map[string]*models.User
	created []*models.User
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: make(map[string]*models.User)}
}

func (f *fakeAccounts) FindByEmail(email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeAccounts) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, user := range f.byEmail {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccounts) Create(user *models.User) error {
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func newAuthRouter(accounts *fakeAccounts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := NewAuthController(accounts, "test-secret", 24*time.Hour)
	r.POST("/user/signup", ac.Signup)
	r.POST("/user/login", ac.Login)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	validBody := gin.H{
		"username":  "alice123",
		"firstname": "Alice",
		"lastname":  "Anderson",
		"email":     "alice@example.com",
		"password":  "Str0ng-pass",
	}

	t.Run("creates an account", func(t *testing.T) {
		accounts := newFakeAccounts()
		router := newAuthRouter(accounts)

		w := postJSON(t, router, "/user/signup", validBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, accounts.created, 1)

		created := accounts.created[0]
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "alice123", created.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Str0ng-pass")))
		assert.NotContains(t, w.Body.String(), created.Password, "digest must not be serialized")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		router := newAuthRouter(newFakeAccounts())

		w := postJSON(t, router, "/user/signup", gin.H{"username": "alice123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		router := newAuthRouter(newFakeAccounts())

		body := gin.H{}
		for k, v := range validBody {
			body[k] = v
		}
		body["password"] = "aaaaaaaa"

		w := postJSON(t, router, "/user/signup", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects duplicate accounts", func(t *testing.T) {
		accounts := newFakeAccounts()
		router := newAuthRouter(accounts)

		w := postJSON(t, router, "/user/signup", validBody)
		require.Equal(t, http.StatusCreated, w.Code)

		w = postJSON(t, router, "/user/signup", validBody)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLogin(t *testing.T) {
	accounts := newFakeAccounts()
	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	accounts.byEmail["alice@example.com"] = &models.User{
		ID:       "user-1",
		Username: "alice123",
		Email:    "alice@example.com",
		Password: string(hash),
	}
	router := newAuthRouter(accounts)

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		w := postJSON(t, router, "/user/login", gin.H{
			"email":    "alice@example.com",
			"password": "Str0ng-pass",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.NotEmpty(t, body.Token)

		token, err := jwt.Parse(body.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "user-1", claims["user_id"])
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		w := postJSON(t, router, "/user/login", gin.H{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		w := postJSON(t, router, "/user/login", gin.H{
			"email":    "nobody@example.com",
			"password": "Str0ng-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
