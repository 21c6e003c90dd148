// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"friendlink-api/models"
	"friendlink-api/utils"
)

// UserAccounts is the account persistence the auth endpoints need.
type UserAccounts interface {
	FindByEmail(email string) (*models.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Create(user *models.User) error
}

type AuthController struct {
	users     UserAccounts
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthController(users UserAccounts, jwtSecret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if !utils.IsValidUsername(req.Username) {
		utils.SendError(c, http.StatusBadRequest, "Username must be 3-50 characters (letters, digits, . _ -)")
		return
	}

	if !utils.IsValidPassword(req.Password) {
		utils.SendError(c, http.StatusBadRequest, "Password is too weak")
		return
	}

	exists, err := ac.users.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if exists {
		utils.SendError(c, http.StatusConflict, "User already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  string(hashedPassword),
	}

	if err := ac.users.Create(&user); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Account created successfully.", gin.H{
		"user": user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(ac.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
