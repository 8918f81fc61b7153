package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management/auth"
	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type signupPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (ctrl *UserController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", nil, "")
		return
	}

	user, err := ctrl.Users.Signup(models.User{
		Username: strings.TrimSpace(payload.Username),
		Email:    email,
		Password: payload.Password,
		IsAdmin:  payload.IsAdmin,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, "Email already exists", user, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error creating user", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, "User signed up successfully", gin.H{"inserted_id": user.ID})
	}
}

func (ctrl *UserController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", nil, "")
		return
	}

	_, token, err := ctrl.Users.Login(payload.Email, payload.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		// NOTE: distinct from the wrong-password message; kept intentionally,
		// known enumeration trade-off.
		utils.JSONError(c, http.StatusNotFound, "User does not exist", nil, "")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid password", nil, "")
	case errors.Is(err, auth.ErrMissingSecret):
		utils.JSONError(c, http.StatusInternalServerError, "Server misconfiguration", nil, err.Error())
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error logging in", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "User logged in successfully", token)
	}
}

func (ctrl *UserController) GetAll(c *gin.Context) {
	users, err := ctrl.Users.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching users", nil, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Fetched all users", users)
}

func (ctrl *UserController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Id is required", nil, "")
		return
	}

	user, err := ctrl.Users.GetByID(id)
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed id", nil, "")
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching user", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "User details", user)
	}
}

func (ctrl *UserController) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email is required", nil, "")
		return
	}

	user, err := ctrl.Users.GetByEmail(email)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching user", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "User details", user)
	}
}
