package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type createItemPayload struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

type updateItemPayload struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

type ItemController struct {
	Items *services.ItemService
}

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

func (ctrl *ItemController) Create(c *gin.Context) {
	var payload createItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name is required", nil, "")
		return
	}
	if payload.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price must not be negative", nil, "")
		return
	}

	item, err := ctrl.Items.Create(models.Item{
		Name:        strings.TrimSpace(payload.Name),
		Price:       payload.Price,
		Description: payload.Description,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateItemName):
		utils.JSONError(c, http.StatusConflict, "Item name already exists", item, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error creating item", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, "Item created successfully", gin.H{"inserted_id": item.ID})
	}
}

func (ctrl *ItemController) GetAll(c *gin.Context) {
	items, err := ctrl.Items.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching items", nil, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Fetched all items", items)
}

func (ctrl *ItemController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Id is required", nil, "")
		return
	}

	item, err := ctrl.Items.GetByID(id)
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed id", nil, "")
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Item not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching item", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Item details", item)
	}
}

func (ctrl *ItemController) GetByName(c *gin.Context) {
	item, err := ctrl.Items.GetByName(c.Param("name"))
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Item not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching item", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Item details", item)
	}
}

func (ctrl *ItemController) Search(c *gin.Context) {
	items, err := ctrl.Items.Search(c.Param("text"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error searching items", nil, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Search results", items)
}

// Update requires all fields and validates them before any store access.
func (ctrl *ItemController) Update(c *gin.Context) {
	var payload updateItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", nil, err.Error())
		return
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Description) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name and description are required", nil, "")
		return
	}
	if payload.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price must be greater than zero", nil, "")
		return
	}

	item, err := ctrl.Items.Update(c.Param("id"), models.Item{
		Name:        strings.TrimSpace(payload.Name),
		Price:       payload.Price,
		Description: payload.Description,
	})
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed id", nil, "")
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Item not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error updating item", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Item updated successfully", item)
	}
}

func (ctrl *ItemController) Delete(c *gin.Context) {
	deleted, err := ctrl.Items.Delete(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrMalformedID):
		utils.JSONError(c, http.StatusBadRequest, "Malformed id", nil, "")
	case errors.Is(err, services.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Item not found", nil, "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting item", nil, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, "Item deleted successfully", gin.H{"deleted": deleted})
	}
}
