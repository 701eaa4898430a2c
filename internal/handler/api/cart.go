package api

import (
	"errors"
	"net/http"

	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the current user's cart with subtotal, tax and total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.q.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a vehicle with a rental window to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Add cart item request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	itemID, err := h.cmds.AddItem(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid rental dates",
			})
		case errors.Is(err, errs.ErrDuplicateCartItem):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item is already in the cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item_id": itemID.String(),
	})
}

// @Summary Remove cart item
// @Description Remove an item from the cart
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID format",
		})
		return
	}

	if err := h.cmds.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		switch {
		case errors.Is(err, errs.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Convert every cart item into a booking and award loyalty points
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCartEmpty):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
