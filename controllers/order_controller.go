package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizza-shop/models"
	"pizza-shop/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// ListOrders godoc
// @Summary Get all orders
// @Description Get all orders, unscoped by caller
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /order/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), c.GetString("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Place an order
// @Description Place a new order owned by the caller, status PENDING
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order Request"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /order/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	order, err := ctrl.orders.Create(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder godoc
// @Summary Get an order by id
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := ctrl.orders.Get(c.Request.Context(), c.GetString("username"), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrder godoc
// @Summary Update an order by id
// @Description Partial update: omitted fields are left unchanged
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderRequest true "Update Request"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	order, err := ctrl.orders.Update(c.Request.Context(), c.GetString("username"), orderID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete an order by id
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.orders.Delete(c.Request.Context(), c.GetString("username"), orderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Deleted Successfully"})
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Unconditional transition between PENDING, IN_TRANSIT and DELIVERED
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateStatusRequest true "Status Request"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /order/order/status/{id} [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", models.ErrValidation, err.Error()))
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), c.GetString("username"), orderID, req.OrderStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrdersByUser godoc
// @Summary Get all orders by user id
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /order/user/{user_id}/orders [get]
func (ctrl *OrderController) ListOrdersByUser(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := ctrl.orders.ListByUser(c.Request.Context(), c.GetString("username"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderForUser godoc
// @Summary Get a specific order by user id and order id
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "User ID"
// @Param order_id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /order/user/{user_id}/order/{order_id} [get]
func (ctrl *OrderController) GetOrderForUser(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	orderID, err := pathID(c, "order_id")
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := ctrl.orders.GetForUser(c.Request.Context(), c.GetString("username"), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", models.ErrValidation, name)
	}
	return id, nil
}
