package http

import (
	"net/http"

	"agrobot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Russian reason strings returned on order validation failures.
const (
	errMissingFields = "Отсутствуют обязательные поля"
	errBadPhone      = "Неверный формат телефона"
	errBadEmail      = "Неверный формат email"
)

type Handler struct {
	orders *usecases.OrderService
}

func NewHandler(orders *usecases.OrderService) *Handler {
	return &Handler{orders: orders}
}

func SetupRoutes(r *gin.Engine, orders *usecases.OrderService, auth *usecases.AuthUsecase, admin *AdminHandler, middleware *Middleware) {
	h := NewHandler(orders)

	r.Use(RequestID())
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(Metrics())

	// Public routes. The order endpoint is deliberately unauthenticated and
	// unthrottled.
	r.POST("/order", h.HandleOrder)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var loginReq struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, err := auth.Login(c.Request.Context(), loginReq.Username, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}

	// Protected admin routes: report, knowledge-base population, order list.
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(5, 10))
	{
		api.GET("/report", admin.GetReport)
		api.GET("/knowledge", admin.ListKnowledge)
		api.POST("/knowledge", admin.UpsertKnowledge)
		api.GET("/orders", admin.ListOrders)
	}
}

type orderPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	OrderDetails string `json:"order_details"`
}

// HandleOrder accepts a customer order. Validation failures are client
// errors; downstream notification failures never surface here.
func (h *Handler) HandleOrder(c *gin.Context) {
	var payload orderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}

	if payload.Name == "" || payload.Phone == "" || payload.OrderDetails == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}
	if !ValidPhone(payload.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadPhone})
		return
	}
	if payload.Email != "" && !ValidEmail(payload.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadEmail})
		return
	}

	orderID, err := h.orders.Place(c.Request.Context(), usecases.OrderRequest{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Email:        payload.Email,
		OrderDetails: payload.OrderDetails,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}

	ordersAccepted.Inc()
	c.JSON(http.StatusOK, gin.H{"status": "Заявка получена", "order_id": orderID})
}
