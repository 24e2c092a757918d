package http

import (
	"net/http"

	"agrobot/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the authenticated management API: the questions report,
// the out-of-band knowledge-base population path, and the order list.
type AdminHandler struct {
	knowledge *repository.KnowledgeRepository
	chatLogs  *repository.ChatLogRepository
	orders    *repository.OrderRepository
}

func NewAdminHandler(knowledge *repository.KnowledgeRepository, chatLogs *repository.ChatLogRepository, orders *repository.OrderRepository) *AdminHandler {
	return &AdminHandler{
		knowledge: knowledge,
		chatLogs:  chatLogs,
		orders:    orders,
	}
}

// GetReport returns the most frequent chat questions.
func (h *AdminHandler) GetReport(c *gin.Context) {
	top, err := h.chatLogs.TopQuestions(c.Request.Context(), 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": top})
}

// ListKnowledge returns all knowledge-base entries.
func (h *AdminHandler) ListKnowledge(c *gin.Context) {
	entries, err := h.knowledge.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// UpsertKnowledge inserts or replaces one question/answer pair.
func (h *AdminHandler) UpsertKnowledge(c *gin.Context) {
	var payload struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Question == "" || payload.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
		return
	}
	if err := h.knowledge.Upsert(c.Request.Context(), payload.Question, payload.Answer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// ListOrders returns the most recent orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
