package api

import (
	"net/http"

	reqdto "order-fulfillment/internal/handler/dto/request"
	resdto "order-fulfillment/internal/handler/dto/response"
	"order-fulfillment/internal/handler/httperr"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Process an order against the catalog; reservation products never consume stock
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Process(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.IsAny(err, errs.ErrInvalidOrder, errs.ErrInsufficientStock):
			httperr.AbortWithCause(c, http.StatusBadRequest, err)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Order processing failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(created))
}

// @Summary Get order
// @Description Get a recorded order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List recorded orders in insertion order, optionally filtered by product code
// @Tags orders
// @Produce json
// @Param productCode query string false "Product code filter"
// @Success 200 {object} resdto.OrderListResponse
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var (
		list *queries.OrderList
		err  error
	)
	if code := query.GetProductCode(); code != "" {
		list, err = h.q.ListByProductCode(c.Request.Context(), code)
	} else {
		list, err = h.q.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(list))
}
