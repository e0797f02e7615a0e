package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"toyrental/internal/core/application/usecases/commands"
	"toyrental/internal/core/application/usecases/queries"
	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
	"toyrental/internal/core/domain/model/pricing"
	"toyrental/internal/core/domain/model/toy"
	"toyrental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the rental order API over HTTP. It translates requests
// into commands and queries and maps domain errors onto status codes.
type Server struct {
	// Command handlers
	createOrderHandler       *commands.CreateOrderCommandHandler
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       *commands.CancelOrderCommandHandler
	updateToyPricesHandler   *commands.UpdateToyPricesCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	calculatePriceHandler  queries.CalculatePriceQueryHandler
	getPriceHistoryHandler queries.GetPriceHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler *commands.CreateOrderCommandHandler,
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler *commands.CancelOrderCommandHandler,
	updateToyPricesHandler *commands.UpdateToyPricesCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	calculatePriceHandler queries.CalculatePriceQueryHandler,
	getPriceHistoryHandler queries.GetPriceHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		updateToyPricesHandler:   updateToyPricesHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		calculatePriceHandler:    calculatePriceHandler,
		getPriceHistoryHandler:   getPriceHistoryHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/toys/:toyId/price", s.CalculatePrice)
	api.PUT("/toys/:toyId/prices", s.UpdateToyPrices)
	api.GET("/toys/:toyId/price-history", s.GetPriceHistory)
}

// CreateOrder handles POST /api/v1/orders - checks out a new rental order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id: "+err.Error())
	}

	items := make([]commands.CreateOrderItem, 0, len(request.Items))
	for _, line := range request.Items {
		toyID, err := kernel.UUIDFromString(line.ToyID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid toy id: "+err.Error())
		}
		items = append(items, commands.CreateOrderItem{
			ToyID:              toyID,
			Quantity:           line.Quantity,
			RentalPrice:        line.RentalPrice,
			RentalDurationDays: line.RentalDurationDays,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items,
		request.DeliveryAddress, request.DeliveryCity,
		request.DeliveryDate, request.DeliveryTimeSlot,
		request.ReturnDate, request.ReturnTimeSlot, request.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(aggregate))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(result))
}

// ListOrders handles GET /api/v1/orders - lists orders with optional filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id: "+err.Error())
		}
		customerID = &id
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	dateFrom, err := optionalDate(ctx.QueryParam("dateFrom"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid dateFrom: "+err.Error())
	}
	dateTo, err := optionalDate(ctx.QueryParam("dateTo"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid dateTo: "+err.Error())
	}

	page, err := optionalInt(ctx.QueryParam("page"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid page: "+err.Error())
	}
	limit, err := optionalInt(ctx.QueryParam("limit"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid limit: "+err.Error())
	}

	query, err := queries.NewListOrdersQuery(customerID, status, ctx.QueryParam("city"),
		dateFrom, dateTo, page, limit)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := OrderListResponse{
		Orders: make([]OrderSummaryResponse, 0, len(result.Orders)),
		Total:  result.Total,
		Page:   result.Page,
		Limit:  result.Limit,
	}
	for _, summary := range result.Orders {
		response.Orders = append(response.Orders, OrderSummaryResponse{
			ID:           summary.ID.String(),
			Number:       summary.Number,
			CustomerID:   summary.CustomerID.String(),
			Status:       summary.Status,
			TotalAmount:  summary.TotalAmount,
			DeliveryCity: summary.DeliveryCity,
			DeliveryDate: summary.DeliveryDate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - advances
// the order lifecycle. Cancellation has its own endpoint and is rejected here.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		if errors.Is(err, commands.ErrCancellationIsSeparateOperation) {
			return errorJSON(ctx, http.StatusBadRequest,
				"Cancellation is not a status change, use POST /api/v1/orders/"+orderID.String()+"/cancel")
		}
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status change: "+err.Error())
	}

	aggregate, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an
// order and releases its stock.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancel request: "+err.Error())
	}

	aggregate, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// CalculatePrice handles GET /api/v1/toys/{toyId}/price - computes the
// effective price under the active pricing rules.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	toyID, err := kernel.UUIDFromString(ctx.Param("toyId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid toy id: "+err.Error())
	}

	pricingType := pricing.Type(ctx.QueryParam("pricingType"))
	if pricingType == "" {
		pricingType = pricing.TypeDaily
	}

	quantity, err := optionalInt(ctx.QueryParam("quantity"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quantity: "+err.Error())
	}

	var at time.Time
	if parsed, err := optionalDate(ctx.QueryParam("date")); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid date: "+err.Error())
	} else if parsed != nil {
		at = *parsed
	}

	query, err := queries.NewCalculatePriceQuery(toyID, pricingType, quantity, at)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.calculatePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// UpdateToyPrices handles PUT /api/v1/toys/{toyId}/prices - changes the
// toy's rental rates and records each change in the price audit trail.
func (s *Server) UpdateToyPrices(ctx echo.Context) error {
	toyID, err := kernel.UUIDFromString(ctx.Param("toyId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid toy id: "+err.Error())
	}

	var request UpdateToyPricesRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateToyPricesCommand(toyID,
		request.DailyRate, request.WeeklyRate, request.MonthlyRate,
		request.Reason, request.ChangedBy)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid price update: "+err.Error())
	}

	aggregate, err := s.updateToyPricesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toyResponseFromAggregate(aggregate))
}

// GetPriceHistory handles GET /api/v1/toys/{toyId}/price-history - returns
// the toy's recorded price changes, newest first.
func (s *Server) GetPriceHistory(ctx echo.Context) error {
	toyID, err := kernel.UUIDFromString(ctx.Param("toyId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid toy id: "+err.Error())
	}

	var pricingType *pricing.Type
	if raw := ctx.QueryParam("pricingType"); raw != "" {
		parsed := pricing.Type(raw)
		pricingType = &parsed
	}

	query, err := queries.NewGetPriceHistoryQuery(toyID, pricingType)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.getPriceHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := PriceHistoryResponse{Changes: make([]PriceChangeResponse, 0, len(result.Changes))}
	for _, change := range result.Changes {
		var ruleID *string
		if change.RuleID != nil {
			value := change.RuleID.String()
			ruleID = &value
		}
		response.Changes = append(response.Changes, PriceChangeResponse{
			ID:            change.ID.String(),
			ToyID:         change.ToyID.String(),
			RuleID:        ruleID,
			PricingType:   change.PricingType,
			OldPrice:      change.OldPrice,
			NewPrice:      change.NewPrice,
			Reason:        change.Reason,
			ChangedBy:     change.ChangedBy,
			EffectiveDate: change.EffectiveDate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps domain and application errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, toy.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Dates without a time component are accepted too.
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
