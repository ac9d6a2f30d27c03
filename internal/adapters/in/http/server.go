// Package http exposes the order and lease workflow over an echo server.
// Handlers translate between JSON payloads and commands/queries; all domain
// rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/application/usecases/queries"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	payOrderHandler           commands.PayOrderCommandHandler
	confirmOrderHandler       commands.ConfirmOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	refundOrderHandler        commands.RefundOrderCommandHandler
	submitEvaluationHandler   commands.SubmitEvaluationCommandHandler
	regenerateContractHandler commands.RegenerateContractCommandHandler

	getUserLedgerHandler   queries.GetUserLedgerQueryHandler
	getLeaseByOrderHandler queries.GetLeaseByOrderQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	submitEvaluationHandler commands.SubmitEvaluationCommandHandler,
	regenerateContractHandler commands.RegenerateContractCommandHandler,
	getUserLedgerHandler queries.GetUserLedgerQueryHandler,
	getLeaseByOrderHandler queries.GetLeaseByOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		payOrderHandler:           payOrderHandler,
		confirmOrderHandler:       confirmOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		refundOrderHandler:        refundOrderHandler,
		submitEvaluationHandler:   submitEvaluationHandler,
		regenerateContractHandler: regenerateContractHandler,
		getUserLedgerHandler:      getUserLedgerHandler,
		getLeaseByOrderHandler:    getLeaseByOrderHandler,
	}
}

// RegisterRoutes attaches all order and lease routes to the echo instance,
// guarded by the authentication middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.POST("/orders/:id/confirmation", s.ConfirmOrder)
	api.POST("/orders/:id/cancellation", s.CancelOrder)
	api.POST("/orders/:id/refund", s.RefundOrder)
	api.GET("/orders/:id/lease", s.GetLeaseByOrder)

	api.POST("/leases/:id/evaluation", s.SubmitEvaluation)
	api.POST("/leases/:id/contract", s.RegenerateContract)

	api.GET("/users/:id/ledger", s.GetUserLedger)
}

type createOrderRequest struct {
	HouseID string `json:"houseId"`
}

type payOrderRequest struct {
	Method string `json:"method"`
}

type evaluationRequest struct {
	Score   int    `json:"score"`
	Content string `json:"content"`
}

type orderResponse struct {
	ID            string     `json:"id"`
	OrderNo       string     `json:"orderNo"`
	HouseID       string     `json:"houseId"`
	TenantID      string     `json:"tenantId"`
	LandlordID    string     `json:"landlordId"`
	Amount        string     `json:"amount"`
	Deposit       string     `json:"deposit"`
	Status        string     `json:"status"`
	PaymentTime   *time.Time `json:"paymentTime,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
}

type leaseResponse struct {
	ID              string `json:"id"`
	OrderID         string `json:"orderId"`
	HouseID         string `json:"houseId"`
	TenantID        string `json:"tenantId"`
	LandlordID      string `json:"landlordId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	RentAmount      string `json:"rentAmount"`
	PaymentCycle    string `json:"paymentCycle"`
	Status          string `json:"status"`
	ContractLocator string `json:"contractLocator,omitempty"`
}

type ledgerEntryResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Direction   int       `json:"direction"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	houseID, err := kernel.UUIDFromString(req.HouseID)
	if err != nil {
		return badRequest(c, "invalid house id")
	}

	cmd, err := commands.NewCreateOrderCommand(houseID, actor)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(o))
}

// PayOrder handles POST /api/v1/orders/:id/payment.
func (s *Server) PayOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req payOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(orderID, actor, req.Method)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.payOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirmation.
func (s *Server) ConfirmOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, actor)
	if err != nil {
		return writeError(c, err)
	}

	o, l, err := s.confirmOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"order": toOrderResponse(o),
		"lease": toLeaseResponse(l),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancellation.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, actor)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.refundOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// SubmitEvaluation handles POST /api/v1/leases/:id/evaluation.
func (s *Server) SubmitEvaluation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	leaseID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid lease id")
	}

	var req evaluationRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSubmitEvaluationCommand(leaseID, actor, req.Score, req.Content)
	if err != nil {
		return writeError(c, err)
	}

	l, err := s.submitEvaluationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLeaseResponse(l))
}

// RegenerateContract handles POST /api/v1/leases/:id/contract.
func (s *Server) RegenerateContract(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	leaseID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid lease id")
	}

	cmd, err := commands.NewRegenerateContractCommand(leaseID, actor)
	if err != nil {
		return writeError(c, err)
	}

	l, err := s.regenerateContractHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLeaseResponse(l))
}

// GetLeaseByOrder handles GET /api/v1/orders/:id/lease.
func (s *Server) GetLeaseByOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetLeaseByOrderQuery(orderID, actor)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getLeaseByOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, leaseResponse{
		ID:              result.ID.String(),
		OrderID:         result.OrderID.String(),
		HouseID:         result.HouseID.String(),
		TenantID:        result.TenantID.String(),
		LandlordID:      result.LandlordID.String(),
		StartDate:       result.StartDate.Format(time.DateOnly),
		EndDate:         result.EndDate.Format(time.DateOnly),
		RentAmount:      result.RentAmount.StringFixed(2),
		PaymentCycle:    result.PaymentCycle,
		Status:          lease.Status(result.Status).String(),
		ContractLocator: result.ContractLocator,
	})
}

// GetUserLedger handles GET /api/v1/users/:id/ledger.
func (s *Server) GetUserLedger(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	query, err := queries.NewGetUserLedgerQuery(userID, actor)
	if err != nil {
		return writeError(c, err)
	}

	entries, err := s.getUserLedgerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]ledgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = ledgerEntryResponse{
			ID:          entry.ID.String(),
			OrderID:     entry.OrderID.String(),
			Direction:   entry.Direction,
			Amount:      entry.Amount.StringFixed(2),
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:            o.ID().String(),
		OrderNo:       o.OrderNo(),
		HouseID:       o.HouseID().String(),
		TenantID:      o.TenantID().String(),
		LandlordID:    o.LandlordID().String(),
		Amount:        o.Amount().StringFixed(2),
		Deposit:       o.Deposit().StringFixed(2),
		Status:        o.Status().String(),
		PaymentTime:   o.PaymentTime(),
		PaymentMethod: o.PaymentMethod(),
	}
}

func toLeaseResponse(l *lease.LeaseRecord) leaseResponse {
	return leaseResponse{
		ID:              l.ID().String(),
		OrderID:         l.OrderID().String(),
		HouseID:         l.HouseID().String(),
		TenantID:        l.TenantID().String(),
		LandlordID:      l.LandlordID().String(),
		StartDate:       l.StartDate().Format(time.DateOnly),
		EndDate:         l.EndDate().Format(time.DateOnly),
		RentAmount:      l.RentAmount().StringFixed(2),
		PaymentCycle:    string(l.PaymentCycle()),
		Status:          l.Status().String(),
		ContractLocator: l.ContractLocator(),
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrGeneration):
		status = http.StatusBadGateway
	}

	return c.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
