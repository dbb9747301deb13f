package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/model/dashboard"
	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// tokenParam carries the handoff token from one workflow page to the next.
const tokenParam = "h"

// actionCalculate quotes the entered weight without submitting the order.
const actionCalculate = "calculate"

type createOrderView struct {
	formView
	Estimate string
}

type reviewLine struct {
	Label string
	Value string
}

type reviewView struct {
	Token        string
	OrderNumber  string
	CustomerName string
	Lines        []reviewLine
	WeightKg     float64
	DistanceKm   float64
	ShippingCost string
}

type paymentView struct {
	Token        string
	OrderNumber  string
	CustomerName string
	City         string
	Items        string
	ShippingCost string
	Amount       string
	Methods      []option
}

type dashboardView struct {
	Board       dashboard.Board
	StatusToken string
}

func orderNumber(id kernel.UUID) string {
	return "ORD-" + id.ShortCode()
}

// receiveAs redeems raw as a handoff of T's stage. A malformed token is
// reported like a spent one.
func receiveAs[T order.Handoff](
	ctx context.Context,
	handler commands.ReceiveHandoffCommandHandler,
	raw string,
) (T, kernel.UUID, error) {
	var zero T

	token, err := kernel.UUIDFromString(raw)
	if err != nil {
		return zero, kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("handoff", raw, err)
	}

	cmd, err := commands.NewReceiveHandoffCommand(token, zero.Stage())
	if err != nil {
		return zero, kernel.UUID{}, err
	}

	received, err := handler.Handle(ctx, cmd)
	if err != nil {
		return zero, kernel.UUID{}, err
	}

	handoff, ok := received.Handoff.(T)
	if !ok {
		return zero, kernel.UUID{}, fmt.Errorf("handoff %s has unexpected type %T", raw, received.Handoff)
	}
	return handoff, received.Token, nil
}

// formToken reads the handoff token posted by a workflow form.
func formToken(c echo.Context) (kernel.UUID, error) {
	raw := c.FormValue(tokenParam)
	token, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("handoff", raw, err)
	}
	return token, nil
}

func (s *Server) noOrderData(c echo.Context) error {
	return s.render(c, http.StatusOK, "fallback", "Review Order", fallbackView{
		Heading: "No Order Data Found",
		Message: "Please go back and create an order first.",
		Link:    "/create-order",
		Action:  "Create Order",
	})
}

func (s *Server) noPaymentData(c echo.Context) error {
	return s.render(c, http.StatusOK, "fallback", "Payment", fallbackView{
		Heading: "No Payment Data Found",
		Message: "Please go back and create an order first.",
		Link:    "/create-order",
		Action:  "Create Order",
	})
}

func (s *Server) renderCreateOrder(c echo.Context, code int, view createOrderView) error {
	view.Action = "/create-order"
	view.Submit = "Review Order"
	return s.render(c, code, "create-order", "Create Order", view)
}

// CreateOrderForm handles GET /create-order. With a draft token it reopens the
// order sent back from review.
func (s *Server) CreateOrderForm(c echo.Context) error {
	ctx := c.Request().Context()
	form := validation.CreateOrderForm()
	view := createOrderView{formView: newFormView(form, validation.Values{}, nil)}

	raw := c.QueryParam(tokenParam)
	if raw == "" {
		return s.renderCreateOrder(c, http.StatusOK, view)
	}

	edited, relay, err := receiveAs[order.DraftHandoff](ctx, s.h.ReceiveHandoff, raw)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		s.logger.WarnContext(ctx, "Draft handoff is gone, showing a blank order form", "token", raw)
	case err != nil:
		return err
	default:
		view.formView = newFormView(form, edited.Draft().Values(), nil)
		view.Resume = relay.String()
	}
	return s.renderCreateOrder(c, http.StatusOK, view)
}

// CreateOrder handles POST /create-order. The "calculate" action validates the
// whole form, quotes the entered weight and re-renders it; the default action submits the draft
// for review.
func (s *Server) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	form := validation.CreateOrderForm()

	values, err := readForm(c, form)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	resumeRaw := c.FormValue("resume")
	if c.FormValue("action") == actionCalculate {
		return s.calculate(c, form, values, resumeRaw)
	}

	var resume *kernel.UUID
	if resumeRaw != "" {
		if token, err := kernel.UUIDFromString(resumeRaw); err == nil {
			resume = &token
		}
	}

	cmd, err := commands.NewSubmitDraftCommand(values, resume)
	if err != nil {
		return err
	}

	token, err := s.h.SubmitDraft.Handle(ctx, cmd)

	var invalid *validation.InvalidFormError
	switch {
	case errors.As(err, &invalid):
		view := createOrderView{formView: newFormView(form, values, invalid.Fields)}
		view.Resume = resumeRaw
		return s.renderCreateOrder(c, http.StatusOK, view)
	case errors.Is(err, context.DeadlineExceeded):
		view := createOrderView{formView: newFormView(form, values, nil)}
		view.Resume = resumeRaw
		view.Error = "Shipping cost could not be calculated. Please try again."
		return s.renderCreateOrder(c, http.StatusServiceUnavailable, view)
	case err != nil:
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/review-order?"+tokenParam+"="+token.String())
}

func (s *Server) calculate(c echo.Context, form validation.Form, values validation.Values, resume string) error {
	ctx := c.Request().Context()
	view := createOrderView{formView: newFormView(form, values, nil)}
	view.Resume = resume

	// The quote is only offered for a form that would be accepted on submit.
	var invalid *validation.InvalidFormError
	if err := form.Validate(values); errors.As(err, &invalid) {
		view.Fields = newFormView(form, values, invalid.Fields).Fields
		return s.renderCreateOrder(c, http.StatusOK, view)
	}
	weight, err := strconv.ParseFloat(values.Get("totalWeight"), 64)
	if err != nil {
		view.Fields = newFormView(form, values, validation.Errors{"totalWeight": "Package Weight must be a valid number."}).Fields
		return s.renderCreateOrder(c, http.StatusOK, view)
	}

	cmd, err := commands.NewEstimateShippingCommand(weight)
	if err != nil {
		view.Fields = newFormView(form, values, validation.Errors{"totalWeight": "Package Weight must be a valid number."}).Fields
		return s.renderCreateOrder(c, http.StatusOK, view)
	}

	estimate, err := s.h.EstimateShipping.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			view.Error = "Shipping cost could not be calculated. Please try again."
			return s.renderCreateOrder(c, http.StatusServiceUnavailable, view)
		}
		return err
	}

	view.Estimate = estimate.Cost().String()
	return s.renderCreateOrder(c, http.StatusOK, view)
}

// ReviewOrder handles GET /review-order.
func (s *Server) ReviewOrder(c echo.Context) error {
	review, relay, err := receiveAs[order.ReviewHandoff](c.Request().Context(), s.h.ReceiveHandoff, c.QueryParam(tokenParam))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noOrderData(c)
	}
	if err != nil {
		return err
	}

	draft := review.Draft()
	values := draft.Values()
	form := validation.CreateOrderForm()
	lines := make([]reviewLine, 0, len(form.Fields))
	for _, f := range form.Fields {
		lines = append(lines, reviewLine{Label: f.Label, Value: values.Get(f.Name)})
	}

	return s.render(c, http.StatusOK, "review-order", "Review Order", reviewView{
		Token:        relay.String(),
		OrderNumber:  orderNumber(review.OrderID()),
		CustomerName: draft.CustomerName(),
		Lines:        lines,
		WeightKg:     review.Estimate().WeightKg(),
		DistanceKm:   review.Estimate().DistanceKm(),
		ShippingCost: review.ShippingCost().String(),
	})
}

// ApproveOrder handles POST /review-order/approve.
func (s *Server) ApproveOrder(c echo.Context) error {
	token, err := formToken(c)
	if err != nil {
		return s.noOrderData(c)
	}

	cmd, err := commands.NewApproveOrderCommand(token)
	if err != nil {
		return err
	}

	next, err := s.h.ApproveOrder.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noOrderData(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/payment?"+tokenParam+"="+next.String())
}

// EditOrder handles POST /review-order/edit.
func (s *Server) EditOrder(c echo.Context) error {
	token, err := formToken(c)
	if err != nil {
		return s.noOrderData(c)
	}

	cmd, err := commands.NewEditOrderCommand(token)
	if err != nil {
		return err
	}

	next, err := s.h.EditOrder.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noOrderData(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/create-order?"+tokenParam+"="+next.String())
}

// SaveDraft handles POST /review-order/draft.
func (s *Server) SaveDraft(c echo.Context) error {
	token, err := formToken(c)
	if err != nil {
		return s.noOrderData(c)
	}

	cmd, err := commands.NewSaveDraftCommand(token)
	if err != nil {
		return err
	}

	err = s.h.SaveDraft.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noOrderData(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) renderPayment(c echo.Context, code int, payment order.PaymentHandoff, relay kernel.UUID, selected order.PaymentMethod) error {
	methods := make([]option, 0, len(order.PaymentMethods()))
	for _, m := range order.PaymentMethods() {
		methods = append(methods, option{Value: m.Code(), Label: m.String(), Selected: m == selected})
	}

	return s.render(c, code, "payment", "Payment", paymentView{
		Token:        relay.String(),
		OrderNumber:  orderNumber(payment.OrderID()),
		CustomerName: payment.CustomerName(),
		City:         payment.City(),
		Items:        payment.ItemsDescription(),
		ShippingCost: payment.ShippingCost().String(),
		Amount:       payment.ShippingCost().Amount(),
		Methods:      methods,
	})
}

// PaymentForm handles GET /payment.
func (s *Server) PaymentForm(c echo.Context) error {
	payment, relay, err := receiveAs[order.PaymentHandoff](c.Request().Context(), s.h.ReceiveHandoff, c.QueryParam(tokenParam))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noPaymentData(c)
	}
	if err != nil {
		return err
	}

	return s.renderPayment(c, http.StatusOK, payment, relay, order.DefaultPaymentMethod)
}

// Pay handles POST /payment.
func (s *Server) Pay(c echo.Context) error {
	token, err := formToken(c)
	if err != nil {
		return s.noPaymentData(c)
	}

	method, err := order.ParsePaymentMethod(c.FormValue("paymentMethod"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported payment method")
	}

	cmd, err := commands.NewPayOrderCommand(token, method)
	if err != nil {
		return err
	}

	next, err := s.h.PayOrder.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.noPaymentData(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard?"+tokenParam+"="+next.String())
}

// Dashboard handles GET /dashboard. A completed-order token adds the order to
// the rendered board.
func (s *Server) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		completed *order.CompletedOrder
		statusTok string
	)
	if raw := c.QueryParam(tokenParam); raw != "" {
		paid, relay, err := receiveAs[order.CompletedOrder](ctx, s.h.ReceiveHandoff, raw)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			s.logger.WarnContext(ctx, "Completed order handoff is gone, showing the plain dashboard", "token", raw)
		case err != nil:
			return err
		default:
			completed = &paid
			statusTok = relay.String()
		}
	}

	query, err := queries.NewGetDashboardQuery(completed)
	if err != nil {
		return err
	}

	board, err := s.h.GetDashboard.Handle(ctx, query)
	if err != nil {
		return err
	}

	return s.render(c, http.StatusOK, "dashboard", "Dashboard", dashboardView{Board: board, StatusToken: statusTok})
}

// OrderStatus handles GET /order-status.
func (s *Server) OrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	paid, _, err := receiveAs[order.CompletedOrder](ctx, s.h.ReceiveHandoff, c.QueryParam(tokenParam))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.render(c, http.StatusOK, "fallback", "Order Status", fallbackView{
			Heading: "No Order Data Found",
			Message: "Complete a payment to follow your order.",
			Link:    "/dashboard",
			Action:  "Back to Dashboard",
		})
	}
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatusQuery(paid)
	if err != nil {
		return err
	}

	status, err := s.h.GetOrderStatus.Handle(ctx, query)
	if err != nil {
		return err
	}

	return s.render(c, http.StatusOK, "order-status", "Order Status", status)
}
