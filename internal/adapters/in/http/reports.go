package http

import (
	"net/http"

	"hotelpos/internal/core/application/usecases/queries"
	"hotelpos/internal/core/domain/model/order"
	"hotelpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetSalesReport handles GET /api/v1/reports/sales. Without dates the report
// covers the last 30 days.
func (s *Server) GetSalesReport(ctx echo.Context, params servers.GetSalesReportParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var types []order.Type
	if params.Type != nil {
		for _, t := range *params.Type {
			parsed, err := order.ParseType(string(t))
			if err != nil {
				return err
			}
			types = append(types, parsed)
		}
	}

	query, err := queries.NewSalesReportQuery(actor, fromDate(params.StartDate), fromDate(params.EndDate), types)
	if err != nil {
		return err
	}

	report, err := s.h.SalesReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toSalesReport(report))
}

// GetPaymentReport handles GET /api/v1/reports/payments.
func (s *Server) GetPaymentReport(ctx echo.Context, params servers.GetPaymentReportParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewPaymentReportQuery(actor, fromDate(params.StartDate), fromDate(params.EndDate))
	if err != nil {
		return err
	}

	report, err := s.h.PaymentReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPaymentReport(report))
}

// GetStaffSalesReport handles GET /api/v1/reports/staff-sales.
func (s *Server) GetStaffSalesReport(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewStaffSalesReportQuery(actor)
	if err != nil {
		return err
	}

	report, err := s.h.StaffSalesReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toStaffSalesReport(report))
}
