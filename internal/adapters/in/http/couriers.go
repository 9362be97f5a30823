package http

import (
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type CreateCourierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// AddCoverageRequest leaves eta_minutes at 0 for the default ETA.
type AddCoverageRequest struct {
	PostalCode string `json:"postal_code"`
	AreaName   string `json:"area_name"`
	ETAMinutes int    `json:"eta_minutes"`
}

type AvailableCourierResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Vehicle    string `json:"vehicle"`
	AreaName   string `json:"area_name"`
	ETAMinutes int    `json:"eta_minutes"`
}

type CreateDiscountCodeRequest struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
	Expiry  string `json:"expiry"` // YYYY-MM-DD
}

type CheckDiscountCodeResponse struct {
	Code    string `json:"code"`
	Valid   bool   `json:"valid"`
	Percent int    `json:"percent,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var req CreateCourierRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.Phone, req.Vehicle)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// AddCourierCoverage handles POST /api/v1/couriers/:id/coverages.
func (s *Server) AddCourierCoverage(c echo.Context) error {
	courierID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req AddCoverageRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewAddCourierCoverageCommand(courierID, req.PostalCode, req.AreaName, req.ETAMinutes)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.AddCourierCoverage.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// GetAvailableCouriers handles GET /api/v1/couriers/available?postal_code=6211.
func (s *Server) GetAvailableCouriers(c echo.Context) error {
	query, err := queries.NewGetAvailableCouriersQuery(c.QueryParam("postal_code"), s.now())
	if err != nil {
		return s.fail(c, err)
	}

	couriers, err := s.h.GetAvailableCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]AvailableCourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = AvailableCourierResponse{
			ID:         courier.ID.String(),
			Name:       courier.Name,
			Phone:      courier.Phone,
			Vehicle:    courier.Vehicle.String(),
			AreaName:   courier.AreaName,
			ETAMinutes: courier.ETAMinutes,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateDiscountCode handles POST /api/v1/discount-codes.
func (s *Server) CreateDiscountCode(c echo.Context) error {
	var req CreateDiscountCodeRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	expiry, err := time.Parse(time.DateOnly, req.Expiry)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("expiry", err))
	}

	cmd := commands.NewCreateDiscountCodeCommand(req.Code, req.Percent, expiry)
	if err = s.h.CreateDiscountCode.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// CheckDiscountCode handles GET /api/v1/discount-codes/:code. An unusable
// code is a successful answer with valid=false and a reason.
func (s *Server) CheckDiscountCode(c echo.Context) error {
	query, err := queries.NewCheckDiscountCodeQuery(c.Param("code"), s.now())
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.CheckDiscountCode.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, CheckDiscountCodeResponse{
		Code:    result.Code,
		Valid:   result.Valid,
		Percent: result.Percent,
		Reason:  result.Reason,
	})
}
