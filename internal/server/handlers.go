package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateFormat = "2006-01-02"

// Errors is the error payload shape for all endpoints.
type Errors struct {
	Errors []string `json:"errors"`
}

func badRequest(c *fiber.Ctx, msgs ...string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Errors{Errors: msgs})
}

// parseRange reads required start/end query params.
func parseRange(c *fiber.Ctx) (start, end time.Time, errs []string) {
	start, errs = parseDate(c, "start", errs)
	end, errs = parseDate(c, "end", errs)
	if len(errs) == 0 && end.Before(start) {
		errs = append(errs, "reports.period.end_before_start")
	}
	return start, end, errs
}

func parseDate(c *fiber.Ctx, name string, errs []string) (time.Time, []string) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, append(errs, fmt.Sprintf("reports.period.missing_%s", name))
	}
	t, err := time.Parse(dateFormat, raw)
	if err != nil {
		return time.Time{}, append(errs, fmt.Sprintf("reports.period.invalid_%s", name))
	}
	return t, errs
}

func (s *Server) getProfitAndLoss(c *fiber.Ctx) error {
	start, end, errs := parseRange(c)
	if len(errs) > 0 {
		return badRequest(c, errs...)
	}
	stmt := s.gen.ProfitAndLoss(c.UserContext(), c.Params("entity_id"), start, end)
	return c.Status(fiber.StatusOK).JSON(stmt)
}

func (s *Server) getBalanceSheet(c *fiber.Ctx) error {
	asOf, errs := parseDate(c, "as_of", nil)
	if len(errs) > 0 {
		return badRequest(c, errs...)
	}
	stmt := s.gen.BalanceSheet(c.UserContext(), c.Params("entity_id"), asOf)
	return c.Status(fiber.StatusOK).JSON(stmt)
}

func (s *Server) getCashFlow(c *fiber.Ctx) error {
	start, end, errs := parseRange(c)
	if len(errs) > 0 {
		return badRequest(c, errs...)
	}
	stmt := s.gen.CashFlow(c.UserContext(), c.Params("entity_id"), start, end)
	return c.Status(fiber.StatusOK).JSON(stmt)
}

func (s *Server) getTrialBalance(c *fiber.Ctx) error {
	start, end, errs := parseRange(c)
	if len(errs) > 0 {
		return badRequest(c, errs...)
	}
	stmt := s.gen.TrialBalance(c.UserContext(), c.Params("entity_id"), start, end)
	return c.Status(fiber.StatusOK).JSON(stmt)
}
