// Package server exposes the statement generator over HTTP.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/stmtgen/internal/report"
)

// Server is the HTTP API around a report.Generator.
type Server struct {
	app *fiber.App
	gen *report.Generator
	log logrus.FieldLogger
}

// New creates a Server with all routes registered.
func New(gen *report.Generator, log logrus.FieldLogger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
		gen: gen,
		log: log,
	}

	s.app.Use(s.requestID)

	reports := s.app.Group("/api/v1/entities/:entity_id/reports")
	reports.Get("/profit-and-loss", s.getProfitAndLoss)
	reports.Get("/balance-sheet", s.getBalanceSheet)
	reports.Get("/cash-flow", s.getCashFlow)
	reports.Get("/trial-balance", s.getTrialBalance)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP on addr until the listener fails.
func (s *Server) Listen(addr string) error {
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

// requestID tags every request with a uuid for log correlation.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Locals("request_id", id)
	c.Set("X-Request-Id", id)
	return c.Next()
}
