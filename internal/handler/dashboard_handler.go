package handler

import (
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardService.GetStats(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
