package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

const defaultFeedLimit = 20

// Feed returns recent notifications, newest first.
type Feed interface {
	Recent(limit int) []domain.Notification
}

type NotificationHandler struct {
	feed Feed
}

func NewNotificationHandler(feed Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

type notificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// List
//
// @Summary  Recent notifications
// @Tags     notifications
// @Produce  json
// @Param    limit  query     int  false  "Maximum entries (default 20)"
// @Success  200    {object}  notificationsResponse
// @Failure  400    {object}  map[string]string
// @Router   /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit := defaultFeedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	return c.JSON(http.StatusOK, notificationsResponse{Notifications: h.feed.Recent(limit)})
}
