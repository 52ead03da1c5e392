package api

import (
	models "MetricPull/internal/domain/models"
	"MetricPull/internal/scheduler"
	xhttp "MetricPull/pkg/http"
	xlogger "MetricPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PanelsEchoHandler serves the read-only panel API. Handlers only copy
// published state; nothing here can mutate a snapshot.
type PanelsEchoHandler struct {
	logger *xlogger.Logger
	sched  *scheduler.Scheduler
	stream *StreamHub
}

func NewPanelsEchoHandler(logger *xlogger.Logger, sched *scheduler.Scheduler, stream *StreamHub) *PanelsEchoHandler {
	return &PanelsEchoHandler{logger: logger, sched: sched, stream: stream}
}

func (h *PanelsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/panels", h.List)
	g.GET("/panels/stream", h.Stream)
	g.GET("/panels/:name", h.Get)
	g.POST("/panels/:name/refresh", h.Refresh)
}

func (h *PanelsEchoHandler) List(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.sched.States())
}

func (h *PanelsEchoHandler) Get(c echo.Context) error {
	req := &models.PanelRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	st, err := h.sched.State(req.Name)
	if err != nil {
		return xhttp.NotFoundResponse(c, err.Error())
	}
	return xhttp.SuccessResponse(c, st)
}

// Refresh queues a manual refresh and returns immediately; the outcome
// lands in the panel state and on the stream.
func (h *PanelsEchoHandler) Refresh(c echo.Context) error {
	req := &models.PanelRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if err := h.sched.Trigger(req.Name); err != nil {
		h.logger.Error("manual refresh rejected",
			xlogger.String("panel", req.Name),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.AcceptedResponse(c, map[string]string{"panel": req.Name, "status": "refreshing"})
}

func (h *PanelsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *PanelsEchoHandler) Stream(c echo.Context) error {
	return h.stream.Handle(c)
}
