package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/DevFolio/internal/application/acquisition"
	"github.com/turtacn/DevFolio/internal/domain/portfolio"
	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// Acquirer is the acquisition surface the handlers use.
// *acquisition.Service satisfies it.
type Acquirer interface {
	State() acquisition.State
	Retry(ctx context.Context) acquisition.State
	Refetch(ctx context.Context) acquisition.State
	Dismiss()
	Notice(lang ptypes.Lang) *acquisition.Notice
}

// PortfolioHandler serves the acquired portfolio model and its state.
type PortfolioHandler struct {
	svc    Acquirer
	logger logging.Logger
}

// NewPortfolioHandler creates a PortfolioHandler.
func NewPortfolioHandler(svc Acquirer, logger logging.Logger) *PortfolioHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &PortfolioHandler{svc: svc, logger: logger.Named("portfolio")}
}

// PortfolioResponse is the body of GET /api/portfolio.
type PortfolioResponse struct {
	Loading  bool                 `json:"loading"`
	Error    *string              `json:"error"`
	IsOnline bool                 `json:"isOnline"`
	Source   string               `json:"source"`
	Data     *portfolio.ViewModel `json:"data"`
}

// ContentResponse is the body of GET /api/portfolio/:lang.
type ContentResponse struct {
	Lang     ptypes.Lang        `json:"lang"`
	Loading  bool               `json:"loading"`
	Error    *string            `json:"error"`
	IsOnline bool               `json:"isOnline"`
	Source   string             `json:"source"`
	Data     *portfolio.Content `json:"data"`
}

// StatusResponse is the body of the status and action endpoints.
type StatusResponse struct {
	Loading     bool                `json:"loading"`
	Error       *string             `json:"error"`
	IsOnline    bool                `json:"isOnline"`
	Source      string              `json:"source"`
	Attempt     uint64              `json:"attempt"`
	CompletedAt *time.Time          `json:"completedAt"`
	Notice      *acquisition.Notice `json:"notice"`
}

// GetPortfolio handles GET /api/portfolio.  While the first attempt is
// running it answers 503 with the loading state.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	st := h.svc.State()
	resp := PortfolioResponse{
		Loading:  st.Loading,
		Error:    nullable(st.Error),
		IsOnline: st.IsOnline,
		Source:   string(st.Source),
		Data:     st.Data,
	}
	c.JSON(loadingStatus(st), resp)
}

// GetContent handles GET /api/portfolio/:lang.
func (h *PortfolioHandler) GetContent(c *gin.Context) {
	lang, err := parseLang(c.Param("lang"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	st := h.svc.State()
	c.JSON(loadingStatus(st), ContentResponse{
		Lang:     lang,
		Loading:  st.Loading,
		Error:    nullable(st.Error),
		IsOnline: st.IsOnline,
		Source:   string(st.Source),
		Data:     st.Data.Partition(lang),
	})
}

// GetStatus handles GET /api/status?lang=.
func (h *PortfolioHandler) GetStatus(c *gin.Context) {
	lang, err := parseLang(c.Query("lang"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.status(h.svc.State(), lang))
}

// Retry handles POST /api/retry.  The attempt outlives a client disconnect
// so that the shared state always settles.
func (h *PortfolioHandler) Retry(c *gin.Context) {
	h.runAttempt(c, h.svc.Retry)
}

// Refetch handles POST /api/refetch.
func (h *PortfolioHandler) Refetch(c *gin.Context) {
	h.runAttempt(c, h.svc.Refetch)
}

func (h *PortfolioHandler) runAttempt(c *gin.Context, attempt func(context.Context) acquisition.State) {
	lang, err := parseLang(c.Query("lang"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	logging.FromContext(ctx, h.logger).Info("acquisition requested", logging.String("path", c.FullPath()))
	st := attempt(ctx)
	c.JSON(http.StatusOK, h.status(st, lang))
}

// DismissNotice handles POST /api/notice/dismiss.
func (h *PortfolioHandler) DismissNotice(c *gin.Context) {
	lang, err := parseLang(c.Query("lang"))
	if err != nil {
		writeAppError(c, err)
		return
	}
	h.svc.Dismiss()
	c.JSON(http.StatusOK, h.status(h.svc.State(), lang))
}

func (h *PortfolioHandler) status(st acquisition.State, lang ptypes.Lang) StatusResponse {
	resp := StatusResponse{
		Loading:  st.Loading,
		Error:    nullable(st.Error),
		IsOnline: st.IsOnline,
		Source:   string(st.Source),
		Attempt:  st.Attempt,
		Notice:   h.svc.Notice(lang),
	}
	if st.Completed() {
		t := st.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}

func loadingStatus(st acquisition.State) int {
	if st.Loading || st.Data == nil {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
