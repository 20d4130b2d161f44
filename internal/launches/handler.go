package launches

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"starbase/internal/constants"
	"starbase/internal/logger"
	"starbase/pkg/errors"
)

type BaseHandler struct {
	Service Service
	Logger  logger.Logger
}

func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	h.Logger.ErrorwCtx(c.Request.Context(), "Request error", "error", err, "path", c.Request.URL.Path)

	status := errors.ToHTTPStatus(err)
	response := errors.ToErrorResponse(err)

	c.JSON(status, response)
}

type Handler struct {
	BaseHandler
}

func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		BaseHandler: BaseHandler{
			Service: service,
			Logger:  log,
		},
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		launches := v1.Group("/launches")
		{
			launches.GET("", h.ListLaunches)
			launches.GET("/heaviest", h.GetHeaviestLaunch)
		}
	}
}

// ListLaunches godoc
// @Summary      List launches
// @Description  List launches, optionally restricted to a calendar-date range (inclusive on both ends)
// @Tags         launches
// @Produce      json
// @Param        start_date  query     string  false  "Start date (YYYY-MM-DD, UTC)"
// @Param        end_date    query     string  false  "End date (YYYY-MM-DD, UTC)"
// @Success      200  {array}   Launch
// @Failure      400  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /launches [get]
func (h *Handler) ListLaunches(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.Service.ListLaunches(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHeaviestLaunch godoc
// @Summary      Get the heaviest launch
// @Description  Get the launch with the greatest total payload mass within the optional date range
// @Tags         launches
// @Produce      json
// @Param        start_date  query     string  false  "Start date (YYYY-MM-DD, UTC)"
// @Param        end_date    query     string  false  "End date (YYYY-MM-DD, UTC)"
// @Success      200  {object}  Launch
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /launches/heaviest [get]
func (h *Handler) GetHeaviestLaunch(c *gin.Context) {
	start, end, err := dateRangeParams(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.Service.HeaviestLaunch(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result == nil {
		h.HandleError(c, errors.ErrNotFound.WithDetail("message", "no launch matches the requested range"))
		return
	}
	c.JSON(http.StatusOK, result)
}

func dateRangeParams(c *gin.Context) (start, end *time.Time, err error) {
	if start, err = dateParam(c, "start_date"); err != nil {
		return nil, nil, err
	}
	if end, err = dateParam(c, "end_date"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func dateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(constants.DateParamLayout, raw, time.UTC)
	if err != nil {
		return nil, errors.ErrValidation.
			WithCause(err).
			WithDetail("message", name+" must be a calendar date formatted as YYYY-MM-DD")
	}
	return &t, nil
}
