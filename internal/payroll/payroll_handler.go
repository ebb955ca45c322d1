package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/apperror"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateRun(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateRun(c.Request.Context(), orgID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllRuns(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")

	var filterReq GetRunsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAllRuns(ctx, orgID, filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetRunByID(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")

	resp, err := h.service.GetRunByID(ctx, orgID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRunBreakdown(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")

	resp, err := h.service.GetRunBreakdown(ctx, orgID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertPayslip(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	var req UpsertPayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpsertPayslip(ctx, orgID, actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PopulateRun(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	resp, err := h.service.PopulateRun(ctx, orgID, actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CalculateRun(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	resp, err := h.service.CalculateRun(ctx, orgID, actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApproveRun(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	resp, err := h.service.ApproveRun(ctx, orgID, actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkRunPaid(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")
	actorID := getActorID(c)

	resp, err := h.service.MarkRunPaid(ctx, orgID, actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteRun(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")

	if err := h.service.DeleteRun(ctx, orgID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	ctx := c.Request.Context()
	orgID := c.GetString("org_id")

	url, err := h.service.GetPayslipDocument(ctx, orgID, c.Param("id"), c.Param("payslipId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}
