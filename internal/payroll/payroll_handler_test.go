package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"
	payrollerrors "github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeRunService struct {
	createRunFn          func(ctx context.Context, orgID, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	getAllRunsFn         func(ctx context.Context, orgID string, filter payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error)
	getRunByIDFn         func(ctx context.Context, orgID, id string) (payroll.RunResponse, error)
	getRunBreakdownFn    func(ctx context.Context, orgID, id string) (payroll.RunBreakdownResponse, error)
	upsertPayslipFn      func(ctx context.Context, orgID, actorID, runID string, req payroll.UpsertPayslipRequest) (payroll.PayslipResponse, error)
	populateRunFn        func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error)
	calculateRunFn       func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error)
	approveRunFn         func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error)
	markRunPaidFn        func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error)
	deleteRunFn          func(ctx context.Context, orgID, runID string) error
	generateDocumentsFn  func(ctx context.Context, orgID, runID string) (int, error)
	getPayslipDocumentFn func(ctx context.Context, orgID, runID, payslipID string) (string, error)
}

func (f *fakeRunService) CreateRun(ctx context.Context, orgID, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	return f.createRunFn(ctx, orgID, actorID, req)
}

func (f *fakeRunService) GetAllRuns(ctx context.Context, orgID string, filter payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error) {
	return f.getAllRunsFn(ctx, orgID, filter)
}

func (f *fakeRunService) GetRunByID(ctx context.Context, orgID, id string) (payroll.RunResponse, error) {
	return f.getRunByIDFn(ctx, orgID, id)
}

func (f *fakeRunService) GetRunBreakdown(ctx context.Context, orgID, id string) (payroll.RunBreakdownResponse, error) {
	return f.getRunBreakdownFn(ctx, orgID, id)
}

func (f *fakeRunService) UpsertPayslip(ctx context.Context, orgID, actorID, runID string, req payroll.UpsertPayslipRequest) (payroll.PayslipResponse, error) {
	return f.upsertPayslipFn(ctx, orgID, actorID, runID, req)
}

func (f *fakeRunService) PopulateRun(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
	return f.populateRunFn(ctx, orgID, actorID, runID)
}

func (f *fakeRunService) CalculateRun(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
	return f.calculateRunFn(ctx, orgID, actorID, runID)
}

func (f *fakeRunService) ApproveRun(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
	return f.approveRunFn(ctx, orgID, actorID, runID)
}

func (f *fakeRunService) MarkRunPaid(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
	return f.markRunPaidFn(ctx, orgID, actorID, runID)
}

func (f *fakeRunService) DeleteRun(ctx context.Context, orgID, runID string) error {
	return f.deleteRunFn(ctx, orgID, runID)
}

func (f *fakeRunService) GeneratePayslipDocuments(ctx context.Context, orgID, runID string) (int, error) {
	return f.generateDocumentsFn(ctx, orgID, runID)
}

func (f *fakeRunService) GetPayslipDocument(ctx context.Context, orgID, runID, payslipID string) (string, error) {
	return f.getPayslipDocumentFn(ctx, orgID, runID, payslipID)
}

func TestRunHandler_CreateRun(t *testing.T) {
	orgID := uuid.New().String()
	actorID := uuid.New().String()

	svc := &fakeRunService{
		createRunFn: func(ctx context.Context, oid, aid string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
			assert.Equal(t, orgID, oid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, "February 2026", req.Name)
			return payroll.RunResponse{ID: uuid.New().String(), Status: payroll.StatusDraft, OrgID: oid, CreatedBy: aid}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"February 2026","period_start":"2026-02-01","period_end":"2026-02-28","pay_date":"2026-03-05"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("org_id", orgID)
	c.Set("employee_id", actorID)

	h.CreateRun(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestRunHandler_CreateRun_MissingFields(t *testing.T) {
	h := payroll.NewHandler(&fakeRunService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(`{"name":"No dates"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("org_id", uuid.New().String())

	h.CreateRun(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestRunHandler_GetAllRuns_Pagination(t *testing.T) {
	orgID := uuid.New().String()

	runs := make([]payroll.RunResponse, 15)
	for i := range runs {
		runs[i] = payroll.RunResponse{ID: uuid.New().String(), Status: payroll.StatusDraft}
	}

	svc := &fakeRunService{
		getAllRunsFn: func(ctx context.Context, oid string, filter payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error) {
			return runs, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll-runs?page=2&page_size=10", nil)
	c.Set("org_id", orgID)

	h.GetAllRuns(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []payroll.RunResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)
}

func TestRunHandler_GetRunByID_NotFound(t *testing.T) {
	svc := &fakeRunService{
		getRunByIDFn: func(ctx context.Context, orgID, id string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrRunNotFound
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll-runs/missing", nil)
	c.Params = []gin.Param{{Key: "id", Value: "missing"}}
	c.Set("org_id", uuid.New().String())

	h.GetRunByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRunHandler_UpsertPayslip(t *testing.T) {
	orgID := uuid.New().String()
	actorID := uuid.New().String()
	runID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeRunService{
		upsertPayslipFn: func(ctx context.Context, oid, aid, rid string, req payroll.UpsertPayslipRequest) (payroll.PayslipResponse, error) {
			assert.Equal(t, runID, rid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Len(t, req.Items, 1)
			return payroll.PayslipResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","items":[{"item_type":"earning","code":"BASIC","name":"Basic Salary","amount":"5000.00"}]}`
	c.Request = httptest.NewRequest(http.MethodPut, "/payroll-runs/"+runID+"/payslips", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: runID}}
	c.Set("org_id", orgID)
	c.Set("employee_id", actorID)

	h.UpsertPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestRunHandler_ApproveRun_InvalidState(t *testing.T) {
	svc := &fakeRunService{
		approveRunFn: func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrApproveRequiresCalculated
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/123/approve", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("org_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.ApproveRun(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestRunHandler_MarkRunPaid_Conflict(t *testing.T) {
	svc := &fakeRunService{
		markRunPaidFn: func(ctx context.Context, orgID, actorID, runID string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrConcurrentModification
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs/123/pay", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("org_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.MarkRunPaid(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRunHandler_DeleteRun(t *testing.T) {
	svc := &fakeRunService{
		deleteRunFn: func(ctx context.Context, orgID, runID string) error {
			return nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/payroll-runs/123", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}
	c.Set("org_id", uuid.New().String())

	h.DeleteRun(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestRunHandler_DownloadPayslip(t *testing.T) {
	runID := uuid.New().String()
	payslipID := uuid.New().String()

	t.Run("redirects to the stored document", func(t *testing.T) {
		svc := &fakeRunService{
			getPayslipDocumentFn: func(ctx context.Context, orgID, rid, pid string) (string, error) {
				assert.Equal(t, runID, rid)
				assert.Equal(t, payslipID, pid)
				return "http://docs.local/payslip.pdf", nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payroll-runs/"+runID+"/payslips/"+payslipID+"/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: runID}, {Key: "payslipId", Value: payslipID}}
		c.Set("org_id", uuid.New().String())

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "http://docs.local/payslip.pdf", w.Header().Get("Location"))
	})

	t.Run("not generated yet", func(t *testing.T) {
		svc := &fakeRunService{
			getPayslipDocumentFn: func(ctx context.Context, orgID, rid, pid string) (string, error) {
				return "", payrollerrors.ErrDocumentNotGenerated
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payroll-runs/"+runID+"/payslips/"+payslipID+"/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: runID}, {Key: "payslipId", Value: payslipID}}
		c.Set("org_id", uuid.New().String())

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
