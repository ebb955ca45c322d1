package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/directory"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/events"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/messaging/kafka"
	payrollerrors "github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll/errors"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/contextutil"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateRun(ctx context.Context, orgID, actorID string, req CreateRunRequest) (RunResponse, error)
	GetAllRuns(ctx context.Context, orgID string, filter GetRunsFilterRequest) ([]RunResponse, error)
	GetRunByID(ctx context.Context, orgID, id string) (RunResponse, error)
	GetRunBreakdown(ctx context.Context, orgID, id string) (RunBreakdownResponse, error)
	UpsertPayslip(ctx context.Context, orgID, actorID, runID string, req UpsertPayslipRequest) (PayslipResponse, error)
	PopulateRun(ctx context.Context, orgID, actorID, runID string) (RunResponse, error)
	CalculateRun(ctx context.Context, orgID, actorID, runID string) (RunResponse, error)
	ApproveRun(ctx context.Context, orgID, actorID, runID string) (RunResponse, error)
	MarkRunPaid(ctx context.Context, orgID, actorID, runID string) (RunResponse, error)
	DeleteRun(ctx context.Context, orgID, runID string) error
	GeneratePayslipDocuments(ctx context.Context, orgID, runID string) (int, error)
	GetPayslipDocument(ctx context.Context, orgID, runID, payslipID string) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory directory.Service
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	docs      DocumentStore
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	directorySvc directory.Service,
	counterRepo counter.Repository,
	docs DocumentStore,
) Service {
	return NewServiceWithOutbox(db, repo, directorySvc, counterRepo, docs, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	directorySvc directory.Service,
	counterRepo counter.Repository,
	docs DocumentStore,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		directory: directorySvc,
		counter:   counterRepo,
		outbox:    outboxRepo,
		docs:      docs,
		logger:    l,
	}
}

func (s *service) CreateRun(
	ctx context.Context,
	orgID, actorID string,
	req CreateRunRequest,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create run requested",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.String("name", req.Name),
	)

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidOrgID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return RunResponse{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return RunResponse{}, err
	}
	payDate, err := parseDate(req.PayDate)
	if err != nil {
		return RunResponse{}, err
	}
	if periodStart.After(periodEnd) {
		return RunResponse{}, payrollerrors.ErrInvalidDateRange
	}
	if payDate.Before(periodEnd) {
		return RunResponse{}, payrollerrors.ErrInvalidPayDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, orgID, "payroll_run")
	if err != nil {
		s.logger.Error("create run number generation failed", zap.String("request_id", rid), zap.Error(err))
		return RunResponse{}, err
	}

	run := &PayrollRun{
		ID:          uuid.New(),
		OrgID:       orgUUID,
		RunNumber:   fmt.Sprintf("PRUN-%06d", nextVal),
		Name:        req.Name,
		Description: req.Description,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PayDate:     payDate,
		Status:      StatusDraft,
		CreatedBy:   actorUUID,
		Version:     1,
	}
	if req.Notes != "" {
		run.Notes = &req.Notes
	}

	if err := qtx.CreateRun(ctx, run); err != nil {
		s.logger.Error("create run persist failed", zap.String("request_id", rid), zap.Error(err))
		return RunResponse{}, mapRunError(err)
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("create run success",
		zap.String("request_id", rid),
		zap.String("run_id", run.ID.String()),
		zap.String("run_number", run.RunNumber),
	)

	return mapToRunResponse(*run), nil
}

func (s *service) GetAllRuns(
	ctx context.Context,
	orgID string,
	filter GetRunsFilterRequest,
) ([]RunResponse, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}

	runs, err := s.repo.FindRunsByOrg(ctx, orgID, RunQueryFilter{Status: filter.Status})
	if err != nil {
		return nil, mapRunError(err)
	}

	return mapToRunListResponse(runs), nil
}

func (s *service) GetRunByID(
	ctx context.Context,
	orgID, id string,
) (RunResponse, error) {
	run, err := s.repo.FindRunByIDAndOrg(ctx, orgID, id)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}

	return mapToRunResponse(*run), nil
}

func (s *service) GetRunBreakdown(
	ctx context.Context,
	orgID, id string,
) (RunBreakdownResponse, error) {
	run, err := s.repo.FindRunByIDAndOrg(ctx, orgID, id)
	if err != nil {
		return RunBreakdownResponse{}, mapRunError(err)
	}

	slips := make([]PayslipResponse, len(run.Payslips))
	for i, slip := range run.Payslips {
		slips[i] = mapToPayslipResponse(slip, true)
	}

	return RunBreakdownResponse{
		Run:      mapToRunResponse(*run),
		Payslips: slips,
	}, nil
}

func (s *service) UpsertPayslip(
	ctx context.Context,
	orgID, actorID, runID string,
	req UpsertPayslipRequest,
) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(actorID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	// Unknown item types would silently vanish from every total, so they
	// are rejected here instead of being dropped by the aggregator.
	for _, item := range req.Items {
		if !KnownItemType(item.ItemType) {
			return PayslipResponse{}, payrollerrors.ErrUnknownItemType
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return PayslipResponse{}, mapRunError(err)
	}
	if !run.Editable() {
		return PayslipResponse{}, payrollerrors.ErrRunNotEditable
	}

	if err := s.directory.VerifyEmployee(ctx, orgID, req.EmployeeID); err != nil {
		return PayslipResponse{}, err
	}

	now := time.Now().UTC()
	payPeriod := run.PeriodStart.Format("2006-01")

	existing, err := qtx.FindPayslipByRunAndEmployee(ctx, orgID, runID, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, mapPayslipError(err)
	}

	var slip *Payslip
	if existing == nil {
		slip = &Payslip{
			ID:          uuid.New(),
			RunID:       run.ID,
			OrgID:       run.OrgID,
			EmployeeID:  employeeUUID,
			PayPeriod:   payPeriod,
			Items:       buildItems(run.OrgID, uuid.Nil, req.Items),
			GeneratedAt: now,
			Version:     1,
		}
		for i := range slip.Items {
			slip.Items[i].PayslipID = slip.ID
		}
		slip.CalculateTotals()

		if err := qtx.CreatePayslip(ctx, slip); err != nil {
			s.logger.Error("create payslip persist failed",
				zap.String("request_id", rid),
				zap.String("run_id", runID),
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err),
			)
			return PayslipResponse{}, mapPayslipError(err)
		}
	} else {
		slip = existing
		items := buildItems(run.OrgID, slip.ID, req.Items)

		if err := qtx.ReplaceItems(ctx, orgID, slip.ID.String(), items); err != nil {
			return PayslipResponse{}, mapPayslipError(err)
		}

		slip.Items = items
		slip.GeneratedAt = now
		slip.CalculateTotals()

		if err := qtx.UpdatePayslip(ctx, slip); err != nil {
			return PayslipResponse{}, mapPayslipError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("upsert payslip success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.String("payslip_id", slip.ID.String()),
		zap.String("net_pay", slip.NetPay.StringFixed(2)),
	)

	return mapToPayslipResponse(*slip, true), nil
}

// PopulateRun creates or refreshes one payslip per active employee from the
// compensation currently in effect.
func (s *service) PopulateRun(
	ctx context.Context,
	orgID, actorID, runID string,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	run, err := s.repo.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}
	if !run.Editable() {
		return RunResponse{}, payrollerrors.ErrRunNotEditable
	}

	roster, err := s.directory.ActiveRoster(ctx, orgID)
	if err != nil {
		return RunResponse{}, err
	}

	for _, entry := range roster {
		items := []PayslipItemInput{
			{ItemType: ItemTypeEarning, Code: "BASIC", Name: "Basic Salary", Amount: entry.BaseSalary, CalcOrder: 1},
		}
		if entry.Allowance.Sign() != 0 {
			items = append(items, PayslipItemInput{
				ItemType: ItemTypeEarning, Code: "ALLOWANCE", Name: "Allowance", Amount: entry.Allowance, CalcOrder: 2,
			})
		}

		if _, err := s.UpsertPayslip(ctx, orgID, actorID, runID, UpsertPayslipRequest{
			EmployeeID: entry.EmployeeID,
			Items:      items,
		}); err != nil {
			s.logger.Error("populate run payslip failed",
				zap.String("request_id", rid),
				zap.String("run_id", runID),
				zap.String("employee_id", entry.EmployeeID),
				zap.Error(err),
			)
			return RunResponse{}, err
		}
	}

	s.logger.Info("populate run success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.Int("payslips", len(roster)),
	)

	return s.GetRunByID(ctx, orgID, runID)
}

// CalculateRun re-aggregates every payslip, folds the results into the run
// totals and moves the run to CALCULATED.
func (s *service) CalculateRun(
	ctx context.Context,
	orgID, actorID, runID string,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}

	for i := range run.Payslips {
		slip := &run.Payslips[i]
		before := slipTotals(slip)
		slip.CalculateTotals()

		if before != slipTotals(slip) {
			if err := qtx.UpdatePayslip(ctx, slip); err != nil {
				return RunResponse{}, mapPayslipError(err)
			}
		}
	}

	if err := run.MarkCalculated(actorUUID, time.Now().UTC()); err != nil {
		return RunResponse{}, err
	}

	if err := qtx.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, mapRunError(err)
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("calculate run success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.Int("employee_count", run.EmployeeCount),
		zap.String("total_net_pay", run.TotalNetPay.StringFixed(2)),
	)

	return mapToRunResponse(*run), nil
}

// ApproveRun moves CALCULATED -> APPROVED, finalizes every payslip and
// queues document rendering through the outbox.
func (s *service) ApproveRun(
	ctx context.Context,
	orgID, actorID, runID string,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}

	now := time.Now().UTC()
	if err := run.Approve(actorUUID, now); err != nil {
		return RunResponse{}, err
	}

	for i := range run.Payslips {
		slip := &run.Payslips[i]
		if slip.Finalized {
			continue
		}
		slip.Finalized = true
		if err := qtx.UpdatePayslip(ctx, slip); err != nil {
			return RunResponse{}, mapPayslipError(err)
		}
	}

	if err := qtx.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, mapRunError(err)
	}

	if s.outbox != nil {
		event := events.PayrollRunApprovedEvent{
			EventType:  "payroll_run_approved",
			RequestID:  rid,
			RunID:      run.ID.String(),
			OrgID:      orgID,
			ApprovedBy: actorID,
			OccurredAt: now,
		}
		if err := s.queueEvent(ctx, tx, rid, run.ID.String(), event.EventType, events.PayrollRunApprovedTopic, event); err != nil {
			return RunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("approve run success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.String("approved_by", actorID),
	)

	return mapToRunResponse(*run), nil
}

// MarkRunPaid moves APPROVED -> PAID, the terminal state.
func (s *service) MarkRunPaid(
	ctx context.Context,
	orgID, actorID, runID string,
) (RunResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}

	now := time.Now().UTC()
	if err := run.MarkPaid(actorUUID, now); err != nil {
		return RunResponse{}, err
	}

	if err := qtx.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, mapRunError(err)
	}

	if s.outbox != nil {
		event := events.PayrollRunPaidEvent{
			EventType:     "payroll_run_paid",
			RequestID:     rid,
			RunID:         run.ID.String(),
			OrgID:         orgID,
			PaidBy:        actorID,
			TotalNetPay:   run.TotalNetPay.StringFixed(2),
			EmployeeCount: run.EmployeeCount,
			OccurredAt:    now,
		}
		if err := s.queueEvent(ctx, tx, rid, run.ID.String(), event.EventType, events.PayrollRunPaidTopic, event); err != nil {
			return RunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("pay run success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
		zap.String("paid_by", actorID),
	)

	return mapToRunResponse(*run), nil
}

func (s *service) DeleteRun(
	ctx context.Context,
	orgID, runID string,
) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return mapRunError(err)
	}
	if !run.Deletable() {
		return payrollerrors.ErrRunNotDeletable
	}

	if err := qtx.DeleteRun(ctx, orgID, runID); err != nil {
		return mapRunError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete run success",
		zap.String("request_id", rid),
		zap.String("run_id", runID),
	)

	return nil
}

// GeneratePayslipDocuments renders and stores a document for every payslip
// that does not have one yet. Invoked by the consumer after approval;
// re-running it is safe.
func (s *service) GeneratePayslipDocuments(
	ctx context.Context,
	orgID, runID string,
) (int, error) {
	run, err := s.repo.FindRunByIDAndOrg(ctx, orgID, runID)
	if err != nil {
		return 0, mapRunError(err)
	}
	if run.Status != StatusApproved && run.Status != StatusPaid {
		return 0, payrollerrors.ErrDocumentsRequireApproval
	}

	names := map[string]string{}
	if roster, err := s.directory.ActiveRoster(ctx, orgID); err == nil {
		for _, entry := range roster {
			names[entry.EmployeeID] = entry.FullName
		}
	}

	rendered := 0
	for i := range run.Payslips {
		slip := &run.Payslips[i]
		if slip.DocumentURL != nil {
			continue
		}

		pdf, err := buildPayslipPDF(payslipDocumentLines(run, slip, names[slip.EmployeeID.String()]))
		if err != nil {
			return rendered, err
		}

		url, err := s.docs.Save(ctx, fmt.Sprintf("payslip-%s.pdf", slip.ID), pdf)
		if err != nil {
			return rendered, err
		}

		slip.DocumentURL = &url
		if err := s.repo.UpdatePayslip(ctx, slip); err != nil {
			return rendered, mapPayslipError(err)
		}
		rendered++
	}

	return rendered, nil
}

func (s *service) GetPayslipDocument(
	ctx context.Context,
	orgID, runID, payslipID string,
) (string, error) {
	slip, err := s.repo.FindPayslipByIDAndRun(ctx, orgID, runID, payslipID)
	if err != nil {
		return "", mapPayslipError(err)
	}

	if slip.DocumentURL == nil || *slip.DocumentURL == "" {
		return "", payrollerrors.ErrDocumentNotGenerated
	}

	return *slip.DocumentURL, nil
}

func (s *service) queueEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid, runID, eventType, topic string,
	event any,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: kafka.AggregatePayrollRun,
		AggregateID:   runID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue outbox event failed",
			zap.String("request_id", rid),
			zap.String("run_id", runID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func buildItems(orgID uuid.UUID, payslipID uuid.UUID, inputs []PayslipItemInput) []PayrollItem {
	items := make([]PayrollItem, len(inputs))
	for i, in := range inputs {
		amount := in.Amount
		// Keep amount = rate * quantity whenever both are supplied.
		if in.Rate != nil && in.Quantity != nil {
			amount = in.Rate.Mul(*in.Quantity)
		}
		calcOrder := in.CalcOrder
		if calcOrder == 0 {
			calcOrder = i + 1
		}
		items[i] = PayrollItem{
			ID:        uuid.New(),
			PayslipID: payslipID,
			OrgID:     orgID,
			ItemType:  in.ItemType,
			Code:      in.Code,
			Name:      in.Name,
			Amount:    amount,
			Rate:      in.Rate,
			Quantity:  in.Quantity,
			Taxable:   in.Taxable,
			Statutory: in.Statutory,
			CalcOrder: calcOrder,
			Unit:      in.Unit,
		}
	}
	return items
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}

type totals struct {
	gross, taxes, deductions, net string
}

func slipTotals(p *Payslip) totals {
	return totals{
		gross:      p.GrossPay.StringFixed(2),
		taxes:      p.TotalTaxes.StringFixed(2),
		deductions: p.TotalDeductions.StringFixed(2),
		net:        p.NetPay.StringFixed(2),
	}
}

func mapToRunResponse(run PayrollRun) RunResponse {
	resp := RunResponse{
		ID:              run.ID.String(),
		OrgID:           run.OrgID.String(),
		RunNumber:       run.RunNumber,
		Name:            run.Name,
		Description:     run.Description,
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		PayDate:         run.PayDate.Format("2006-01-02"),
		Status:          run.Status,
		TotalGrossPay:   run.TotalGrossPay,
		TotalDeductions: run.TotalDeductions,
		TotalTaxes:      run.TotalTaxes,
		TotalNetPay:     run.TotalNetPay,
		EmployeeCount:   run.EmployeeCount,
		Notes:           run.Notes,
		CreatedBy:       run.CreatedBy.String(),
		Version:         run.Version,
	}

	resp.ProcessedBy, resp.ProcessedAt = actorStamp(run.ProcessedBy, run.ProcessedAt)
	resp.ApprovedBy, resp.ApprovedAt = actorStamp(run.ApprovedBy, run.ApprovedAt)
	resp.PaidBy, resp.PaidAt = actorStamp(run.PaidBy, run.PaidAt)

	return resp
}

func actorStamp(who *uuid.UUID, when *time.Time) (*string, *string) {
	var whoStr, whenStr *string
	if who != nil {
		v := who.String()
		whoStr = &v
	}
	if when != nil {
		v := when.Format(time.RFC3339)
		whenStr = &v
	}
	return whoStr, whenStr
}

func mapToRunListResponse(runs []PayrollRun) []RunResponse {
	resp := make([]RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapToRunResponse(run)
	}
	return resp
}

func mapToPayslipResponse(slip Payslip, withItems bool) PayslipResponse {
	resp := PayslipResponse{
		ID:              slip.ID.String(),
		RunID:           slip.RunID.String(),
		EmployeeID:      slip.EmployeeID.String(),
		PayPeriod:       slip.PayPeriod,
		GrossPay:        slip.GrossPay,
		TotalTaxes:      slip.TotalTaxes,
		TotalDeductions: slip.TotalDeductions,
		NetPay:          slip.NetPay,
		Finalized:       slip.Finalized,
		GeneratedAt:     slip.GeneratedAt.Format(time.RFC3339),
		DocumentURL:     slip.DocumentURL,
	}

	if withItems {
		resp.Items = make([]PayslipItemResponse, len(slip.Items))
		for i, item := range slip.OrderedItems() {
			resp.Items[i] = PayslipItemResponse{
				ID:        item.ID.String(),
				ItemType:  item.ItemType,
				Code:      item.Code,
				Name:      item.Name,
				Amount:    item.ResolvedAmount(),
				Rate:      item.Rate,
				Quantity:  item.Quantity,
				Taxable:   item.Taxable,
				Statutory: item.Statutory,
				CalcOrder: item.CalcOrder,
				Unit:      item.Unit,
			}
		}
	}

	return resp
}
