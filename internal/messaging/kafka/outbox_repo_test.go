package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingRunEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     uuid.NewString(),
		AggregateType: kafka.AggregatePayrollRun,
		AggregateID:   uuid.NewString(),
		EventType:     "payroll_run.approved",
		Topic:         "payroll.run.approved",
		Payload:       []byte(`{"run_id":"r1"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	t.Run("inserts on the transaction when one is supplied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(context.Background(), pendingRunEvent()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unpublishable event before touching the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		event := pendingRunEvent()
		event.Topic = ""

		repo := kafka.NewOutboxRepository(db)
		assert.Error(t, repo.Create(context.Background(), event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		"e1", kafka.AggregatePayrollRun, "r1", "payroll_run.paid",
		"payroll.run.paid", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)
	mock.ExpectQuery(`SELECT`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, kafka.AggregatePayrollRun, events[0].AggregateType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(pendingRunEvent()))

	cases := []struct {
		name   string
		mutate func(e *kafka.OutboxEvent)
	}{
		{"missing id", func(e *kafka.OutboxEvent) { e.ID = "" }},
		{"missing aggregate id", func(e *kafka.OutboxEvent) { e.AggregateID = "" }},
		{"missing event type", func(e *kafka.OutboxEvent) { e.EventType = "" }},
		{"missing topic", func(e *kafka.OutboxEvent) { e.Topic = "" }},
		{"empty payload", func(e *kafka.OutboxEvent) { e.Payload = nil }},
		{"unknown status", func(e *kafka.OutboxEvent) { e.Status = "queued" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := pendingRunEvent()
			tc.mutate(&event)
			assert.Error(t, kafka.ValidateOutboxEvent(event))
		})
	}
}
