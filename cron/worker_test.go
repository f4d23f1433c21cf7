package cron

import (
	"context"
	"errors"
	"testing"

	"courtcredits/models"
	"courtcredits/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingDispatcher struct {
	purchases []models.CreditPurchasePayload
	bookings  []models.CourtBookingPayload
	messages  []models.StudentMessagePayload
	events    []models.CalendarEventPayload
	err       error
}

func (d *recordingDispatcher) PurchaseCredits(_ context.Context, p models.CreditPurchasePayload) error {
	d.purchases = append(d.purchases, p)
	return d.err
}

func (d *recordingDispatcher) BookCourt(_ context.Context, p models.CourtBookingPayload) error {
	d.bookings = append(d.bookings, p)
	return d.err
}

func (d *recordingDispatcher) MessageStudent(_ context.Context, p models.StudentMessagePayload) error {
	d.messages = append(d.messages, p)
	return d.err
}

func (d *recordingDispatcher) AddCalendarEvent(_ context.Context, p models.CalendarEventPayload) error {
	d.events = append(d.events, p)
	return d.err
}

type countingReloader struct {
	calls int
	err   error
}

func (r *countingReloader) Reload() (uint64, error) {
	r.calls++
	return uint64(r.calls + 1), r.err
}

func TestActionMuxDispatches(t *testing.T) {
	d := &recordingDispatcher{}
	mux := NewActionMux(d, &countingReloader{}, zap.NewNop())

	booking, _, err := tasks.NewCourtBookingTask(models.CourtBookingPayload{RequestID: "b1", CourtLocation: "PBA Malaga"})
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), booking))

	message, _, err := tasks.NewStudentMessageTask(models.StudentMessagePayload{RequestID: "m1", StudentName: "Alex"})
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), message))

	event, _, err := tasks.NewCalendarEventTask(models.CalendarEventPayload{RequestID: "c1"})
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), event))

	purchase, _, err := tasks.NewCreditPurchaseTask(models.CreditPurchasePayload{RequestID: "p1"})
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), purchase))

	require.Len(t, d.bookings, 1)
	assert.Equal(t, "PBA Malaga", d.bookings[0].CourtLocation)
	require.Len(t, d.messages, 1)
	assert.Equal(t, "Alex", d.messages[0].StudentName)
	assert.Len(t, d.events, 1)
	assert.Len(t, d.purchases, 1)
}

func TestActionMuxSkipsRetryOnBadPayload(t *testing.T) {
	mux := NewActionMux(&recordingDispatcher{}, &countingReloader{}, zap.NewNop())
	err := mux.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeCourtBooking, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestActionMuxPropagatesDispatchErrors(t *testing.T) {
	d := &recordingDispatcher{err: errors.New("collaborator down")}
	mux := NewActionMux(d, &countingReloader{}, zap.NewNop())

	task, _, err := tasks.NewCourtBookingTask(models.CourtBookingPayload{RequestID: "b1"})
	require.NoError(t, err)
	assert.EqualError(t, mux.ProcessTask(context.Background(), task), "collaborator down")
}

func TestActionMuxReloadsCatalog(t *testing.T) {
	r := &countingReloader{}
	mux := NewActionMux(&recordingDispatcher{}, r, zap.NewNop())

	require.NoError(t, mux.ProcessTask(context.Background(), tasks.NewCatalogReloadTask()))
	assert.Equal(t, 1, r.calls)

	r.err = errors.New("bad file")
	assert.Error(t, mux.ProcessTask(context.Background(), tasks.NewCatalogReloadTask()))
}
