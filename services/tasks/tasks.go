package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"courtcredits/models"

	"github.com/hibiken/asynq"
)

// Task types handled by the action worker.
const (
	TypeCreditPurchase = "credits:purchase"
	TypeCourtBooking   = "court:book"
	TypeStudentMessage = "student:message"
	TypeCalendarEvent  = "calendar:add"
	TypeCatalogReload  = "catalog:reload"
)

// QueueActions is the queue session actions are enqueued on.
const QueueActions = "actions"

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func newTask(typeName, requestID string, payload any) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal %s payload: %w", typeName, err)
	}
	task := asynq.NewTask(typeName, b)
	opts := []asynq.Option{
		asynq.Queue(QueueActions),
		asynq.TaskID(requestID),
		asynq.MaxRetry(3),
		asynq.Timeout(2 * time.Minute),
	}
	return task, opts, nil
}

func NewCreditPurchaseTask(p models.CreditPurchasePayload) (*asynq.Task, []asynq.Option, error) {
	return newTask(TypeCreditPurchase, p.RequestID, p)
}

func NewCourtBookingTask(p models.CourtBookingPayload) (*asynq.Task, []asynq.Option, error) {
	return newTask(TypeCourtBooking, p.RequestID, p)
}

func NewStudentMessageTask(p models.StudentMessagePayload) (*asynq.Task, []asynq.Option, error) {
	return newTask(TypeStudentMessage, p.RequestID, p)
}

func NewCalendarEventTask(p models.CalendarEventPayload) (*asynq.Task, []asynq.Option, error) {
	return newTask(TypeCalendarEvent, p.RequestID, p)
}

// NewCatalogReloadTask is registered with the scheduler; it carries no payload.
func NewCatalogReloadTask() *asynq.Task {
	return asynq.NewTask(TypeCatalogReload, nil)
}
