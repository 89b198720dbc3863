package contract

import (
	"time"

	"github.com/alexanderramin/revisio/internal/app"
)

type GenerateRequest = app.GenerateRequest

func NewGenerateRequest(userID string, weekStart time.Time) GenerateRequest {
	return app.NewGenerateRequest(userID, weekStart)
}

type ScheduledEntry = app.ScheduledEntry

type GenerateResponse = app.GenerateResponse

type MarkMissedResult = app.MarkMissedResult

type CycleRequest = app.CycleRequest

func NewCycleRequest() CycleRequest {
	return app.NewCycleRequest()
}

type CycleReport = app.CycleReport

type CycleUserError = app.CycleUserError
