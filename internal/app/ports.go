package app

import "context"

type GenerateScheduleUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type MarkMissedUseCase interface {
	MarkMissed(ctx context.Context, sessionID string) (*MarkMissedResult, error)
}

type RunCycleUseCase interface {
	RunCycle(ctx context.Context, req CycleRequest) (*CycleReport, error)
}
