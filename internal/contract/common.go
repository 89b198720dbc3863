package contract

import "github.com/alexanderramin/revisio/internal/app"

type CapacityBlockerCode = app.CapacityBlockerCode

const (
	BlockerNoSlot           CapacityBlockerCode = app.BlockerNoSlot
	BlockerReserveExhausted CapacityBlockerCode = app.BlockerReserveExhausted
	BlockerFirstDayFull     CapacityBlockerCode = app.BlockerFirstDayFull
)

type CapacityBlocker = app.CapacityBlocker

type ScheduleErrorCode = app.ScheduleErrorCode

const (
	ScheduleErrInvalidRating      ScheduleErrorCode = app.ScheduleErrInvalidRating
	ScheduleErrInvalidWeekStart   ScheduleErrorCode = app.ScheduleErrInvalidWeekStart
	ScheduleErrInvalidPreferences ScheduleErrorCode = app.ScheduleErrInvalidPreferences
	ScheduleErrInvalidDuration    ScheduleErrorCode = app.ScheduleErrInvalidDuration
	ScheduleErrInternal           ScheduleErrorCode = app.ScheduleErrInternal
)

type ScheduleError = app.ScheduleError
