package app

type CapacityBlockerCode string

const (
	BlockerNoSlot           CapacityBlockerCode = "NO_SLOT"
	BlockerReserveExhausted CapacityBlockerCode = "RESERVE_EXHAUSTED"
	BlockerFirstDayFull     CapacityBlockerCode = "FIRST_DAY_FULL"
)

// CapacityBlocker records why a topic's session could not be placed in the
// target week. Blockers are informational: a partial or empty plan is a valid
// outcome, not an error.
type CapacityBlocker struct {
	TopicID       string
	SessionNumber int
	Code          CapacityBlockerCode
	Message       string
}

type ScheduleErrorCode string

const (
	ScheduleErrInvalidRating      ScheduleErrorCode = "INVALID_RATING"
	ScheduleErrInvalidWeekStart   ScheduleErrorCode = "INVALID_WEEK_START"
	ScheduleErrInvalidPreferences ScheduleErrorCode = "INVALID_PREFERENCES"
	ScheduleErrInvalidDuration    ScheduleErrorCode = "INVALID_DURATION"
	ScheduleErrInternal           ScheduleErrorCode = "INTERNAL"
)

// ScheduleError is a typed validation failure raised before any scheduling
// work begins.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
