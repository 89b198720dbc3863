package contract

import "github.com/alexanderramin/revisio/internal/app"

type WeekStatus = app.WeekStatus

type DayStatus = app.DayStatus
