package service

import (
	"context"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/repository"
)

type statusService struct {
	sessions repository.SessionRepo
	ratings  repository.RatingRepo
	profile  ProfileService
}

func NewStatusService(sessions repository.SessionRepo, ratings repository.RatingRepo, profile ProfileService) StatusService {
	return &statusService{sessions: sessions, ratings: ratings, profile: profile}
}

func (s *statusService) GetWeekStatus(ctx context.Context, userID string, weekStart time.Time) (*contract.WeekStatus, error) {
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek)
	sessions, err := s.sessions.ListByUserInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	status := &contract.WeekStatus{
		UserID:    userID,
		WeekStart: weekStart,
		Sessions:  sessions,
	}
	for _, sess := range sessions {
		switch sess.Status {
		case domain.SessionDone:
			status.Done++
		case domain.SessionMissed:
			status.Missed++
		default:
			status.Scheduled++
		}
	}

	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	status.TopicsRated = len(ratings)
	for _, r := range ratings {
		if r.Schedulable() {
			status.TopicsActive++
		}
	}

	days, err := s.profile.WeekAvailability(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	for _, d := range days {
		ds := contract.DayStatus{Date: d.Date, OpenMin: d.OpenMin}
		for _, sess := range sessions {
			if domain.DayOf(sess.ScheduledAt).Equal(d.Date) {
				ds.Scheduled++
			}
		}
		status.Days = append(status.Days, ds)
	}
	return status, nil
}
