package domain

import "time"

type User struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// TopicRating is a learner's self-assessed confidence for one topic.
type TopicRating struct {
	UserID    string
	TopicID   string
	Rating    int
	UpdatedAt time.Time
}

// Schedulable reports whether the rating admits the topic to scheduling.
func (t TopicRating) Schedulable() bool {
	return t.Rating != RatingExcluded
}
