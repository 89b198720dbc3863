package domain

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionDone      SessionStatus = "done"
	SessionMissed    SessionStatus = "missed"
)

type BlockSource string

const (
	BlockOneOff    BlockSource = "one_off"
	BlockRecurring BlockSource = "recurring"
)

// Rating values a learner can assign to a topic. RatingExcluded removes the
// topic from scheduling entirely; RatingUnlearned marks material not yet
// studied; 1-5 express increasing confidence.
const (
	RatingExcluded  = -2
	RatingUnlearned = 0
)

// ValidRatings is the canonical set of accepted confidence ratings.
var ValidRatings = map[int]bool{
	-2: true, 0: true, 1: true, 2: true, 3: true, 4: true, 5: true,
}
