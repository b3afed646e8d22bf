package domain

// BetStatus represents the lifecycle state of a bet as persisted.
type BetStatus string

const (
	BetStatusPending   BetStatus = "PENDING"
	BetStatusValidated BetStatus = "VALIDATED"
	BetStatusRejected  BetStatus = "REJECTED"
)

// BetTicket is the value object a caller submits when placing a bet. It is
// immutable once inside a use case: validated, persisted and echoed back,
// never stored as a living aggregate.
type BetTicket struct {
	UserID  string  `json:"user_id"`
	MatchID string  `json:"match_id"`
	Amount  float64 `json:"amount"`
	Odds    float64 `json:"odds"`
}
