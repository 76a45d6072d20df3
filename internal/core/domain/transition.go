package domain

import (
	"time"

	"github.com/google/uuid"
)

// DepositTransition is one row of a deposit's state history.
type DepositTransition struct {
	ID        uuid.UUID    `json:"id"`
	DepositID uuid.UUID    `json:"deposit_id"`
	FromState DepositState `json:"from_state"`
	ToState   DepositState `json:"to_state"`
	Actor     string       `json:"actor"`
	Reason    *string      `json:"reason,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Actor names for transitions not made by a person.
const (
	ActorSweeper = "sweeper"
)

// SystemActor names the automated gateway that drove a transition.
func SystemActor(m PaymentMethod) string {
	return "system:" + string(m)
}
