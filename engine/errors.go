package engine

import (
	"fmt"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// SimulationError reports a fault raised by the rules code while a decision
// was being simulated.
type SimulationError struct {
	Team  board.Team
	FEN   string
	Cause any
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulating %s to move in %q: %v", e.Team, e.FEN, e.Cause)
}

func (e *SimulationError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
