package obj

// Outcome is the result of a play session so far.
type Outcome int

const (
	Playing Outcome = iota
	Won
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// GameState holds the counters of one play session. It is owned by the game
// loop and only mutated through Player.Update.
type GameState struct {
	Health    int
	Total     int
	Collected int
	Outcome   Outcome
}

// NewGameState starts a session whose level holds total pickups.
func NewGameState(total int) *GameState {
	return &GameState{Total: total}
}

// Collect records one pickup worth increment health.
func (s *GameState) Collect(increment int) {
	s.Health += increment
	s.Collected++
}

// CheckWin flips the outcome to Won once every pickup is collected. Won is
// final.
func (s *GameState) CheckWin() Outcome {
	if s.Outcome == Playing && s.Collected >= s.Total {
		s.Outcome = Won
	}
	return s.Outcome
}

func (s *GameState) Won() bool {
	return s.Outcome == Won
}
