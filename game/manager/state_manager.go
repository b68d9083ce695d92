package manager

import (
	"time"

	"github.com/google/uuid"
)

const maxScores = 50 // Score history kept for the session

// GameRecord describes one finished game.
type GameRecord struct {
	Score     int
	Cause     CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// StateManager keeps in-memory statistics for the current session.
// Nothing is written to disk.
type StateManager struct {
	sessionID    string
	startTime    time.Time
	gameStart    time.Time
	gamesPlayed  int
	highScore    int
	lastScore    int
	scoreHistory []int
	now          func() time.Time
}

func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	start := now()
	return &StateManager{
		sessionID:    uuid.New().String(),
		startTime:    start,
		gameStart:    start,
		scoreHistory: make([]int, 0, maxScores),
		now:          now,
	}
}

// StartGame marks the beginning of a new game.
func (sm *StateManager) StartGame() {
	sm.gameStart = sm.now()
}

// EndGame records a finished game and returns its record.
func (sm *StateManager) EndGame(score int, cause CollisionType) GameRecord {
	rec := GameRecord{
		Score:     score,
		Cause:     cause,
		StartTime: sm.gameStart,
		EndTime:   sm.now(),
	}

	sm.gamesPlayed++
	sm.lastScore = score
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)

	sm.gameStart = rec.EndTime
	return rec
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetLastScore() int {
	return sm.lastScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetScoreHistory returns a copy of the most recent scores, oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.scoreHistory))
	copy(scores, sm.scoreHistory)
	return scores
}

// GetAverageScore returns the mean of the kept score history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, s := range sm.scoreHistory {
		total += s
	}
	return float64(total) / float64(len(sm.scoreHistory))
}

// Uptime is the time since the session started.
func (sm *StateManager) Uptime() time.Duration {
	return sm.now().Sub(sm.startTime)
}
