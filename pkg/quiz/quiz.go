// Package quiz runs "read the ancient numeral" practice sessions: a number
// is drawn, shown in some system, and the player guesses its decimal value.
//
// Each Session owns its state. A Session is not safe for concurrent use.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// Difficulty selects the number range and the systems questions are drawn from.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Level is the question pool for one difficulty.
type Level struct {
	Label   string
	Range   numeral.Range
	Systems []numeral.ID
}

var levels = map[Difficulty]Level{
	Easy:   {Label: "Easy", Range: numeral.Range{Min: 1, Max: 50}, Systems: []numeral.ID{numeral.Roman, numeral.Egyptian}},
	Medium: {Label: "Medium", Range: numeral.Range{Min: 1, Max: 500}, Systems: numeral.IDs()},
	Hard:   {Label: "Hard", Range: numeral.Range{Min: 1, Max: 5000}, Systems: numeral.IDs()},
}

// Levels returns the pool for a difficulty.
func Levels(d Difficulty) (Level, bool) {
	l, ok := levels[d]
	return l, ok
}

var (
	ErrNoQuestion = errors.New("no open question")
	ErrEmptyGuess = errors.New("empty guess")
)

// Question is one drawn number rendered in one system.
type Question struct {
	Number  int            `json:"-"`
	System  numeral.ID     `json:"system"`
	Name    string         `json:"name"`
	Display string         `json:"display"`
	Result  numeral.Result `json:"-"`
	Asked   time.Time      `json:"asked"`
}

// Outcome is the scored result of a question.
type Outcome struct {
	Correct  bool           `json:"correct"`
	TimedOut bool           `json:"timed_out,omitempty"`
	Answer   int            `json:"answer"`
	Steps    []numeral.Step `json:"steps"`
}

// Stats are the running totals of a session.
type Stats struct {
	Streak        int `json:"streak"`
	BestStreak    int `json:"best_streak"`
	TotalCorrect  int `json:"total_correct"`
	TotalAttempts int `json:"total_attempts"`
}

// Session is one player's run of questions.
type Session struct {
	ID         string
	Difficulty Difficulty

	level     Level
	rng       *rand.Rand
	now       func() time.Time
	timeLimit time.Duration
	current   *Question
	stats     Stats
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source, for reproducible sessions.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the clock used for timed questions.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithTimeLimit makes every question expire after d. Zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(s *Session) { s.timeLimit = d }
}

// New starts a session at the given difficulty.
func New(d Difficulty, opts ...Option) (*Session, error) {
	level, ok := levels[d]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", d)
	}
	s := &Session{
		ID:         uuid.NewString(),
		Difficulty: d,
		level:      level,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Next draws a new question, replacing any open one. The system is drawn
// only from those whose range holds the number.
func (s *Session) Next() Question {
	r := s.level.Range
	n := r.Min + s.rng.IntN(r.Max-r.Min+1)

	candidates := make([]*numeral.System, 0, len(s.level.Systems))
	for _, id := range s.level.Systems {
		if sys, ok := numeral.Lookup(string(id)); ok && sys.Range.Contains(n) {
			candidates = append(candidates, sys)
		}
	}
	sys := candidates[s.rng.IntN(len(candidates))]

	res := sys.Encode(n)
	q := Question{
		Number:  n,
		System:  sys.ID,
		Name:    sys.Name,
		Display: sys.Format(res.Symbols),
		Result:  res,
		Asked:   s.now(),
	}
	s.current = &q
	return q
}

// Current returns the open question, if any.
func (s *Session) Current() (Question, bool) {
	if s.current == nil {
		return Question{}, false
	}
	return *s.current, true
}

// Answer scores a decimal guess against the open question and closes it.
// A guess that is not a number is wrong. A guess after the time limit is
// scored as a reveal.
func (s *Session) Answer(guess string) (Outcome, error) {
	if s.current == nil {
		return Outcome{}, ErrNoQuestion
	}
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return Outcome{}, ErrEmptyGuess
	}
	if s.expired() {
		out, _ := s.Reveal()
		out.TimedOut = true
		return out, nil
	}

	n, err := strconv.Atoi(strings.ReplaceAll(guess, ",", ""))
	correct := err == nil && n == s.current.Number
	return s.close(correct), nil
}

// Reveal gives up on the open question. It counts as a wrong attempt.
func (s *Session) Reveal() (Outcome, error) {
	if s.current == nil {
		return Outcome{}, ErrNoQuestion
	}
	return s.close(false), nil
}

// Remaining returns the time left on the open question, or zero when there
// is no limit or no question.
func (s *Session) Remaining() time.Duration {
	if s.current == nil || s.timeLimit == 0 {
		return 0
	}
	return max(0, s.timeLimit-s.now().Sub(s.current.Asked))
}

// Stats returns the running totals.
func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) expired() bool {
	return s.timeLimit > 0 && s.now().Sub(s.current.Asked) >= s.timeLimit
}

func (s *Session) close(correct bool) Outcome {
	q := s.current
	s.current = nil

	s.stats.TotalAttempts++
	if correct {
		s.stats.Streak++
		s.stats.BestStreak = max(s.stats.BestStreak, s.stats.Streak)
		s.stats.TotalCorrect++
	} else {
		s.stats.Streak = 0
	}

	return Outcome{
		Correct: correct,
		Answer:  q.Number,
		Steps:   slices.Clone(q.Result.Steps),
	}
}
