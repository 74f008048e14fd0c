package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/pkg/quiz"
)

func (a *app) quizCmd() *cobra.Command {
	var (
		difficulty string
		rounds     int
		timeLimit  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Practice reading ancient numerals",
		Long: `Show numbers in random systems and score decimal guesses. Type "?" to
reveal the answer or "q" to stop. Difficulty and time limit default to the
quiz section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("difficulty") {
				difficulty = a.cfg.Quiz.Difficulty
			}
			if !cmd.Flags().Changed("time-limit") {
				timeLimit = a.cfg.Quiz.TimeLimit
			}
			session, err := quiz.New(quiz.Difficulty(difficulty), quiz.WithTimeLimit(timeLimit))
			if err != nil {
				return err
			}
			a.logger.Debug("quiz started", "session", session.ID, "difficulty", difficulty)
			return a.playQuiz(session, rounds)
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "easy, medium or hard")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 10, "number of questions, 0 for no limit")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "time allowed per question, 0 for no limit")
	return cmd
}

func (a *app) playQuiz(session *quiz.Session, rounds int) error {
	level, _ := quiz.Levels(session.Difficulty)
	a.out.Title(fmt.Sprintf("Numeral quiz · %s · %s", level.Label, level.Range))

	in := bufio.NewScanner(a.stdin)
	for round := 1; rounds == 0 || round <= rounds; round++ {
		q := session.Next()
		a.out.Plain("")
		a.out.Plain("%d. What number is this, in %s?", round, q.Name)
		a.out.Glyphs(q.Display)

		outcome, quit, err := a.ask(in, session)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		a.printOutcome(outcome, session.Stats())
	}

	stats := session.Stats()
	a.out.Plain("")
	a.out.Field("correct", fmt.Sprintf("%d of %d", stats.TotalCorrect, stats.TotalAttempts))
	a.out.Field("best streak", fmt.Sprint(stats.BestStreak))
	return nil
}

// ask reads guesses until one scores. It reports quit on "q" or end of input.
func (a *app) ask(in *bufio.Scanner, session *quiz.Session) (quiz.Outcome, bool, error) {
	for {
		if left := session.Remaining(); left > 0 {
			fmt.Fprintf(a.stdout, "(%s left) > ", left.Round(time.Second))
		} else {
			fmt.Fprint(a.stdout, "> ")
		}
		if !in.Scan() {
			return quiz.Outcome{}, true, in.Err()
		}

		switch guess := strings.TrimSpace(in.Text()); guess {
		case "q", "quit":
			return quiz.Outcome{}, true, nil
		case "?":
			out, err := session.Reveal()
			return out, false, err
		default:
			out, err := session.Answer(guess)
			if errors.Is(err, quiz.ErrEmptyGuess) {
				continue
			}
			return out, false, err
		}
	}
}

func (a *app) printOutcome(out quiz.Outcome, stats quiz.Stats) {
	switch {
	case out.Correct:
		a.out.Success(fmt.Sprintf("Correct! Streak %d", stats.Streak))
	case out.TimedOut:
		a.out.Warning(fmt.Sprintf("Time's up. It was %d", out.Answer))
	default:
		a.out.Error(fmt.Sprintf("It was %d", out.Answer))
	}
	if !out.Correct {
		a.printSteps(out.Steps)
	}
}
