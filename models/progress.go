package models

import "time"

const (
	XPPerLevel         = 100
	XPPerCorrectAnswer = 10
)

type Progress struct {
	UserId           int64      `db:"user_id" json:"userId"`
	XP               int        `db:"xp" json:"xp"`
	StreakDays       int        `db:"streak_days" json:"streakDays"`
	LastActivityAt   *time.Time `db:"last_activity_at" json:"lastActivityAt,omitempty"`
	Level            int        `db:"-" json:"level"`
	CompletedLessons int        `db:"-" json:"completedLessons"`
	Enrollments      int        `db:"-" json:"enrollments"`
}

func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// NextStreak returns the streak after activity at now. Activity on the same calendar
// day keeps the streak, activity on the following day extends it, anything later restarts it.
func NextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	lastDay := truncateToDay(*last)
	today := truncateToDay(now)
	switch {
	case today.Equal(lastDay):
		if current == 0 {
			return 1
		}
		return current
	case today.Equal(lastDay.AddDate(0, 0, 1)):
		return current + 1
	default:
		return 1
	}
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type LessonCompletion struct {
	Lesson      *Lesson   `json:"lesson"`
	XPAwarded   int       `json:"xpAwarded"`
	Progress    *Progress `json:"progress"`
	AlreadyDone bool      `json:"alreadyCompleted"`
}
