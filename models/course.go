package models

import (
	"math"
	"time"
)

type Course struct {
	Id          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Level       string    `db:"level" json:"level"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	Lessons     []*Lesson `db:"-" json:"lessons,omitempty"`
}

type Lesson struct {
	Id         int64  `db:"id" json:"id"`
	CourseId   int64  `db:"course_id" json:"courseId"`
	Title      string `db:"title" json:"title"`
	Content    string `db:"content" json:"content,omitempty"`
	Position   int    `db:"position" json:"position"`
	XPReward   int    `db:"xp_reward" json:"xpReward"`
	DurationMn int    `db:"duration_minutes" json:"durationMinutes"`
}

type CourseQuery struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Offset is the index of the first course on the page. It saturates at
// math.MaxInt instead of overflowing.
func (q CourseQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

type CoursePage struct {
	Courses []*Course `json:"courses"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int       `json:"total"`
}

type Enrollment struct {
	UserId     int64     `db:"user_id" json:"userId"`
	CourseId   int64     `db:"course_id" json:"courseId"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolledAt"`
}
