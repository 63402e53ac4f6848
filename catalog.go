package study

import "time"

// Course material is organised as classes, subjects, topics and lectures.
// A user sees only the classes they are a member of.

// Class is a course the user belongs to.
type Class struct {
	ID           string
	Name         string
	Description  string
	Code         string
	Role         string
	SubjectCount int
	CreatedAt    time.Time
}

// Subject groups the topics of a class.
type Subject struct {
	ID          string
	ClassID     string
	Name        string
	Description string
	TopicCount  int
}

// Topic groups the lectures of a subject.
type Topic struct {
	ID           string
	SubjectID    string
	Name         string
	Description  string
	LectureCount int
}

// Membership is the user's role in one class.
type Membership struct {
	ClassID   string
	ClassName string
	ClassCode string
	Role      string
}

// Account describes the session the backend sees.
type Account struct {
	Authenticated bool
	UserID        string
	Classes       []Membership
}
