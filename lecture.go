package study

import "time"

// LectureSummary is the listing view of a lecture.
type LectureSummary struct {
	ID              string
	Title           string
	RecordingDate   string
	DurationSeconds float64
	CreatedAt       time.Time
}

// Lecture is a transcribed lecture.
type Lecture struct {
	ID                string
	Title             string
	Transcript        string
	CleanedTranscript string
	RecordingDate     string
	DurationSeconds   float64
	CreatedAt         time.Time
}

// Text returns the cleaned transcript, falling back to the raw one.
func (l Lecture) Text() string {
	if l.CleanedTranscript != "" {
		return l.CleanedTranscript
	}
	return l.Transcript
}

// Credentials is an authenticated backend session.
type Credentials struct {
	UserID       string
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
}
