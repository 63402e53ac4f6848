package study

import "context"

// Backend is the lecture API the assistant reads from. Cancellation flows
// through the context.
type Backend interface {
	Me(ctx context.Context) (Account, error)
	Classes(ctx context.Context) ([]Class, error)
	Subjects(ctx context.Context, classID string) ([]Subject, error)
	Topics(ctx context.Context, subjectID string) ([]Topic, error)
	TopicLectures(ctx context.Context, topicID string) ([]LectureSummary, error)
	Lectures(ctx context.Context) ([]LectureSummary, error)
	Lecture(ctx context.Context, id string) (Lecture, error)
	Ask(ctx context.Context, req AskRequest) (Answer, error)
}
