// Package mock provides test doubles for study interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/study"
)

// Interface compliance check.
var _ study.Backend = (*Backend)(nil)

// Backend is a test double for study.Backend.
// Set the function fields for the methods you need.
type Backend struct {
	MeFn            func(ctx context.Context) (study.Account, error)
	ClassesFn       func(ctx context.Context) ([]study.Class, error)
	SubjectsFn      func(ctx context.Context, classID string) ([]study.Subject, error)
	TopicsFn        func(ctx context.Context, subjectID string) ([]study.Topic, error)
	TopicLecturesFn func(ctx context.Context, topicID string) ([]study.LectureSummary, error)
	LecturesFn      func(ctx context.Context) ([]study.LectureSummary, error)
	LectureFn       func(ctx context.Context, id string) (study.Lecture, error)
	AskFn           func(ctx context.Context, req study.AskRequest) (study.Answer, error)
}

// Me delegates to MeFn.
func (b *Backend) Me(ctx context.Context) (study.Account, error) {
	return b.MeFn(ctx)
}

// Classes delegates to ClassesFn.
func (b *Backend) Classes(ctx context.Context) ([]study.Class, error) {
	return b.ClassesFn(ctx)
}

// Subjects delegates to SubjectsFn.
func (b *Backend) Subjects(ctx context.Context, classID string) ([]study.Subject, error) {
	return b.SubjectsFn(ctx, classID)
}

// Topics delegates to TopicsFn.
func (b *Backend) Topics(ctx context.Context, subjectID string) ([]study.Topic, error) {
	return b.TopicsFn(ctx, subjectID)
}

// TopicLectures delegates to TopicLecturesFn.
func (b *Backend) TopicLectures(ctx context.Context, topicID string) ([]study.LectureSummary, error) {
	return b.TopicLecturesFn(ctx, topicID)
}

// Lectures delegates to LecturesFn.
func (b *Backend) Lectures(ctx context.Context) ([]study.LectureSummary, error) {
	return b.LecturesFn(ctx)
}

// Lecture delegates to LectureFn.
func (b *Backend) Lecture(ctx context.Context, id string) (study.Lecture, error) {
	return b.LectureFn(ctx, id)
}

// Ask delegates to AskFn.
func (b *Backend) Ask(ctx context.Context, req study.AskRequest) (study.Answer, error) {
	return b.AskFn(ctx, req)
}
