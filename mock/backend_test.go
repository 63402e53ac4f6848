package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/study"
	"github.com/fwojciec/study/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Lectures(t *testing.T) {
	t.Parallel()
	t.Run("delegates to LecturesFn", func(t *testing.T) {
		t.Parallel()
		want := []study.LectureSummary{{ID: "l-1", Title: "Graphs"}}
		b := mock.Backend{
			LecturesFn: func(ctx context.Context) ([]study.LectureSummary, error) {
				return want, nil
			},
		}
		got, err := b.Lectures(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("panics when LecturesFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Panics(t, func() {
			_, _ = b.Lectures(context.Background())
		})
	})
}

func TestBackend_Lecture(t *testing.T) {
	t.Parallel()
	t.Run("passes id through", func(t *testing.T) {
		t.Parallel()
		var gotID string
		b := mock.Backend{
			LectureFn: func(ctx context.Context, id string) (study.Lecture, error) {
				gotID = id
				return study.Lecture{ID: id}, nil
			},
		}
		got, err := b.Lecture(context.Background(), "l-9")
		require.NoError(t, err)
		assert.Equal(t, "l-9", gotID)
		assert.Equal(t, "l-9", got.ID)
	})
}

func TestBackend_Ask(t *testing.T) {
	t.Parallel()
	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("backend down")
		b := mock.Backend{
			AskFn: func(ctx context.Context, req study.AskRequest) (study.Answer, error) {
				return study.Answer{}, wantErr
			},
		}
		_, err := b.Ask(context.Background(), study.AskRequest{})
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestBackend_Catalog(t *testing.T) {
	t.Parallel()
	t.Run("passes parent ids through", func(t *testing.T) {
		t.Parallel()
		var ids []string
		b := mock.Backend{
			SubjectsFn: func(ctx context.Context, classID string) ([]study.Subject, error) {
				ids = append(ids, classID)
				return []study.Subject{{ID: "s-1", ClassID: classID}}, nil
			},
			TopicsFn: func(ctx context.Context, subjectID string) ([]study.Topic, error) {
				ids = append(ids, subjectID)
				return []study.Topic{{ID: "t-1", SubjectID: subjectID}}, nil
			},
			TopicLecturesFn: func(ctx context.Context, topicID string) ([]study.LectureSummary, error) {
				ids = append(ids, topicID)
				return []study.LectureSummary{{ID: "l-1"}}, nil
			},
		}
		subjects, err := b.Subjects(context.Background(), "c-1")
		require.NoError(t, err)
		topics, err := b.Topics(context.Background(), subjects[0].ID)
		require.NoError(t, err)
		lectures, err := b.TopicLectures(context.Background(), topics[0].ID)
		require.NoError(t, err)

		assert.Equal(t, []string{"c-1", "s-1", "t-1"}, ids)
		assert.Equal(t, "l-1", lectures[0].ID)
	})

	t.Run("panics when MeFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Panics(t, func() {
			_, _ = b.Me(context.Background())
		})
	})
}
