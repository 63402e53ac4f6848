package study_test

import (
	"testing"

	"github.com/fwojciec/study"
	"github.com/stretchr/testify/assert"
)

func TestAskRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := study.AskRequest{
		Scope:    study.ScopeLecture,
		ID:       "lec-1",
		Question: "What is a monad?",
	}

	t.Run("minimal request is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		modify func(r *study.AskRequest)
	}{
		{"unknown scope", func(r *study.AskRequest) { r.Scope = "course" }},
		{"empty scope", func(r *study.AskRequest) { r.Scope = "" }},
		{"blank id", func(r *study.AskRequest) { r.ID = "  " }},
		{"blank question", func(r *study.AskRequest) { r.Question = "\n" }},
		{"unknown mode", func(r *study.AskRequest) { r.Mode = "essay" }},
		{"practice on subject", func(r *study.AskRequest) {
			r.Scope = study.ScopeSubject
			r.Mode = study.ModePractice
		}},
		{"history with unknown role", func(r *study.AskRequest) {
			r.History = []study.ChatMessage{{Role: "system", Content: "x"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := valid
			tt.modify(&r)
			assert.ErrorIs(t, r.Validate(), study.ErrValidation)
		})
	}

	t.Run("exam mode on topic is valid", func(t *testing.T) {
		t.Parallel()
		r := valid
		r.Scope = study.ScopeTopic
		r.Mode = study.ModeExam
		assert.NoError(t, r.Validate())
	})

	t.Run("tutor mode on subject is valid", func(t *testing.T) {
		t.Parallel()
		r := valid
		r.Scope = study.ScopeSubject
		r.Mode = study.ModeTutor
		assert.NoError(t, r.Validate())
	})
}
