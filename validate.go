package study

import (
	"fmt"
	"strings"
)

// Validate checks an AskRequest before it is sent.
func (r AskRequest) Validate() error {
	switch r.Scope {
	case ScopeLecture, ScopeTopic, ScopeSubject:
	default:
		return fmt.Errorf("unknown scope %q: %w", r.Scope, ErrValidation)
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%s id is required: %w", r.Scope, ErrValidation)
	}
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question is required: %w", ErrValidation)
	}
	switch r.Mode {
	case "", ModeTutor:
	case ModePractice, ModeExam:
		if r.Scope == ScopeSubject {
			return fmt.Errorf("mode %q not supported for subjects: %w", r.Mode, ErrValidation)
		}
	default:
		return fmt.Errorf("unknown mode %q: %w", r.Mode, ErrValidation)
	}
	for i, m := range r.History {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return fmt.Errorf("history message %d has role %q: %w", i, m.Role, ErrValidation)
		}
	}
	return nil
}
