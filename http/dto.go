package http

type loginResponse struct {
	Success      bool   `json:"success"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type lectureDTO struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Transcript        string  `json:"transcript"`
	CleanedTranscript string  `json:"cleaned_transcript"`
	RecordingDate     string  `json:"recording_date"`
	DurationSeconds   float64 `json:"audio_duration_seconds"`
	CreatedAt         string  `json:"created_at"`
}

type answerResponse struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
	Response string `json:"response"`
}

type meResponse struct {
	Authenticated bool            `json:"authenticated"`
	UserID        string          `json:"user_id"`
	Classes       []membershipDTO `json:"classes"`
}

type membershipDTO struct {
	ClassID string `json:"class_id"`
	Role    string `json:"role"`
	Class   struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		ClassCode string `json:"class_code"`
	} `json:"classes"`
}

type classDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ClassCode    string `json:"class_code"`
	Role         string `json:"role"`
	SubjectCount int    `json:"subject_count"`
	CreatedAt    string `json:"created_at"`
}

type subjectDTO struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TopicCount  int    `json:"topic_count"`
}

type topicDTO struct {
	ID           string `json:"id"`
	SubjectID    string `json:"subject_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	LectureCount int    `json:"lecture_count"`
}
