package models

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNum string `json:"phone_num"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type QuestionsData struct {
	Role      string     `json:"role"`
	Questions []Question `json:"questions"`
}

type FeedbackData struct {
	Role     string  `json:"role"`
	Feedback string  `json:"feedback"`
	Rating   float64 `json:"rating"`
}

type AttemptData struct {
	Role             string `json:"role"`
	ID               string `json:"id"`
	ResumeName       string `json:"resume_name"`
	Time             string `json:"time"`
	ResumeProcessed  bool   `json:"is_resume_processed"`
	QuestionCount    int    `json:"question_count"`
	FeedbackReceived bool   `json:"feedback_received"`
}
