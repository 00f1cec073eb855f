package models

import "time"

type InterviewState string

const (
	StateCreated        InterviewState = "created"
	StateResumeUploaded InterviewState = "resume_uploaded"
	StateProcessing     InterviewState = "processing"
	StateQuestionsReady InterviewState = "questions_ready"
	StateFeedbackReady  InterviewState = "feedback_ready"
)

// Question is one generated question together with the answer the
// candidate gave and the answer the generator expected.
type Question struct {
	Question       string `bson:"question" json:"question"`
	UserAnswer     string `bson:"userAnswer" json:"userAnswer"`
	ExpectedAnswer string `bson:"expectedAnswer" json:"expectedAnswer"`
}

// Interview is a single attempt at a role. A user may hold any number of
// attempts for the same role; CreatedAt orders them.
//
// The id is the canonical string form of a v4 UUID. It is stored as a
// plain BSON string so the external workers can address the element with
// an "interviews.id" filter without caring about our codec.
type Interview struct {
	ID              string     `bson:"id" json:"id"`
	Role            string     `bson:"role" json:"role"`
	ResumeData      []byte     `bson:"resumeData" json:"-"`
	ResumeName      string     `bson:"resumeName" json:"resume_name"`
	ResumeProcessed bool       `bson:"isResumeProcessed" json:"is_resume_processed"`
	CreatedAt       time.Time  `bson:"time" json:"time"`
	Questions       []Question `bson:"questions" json:"questions"`
	Feedback        *string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Rating          *float64   `bson:"rating,omitempty" json:"rating,omitempty"`
}

// State derives the lifecycle state from the persisted fields. There is no
// stored status column to drift out of sync: readers recompute this on
// every access. Evaluated in order, first match wins.
func (i *Interview) State() InterviewState {
	switch {
	case len(i.ResumeData) == 0:
		return StateCreated
	case !i.ResumeProcessed:
		return StateResumeUploaded
	case len(i.Questions) == 0:
		// The worker claimed the job but has not written results yet.
		// A worker that finished with zero questions looks identical,
		// so empty questions always reads as still-processing.
		return StateProcessing
	case i.Feedback == nil:
		return StateQuestionsReady
	default:
		return StateFeedbackReady
	}
}
