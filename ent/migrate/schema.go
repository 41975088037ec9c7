// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "attempt_sequence", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "category_large", Type: field.TypeString, Default: ""},
		{Name: "submitted", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_attempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_user_id_difficulty",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[8]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "user_score", Type: field.TypeInt},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "pass_rate", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "wrong_count", Type: field.TypeInt},
		{Name: "duration_minutes", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_exam_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LecturesColumns holds the columns for the "lectures" table.
	LecturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lecture_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Default: ""},
		{Name: "tags", Type: field.TypeJSON},
	}
	// LecturesTable holds the schema information for the "lectures" table.
	LecturesTable = &schema.Table{
		Name:       "lectures",
		Columns:    LecturesColumns,
		PrimaryKey: []*schema.Column{LecturesColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "question_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "category_large", Type: field.TypeString, Default: ""},
		{Name: "category_medium", Type: field.TypeString, Default: ""},
		{Name: "category_small", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[5]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
			{
				Name:    "question_category_large_category_medium_category_small",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[7], QuestionsColumns[8], QuestionsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AttemptEventsTable,
		LlmRequestEventsTable,
		LecturesTable,
		QuestionsTable,
	}
)

func init() {
}
