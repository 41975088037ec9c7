// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/daehan/examly/ent/answerevent"
	"github.com/daehan/examly/ent/attemptevent"
	"github.com/daehan/examly/ent/lecture"
	"github.com/daehan/examly/ent/llmrequestevent"
	"github.com/daehan/examly/ent/question"
	"github.com/daehan/examly/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescExamID is the schema descriptor for exam_id field.
	answereventDescExamID := answereventFields[1].Descriptor()
	// answerevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	answerevent.ExamIDValidator = answereventDescExamID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[3].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescCategoryLarge is the schema descriptor for category_large field.
	answereventDescCategoryLarge := answereventFields[6].Descriptor()
	// answerevent.DefaultCategoryLarge holds the default value on creation for the category_large field.
	answerevent.DefaultCategoryLarge = answereventDescCategoryLarge.Default.(string)
	// answereventDescSubmitted is the schema descriptor for submitted field.
	answereventDescSubmitted := answereventFields[7].Descriptor()
	// answerevent.DefaultSubmitted holds the default value on creation for the submitted field.
	answerevent.DefaultSubmitted = answereventDescSubmitted.Default.(string)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescExamID is the schema descriptor for exam_id field.
	attempteventDescExamID := attempteventFields[1].Descriptor()
	// attemptevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	attemptevent.ExamIDValidator = attempteventDescExamID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lectureFields := schema.Lecture{}.Fields()
	_ = lectureFields
	// lectureDescLectureID is the schema descriptor for lecture_id field.
	lectureDescLectureID := lectureFields[0].Descriptor()
	// lecture.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	lecture.LectureIDValidator = lectureDescLectureID.Validators[0].(func(string) error)
	// lectureDescTitle is the schema descriptor for title field.
	lectureDescTitle := lectureFields[1].Descriptor()
	// lecture.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lecture.TitleValidator = lectureDescTitle.Validators[0].(func(string) error)
	// lectureDescURL is the schema descriptor for url field.
	lectureDescURL := lectureFields[2].Descriptor()
	// lecture.DefaultURL holds the default value on creation for the url field.
	lecture.DefaultURL = lectureDescURL.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[2].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[3].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[4].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(int) error)
	// questionDescCategoryLarge is the schema descriptor for category_large field.
	questionDescCategoryLarge := questionFields[6].Descriptor()
	// question.DefaultCategoryLarge holds the default value on creation for the category_large field.
	question.DefaultCategoryLarge = questionDescCategoryLarge.Default.(string)
	// questionDescCategoryMedium is the schema descriptor for category_medium field.
	questionDescCategoryMedium := questionFields[7].Descriptor()
	// question.DefaultCategoryMedium holds the default value on creation for the category_medium field.
	question.DefaultCategoryMedium = questionDescCategoryMedium.Default.(string)
	// questionDescCategorySmall is the schema descriptor for category_small field.
	questionDescCategorySmall := questionFields[8].Descriptor()
	// question.DefaultCategorySmall holds the default value on creation for the category_small field.
	question.DefaultCategorySmall = questionDescCategorySmall.Default.(string)
	// questionDescScore is the schema descriptor for score field.
	questionDescScore := questionFields[9].Descriptor()
	// question.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	question.ScoreValidator = questionDescScore.Validators[0].(func(int) error)
}
