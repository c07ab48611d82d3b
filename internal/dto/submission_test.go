package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

func sampleSubmissionRow() models.SubmissionRow {
	score := 87.5
	feedback := "solid work"
	aiFeedback := "consider revisiting question 3"
	submitted := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	graded := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return models.SubmissionRow{
		IDSubmission:  "sub-1",
		IDQuiz:        "quiz-1",
		IDStudent:     "student-1",
		Status:        string(models.SubmissionGraded),
		Score:         &score,
		AttemptNumber: 2,
		StartedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		SubmittedAt:   &submitted,
		GradedAt:      &graded,
		Feedback:      &feedback,
		AIFeedback:    &aiFeedback,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionHeavyIsSupersetOfLight(t *testing.T) {
	row := sampleSubmissionRow()

	light := SubmissionFromRow(row, true)
	heavy := SubmissionFromRow(row, false)

	// Shared fields carry identical values in both shapes.
	assert.Equal(t, light.IDSubmission, heavy.IDSubmission)
	assert.Equal(t, light.IDQuiz, heavy.IDQuiz)
	assert.Equal(t, light.IDStudent, heavy.IDStudent)
	assert.Equal(t, light.Status, heavy.Status)
	assert.Equal(t, light.Score, heavy.Score)
	assert.Equal(t, light.AttemptNumber, heavy.AttemptNumber)
	assert.Equal(t, light.GradedAt, heavy.GradedAt)

	// Heavy-only fields are present only in the heavy shape.
	assert.Nil(t, light.Feedback)
	assert.Nil(t, light.AIFeedback)
	require.NotNil(t, heavy.Feedback)
	require.NotNil(t, heavy.AIFeedback)
	assert.Equal(t, *row.Feedback, *heavy.Feedback)
	assert.Equal(t, *row.AIFeedback, *heavy.AIFeedback)
}

func TestSubmissionGradedAtRenaming(t *testing.T) {
	row := sampleSubmissionRow()
	out := SubmissionFromRow(row, true)

	// The store column is spelled greated_at; the DTO exposes gradedAt.
	require.NotNil(t, out.GradedAt)
	assert.Equal(t, *row.GradedAt, *out.GradedAt)
}

func TestCreateSubmissionInputDefaults(t *testing.T) {
	in := CreateSubmissionInput{
		IDQuiz:        "quiz-1",
		IDStudent:     "student-1",
		AttemptNumber: 1,
	}

	fields := in.StoreFields()
	assert.Equal(t, "quiz-1", fields["id_quiz"])
	assert.Equal(t, "student-1", fields["id_student"])
	assert.Equal(t, string(models.SubmissionInProgress), fields["status"])
	assert.Equal(t, 1, fields["attempt_number"])
	assert.NotNil(t, fields["started_at"])
}

func TestCreateSubmissionInputExplicitValues(t *testing.T) {
	started := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	in := CreateSubmissionInput{
		IDQuiz:        "quiz-1",
		IDStudent:     "student-1",
		Status:        string(models.SubmissionSubmitted),
		AttemptNumber: 3,
		StartedAt:     &started,
	}

	fields := in.StoreFields()
	assert.Equal(t, string(models.SubmissionSubmitted), fields["status"])
	assert.Equal(t, started, fields["started_at"])
}

func TestUpdateSubmissionInputPartialFields(t *testing.T) {
	score := 91.0
	in := UpdateSubmissionInput{Score: &score}

	fields := in.StoreFields()
	require.Len(t, fields, 1)
	assert.Equal(t, score, fields["score"])
}

func TestUpdateSubmissionInputGradedAtColumn(t *testing.T) {
	graded := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	in := UpdateSubmissionInput{GradedAt: &graded}

	fields := in.StoreFields()
	require.Len(t, fields, 1)
	// Writes land on the misspelled live-schema column.
	assert.Equal(t, graded, fields["greated_at"])
	_, hasCorrectSpelling := fields["graded_at"]
	assert.False(t, hasCorrectSpelling)
}

func TestUpdateSubmissionInputEmpty(t *testing.T) {
	fields := UpdateSubmissionInput{}.StoreFields()
	assert.Empty(t, fields)
}
