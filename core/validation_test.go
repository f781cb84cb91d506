package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTask() *Task {
	return &Task{
		ID:       "task-1",
		Question: "What color is the sky?",
		Context:  "The sky is blue during the day.",
		Choices:  []string{"Blue", "Green", "Red", "Yellow"},
	}
}

func TestValidateTask(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateTask(validTask()))
	})

	t.Run("nil task", func(t *testing.T) {
		err := ValidateTask(nil)
		assert.ErrorIs(t, err, ErrInvalidTask)
	})

	t.Run("empty question", func(t *testing.T) {
		task := validTask()
		task.Question = ""
		err := ValidateTask(task)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})

	t.Run("empty context", func(t *testing.T) {
		task := validTask()
		task.Context = ""
		err := ValidateTask(task)
		assert.ErrorIs(t, err, ErrEmptyContext)
	})

	t.Run("wrong choice count", func(t *testing.T) {
		task := validTask()
		task.Choices = task.Choices[:3]
		err := ValidateTask(task)
		assert.ErrorIs(t, err, ErrChoiceCount)
	})
}

func TestValidateSessionRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		record := &SessionRecord{
			Id:             1,
			Question:       "q",
			DocumentLength: 10,
			Context:        "accumulated context",
		}
		assert.NoError(t, ValidateSessionRecord(record))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSessionRecord(nil), ErrInvalidSessionRecord)
	})

	t.Run("empty context", func(t *testing.T) {
		record := &SessionRecord{Id: 1, Question: "q", DocumentLength: 10}
		assert.ErrorIs(t, ValidateSessionRecord(record), ErrEmptySessionContext)
	})

	t.Run("non-positive document length", func(t *testing.T) {
		record := &SessionRecord{Id: 1, Question: "q", Context: "c"}
		assert.ErrorIs(t, ValidateSessionRecord(record), ErrInvalidSessionRecord)
	})
}
