package forms

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	// Same tag gin binding reads
	v.SetTagName("binding")
	err := v.RegisterValidation("userRole", UserRole)
	assert.NoError(t, err)
	return v
}

func intPtr(i int) *int {
	return &i
}

func TestProgressFormRange(t *testing.T) {
	v := newValidator(t)

	testCases := []struct {
		name       string
		percentage *int
		wantErr    bool
	}{
		{"missing", nil, true},
		{"zero is valid", intPtr(0), false},
		{"hundred is valid", intPtr(100), false},
		{"middle is valid", intPtr(40), false},
		{"negative", intPtr(-1), true},
		{"over hundred", intPtr(101), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(ProgressForm{ProgressPercentage: tc.percentage})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourseFormRequiredFields(t *testing.T) {
	v := newValidator(t)

	assert.Error(t, v.Struct(CourseForm{}))
	assert.Error(t, v.Struct(CourseForm{Title: "Intro"}))
	assert.Error(t, v.Struct(CourseForm{Description: "desc"}))
	assert.NoError(t, v.Struct(CourseForm{Title: "Intro", Description: "desc"}))
}

func TestCourseUpdateFormPartial(t *testing.T) {
	v := newValidator(t)

	// Everything optional
	assert.NoError(t, v.Struct(CourseUpdateForm{}))
	assert.NoError(t, v.Struct(CourseUpdateForm{Title: "New title"}))
	// Present fields still constrained
	assert.Error(t, v.Struct(CourseUpdateForm{Title: "ab"}))
}

func TestRegisterFormRole(t *testing.T) {
	v := newValidator(t)

	form := RegisterForm{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	}
	assert.NoError(t, v.Struct(form))

	form.Role = "student"
	assert.NoError(t, v.Struct(form))
	form.Role = "admin"
	assert.NoError(t, v.Struct(form))
	form.Role = "teacher"
	assert.Error(t, v.Struct(form))
}

func TestRegisterFormEmail(t *testing.T) {
	v := newValidator(t)

	form := RegisterForm{
		Name:     "Jane Doe",
		Email:    "not-an-email",
		Password: "secret123",
	}
	assert.Error(t, v.Struct(form))
}
