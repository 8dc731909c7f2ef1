package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-parking/registration-api/internal/api/handler/v1/request"
)

func validRequest() request.SubmitRegistrationRequest {
	return request.SubmitRegistrationRequest{
		FullName:   "Jane Smith",
		StudentID:  "654321",
		Email:      "jane@example.edu",
		Phone:      "555-0100",
		GradeLevel: "junior",
	}
}

func TestSubmitRegistrationRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestSubmitRegistrationRequest_StudentID(t *testing.T) {
	tests := []struct {
		studentID string
		wantErr   bool
	}{
		{"123456", false},
		{"1234567", false},
		{"12345678", false},
		{"12345", true},
		{"123456789", true},
		{"12a456", true},
		{"", true},
	}

	for _, tt := range tests {
		req := validRequest()
		req.StudentID = tt.studentID

		err := req.Validate()
		if tt.wantErr {
			assert.Error(t, err, "student id %q should be rejected", tt.studentID)
		} else {
			assert.NoError(t, err, "student id %q should be accepted", tt.studentID)
		}
	}
}

func TestSubmitRegistrationRequest_Email(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"a@b.co", false},
		{"jane.smith@school.edu", false},
		{"a@b", true},
		{"a.b.com", true},
		{"", true},
	}

	for _, tt := range tests {
		req := validRequest()
		req.Email = tt.email

		err := req.Validate()
		if tt.wantErr {
			assert.Error(t, err, "email %q should be rejected", tt.email)
		} else {
			assert.NoError(t, err, "email %q should be accepted", tt.email)
		}
	}
}

func TestSubmitRegistrationRequest_GradeLevel(t *testing.T) {
	req := validRequest()
	req.GradeLevel = "postdoc"
	assert.Error(t, req.Validate())

	for _, grade := range []string{"freshman", "sophomore", "junior", "senior"} {
		req = validRequest()
		req.GradeLevel = grade
		assert.NoError(t, req.Validate())
	}
}

func TestSubmitRegistrationRequest_PartnerSchedule(t *testing.T) {
	req := validRequest()
	req.PartnerSchedule = "Tuesday/Thursday"
	assert.NoError(t, req.Validate())

	req.PartnerSchedule = "Weekends"
	assert.Error(t, req.Validate())
}
