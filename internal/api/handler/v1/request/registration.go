package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/campus-parking/registration-api/internal/domain"
)

const (
	studentIDRegexPattern = `^\d{6,8}$`
	emailRegexPattern     = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

var (
	studentIDExp = regexp.MustCompile(studentIDRegexPattern)
	emailExp     = regexp.MustCompile(emailRegexPattern)
)

// SubmitRegistrationRequest carries the registration form. Spot type,
// lot and spot id come from the persisted selection, never from the
// client. Partner fields apply to shared selections only; the service
// rejects shared submissions missing them.
type SubmitRegistrationRequest struct {
	FullName        string `json:"fullName"`
	StudentID       string `json:"studentId"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	GradeLevel      string `json:"gradeLevel"`
	PartnerName     string `json:"partnerName,omitempty"`
	PartnerSchedule string `json:"partnerSchedule,omitempty"`
}

// Validate aggregates every violated rule; ozzo renders them as one
// ordered error list with a fixed message per rule.
func (req *SubmitRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName,
			validation.Required.Error("Full name is required")),
		validation.Field(&req.StudentID,
			validation.Required.Error("Student ID is required"),
			validation.Match(studentIDExp).Error("Student ID must be 6 to 8 digits")),
		validation.Field(&req.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailExp).Error("Please enter a valid email address")),
		validation.Field(&req.Phone,
			validation.Required.Error("Phone number is required")),
		validation.Field(&req.GradeLevel,
			validation.Required.Error("Grade level is required"),
			validation.In(domain.GradeLevels()...).Error("Please select a valid grade level")),
		validation.Field(&req.PartnerSchedule,
			validation.In(
				domain.HalfA.ScheduleLabel(),
				domain.HalfB.ScheduleLabel(),
			).Error("Day schedule must be one of the offered schedules")),
	)
}
