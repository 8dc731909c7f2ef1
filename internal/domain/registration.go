package domain

import (
	"fmt"
	"strings"
	"time"
)

type GradeLevel string

const (
	GradeFreshman  GradeLevel = "freshman"
	GradeSophomore GradeLevel = "sophomore"
	GradeJunior    GradeLevel = "junior"
	GradeSenior    GradeLevel = "senior"
)

func GradeLevels() []interface{} {
	return []interface{}{
		string(GradeFreshman),
		string(GradeSophomore),
		string(GradeJunior),
		string(GradeSenior),
	}
}

// Registration is a finalized student parking assignment. Immutable
// after submission except for admin deletion.
type Registration struct {
	ReferenceID     string     `json:"referenceId"`
	FullName        string     `json:"fullName"`
	StudentID       string     `json:"studentId"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	GradeLevel      GradeLevel `json:"gradeLevel"`
	SpotType        SpotType   `json:"spotType"`
	ParkingLot      string     `json:"parkingLot"`
	ParkingSpot     string     `json:"parkingSpot"`
	PartnerName     string     `json:"partnerName,omitempty"`
	PartnerSchedule string     `json:"partnerSchedule,omitempty"`
	Schedule        string     `json:"schedule,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
}

// Summary renders the plain-text confirmation used for copy-to-clipboard
// and the admin table's per-row copy action.
func (r Registration) Summary() string {
	var b strings.Builder

	b.WriteString("PARKING REGISTRATION CONFIRMATION\n")
	fmt.Fprintf(&b, "Reference: %s\n", r.ReferenceID)
	fmt.Fprintf(&b, "Name: %s\n", r.FullName)
	fmt.Fprintf(&b, "Student ID: %s\n", r.StudentID)
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	fmt.Fprintf(&b, "Phone: %s\n", r.Phone)
	fmt.Fprintf(&b, "Grade: %s\n", r.GradeLevel)
	fmt.Fprintf(&b, "Parking Lot: %s\n", r.ParkingLot)
	fmt.Fprintf(&b, "Spot: %s\n", r.ParkingSpot)
	fmt.Fprintf(&b, "Spot Type: %s\n", r.SpotType)
	if r.SpotType == SpotShared {
		fmt.Fprintf(&b, "Partner: %s\n", r.PartnerName)
		fmt.Fprintf(&b, "Your Schedule: %s\n", r.Schedule)
	}
	fmt.Fprintf(&b, "Submitted: %s\n", r.SubmittedAt.Format(time.RFC3339))

	return b.String()
}

// ExportDocument is the admin console's downloadable snapshot.
type ExportDocument struct {
	ExportedAt    time.Time      `json:"exportedAt"`
	Inventory     Inventory      `json:"inventory"`
	Registrations []Registration `json:"registrations"`
	Summary       SpotCounts     `json:"summary"`
}
