package corpus

import (
	"testing"

	"github.com/poiesic/collegewala/core"
	"github.com/stretchr/testify/assert"
)

func TestFormatProgramAnswer(t *testing.T) {
	program := core.Program{
		Name:                    "B.Tech CSE",
		Duration:                "4 years",
		Seats:                   "120",
		Fees:                    "INR 1,85,000",
		Eligibility:             "10+2 with PCM",
		AveragePackage:          "INR 6.8 LPA",
		HighestPackage:          "INR 42 LPA",
		PlacementRate:           "94%",
		CoreSubjects:            []string{"Data Structures", "Algorithms"},
		RecruiterCompanies:      []string{"Infosys", "TCS"},
		InternshipOpportunities: []string{"Summer internship"},
		Facilities:              []string{"HPC lab"},
		Description:             "Four-year undergraduate program.",
	}

	want := "B.Tech CSE\n\n" +
		"Duration: 4 years\n" +
		"Seats: 120\n" +
		"Fees: INR 1,85,000/year\n\n" +
		"Eligibility: 10+2 with PCM\n\n" +
		"Average Package: INR 6.8 LPA\n" +
		"Highest Package: INR 42 LPA\n" +
		"Placement Rate: 94%\n\n" +
		"Core Subjects: Data Structures, Algorithms\n\n" +
		"Recruiter Companies: Infosys, TCS\n\n" +
		"Internship Opportunities: Summer internship\n\n" +
		"Facilities: HPC lab\n\n" +
		"Description: Four-year undergraduate program."

	assert.Equal(t, want, FormatProgramAnswer(program))
}

func TestFormatInternshipAnswer(t *testing.T) {
	internship := core.Internship{
		Name:               "Summer Technology Internship",
		Duration:           "8 weeks",
		Timeline:           "May to July",
		Stipend:            "INR 15,000 per month",
		Eligibility:        "Third-year students",
		Domains:            []string{"Software Development", "Cloud"},
		PartnerCompanies:   []string{"Zoho"},
		Benefits:           []string{"Industry mentor"},
		ApplicationProcess: "Apply through the placement cell",
		Description:        "Company-hosted internship.",
	}

	want := "Summer Technology Internship\n\n" +
		"Duration: 8 weeks\n" +
		"Timeline: May to July\n" +
		"Stipend: INR 15,000 per month\n\n" +
		"Eligibility: Third-year students\n\n" +
		"Domains: Software Development, Cloud\n\n" +
		"Partner Companies: Zoho\n\n" +
		"Benefits: Industry mentor\n\n" +
		"Application Process: Apply through the placement cell\n\n" +
		"Description: Company-hosted internship."

	assert.Equal(t, want, FormatInternshipAnswer(internship))
}

func TestFormatHandlesMissingFields(t *testing.T) {
	answer := FormatProgramAnswer(core.Program{Name: "Bare"})
	assert.Contains(t, answer, "Duration: \n")
	assert.Contains(t, answer, "Core Subjects: \n")
}
