package corpus

import (
	"fmt"
	"strings"

	"github.com/poiesic/collegewala/core"
)

// FormatProgramAnswer renders the canonical long-form answer block for a
// program. The layout is fixed; consumers rely on it verbatim.
func FormatProgramAnswer(p core.Program) string {
	return fmt.Sprintf("%s\n\nDuration: %s\nSeats: %s\nFees: %s/year\n\nEligibility: %s\n\n"+
		"Average Package: %s\nHighest Package: %s\nPlacement Rate: %s\n\nCore Subjects: %s\n\n"+
		"Recruiter Companies: %s\n\nInternship Opportunities: %s\n\nFacilities: %s\n\nDescription: %s",
		p.Name, p.Duration, p.Seats, p.Fees, p.Eligibility,
		p.AveragePackage, p.HighestPackage, p.PlacementRate,
		strings.Join(p.CoreSubjects, ", "),
		strings.Join(p.RecruiterCompanies, ", "),
		strings.Join(p.InternshipOpportunities, ", "),
		strings.Join(p.Facilities, ", "),
		p.Description)
}

// FormatInternshipAnswer renders the canonical long-form answer block for an
// internship.
func FormatInternshipAnswer(i core.Internship) string {
	return fmt.Sprintf("%s\n\nDuration: %s\nTimeline: %s\nStipend: %s\n\nEligibility: %s\n\n"+
		"Domains: %s\n\nPartner Companies: %s\n\nBenefits: %s\n\nApplication Process: %s\n\nDescription: %s",
		i.Name, i.Duration, i.Timeline, i.Stipend, i.Eligibility,
		strings.Join(i.Domains, ", "),
		strings.Join(i.PartnerCompanies, ", "),
		strings.Join(i.Benefits, ", "),
		i.ApplicationProcess,
		i.Description)
}
