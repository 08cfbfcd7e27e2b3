// Package types defines the core data model shared across the retrieval engine.
package types

// Profession is a closed facet enumeration used for exact-match corpus filtering.
// External text is mapped through ParseProfession at the boundary; anything that
// does not match a known value becomes ProfessionUnrecognized instead of erroring.
type Profession string

const (
	ProfessionAccountant       Profession = "Accountant"
	ProfessionAccountsPayable  Profession = "Accounts Payable Specialist"
	ProfessionFinancialAnalyst Profession = "Financial Analyst"
	ProfessionBackendDev       Profession = "Backend Developer"
	ProfessionFrontendDev      Profession = "Frontend Developer"
	ProfessionFullStackDev     Profession = "Full Stack Developer"
	ProfessionDevOpsEngineer   Profession = "DevOps Engineer"
	ProfessionDataScientist    Profession = "Data Scientist"
	ProfessionDataEngineer     Profession = "Data Engineer"
	ProfessionManager          Profession = "Manager"
	ProfessionProjectManager   Profession = "Project Manager"
	ProfessionProductManager   Profession = "Product Manager"
	ProfessionQAEngineer       Profession = "QA Engineer"
	ProfessionSysAdmin         Profession = "Systems Administrator"
	ProfessionNetworkEngineer  Profession = "Network Engineer"
	ProfessionSecurityEngineer Profession = "Security Engineer"
	ProfessionCloudArchitect   Profession = "Cloud Architect"
	ProfessionSoftwareArch     Profession = "Software Architect"
	ProfessionBusinessAnalyst  Profession = "Business Analyst"
	ProfessionUXUIDesigner     Profession = "UX/UI Designer"
	ProfessionMarketingManager Profession = "Marketing Manager"
	ProfessionSalesManager     Profession = "Sales Manager"
	ProfessionHRManager        Profession = "HR Manager"
	ProfessionGeneral          Profession = "General"
	ProfessionUnrecognized     Profession = "Unrecognized"
)

var knownProfessions = map[string]Profession{
	string(ProfessionAccountant):       ProfessionAccountant,
	string(ProfessionAccountsPayable):  ProfessionAccountsPayable,
	string(ProfessionFinancialAnalyst): ProfessionFinancialAnalyst,
	string(ProfessionBackendDev):       ProfessionBackendDev,
	string(ProfessionFrontendDev):      ProfessionFrontendDev,
	string(ProfessionFullStackDev):     ProfessionFullStackDev,
	string(ProfessionDevOpsEngineer):   ProfessionDevOpsEngineer,
	string(ProfessionDataScientist):    ProfessionDataScientist,
	string(ProfessionDataEngineer):     ProfessionDataEngineer,
	string(ProfessionManager):          ProfessionManager,
	string(ProfessionProjectManager):   ProfessionProjectManager,
	string(ProfessionProductManager):   ProfessionProductManager,
	string(ProfessionQAEngineer):       ProfessionQAEngineer,
	string(ProfessionSysAdmin):         ProfessionSysAdmin,
	string(ProfessionNetworkEngineer):  ProfessionNetworkEngineer,
	string(ProfessionSecurityEngineer): ProfessionSecurityEngineer,
	string(ProfessionCloudArchitect):   ProfessionCloudArchitect,
	string(ProfessionSoftwareArch):     ProfessionSoftwareArch,
	string(ProfessionBusinessAnalyst):  ProfessionBusinessAnalyst,
	string(ProfessionUXUIDesigner):     ProfessionUXUIDesigner,
	string(ProfessionMarketingManager): ProfessionMarketingManager,
	string(ProfessionSalesManager):     ProfessionSalesManager,
	string(ProfessionHRManager):        ProfessionHRManager,
	string(ProfessionGeneral):          ProfessionGeneral,
}

// ParseProfession maps external text to a Profession.
// Empty input stays empty (meaning "no filter"); unknown input maps to ProfessionUnrecognized.
func ParseProfession(s string) Profession {
	if s == "" {
		return ""
	}
	if p, ok := knownProfessions[s]; ok {
		return p
	}
	return ProfessionUnrecognized
}

// Section identifies which part of a CV a corpus entry belongs to.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionAchievement    Section = "achievement"
	SectionResponsibility Section = "responsibility"
	SectionSkill          Section = "skill"
	SectionEducation      Section = "education"
	SectionCertification  Section = "certification"
	SectionAward          Section = "award"
	SectionProject        Section = "project"
	SectionUnrecognized   Section = "unrecognized"
)

var sectionDisplayNames = map[Section]string{
	SectionSummary:        "Professional Summary",
	SectionExperience:     "Experience Description",
	SectionAchievement:    "Achievement Bullet",
	SectionResponsibility: "Job Responsibility",
	SectionSkill:          "Skill",
	SectionEducation:      "Education",
	SectionCertification:  "Certification",
	SectionAward:          "Award/Recognition",
	SectionProject:        "Project Description",
}

// ParseSection maps external text to a Section.
// Empty input stays empty (no filter); unknown input maps to SectionUnrecognized.
func ParseSection(s string) Section {
	if s == "" {
		return ""
	}
	if _, ok := sectionDisplayNames[Section(s)]; ok {
		return Section(s)
	}
	return SectionUnrecognized
}

// Display returns a human-readable label for the section.
func (s Section) Display() string {
	if name, ok := sectionDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// ContentKind is a coarse classification of an entry's content shape.
// It is consulted only by the re-ranker.
type ContentKind string

const (
	KindBullet         ContentKind = "bullet"
	KindParagraph      ContentKind = "paragraph"
	KindJobDescription ContentKind = "job_description"
	KindAchievement    ContentKind = "achievement"
)
