package models

// Column names of the deal export.
const (
	ColName                   = "Name"
	ColWaveTier               = "Wave/Tier"
	ColBuyerStatus            = "Buyer Status"
	ColIntroductionCall       = "Introduction Call"
	ColManagementPresentation = "Management Presentation"
	ColNDASigned              = "NDA Signed"
	ColPeople                 = "People"
)

// Column names of the notes export.
const (
	ColOpportunity = "Opportunity"
	ColContent     = "Content"
	ColAuthorDate  = "Author Date"
)

// Column names of the persons export.
const (
	ColFullName    = "Full Name"
	ColJobTitles   = "Job Titles"
	ColEmails      = "Emails"
	ColLinkedInURL = "LinkedIn Url"
)

// DealRecord is one row of the deal export.
type DealRecord struct {
	// Row is the 0-based data row index in the source file.
	Row int `json:"row"`
	// Name is the composite "<Dossier> - <Acquirer>" field.
	Name                   string `json:"name"`
	WaveTier               string `json:"wave_tier"`
	Status                 string `json:"status"`
	IntroductionCall       string `json:"introduction_call"`
	ManagementPresentation string `json:"management_presentation"`
	NDASigned              string `json:"nda_signed"`
	// People is the raw "Name <email>; Name <email>" contact list.
	People string `json:"people"`
}

// NoteRecord is one row of the notes export.
type NoteRecord struct {
	Row int `json:"row"`
	// Opportunity is the composite "<Dossier> - <Acquirer>" field.
	Opportunity string `json:"opportunity"`
	Content     string `json:"content"`
	// AuthorDate is an ISO-8601 timestamp, possibly empty.
	AuthorDate string `json:"author_date"`
}

// ContactRecord is one row of the persons export.
type ContactRecord struct {
	Row       int    `json:"row"`
	FullName  string `json:"full_name"`
	JobTitle  string `json:"job_title"`
	// Emails may hold several addresses; lookups use substring containment.
	Emails      string `json:"emails"`
	LinkedInURL string `json:"linkedin_url"`
}
