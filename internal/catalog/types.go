// Package catalog holds the read-only demo records the dashboard presents.
package catalog

// Deal is the summary record listed on the deals page.
type Deal struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	CompanyID    string   `yaml:"company_id"`
	Stage        string   `yaml:"stage"`
	Owner        string   `yaml:"owner"`
	Amount       int      `yaml:"amount"`
	CloseDate    string   `yaml:"close_date"`
	Health       string   `yaml:"health"`
	Category     string   `yaml:"category"`
	LastActivity string   `yaml:"last_activity"`
	Tags         []string `yaml:"tags"`
}

// DealOverview is the narrative section of a deal detail.
type DealOverview struct {
	Summary         string   `yaml:"summary"`
	PositiveSignals []string `yaml:"positive_signals"` // signal ids
	RiskFactors     []string `yaml:"risk_factors"`     // signal ids
	NextSteps       []string `yaml:"next_steps"`
}

// Stakeholder links a contact to a deal with the role they play in it.
type Stakeholder struct {
	ContactID string `yaml:"contact_id"`
	Role      string `yaml:"role"`
	Sentiment string `yaml:"sentiment"`
}

// TimelineEvent is one dated entry in a deal's history.
type TimelineEvent struct {
	Date  string `yaml:"date"`
	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`
	Notes string `yaml:"notes"`
}

// DealDetail is the full record behind the deal detail view.
type DealDetail struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	CompanyID    string          `yaml:"company_id"`
	Stage        string          `yaml:"stage"`
	Owner        string          `yaml:"owner"`
	Amount       int             `yaml:"amount"`
	CloseDate    string          `yaml:"close_date"`
	Health       string          `yaml:"health"`
	Category     string          `yaml:"category"`
	Tags         []string        `yaml:"tags"`
	Overview     DealOverview    `yaml:"overview"`
	Stakeholders []Stakeholder   `yaml:"stakeholders"`
	Timeline     []TimelineEvent `yaml:"timeline"`
	MeetingIDs   []string        `yaml:"meeting_ids"`

	// Synthesized is true when the record was built from the summary alone.
	Synthesized bool `yaml:"-"`
}

// Company is an account the sales team works.
type Company struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Industry    string   `yaml:"industry"`
	Size        string   `yaml:"size"`
	Tier        string   `yaml:"tier"`
	Website     string   `yaml:"website"`
	HQ          string   `yaml:"hq"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Contact is a person at a company.
type Contact struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	CompanyID string   `yaml:"company_id"`
	Email     string   `yaml:"email"`
	Phone     string   `yaml:"phone"`
	PersonaID string   `yaml:"persona_id"`
	Role      string   `yaml:"role"`
	Tags      []string `yaml:"tags"`
}

// MeetingRecap is the post-call write-up of a meeting.
type MeetingRecap struct {
	Summary   string   `yaml:"summary"`
	NextSteps []string `yaml:"next_steps"`
	SignalIDs []string `yaml:"signal_ids"`
}

// Meeting is a scheduled or completed customer call.
type Meeting struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	DealID      string       `yaml:"deal_id"`
	CompanyID   string       `yaml:"company_id"`
	Date        string       `yaml:"date"`
	Time        string       `yaml:"time"`
	Kind        string       `yaml:"kind"`
	Status      string       `yaml:"status"` // upcoming | past
	AttendeeIDs []string     `yaml:"attendee_ids"`
	Agenda      []string     `yaml:"agenda"`
	Recap       MeetingRecap `yaml:"recap"`
	Tags        []string     `yaml:"tags"`
}

// Past reports whether the meeting has already happened.
func (m Meeting) Past() bool {
	return m.Status == "past"
}

// Persona is a buyer archetype from the playbook.
type Persona struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Department   string   `yaml:"department"`
	Seniority    string   `yaml:"seniority"`
	Category     string   `yaml:"category"`
	Goals        []string `yaml:"goals"`
	Pains        []string `yaml:"pains"`
	ObjectionIDs []string `yaml:"objection_ids"`
	Tags         []string `yaml:"tags"`
}

// Objection is a common pushback with the recommended response.
type Objection struct {
	ID            string   `yaml:"id"`
	Statement     string   `yaml:"statement"`
	Category      string   `yaml:"category"`
	Response      string   `yaml:"response"`
	Effectiveness string   `yaml:"effectiveness"`
	PersonaIDs    []string `yaml:"persona_ids"`
	Tags          []string `yaml:"tags"`
}

// FAQ is a frequently asked question with its answer.
type FAQ struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// DiscoveryQuestion is a question to ask during discovery calls.
type DiscoveryQuestion struct {
	ID         string   `yaml:"id"`
	Question   string   `yaml:"question"`
	Category   string   `yaml:"category"`
	Purpose    string   `yaml:"purpose"`
	Stage      string   `yaml:"stage"`
	PersonaIDs []string `yaml:"persona_ids"`
	Tags       []string `yaml:"tags"`
}

// Signal is a buying or risk indicator observed on deals.
type Signal struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Kind        string `yaml:"kind"` // positive | risk
	Category    string `yaml:"category"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description"`
}

// CustomerProfile describes an ideal customer segment.
type CustomerProfile struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Industry    string   `yaml:"industry"`
	Size        string   `yaml:"size"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Criteria    []string `yaml:"criteria"`
	Tags        []string `yaml:"tags"`
}

// Pillar is one messaging pillar of the positioning statement.
type Pillar struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ProofPoints []string `yaml:"proof_points"`
}

// Positioning is the product positioning shown in the playbook.
type Positioning struct {
	Statement       string   `yaml:"statement"`
	Audience        string   `yaml:"audience"`
	Pillars         []Pillar `yaml:"pillars"`
	Differentiators []string `yaml:"differentiators"`
}
