// Package demo holds the static fixture data the gated demo serves. There is
// no real document analysis behind these findings; they exist so the guarded
// content endpoints have something realistic to protect.
package demo

// Contradiction is a statement/counter-statement finding.
type Contradiction struct {
	Statement      string `json:"statement"`
	ContradictedBy string `json:"contradicted_by"`
	Source         string `json:"source"`
	Confidence     int    `json:"confidence"`
	Impact         string `json:"impact"`
	CitationLink   string `json:"citation_link"`
}

// Misconduct is a reciprocal-misconduct finding.
type Misconduct struct {
	Accusation         string `json:"accusation"`
	ReciprocalEvidence string `json:"reciprocal_evidence"`
	Source             string `json:"source"`
	Impact             string `json:"impact"`
	MessageTrailLink   string `json:"message_trail_link"`
}

// AlienationPattern is a behavioral-pattern finding.
type AlienationPattern struct {
	Pattern          string   `json:"pattern"`
	Occurrences      int      `json:"occurrences"`
	ExampleQuote     string   `json:"example_quote"`
	Cycle            []string `json:"cycle"`
	ViewTimelineLink string   `json:"view_timeline_link"`
}

// TimelineEvent is one entry in the case timeline.
type TimelineEvent struct {
	Date   string `json:"date"`
	Event  string `json:"event"`
	Type   string `json:"type"`
	Source string `json:"source"`
}

// Report wraps the pre-rendered case report.
type Report struct {
	HTML string `json:"html"`
}

var Contradictions = []Contradiction{
	{
		Statement:      "I was excluded from the evaluation.",
		ContradictedBy: "Mae Igi declined to attend the psychological evaluation.",
		Source:         "Email, 4/10/2023, Page 3, Line 12",
		Confidence:     94,
		Impact:         "High",
		CitationLink:   "exhibits/email_041023.pdf",
	},
}

var Misconducts = []Misconduct{
	{
		Accusation:         "Tom never communicates.",
		ReciprocalEvidence: "47 unanswered messages from Tom",
		Source:             "Exhibit D, Lines 33–49",
		Impact:             "High",
		MessageTrailLink:   "exhibits/exhibit_d.pdf",
	},
}

var AlienationPatterns = []AlienationPattern{
	{
		Pattern:          "Pre-court Alienation Surge",
		Occurrences:      4,
		ExampleQuote:     "You don't have to be afraid of your dad anymore.",
		Cycle:            []string{"Warm", "Accusation", "Victimhood", "Child Guilt"},
		ViewTimelineLink: "timeline/pattern_view.png",
	},
}

var Timeline = []TimelineEvent{
	{
		Date:   "2023-03-15",
		Event:  "Rule for Contempt Filed",
		Type:   "legal",
		Source: "Court Docket",
	},
	{
		Date:   "2023-03-20",
		Event:  "Contradictory Statement Found",
		Type:   "contradiction",
		Source: "Email, Page 3",
	},
	{
		Date:   "2023-03-25",
		Event:  "Emotional Pressure Message from Mae",
		Type:   "alienation",
		Source: "Text Message Log",
	},
	{
		Date:   "2023-03-28",
		Event:  "Child Reports 'I'm afraid of Dad'",
		Type:   "pattern",
		Source: "Counselor Notes",
	},
}

var CaseReport = Report{
	HTML: `
      <h1>Aegis Legal Intelligence - Case Report</h1>
      <h2>Executive Summary</h2>
      <p>This report identifies contradictions, misconduct, and manipulation patterns with full citations.</p>
      <h2>Contradictions</h2>
      <ul><li>"I was excluded from the evaluation" vs. Email 4/10/2023 where Mae declined to attend.</li></ul>
      <h2>Reciprocal Misconduct</h2>
      <ul><li>Mae claimed Tom never communicates, but left 47 of his texts unanswered (Exhibit D).</li></ul>
      <h2>Parental Alienation</h2>
      <ul><li>Repeated pre-court statements such as "You don't have to be afraid of your dad anymore."</li></ul>
      <h2>Timeline Snapshot</h2>
      <ul>
      <li>Mar 15 – Rule for Contempt Filed</li>
      <li>Mar 20 – Contradiction Found</li>
      <li>Mar 25 – Emotional Pressure Message</li>
      <li>Mar 28 – Child Reports Fear</li>
      </ul>
    `,
}
