package feed

// TranslationRecord is one row of the published translations.json feed.
type TranslationRecord struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Program       string `json:"program"`
	Title         string `json:"title"`
	Language      string `json:"language"`
	Status        string `json:"status"`
	DateRequested string `json:"dateRequested"`
	Date          string `json:"date"`
	Link          string `json:"link"`
}

// InterpretationRecord is one row of the published interpretation.json feed.
type InterpretationRecord struct {
	ID          int    `json:"id"`
	Program     string `json:"program"`
	Type        string `json:"type"`
	EventName   string `json:"eventName"`
	EventDate   string `json:"eventDate"`
	EventTime   string `json:"eventTime"`
	Interpreter string `json:"interpreter"`
	Status      string `json:"status"`
}

// The worksheet tabs have been renamed more than once over the life of the
// spreadsheet, so each dataset carries the accepted aliases in the order they
// should be tried.
var translationTabs = []string{"Translations", "Translation", "Translation Requests"}
var interpretationTabs = []string{"Interpretation", "Interpretations", "Interpretation Requests"}

const translationRange = "!A1:L"
const interpretationRange = "!A1:H"

var translationFields = []Field{
	{Name: "program", Synonyms: []string{"Program", "Department"}},
	{Name: "title", Synonyms: []string{"Document Name", "Title", "Document"}},
	{Name: "language", Synonyms: []string{"Language", "Target Language"}},
	{Name: "status", Synonyms: []string{"Status"}, Default: "Pending"},
	{Name: "dateRequested", Synonyms: []string{"Date Requested", "Requested"}},
	{Name: "date", Synonyms: []string{"Date", "Date Completed", "Completed"}},
	{Name: "link", Synonyms: []string{"Link", "URL", "Document Link"}},
}

var interpretationFields = []Field{
	{Name: "program", Synonyms: []string{"Program", "Department"}},
	{Name: "type", Synonyms: []string{"Type", "Interpretation Type"}},
	{Name: "eventName", Synonyms: []string{"Event Name", "Event"}},
	{Name: "eventDate", Synonyms: []string{"Event Date", "Date"}},
	{Name: "eventTime", Synonyms: []string{"Event Time", "Time"}},
	{Name: "interpreter", Synonyms: []string{"Interpreter", "Interpreter Name"}},
	{Name: "status", Synonyms: []string{"Status"}},
}
