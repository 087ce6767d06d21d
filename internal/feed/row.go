package feed

// Row is the curated, display-ready projection of one upstream record.
// Field declaration order is the column order clients render; encoding/json
// preserves it, so the JSON key order of the first row is the column universe.
type Row struct {
	Name        *string  `json:"Name"`
	Phone       *string  `json:"Phone"`
	Email       *string  `json:"Email"`
	City        *string  `json:"City"`
	District    *string  `json:"District"`
	Source      *string  `json:"Source"`
	PhoneStatus *string  `json:"Phone Status"`
	PhoneDate   *string  `json:"Phone Date"`
	F2FStatus   *string  `json:"F2F Status"`
	F2FDate     *string  `json:"F2F Date"`
	DocsStatus  *string  `json:"Docs Status"`
	DocsDate    *string  `json:"Docs Date"`
	JobStatus   *string  `json:"Job Status"`
	JobDate     *string  `json:"Job Date"`
	JobExit     *string  `json:"Job Exit"`
	Level       *string  `json:"Level"`
	Dealer      *string  `json:"Dealer"`
	SubmittedAt *string  `json:"Submitted At"`
	Views       *float64 `json:"Views"`
	FormURL     *string  `json:"Form URL"`
}

var columnUniverse = []string{
	"Name", "Phone", "Email", "City", "District", "Source",
	"Phone Status", "Phone Date", "F2F Status", "F2F Date",
	"Docs Status", "Docs Date", "Job Status", "Job Date", "Job Exit",
	"Level", "Dealer", "Submitted At", "Views", "Form URL",
}

// Columns returns the fixed, ordered field universe of a curated row.
func Columns() []string {
	out := make([]string, len(columnUniverse))
	copy(out, columnUniverse)
	return out
}

// Value returns the row's value for a display column. Missing values come
// back as an untyped nil so callers can coerce uniformly.
func (r Row) Value(name string) any {
	switch name {
	case "Name":
		return strVal(r.Name)
	case "Phone":
		return strVal(r.Phone)
	case "Email":
		return strVal(r.Email)
	case "City":
		return strVal(r.City)
	case "District":
		return strVal(r.District)
	case "Source":
		return strVal(r.Source)
	case "Phone Status":
		return strVal(r.PhoneStatus)
	case "Phone Date":
		return strVal(r.PhoneDate)
	case "F2F Status":
		return strVal(r.F2FStatus)
	case "F2F Date":
		return strVal(r.F2FDate)
	case "Docs Status":
		return strVal(r.DocsStatus)
	case "Docs Date":
		return strVal(r.DocsDate)
	case "Job Status":
		return strVal(r.JobStatus)
	case "Job Date":
		return strVal(r.JobDate)
	case "Job Exit":
		return strVal(r.JobExit)
	case "Level":
		return strVal(r.Level)
	case "Dealer":
		return strVal(r.Dealer)
	case "Submitted At":
		return strVal(r.SubmittedAt)
	case "Views":
		return numVal(r.Views)
	case "Form URL":
		return strVal(r.FormURL)
	}
	return nil
}

func strVal(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func numVal(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// Transform maps one raw upstream record onto the curated field set. It is
// total: absent, null, or wrong-typed source fields degrade to nil instead
// of failing the batch. Unmapped upstream fields are dropped on purpose; the
// curated set is the data-minimization boundary.
func Transform(record map[string]any) Row {
	return Row{
		Name:        stringField(record, "name"),
		Phone:       stringField(record, "phone"),
		Email:       stringField(record, "email"),
		City:        stringField(record, "city_name"),
		District:    stringField(record, "semt"),
		Source:      stringField(record, "source_name"),
		PhoneStatus: stringField(record, "phonestatuename"),
		PhoneDate:   ToDisplayDate(stringField(record, "phone_date")),
		F2FStatus:   stringField(record, "facetofacestatuename"),
		F2FDate:     ToDisplayDate(stringField(record, "facetoface_date")),
		DocsStatus:  stringField(record, "documentstatuename"),
		DocsDate:    ToDisplayDate(stringField(record, "document_date")),
		JobStatus:   stringField(record, "jobstatuename"),
		JobDate:     ToDisplayDate(stringField(record, "job_statue_date")),
		JobExit:     ToDisplayDate(stringField(record, "job_exit_date")),
		Level:       stringField(record, "level_name"),
		Dealer:      stringField(record, "dealer_name"),
		SubmittedAt: ToDisplayDateTime(stringField(record, "realdate")),
		Views:       numberField(record, "totalview"),
		FormURL:     stringField(record, "actual_link"),
	}
}

func stringField(record map[string]any, key string) *string {
	if v, ok := record[key].(string); ok {
		return &v
	}
	return nil
}

func numberField(record map[string]any, key string) *float64 {
	if v, ok := record[key].(float64); ok {
		return &v
	}
	return nil
}
