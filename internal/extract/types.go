package extract

// PersonRecord is one MRZ-ready name spelling of a person entity. Records
// derived from the same entity share every field except Name and IsLatinName.
type PersonRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	IsLatinName bool     `json:"is_latin_name"`
	FirstName   []string `json:"first_name"`
	MiddleName  []string `json:"middle_name"`
	SecondName  []string `json:"second_name"`
	LastName    []string `json:"last_name"`
	Aliases     []string `json:"aliases"`
	BirthDate   *string  `json:"birth_date"`
	Passports   []string `json:"passports"`
	Nationality []string `json:"nationality"`
	HasPassport bool     `json:"has_passport"`
	Status      []Status `json:"status"`
	Countries   []string `json:"countries"`
	Datasets    []string `json:"datasets"`
}

// MissingLatinName describes an entity that declared no Latin-script name and
// had its names transliterated instead.
type MissingLatinName struct {
	ID          string   `json:"id"`
	PrimaryName string   `json:"primary_name"`
	AllNames    []string `json:"all_names"`
}

// Result is the outcome of extracting one entity.
type Result struct {
	Records []PersonRecord
	// MissingLatin is set when the entity had no Latin name of its own.
	MissingLatin *MissingLatinName
}
