package mapping

// Field is a canonical contact field that an uploaded CSV column can map to.
type Field string

const (
	FieldBusinessName Field = "business_name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone_number"
	FieldWebsite      Field = "website"
	FieldZip          Field = "zipcode"
	FieldState        Field = "state"
)

// FieldOrder is the fixed priority in which fields claim columns during
// auto-mapping. Earlier fields win contested headers; business_name resolves
// first because its keywords ("name", "account") are the most ambiguous.
var FieldOrder = []Field{
	FieldBusinessName,
	FieldEmail,
	FieldPhone,
	FieldWebsite,
	FieldZip,
	FieldState,
}

// Fields returns all canonical fields in priority order.
func Fields() []Field {
	out := make([]Field, len(FieldOrder))
	copy(out, FieldOrder)
	return out
}

// Valid reports whether f is one of the canonical fields.
func (f Field) Valid() bool {
	for _, k := range FieldOrder {
		if f == k {
			return true
		}
	}
	return false
}

// Label returns a human-readable name for display in the mapping form.
func (f Field) Label() string {
	switch f {
	case FieldBusinessName:
		return "Business Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone Number"
	case FieldWebsite:
		return "Website"
	case FieldZip:
		return "Zip Code"
	case FieldState:
		return "State"
	default:
		return string(f)
	}
}

// Dictionary holds the keyword lists used to match CSV headers to fields.
// Keywords are stored in normalized form (lowercase, no separators) because
// headers are normalized the same way before scoring.
//
// The dictionary is injected rather than hardcoded so tests and non-English
// deployments can supply alternate keyword sets without touching the engine.
type Dictionary map[Field][]string

// DefaultDictionary returns the built-in English header keywords.
func DefaultDictionary() Dictionary {
	return Dictionary{
		FieldBusinessName: {"businessname", "business", "company", "companyname", "organization", "org", "account", "name"},
		FieldEmail:        {"email", "emailaddress", "mail"},
		FieldPhone:        {"phone", "phonenumber", "mobile", "cell", "telephone", "tel"},
		FieldWebsite:      {"website", "web", "site", "url", "domain", "homepage"},
		FieldZip:          {"zip", "zipcode", "postal", "postalcode", "postcode"},
		FieldState:        {"state", "st", "province", "region"},
	}
}

// Options holds the engine's tunable thresholds. The defaults preserve the
// historical behavior of the upload form; change them only if you intend
// mapping outcomes to change.
type Options struct {
	// ScoreExact is awarded when a normalized header equals a keyword.
	ScoreExact int

	// ScoreSubstring is awarded when either string contains the other.
	ScoreSubstring int

	// ScorePrefix is awarded when the 3-character prefix of one string
	// appears in the other.
	ScorePrefix int

	// MinScore is the minimum score for an auto-mapping to be accepted.
	MinScore int

	// MaxSamples is how many non-empty values per column are validated.
	MaxSamples int

	// SampleRows is how many rows are scanned when collecting samples.
	SampleRows int
}

// DefaultOptions returns the standard thresholds (100/50/25 scoring, accept at
// 25, validate up to 5 samples drawn from the first 10 rows).
func DefaultOptions() Options {
	return Options{
		ScoreExact:     100,
		ScoreSubstring: 50,
		ScorePrefix:    25,
		MinScore:       25,
		MaxSamples:     5,
		SampleRows:     10,
	}
}

// Engine performs column mapping and field validation using a keyword
// dictionary and a set of scoring options. The zero value is not usable;
// construct with NewEngine or use the package-level Default engine.
type Engine struct {
	dict Dictionary
	opt  Options
}

// NewEngine creates an engine with the given dictionary and options.
// A nil dictionary and any zero option field fall back to their defaults,
// so callers can override a single threshold without restating the rest.
func NewEngine(dict Dictionary, opt Options) *Engine {
	if dict == nil {
		dict = DefaultDictionary()
	}
	def := DefaultOptions()
	if opt.ScoreExact == 0 {
		opt.ScoreExact = def.ScoreExact
	}
	if opt.ScoreSubstring == 0 {
		opt.ScoreSubstring = def.ScoreSubstring
	}
	if opt.ScorePrefix == 0 {
		opt.ScorePrefix = def.ScorePrefix
	}
	if opt.MinScore == 0 {
		opt.MinScore = def.MinScore
	}
	if opt.MaxSamples == 0 {
		opt.MaxSamples = def.MaxSamples
	}
	if opt.SampleRows == 0 {
		opt.SampleRows = def.SampleRows
	}
	return &Engine{dict: dict, opt: opt}
}

// Default is the engine used by the package-level convenience functions.
var Default = NewEngine(DefaultDictionary(), DefaultOptions())
