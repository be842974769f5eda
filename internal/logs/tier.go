package logs

// Tier is the severity of a log entry. The set is closed; tiers are compared
// for equality only.
type Tier int

const (
	Info Tier = iota
	Warning
	Debug
	Error
)

// Tier labels as they appear in formatted lines.
const (
	LabelInfo  = "INFO"
	LabelError = "ERROR"
	LabelWarn  = "WARN"
	LabelDebug = "DEBUG"
)

// Tiers lists every tier.
var Tiers = []Tier{Info, Warning, Debug, Error}

// String returns a lowercase name for the tier.
func (t Tier) String() string {
	switch t {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Debug:
		return "debug"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Rank is the numeric dispatch key used when formatting:
// Info=1, Error=2, Warning=3, Debug=4. Unknown tiers rank with Debug.
func (t Tier) Rank() int {
	switch t {
	case Info:
		return 1
	case Error:
		return 2
	case Warning:
		return 3
	default:
		return 4
	}
}

// Label returns the bracketed token written into formatted lines.
func (t Tier) Label() string {
	switch t.Rank() {
	case 1:
		return LabelInfo
	case 2:
		return LabelError
	case 3:
		return LabelWarn
	default:
		return LabelDebug
	}
}
