package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Go Almanac"
	AppID   = "com.github.tartampluch.go-almanac"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// Supported Calendar Window
// -----------------------------------------------------------------------------

const (
	// MinLunarYear and MaxLunarYear bound the lunar-year table. Requests
	// outside this window fail with a typed out-of-range error, never a
	// clamped value.
	MinLunarYear = 1900
	MaxLunarYear = 2100

	// FirstLunarEpochJD is the integer Julian day number of the first day of
	// lunar year 1900 (1900-01-31). Every later year's first day is derived
	// by accumulating year lengths from this anchor.
	FirstLunarEpochJD = 2415051
)

// -----------------------------------------------------------------------------
// Sexagenary Anchors
// -----------------------------------------------------------------------------

const (
	// AnchorYear is a year whose pillar occupies position 0 of the 60-cycle
	// (stem 0, branch 0) once the start-of-spring boundary has passed.
	AnchorYear = 1984

	// DayPillarAnchorJD is the truncated Julian day paired with
	// DayPillarAnchorStem/Branch. The anchor civil date is 2001-01-01.
	DayPillarAnchorJD     = 2451911
	DayPillarAnchorStem   = 7
	DayPillarAnchorBranch = 5
)

// -----------------------------------------------------------------------------
// Solar Term Approximation
// -----------------------------------------------------------------------------

const (
	// DaysPerTerm is the mean interval between consecutive solar terms: one
	// tropical year spread over 24 terms (~15.2184 days).
	DaysPerTerm = 365.2422 / 24

	// The vernal equinox anchors the approximation path: term index 5,
	// around March 21.
	EquinoxTermIndex = 5
	EquinoxMonth     = 3
	EquinoxDay       = 21
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDate         = "date"
	FlagMonth        = "month"
	FlagActivity     = "activity"
	FlagLang         = "lang"
	FlagICS          = "ics"
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescDate     = "Civil date to profile, formatted YYYY-MM-DD"
	FlagDescMonth    = "Month to summarize, formatted YYYY-MM"
	FlagDescActivity = "Activity to highlight in the month view"
	FlagDescLang     = "Output language (ISO 639-1)"
	FlagDescICS      = "Emit the month as an iCalendar feed instead of text"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	MsgVersionOutput = "%s version %s (%s/%s)\n"

	DateFlagLayout  = "2006-01-02"
	MonthFlagLayout = "2006-01"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "es"}

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Almanac//Engine//EN"
	ICalCalName = "Almanac"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goalmanac"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatUID = "%s-%04d-%02d-%02d@%s"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Console Output
// -----------------------------------------------------------------------------

const (
	// The day view trims the activity lists for readability; the full lists
	// stay available through the library API.
	MaxFavorableShown   = 4
	MaxUnfavorableShown = 3

	FormatHourRange = "%02d:00-%02d:00"
	FormatLunarDate = "%d/%d"
	LeapMonthMarker = "+"
	TermMarker      = "*"
	FirstDayMarker  = ">"
)

// -----------------------------------------------------------------------------
// Logging Keys & Component Names
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyYear      = "year"
	LogKeySource    = "source"
	LogKeyVersion   = "version"
	LogKeyActivity  = "activity"

	CompMain    = "main"
	CompAlmanac = "almanac"
	CompTerms   = "solarterm"
	CompNames   = "names"
)

// -----------------------------------------------------------------------------
// Log & Error Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Application starting"
	MsgAppStop       = "Application stopped"
	MsgApproxTerms   = "Solar terms computed by approximation"
	MsgLocaleLoaded  = "Locale loaded"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgTransMissing  = "Missing translation"
	ErrAppFailed     = "Application failed"
	ErrLocalesAccess = "Cannot access embedded locales"
	ErrLocaleLoad    = "Cannot load locale file"
	ErrTermData      = "Cannot load solar-term reference data"
	ErrBadDateFlag   = "invalid -date value, want YYYY-MM-DD"
	ErrBadMonthFlag  = "invalid -month value, want YYYY-MM"
	ErrBadActivity   = "unknown activity"
)
