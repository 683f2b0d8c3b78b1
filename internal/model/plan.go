package model

// Section names shared by the pipeline, the plan and the presentation layers.
const (
	SectionVenues         = "venues"
	SectionVendors        = "vendors"
	SectionSchedule       = "schedule"
	SectionTransportation = "transportation"
	SectionHotels         = "hotels"
	SectionSightseeing    = "sightseeing"
	SectionCatering       = "catering"
	SectionTheme          = "theme"
	SectionWeather        = "weather_forecast"
	SectionCalendar       = "calendar"
)

// Digest is the condensed, human-oriented version of a section.
type Digest map[string]any

// DigestStatusUnavailable marks a summary that could not be produced.
const DigestStatusUnavailable = "unavailable"

// UnavailableDigest is the sentinel stored when a section's summary failed.
func UnavailableDigest(reason string) Digest {
	return Digest{"status": DigestStatusUnavailable, "reason": reason}
}

// IsUnavailable reports whether d is the sentinel digest.
func (d Digest) IsUnavailable() bool {
	status, _ := d["status"].(string)
	return status == DigestStatusUnavailable && len(d) <= 2
}

// Failure explains why a task produced no output.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Plan is the terminal artifact of a run.
type Plan struct {
	RunID    string             `json:"run_id,omitempty"`
	Intent   Intent             `json:"intent"`
	Summary  map[string]Digest  `json:"summary"`
	Details  map[string]any     `json:"details"`
	Failures map[string]Failure `json:"failures,omitempty"`
}
