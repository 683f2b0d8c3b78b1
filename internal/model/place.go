package model

// Place is one business or venue returned by the place search.
type Place struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating,omitempty"`
	Address string  `json:"address,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Website string  `json:"website,omitempty"`
}

// PlaceGroup holds the search results for one sub-query (a venue type, vendor type…).
// Options is never nil so an empty group encodes as [].
type PlaceGroup struct {
	Type    string  `json:"type"`
	Query   string  `json:"query"`
	Options []Place `json:"options"`
}

// CateringPlan pairs the model's meal plan with caterers found per meal.
type CateringPlan struct {
	MealPlan map[string]any     `json:"meal_plan"`
	Caterers map[string][]Place `json:"caterers"`
}

// ForecastDay is one day of the weather forecast.
type ForecastDay struct {
	Date      string  `json:"date"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Condition string  `json:"condition"`
}

// CalendarEntry is a schedule day published to an external calendar.
type CalendarEntry struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
	EventID string `json:"event_id,omitempty"`
	Link    string `json:"link,omitempty"`
}
