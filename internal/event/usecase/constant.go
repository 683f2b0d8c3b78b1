package usecase

import "event-planner/internal/model"

const (
	defaultSearchLimit = 3
	// subQueryConcurrency caps parallel lookups inside one task.
	subQueryConcurrency = 4
	// maxHotelAnchors is the number of venues hotels are searched around.
	maxHotelAnchors = 3

	intentTemperature   = 0.1
	listTemperature     = 0.3
	creativeTemperature = 0.7
)

// meals are the sittings caterers are searched for.
var meals = []string{"breakfast", "lunch", "dinner"}

// summarizedSections are the sections that get a digest, in declaration order.
var summarizedSections = []string{
	model.SectionVenues,
	model.SectionVendors,
	model.SectionSchedule,
	model.SectionTransportation,
	model.SectionHotels,
	model.SectionSightseeing,
	model.SectionCatering,
	model.SectionTheme,
	model.SectionWeather,
}

const answerRule = "Respond with the JSON value only, optionally after a line reading `Final Answer:`. Do not include reasoning."

const intentPrompt = `You are an event planning assistant.
Extract structured event information from the request below. Today is %s.

Return a JSON object with these keys:
- "event_type": string
- "location": string (city or area)
- "event_date": string, YYYY-MM-DD when possible, otherwise the date as the user wrote it
- "guest_count": integer
- "preferences": object (for example stay_dates, guest_origins, budget)
- "event_theme": string
- "meal_count": integer
- "transport_needs": string
- "sightseeing": boolean
Missing values must be null.

Request:
%s

` + answerRule

const venueTypesPrompt = `You are an expert event planner. List the kinds of venue suited to a %s for about %s guests in %s.
Return a JSON array of 3 to 5 short search phrases, for example ["banquet hall", "marquee", "hotel ballroom"].
` + answerRule

const vendorTypesPrompt = `You are an expert event planner. What types of vendors are typically needed for a %s?
Return a JSON array of short vendor types, for example ["catering", "event lighting", "A/V equipment"].
` + answerRule

const schedulePrompt = `You are an expert event planner. Create a high-level multi-day schedule for a %s in %s beginning on %s with around %s guests.
Cover arrival to departure: airport pickups, hotel check-in, meals, sessions, sightseeing in free slots and checkout.
Return a JSON array in this format:
[{"day": "Day 1 - Arrival", "activities": ["Hotel check-in", "Welcome dinner"]}]
` + answerRule

const transportPrompt = `You are a logistics planner for a %s in %s with around %s guests.
Transport needs stated by the organizer: %s.

Candidate venues (JSON):
%s

Schedule (JSON):
%s

Return a JSON object with keys "airport_transfers", "guest_shuttles", "parking" and "notes".
` + answerRule

const sightseeingPrompt = `You are a local guide in %s. Guests of a %s have the free slots implied by this schedule (JSON):
%s

Return a JSON array of 3 to 5 kinds of attraction worth visiting, as short search phrases, for example ["historic fort", "food street"].
` + answerRule

const mealPlanPrompt = `You are a catering planner. Suggest a structured meal plan for a %s in %s with around %s guests based on this schedule (JSON):
%s

Return a JSON object keyed by day label, each value an object with "breakfast", "lunch" and "dinner" descriptions.
` + answerRule

const themePrompt = `You are an event designer. Propose a theme for a %s in %s.
Preferred theme (may be empty): %s

Candidate venues (JSON):
%s

Return a JSON object with keys "theme", "color_palette" (array), "decor" (array), "attire" and "music".
` + answerRule
