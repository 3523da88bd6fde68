// Package catalog holds the static city/time-zone reference data users pick
// clocks from. Entries carry no IDs; IDs are assigned when an entry joins a
// tracked list.
package catalog

import (
	"strings"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// DefaultEntries returns the zones a fresh tracked list starts with.
func DefaultEntries() domain.TrackedList {
	return domain.TrackedList{
		{ID: "1", City: "Tokyo", Country: "Japan", TimeZone: "Asia/Tokyo", Abbreviation: "JST"},
		{ID: "2", City: "New Delhi", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
		{ID: "3", City: "New York", Country: "United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
		{ID: "4", City: "Los Angeles", Country: "United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
		{ID: "5", City: "Yangon", Country: "Myanmar", TimeZone: "Asia/Yangon", Abbreviation: "MMT"},
		{ID: "6", City: "Beijing", Country: "China", TimeZone: "Asia/Shanghai", Abbreviation: "CST"},
	}
}

// Search returns catalog entries whose city, country, or abbreviation
// contains query, case-insensitively, in catalog order. An empty query
// matches everything.
func Search(query string) []domain.TimeZoneEntry {
	q := strings.ToLower(query)
	var out []domain.TimeZoneEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.City), q) ||
			strings.Contains(strings.ToLower(e.Country), q) ||
			strings.Contains(strings.ToLower(e.Abbreviation), q) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns the full catalog in display order.
func Entries() []domain.TimeZoneEntry {
	out := make([]domain.TimeZoneEntry, len(entries))
	copy(out, entries)
	return out
}

var entries = []domain.TimeZoneEntry{
	// North America
	{City: "New York", Country: "United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Los Angeles", Country: "United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Chicago", Country: "United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Denver", Country: "United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},
	{City: "Seattle", Country: "United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Phoenix", Country: "United States", TimeZone: "America/Phoenix", Abbreviation: "MST"},
	{City: "Las Vegas", Country: "United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Miami", Country: "United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Boston", Country: "United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Atlanta", Country: "United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Honolulu", Country: "United States", TimeZone: "Pacific/Honolulu", Abbreviation: "HST"},
	{City: "Anchorage", Country: "United States", TimeZone: "America/Anchorage", Abbreviation: "AKST/AKDT"},
	{City: "Toronto", Country: "Canada", TimeZone: "America/Toronto", Abbreviation: "EST/EDT"},
	{City: "Vancouver", Country: "Canada", TimeZone: "America/Vancouver", Abbreviation: "PST/PDT"},
	{City: "Montreal", Country: "Canada", TimeZone: "America/Montreal", Abbreviation: "EST/EDT"},
	{City: "Calgary", Country: "Canada", TimeZone: "America/Edmonton", Abbreviation: "MST/MDT"},
	{City: "Mexico City", Country: "Mexico", TimeZone: "America/Mexico_City", Abbreviation: "CST/CDT"},
	{City: "Guadalajara", Country: "Mexico", TimeZone: "America/Mexico_City", Abbreviation: "CST/CDT"},

	// South America
	{City: "São Paulo", Country: "Brazil", TimeZone: "America/Sao_Paulo", Abbreviation: "BRT/BRST"},
	{City: "Rio de Janeiro", Country: "Brazil", TimeZone: "America/Sao_Paulo", Abbreviation: "BRT/BRST"},
	{City: "Buenos Aires", Country: "Argentina", TimeZone: "America/Argentina/Buenos_Aires", Abbreviation: "ART"},
	{City: "Lima", Country: "Peru", TimeZone: "America/Lima", Abbreviation: "PET"},
	{City: "Bogotá", Country: "Colombia", TimeZone: "America/Bogota", Abbreviation: "COT"},
	{City: "Santiago", Country: "Chile", TimeZone: "America/Santiago", Abbreviation: "CLT/CLST"},
	{City: "Caracas", Country: "Venezuela", TimeZone: "America/Caracas", Abbreviation: "VET"},

	// Europe
	{City: "London", Country: "United Kingdom", TimeZone: "Europe/London", Abbreviation: "GMT/BST"},
	{City: "Paris", Country: "France", TimeZone: "Europe/Paris", Abbreviation: "CET/CEST"},
	{City: "Berlin", Country: "Germany", TimeZone: "Europe/Berlin", Abbreviation: "CET/CEST"},
	{City: "Madrid", Country: "Spain", TimeZone: "Europe/Madrid", Abbreviation: "CET/CEST"},
	{City: "Rome", Country: "Italy", TimeZone: "Europe/Rome", Abbreviation: "CET/CEST"},
	{City: "Amsterdam", Country: "Netherlands", TimeZone: "Europe/Amsterdam", Abbreviation: "CET/CEST"},
	{City: "Brussels", Country: "Belgium", TimeZone: "Europe/Brussels", Abbreviation: "CET/CEST"},
	{City: "Vienna", Country: "Austria", TimeZone: "Europe/Vienna", Abbreviation: "CET/CEST"},
	{City: "Zurich", Country: "Switzerland", TimeZone: "Europe/Zurich", Abbreviation: "CET/CEST"},
	{City: "Stockholm", Country: "Sweden", TimeZone: "Europe/Stockholm", Abbreviation: "CET/CEST"},
	{City: "Oslo", Country: "Norway", TimeZone: "Europe/Oslo", Abbreviation: "CET/CEST"},
	{City: "Copenhagen", Country: "Denmark", TimeZone: "Europe/Copenhagen", Abbreviation: "CET/CEST"},
	{City: "Helsinki", Country: "Finland", TimeZone: "Europe/Helsinki", Abbreviation: "EET/EEST"},
	{City: "Warsaw", Country: "Poland", TimeZone: "Europe/Warsaw", Abbreviation: "CET/CEST"},
	{City: "Prague", Country: "Czech Republic", TimeZone: "Europe/Prague", Abbreviation: "CET/CEST"},
	{City: "Budapest", Country: "Hungary", TimeZone: "Europe/Budapest", Abbreviation: "CET/CEST"},
	{City: "Athens", Country: "Greece", TimeZone: "Europe/Athens", Abbreviation: "EET/EEST"},
	{City: "Istanbul", Country: "Turkey", TimeZone: "Europe/Istanbul", Abbreviation: "TRT"},
	{City: "Moscow", Country: "Russia", TimeZone: "Europe/Moscow", Abbreviation: "MSK"},
	{City: "Dublin", Country: "Ireland", TimeZone: "Europe/Dublin", Abbreviation: "GMT/IST"},
	{City: "Lisbon", Country: "Portugal", TimeZone: "Europe/Lisbon", Abbreviation: "WET/WEST"},

	// Asia
	{City: "Tokyo", Country: "Japan", TimeZone: "Asia/Tokyo", Abbreviation: "JST"},
	{City: "Beijing", Country: "China", TimeZone: "Asia/Shanghai", Abbreviation: "CST"},
	{City: "Shanghai", Country: "China", TimeZone: "Asia/Shanghai", Abbreviation: "CST"},
	{City: "Hong Kong", Country: "Hong Kong", TimeZone: "Asia/Hong_Kong", Abbreviation: "HKT"},
	{City: "Singapore", Country: "Singapore", TimeZone: "Asia/Singapore", Abbreviation: "SGT"},
	{City: "Seoul", Country: "South Korea", TimeZone: "Asia/Seoul", Abbreviation: "KST"},
	{City: "Taipei", Country: "Taiwan", TimeZone: "Asia/Taipei", Abbreviation: "CST"},
	{City: "Bangkok", Country: "Thailand", TimeZone: "Asia/Bangkok", Abbreviation: "ICT"},
	{City: "Manila", Country: "Philippines", TimeZone: "Asia/Manila", Abbreviation: "PHT"},
	{City: "Kuala Lumpur", Country: "Malaysia", TimeZone: "Asia/Kuala_Lumpur", Abbreviation: "MYT"},
	{City: "Jakarta", Country: "Indonesia", TimeZone: "Asia/Jakarta", Abbreviation: "WIB"},
	{City: "Ho Chi Minh City", Country: "Vietnam", TimeZone: "Asia/Ho_Chi_Minh", Abbreviation: "ICT"},
	{City: "New Delhi", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
	{City: "Mumbai", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
	{City: "Bangalore", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
	{City: "Kolkata", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
	{City: "Chennai", Country: "India", TimeZone: "Asia/Kolkata", Abbreviation: "IST"},
	{City: "Karachi", Country: "Pakistan", TimeZone: "Asia/Karachi", Abbreviation: "PKT"},
	{City: "Lahore", Country: "Pakistan", TimeZone: "Asia/Karachi", Abbreviation: "PKT"},
	{City: "Dhaka", Country: "Bangladesh", TimeZone: "Asia/Dhaka", Abbreviation: "BST"},
	{City: "Colombo", Country: "Sri Lanka", TimeZone: "Asia/Colombo", Abbreviation: "SLST"},
	{City: "Yangon", Country: "Myanmar", TimeZone: "Asia/Yangon", Abbreviation: "MMT"},
	{City: "Phnom Penh", Country: "Cambodia", TimeZone: "Asia/Phnom_Penh", Abbreviation: "ICT"},
	{City: "Vientiane", Country: "Laos", TimeZone: "Asia/Vientiane", Abbreviation: "ICT"},
	{City: "Tel Aviv", Country: "Israel", TimeZone: "Asia/Jerusalem", Abbreviation: "IST/IDT"},
	{City: "Dubai", Country: "United Arab Emirates", TimeZone: "Asia/Dubai", Abbreviation: "GST"},
	{City: "Riyadh", Country: "Saudi Arabia", TimeZone: "Asia/Riyadh", Abbreviation: "AST"},
	{City: "Kuwait City", Country: "Kuwait", TimeZone: "Asia/Kuwait", Abbreviation: "AST"},
	{City: "Doha", Country: "Qatar", TimeZone: "Asia/Qatar", Abbreviation: "AST"},
	{City: "Tehran", Country: "Iran", TimeZone: "Asia/Tehran", Abbreviation: "IRST/IRDT"},

	// Africa
	{City: "Cairo", Country: "Egypt", TimeZone: "Africa/Cairo", Abbreviation: "EET"},
	{City: "Lagos", Country: "Nigeria", TimeZone: "Africa/Lagos", Abbreviation: "WAT"},
	{City: "Johannesburg", Country: "South Africa", TimeZone: "Africa/Johannesburg", Abbreviation: "SAST"},
	{City: "Cape Town", Country: "South Africa", TimeZone: "Africa/Johannesburg", Abbreviation: "SAST"},
	{City: "Nairobi", Country: "Kenya", TimeZone: "Africa/Nairobi", Abbreviation: "EAT"},
	{City: "Addis Ababa", Country: "Ethiopia", TimeZone: "Africa/Addis_Ababa", Abbreviation: "EAT"},
	{City: "Casablanca", Country: "Morocco", TimeZone: "Africa/Casablanca", Abbreviation: "WET/WEST"},
	{City: "Tunis", Country: "Tunisia", TimeZone: "Africa/Tunis", Abbreviation: "CET"},
	{City: "Algiers", Country: "Algeria", TimeZone: "Africa/Algiers", Abbreviation: "CET"},
	{City: "Accra", Country: "Ghana", TimeZone: "Africa/Accra", Abbreviation: "GMT"},

	// Oceania
	{City: "Sydney", Country: "Australia", TimeZone: "Australia/Sydney", Abbreviation: "AEST/AEDT"},
	{City: "Melbourne", Country: "Australia", TimeZone: "Australia/Melbourne", Abbreviation: "AEST/AEDT"},
	{City: "Brisbane", Country: "Australia", TimeZone: "Australia/Brisbane", Abbreviation: "AEST"},
	{City: "Perth", Country: "Australia", TimeZone: "Australia/Perth", Abbreviation: "AWST"},
	{City: "Adelaide", Country: "Australia", TimeZone: "Australia/Adelaide", Abbreviation: "ACST/ACDT"},
	{City: "Darwin", Country: "Australia", TimeZone: "Australia/Darwin", Abbreviation: "ACST"},
	{City: "Auckland", Country: "New Zealand", TimeZone: "Pacific/Auckland", Abbreviation: "NZST/NZDT"},
	{City: "Wellington", Country: "New Zealand", TimeZone: "Pacific/Auckland", Abbreviation: "NZST/NZDT"},
	{City: "Suva", Country: "Fiji", TimeZone: "Pacific/Fiji", Abbreviation: "FJT"},
	{City: "Port Moresby", Country: "Papua New Guinea", TimeZone: "Pacific/Port_Moresby", Abbreviation: "PGT"},

	// Additional major cities
	{City: "Reykjavik", Country: "Iceland", TimeZone: "Atlantic/Reykjavik", Abbreviation: "GMT"},
	{City: "Brasília", Country: "Brazil", TimeZone: "America/Sao_Paulo", Abbreviation: "BRT/BRST"},
	{City: "Montevideo", Country: "Uruguay", TimeZone: "America/Montevideo", Abbreviation: "UYT/UYST"},
	{City: "Asunción", Country: "Paraguay", TimeZone: "America/Asuncion", Abbreviation: "PYT/PYST"},
	{City: "La Paz", Country: "Bolivia", TimeZone: "America/La_Paz", Abbreviation: "BOT"},
	{City: "Quito", Country: "Ecuador", TimeZone: "America/Guayaquil", Abbreviation: "ECT"},
	{City: "Panama City", Country: "Panama", TimeZone: "America/Panama", Abbreviation: "EST"},
	{City: "San José", Country: "Costa Rica", TimeZone: "America/Costa_Rica", Abbreviation: "CST"},
	{City: "Guatemala City", Country: "Guatemala", TimeZone: "America/Guatemala", Abbreviation: "CST"},
	{City: "Havana", Country: "Cuba", TimeZone: "America/Havana", Abbreviation: "CST/CDT"},
	{City: "Kingston", Country: "Jamaica", TimeZone: "America/Jamaica", Abbreviation: "EST"},

	// US state capitals
	{City: "Montgomery", Country: "Alabama, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Juneau", Country: "Alaska, United States", TimeZone: "America/Anchorage", Abbreviation: "AKST/AKDT"},
	{City: "Phoenix", Country: "Arizona, United States", TimeZone: "America/Phoenix", Abbreviation: "MST"},
	{City: "Little Rock", Country: "Arkansas, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Sacramento", Country: "California, United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Denver", Country: "Colorado, United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},
	{City: "Hartford", Country: "Connecticut, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Dover", Country: "Delaware, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Tallahassee", Country: "Florida, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Atlanta", Country: "Georgia, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Honolulu", Country: "Hawaii, United States", TimeZone: "Pacific/Honolulu", Abbreviation: "HST"},
	{City: "Boise", Country: "Idaho, United States", TimeZone: "America/Boise", Abbreviation: "MST/MDT"},
	{City: "Springfield", Country: "Illinois, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Indianapolis", Country: "Indiana, United States", TimeZone: "America/Indiana/Indianapolis", Abbreviation: "EST/EDT"},
	{City: "Des Moines", Country: "Iowa, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Topeka", Country: "Kansas, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Frankfort", Country: "Kentucky, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Baton Rouge", Country: "Louisiana, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Augusta", Country: "Maine, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Annapolis", Country: "Maryland, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Boston", Country: "Massachusetts, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Lansing", Country: "Michigan, United States", TimeZone: "America/Detroit", Abbreviation: "EST/EDT"},
	{City: "Saint Paul", Country: "Minnesota, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Jackson", Country: "Mississippi, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Jefferson City", Country: "Missouri, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Helena", Country: "Montana, United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},
	{City: "Lincoln", Country: "Nebraska, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Carson City", Country: "Nevada, United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Concord", Country: "New Hampshire, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Trenton", Country: "New Jersey, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Santa Fe", Country: "New Mexico, United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},
	{City: "Albany", Country: "New York, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Raleigh", Country: "North Carolina, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Bismarck", Country: "North Dakota, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Columbus", Country: "Ohio, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Oklahoma City", Country: "Oklahoma, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Salem", Country: "Oregon, United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Harrisburg", Country: "Pennsylvania, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Providence", Country: "Rhode Island, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Columbia", Country: "South Carolina, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Pierre", Country: "South Dakota, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Nashville", Country: "Tennessee, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Austin", Country: "Texas, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Salt Lake City", Country: "Utah, United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},
	{City: "Montpelier", Country: "Vermont, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Richmond", Country: "Virginia, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Olympia", Country: "Washington, United States", TimeZone: "America/Los_Angeles", Abbreviation: "PST/PDT"},
	{City: "Charleston", Country: "West Virginia, United States", TimeZone: "America/New_York", Abbreviation: "EST/EDT"},
	{City: "Madison", Country: "Wisconsin, United States", TimeZone: "America/Chicago", Abbreviation: "CST/CDT"},
	{City: "Cheyenne", Country: "Wyoming, United States", TimeZone: "America/Denver", Abbreviation: "MST/MDT"},

	// Canadian provincial and territorial capitals
	{City: "Edmonton", Country: "Alberta, Canada", TimeZone: "America/Edmonton", Abbreviation: "MST/MDT"},
	{City: "Victoria", Country: "British Columbia, Canada", TimeZone: "America/Vancouver", Abbreviation: "PST/PDT"},
	{City: "Winnipeg", Country: "Manitoba, Canada", TimeZone: "America/Winnipeg", Abbreviation: "CST/CDT"},
	{City: "Fredericton", Country: "New Brunswick, Canada", TimeZone: "America/Moncton", Abbreviation: "AST/ADT"},
	{City: "St. John's", Country: "Newfoundland and Labrador, Canada", TimeZone: "America/St_Johns", Abbreviation: "NST/NDT"},
	{City: "Yellowknife", Country: "Northwest Territories, Canada", TimeZone: "America/Yellowknife", Abbreviation: "MST/MDT"},
	{City: "Halifax", Country: "Nova Scotia, Canada", TimeZone: "America/Halifax", Abbreviation: "AST/ADT"},
	{City: "Iqaluit", Country: "Nunavut, Canada", TimeZone: "America/Iqaluit", Abbreviation: "EST/EDT"},
	{City: "Toronto", Country: "Ontario, Canada", TimeZone: "America/Toronto", Abbreviation: "EST/EDT"},
	{City: "Charlottetown", Country: "Prince Edward Island, Canada", TimeZone: "America/Halifax", Abbreviation: "AST/ADT"},
	{City: "Quebec City", Country: "Quebec, Canada", TimeZone: "America/Montreal", Abbreviation: "EST/EDT"},
	{City: "Regina", Country: "Saskatchewan, Canada", TimeZone: "America/Regina", Abbreviation: "CST"},
	{City: "Whitehorse", Country: "Yukon, Canada", TimeZone: "America/Whitehorse", Abbreviation: "PST/PDT"},
}
