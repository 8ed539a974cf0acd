package api

import "strings"

//rainyConditions mark a forecast as rainy by case-insensitive substring match
var rainyConditions = []string{"rainy", "rain", "stormy", "storm", "heavy rain"}

//rainRatings are the resistance ratings that permit flight in rainy weather
var rainRatings = []string{"ip43", "ip55", "ip67"}

//WeatherCompatible reports whether a drone with the given resistance rating can
//fly under the given forecast. An empty rating or forecast means no constraint.
//Only rainy forecasts are restricted: they require an IP43/IP55/IP67 rating.
//Any non-rainy forecast passes regardless of rating.
func WeatherCompatible(resistance, forecast string) bool {
	if resistance == "" || forecast == "" {
		return true
	}

	f := strings.ToLower(forecast)
	rainy := false
	for _, cond := range rainyConditions {
		if strings.Contains(f, cond) {
			rainy = true
			break
		}
	}
	if !rainy {
		return true
	}

	r := strings.ToLower(resistance)
	for _, rating := range rainRatings {
		if strings.Contains(r, rating) {
			return true
		}
	}
	return false
}

//splitSet splits a comma-separated list into a set of lower-cased trimmed
//tokens, dropping empties
func splitSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			set[part] = true
		}
	}
	return set
}

//missingFrom returns the required tokens the subject lacks, in the order they
//appear in required. An empty requirement is no constraint: nothing is missing.
func missingFrom(have, required string) []string {
	haveSet := splitSet(have)
	var missing []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(required, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		if !haveSet[part] {
			missing = append(missing, part)
		}
	}
	return missing
}

//MissingSkills returns the required skills the pilot lacks. Comparison is
//case- and whitespace-insensitive.
func MissingSkills(pilotSkills, requiredSkills string) []string {
	return missingFrom(pilotSkills, requiredSkills)
}

//MissingCerts returns the required certifications the pilot lacks
func MissingCerts(pilotCerts, requiredCerts string) []string {
	return missingFrom(pilotCerts, requiredCerts)
}
