package service

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// regionByContinent maps a continent code from the country reference table
// to the region label stored on locations.
var regionByContinent = map[string]string{
	"AF": "Africa",
	"NA": "North America",
	"SA": "South America",
	"AS": "Asia",
	"OC": "Oceania",
	"EU": "Europe",
	"AN": "Antarctica",
}

// InferRegion classifies a free-text country name into a region label.
// Exact match against the country reference table is tried first, then a
// fuzzy fallback. Classification failure is non-fatal: absent, unmatched
// or unclassifiable input yields nil, never an error.
func InferRegion(country *string) *string {
	if country == nil {
		return nil
	}

	name := normalizeCountryName(*country)
	if name == "" {
		return nil
	}

	continent, ok := continentByCountry[name]
	if !ok {
		if alias, found := countryAliases[name]; found {
			continent, ok = continentByCountry[alias]
		}
	}
	if !ok {
		continent, ok = fuzzyContinent(name)
	}
	if !ok {
		return nil
	}

	region, ok := regionByContinent[continent]
	if !ok {
		return nil
	}
	return &region
}

// fuzzyContinent approximates a reference-table hit for misspelled or
// partial country names. Both directions are tried: the input as a fuzzy
// needle inside a canonical name, and a canonical name inside the input.
// The closest hit by edit distance wins.
func fuzzyContinent(name string) (string, bool) {
	best := ""
	bestRank := -1

	for _, match := range fuzzy.RankFindNormalizedFold(name, countryNames) {
		if bestRank == -1 || match.Distance < bestRank {
			best = match.Target
			bestRank = match.Distance
		}
	}

	for _, canonical := range countryNames {
		if !fuzzy.MatchNormalizedFold(canonical, name) {
			continue
		}
		rank := fuzzy.LevenshteinDistance(canonical, name)
		if bestRank == -1 || rank < bestRank {
			best = canonical
			bestRank = rank
		}
	}

	if bestRank == -1 {
		return "", false
	}
	continent, ok := continentByCountry[best]
	return continent, ok
}

// normalizeCountryName lowercases and strips punctuation so that
// "U.S.A." and "usa" hit the same reference entry
func normalizeCountryName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, ".", "")
	name = strings.Join(strings.Fields(name), " ")
	return name
}
