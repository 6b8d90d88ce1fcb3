package usecases

import "sort"

// industries is the static industry -> sub-industry taxonomy backing the
// wizard's industry step and the profile editor's dependent selects.
var industries = map[string][]string{
	"Agriculture, Farming and Forestry": {
		"Agricultural raw materials",
		"Animals, Fishing and aquaculture",
		"Crops or grains, vegetables",
		"Farming",
		"Forestry",
	},
	"Arts, Entertainment and Recreation": {
		"Creative arts",
		"Entertainment",
		"Gambling",
		"Museums and heritage",
		"Sports and recreation",
	},
	"Construction": {
		"Building construction",
		"Civil engineering",
		"Specialized construction",
	},
	"Education": {
		"Higher education",
		"Primary and secondary education",
		"Technical and vocational training",
	},
	"Financial Services": {
		"Banking",
		"Insurance",
		"Investment",
		"Payment services",
	},
	"Healthcare": {
		"Hospitals",
		"Medical practices",
		"Pharmaceutical",
		"Social care",
	},
	"Hospitality": {
		"Accommodation",
		"Food and beverage",
		"Tourism",
	},
	"Manufacturing": {
		"Chemical products",
		"Electronics",
		"Food and beverage",
		"Machinery",
		"Textiles",
	},
	"Professional Services": {
		"Accounting",
		"Consulting",
		"Legal services",
		"Marketing and advertising",
	},
	"Real Estate": {
		"Property development",
		"Property management",
		"Real estate agency",
	},
	"Retail Trade": {
		"E-commerce",
		"Food and beverage retail",
		"General merchandise",
		"Specialized retail",
	},
	"Technology": {
		"IT services",
		"Software development",
		"Telecommunications",
	},
	"Transportation and Logistics": {
		"Freight transport",
		"Passenger transport",
		"Postal and courier",
		"Warehousing",
	},
	"Wholesale Trade": {
		"Agricultural products",
		"Consumer goods",
		"Industrial goods",
	},
}

// IndustryNames returns the industry names in sorted order.
func IndustryNames() []string {
	names := make([]string, 0, len(industries))
	for name := range industries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubIndustries returns the sub-industries of an industry, or nil for an
// unknown industry.
func SubIndustries(industry string) []string {
	subs, ok := industries[industry]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// IsValidIndustry reports whether the name is a known industry.
func IsValidIndustry(name string) bool {
	_, ok := industries[name]
	return ok
}

// IsValidSubIndustry reports whether sub belongs to industry.
func IsValidSubIndustry(industry, sub string) bool {
	for _, s := range industries[industry] {
		if s == sub {
			return true
		}
	}
	return false
}
