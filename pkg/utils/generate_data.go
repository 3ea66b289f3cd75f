package utils

import (
	"fmt"
	"time"

	"github.com/bxcodec/faker/v3"
)

var Industries = []string{
	"IT",
	"Game Development",
	"Financial Technology",
	"E-commerce",
}

var Locations = []string{
	"London",
	"New York",
	"Paris",
	"Berlin",
	"Madrid",
	"Milan",
	"Rome",
	"Amsterdam",
	"Barcelona",
	"Vienna",
	"Hamburg",
	"Dublin",
	"Sydney",
	"Singapore",
	"Hong Kong",
	"Tokyo",
	"Seoul",
	"Warsaw",
	"Remote",
}

var Departments = []string{
	"Engineering",
	"Product",
	"Design",
	"Sales",
	"Marketing",
	"Human Resources",
}

var EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// qualifiers
var qualifiers = []string{"Junior", "Senior", "Lead"}

// languages for Developers and Engineers
var languages = []string{"Java", "Python", "JavaScript", "Go", "C#", "C++", "Ruby", "C"}

// GenerateJobTitles combines qualifiers and languages into job titles
func GenerateJobTitles() []string {
	var combined []string
	for _, qualifier := range qualifiers {
		for _, language := range languages {
			combined = append(combined, fmt.Sprintf("%s %s Developer", qualifier, language))
		}
	}
	return combined
}

// GenerateCandidateDocument builds a random candidate document for tests
// and local seeding.
func GenerateCandidateDocument() map[string]any {
	skills := []string{
		languages[RandomInt(0, int32(len(languages)-1))],
		languages[RandomInt(0, int32(len(languages)-1))],
	}

	return map[string]any{
		"name":               faker.Name(),
		"email":              faker.Email(),
		"mobile":             faker.Phonenumber(),
		"industry":           Industries[RandomInt(0, int32(len(Industries)-1))],
		"currentDesignation": GenerateJobTitles()[0],
		"currentLocation":    Locations[RandomInt(0, int32(len(Locations)-1))],
		"preferredLocation":  Locations[RandomInt(0, int32(len(Locations)-1))],
		"skills":             skills,
	}
}

// GenerateJobDocument builds a random job document for tests and local seeding.
func GenerateJobDocument() map[string]any {
	titles := GenerateJobTitles()
	now := time.Now().UTC().Truncate(24 * time.Hour)

	return map[string]any{
		"title":          titles[RandomInt(0, int32(len(titles)-1))],
		"description":    faker.Paragraph(),
		"department":     Departments[RandomInt(0, int32(len(Departments)-1))],
		"location":       Locations[RandomInt(0, int32(len(Locations)-1))],
		"employmentType": EmploymentTypes[RandomInt(0, int32(len(EmploymentTypes)-1))],
		"salaryMin":      RandomInt(30000, 60000),
		"salaryMax":      RandomInt(60001, 120000),
		"skillsRequired": []string{languages[RandomInt(0, int32(len(languages)-1))]},
		"postedDate":     now,
		"closingDate":    now.AddDate(0, 1, 0),
		"status":         "Open",
	}
}
