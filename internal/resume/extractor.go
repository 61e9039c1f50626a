// Package resume extracts a rough candidate profile from plain resume text
// using keyword and pattern matching. It is deliberately heuristic: the
// output only enriches interview metadata, the oracle reads the resume
// itself.
package resume

import (
	"regexp"
	"strings"
)

// Profile is what the heuristic scan could recognize in the text.
type Profile struct {
	Skills     []string
	Experience []Experience
	Education  []string
}

// Experience is one probable role line with the nearest period found.
type Experience struct {
	Title    string
	Duration string
}

const maxExperienceEntries = 5

var skillKeywords = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust", "Swift", "Kotlin",
	// Frontend
	"React", "Angular", "Vue", "Svelte", "jQuery", "Next.js", "Nuxt.js", "Gatsby",
	// Backend
	"Node.js", "Express", "Django", "Flask", "Spring", "Laravel", "Rails", "FastAPI", "Gin",
	// Styling
	"HTML", "CSS", "SASS", "SCSS", "Bootstrap", "Tailwind", "Material-UI",
	// Databases
	"MongoDB", "MySQL", "PostgreSQL", "Redis", "SQLite", "Oracle", "DynamoDB",
	// Cloud and infra
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "CI/CD", "Terraform",
	// Tooling and process
	"Git", "GitHub", "GitLab", "Jira", "Agile", "Scrum",
	// Data
	"Machine Learning", "Data Science", "TensorFlow", "PyTorch", "Pandas",
	// APIs
	"REST API", "GraphQL", "gRPC", "Microservices",
}

var (
	roleRe      = regexp.MustCompile(`(?i)\b(developer|engineer|analyst|manager|intern|consultant|specialist)\b`)
	domainRe    = regexp.MustCompile(`(?i)\b(software|web|mobile|data|full.?stack|front.?end|back.?end)\b`)
	yearRe      = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	monthRe     = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
	educationRe = regexp.MustCompile(`(?i)\b(bachelor|master|phd|degree|university|college|institute|b\.?s|m\.?s|b\.?a|m\.?a|b\.?tech|m\.?tech)\b`)
)

// Extract scans the text and returns whatever profile pieces it recognizes.
func Extract(text string) Profile {
	return Profile{
		Skills:     ExtractSkills(text),
		Experience: ExtractExperience(text),
		Education:  ExtractEducation(text),
	}
}

// ExtractSkills returns the known skill terms present in the text, each
// matched on word boundaries, deduplicated in list order.
func ExtractSkills(text string) []string {
	var found []string
	for _, skill := range skillKeywords {
		pattern := `(?i)(^|[^\w])` + regexp.QuoteMeta(skill) + `($|[^\w])`
		if matched, _ := regexp.MatchString(pattern, text); matched {
			found = append(found, skill)
		}
	}
	return found
}

// ExtractExperience finds lines that look like role titles and pairs each
// with the closest line carrying a year or month, capped at
// maxExperienceEntries.
func ExtractExperience(text string) []Experience {
	lines := strings.Split(text, "\n")
	var experiences []Experience

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || (!roleRe.MatchString(line) && !domainRe.MatchString(line)) {
			continue
		}

		exp := Experience{Title: line}
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		hi := i + 3
		if hi > len(lines) {
			hi = len(lines)
		}
		for j := lo; j < hi; j++ {
			if yearRe.MatchString(lines[j]) || monthRe.MatchString(lines[j]) {
				exp.Duration = strings.TrimSpace(lines[j])
				break
			}
		}

		experiences = append(experiences, exp)
		if len(experiences) == maxExperienceEntries {
			break
		}
	}
	return experiences
}

// ExtractEducation returns lines mentioning degrees or institutions.
func ExtractEducation(text string) []string {
	var education []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" && educationRe.MatchString(line) {
			education = append(education, line)
		}
	}
	return education
}
