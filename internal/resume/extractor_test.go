package resume

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
Senior Software Engineer

EXPERIENCE
Backend Developer at Acme Corp
Jan 2021 - Present
Built Go services with PostgreSQL and Redis, deployed on Kubernetes.

Web Developer Intern
2019 - 2020
React frontend work with TypeScript.

EDUCATION
Bachelor of Science in Computer Science, State University, 2019
`

func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills(sampleResume)

	for _, want := range []string{"Go", "PostgreSQL", "Redis", "Kubernetes", "React", "TypeScript"} {
		found := false
		for _, s := range skills {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("skill %q not extracted, got %v", want, skills)
		}
	}
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	// "Go" must not match inside other words.
	skills := ExtractSkills("Category management and Golang-free Django work")
	for _, s := range skills {
		if s == "Go" {
			t.Errorf("substring match leaked: %v", skills)
		}
	}

	// Exact term with punctuation around it still matches.
	skills = ExtractSkills("Stack: Go, Django.")
	hasGo := false
	for _, s := range skills {
		if s == "Go" {
			hasGo = true
		}
	}
	if !hasGo {
		t.Errorf("expected Go in %v", skills)
	}
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	skills := ExtractSkills("experience with POSTGRESQL and docker")
	want := map[string]bool{"PostgreSQL": false, "Docker": false}
	for _, s := range skills {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for skill, found := range want {
		if !found {
			t.Errorf("skill %q not matched case-insensitively: %v", skill, skills)
		}
	}
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	skills := ExtractSkills("React, React, and more React")
	count := 0
	for _, s := range skills {
		if s == "React" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("React appears %d times, want 1", count)
	}
}

func TestExtractExperience(t *testing.T) {
	experiences := ExtractExperience(sampleResume)
	if len(experiences) == 0 {
		t.Fatal("no experience extracted")
	}

	var withDuration int
	for _, exp := range experiences {
		if exp.Title == "" {
			t.Errorf("experience entry without a title: %+v", exp)
		}
		if exp.Duration != "" {
			withDuration++
		}
	}
	if withDuration == 0 {
		t.Error("no experience entry picked up a nearby duration line")
	}
}

func TestExtractExperienceCapped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("Software Engineer at Company\n2020\n")
	}
	experiences := ExtractExperience(b.String())
	if len(experiences) != maxExperienceEntries {
		t.Errorf("experience entries = %d, want cap of %d", len(experiences), maxExperienceEntries)
	}
}

func TestExtractEducation(t *testing.T) {
	education := ExtractEducation(sampleResume)
	if len(education) != 1 {
		t.Fatalf("education lines = %d, want 1: %v", len(education), education)
	}
	if !strings.Contains(education[0], "Bachelor of Science") {
		t.Errorf("education line = %q", education[0])
	}
}

func TestExtractEmptyText(t *testing.T) {
	profile := Extract("")
	if len(profile.Skills) != 0 || len(profile.Experience) != 0 || len(profile.Education) != 0 {
		t.Errorf("empty text produced a non-empty profile: %+v", profile)
	}
}
