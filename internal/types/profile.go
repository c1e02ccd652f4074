// Package types provides type definitions for candidate/vacancy profiles,
// match ledger rows, and API request shapes used throughout the jobswipe engine.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SkillLevel represents proficiency in a single skill.
type SkillLevel string

// Skill level constants, ordered Beginner < Intermediate < Advanced.
const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

// skillOrdinals maps skill levels to numeric ranks for comparison.
var skillOrdinals = map[SkillLevel]int{
	SkillBeginner:     1,
	SkillIntermediate: 2,
	SkillAdvanced:     3,
}

// ParseSkillLevel converts a raw string to a SkillLevel, returning an error
// for unknown values.
func ParseSkillLevel(s string) (SkillLevel, error) {
	l := SkillLevel(s)
	if _, ok := skillOrdinals[l]; !ok {
		return "", fmt.Errorf("unknown skill level %q", s)
	}
	return l, nil
}

// Ordinal returns the numeric rank of the level (Beginner=1 .. Advanced=3).
// Unknown levels rank 0, below every valid level.
func (l SkillLevel) Ordinal() int {
	return skillOrdinals[l]
}

// EducationLevel represents the highest education attained or required.
type EducationLevel string

// Education level constants, totally ordered None < HighSchool < Bachelor < Master < PhD.
const (
	EducationNone       EducationLevel = "None"
	EducationHighSchool EducationLevel = "HighSchool"
	EducationBachelor   EducationLevel = "Bachelor"
	EducationMaster     EducationLevel = "Master"
	EducationPhD        EducationLevel = "PhD"
)

// educationRanks maps education levels to numeric ranks for comparison.
var educationRanks = map[EducationLevel]int{
	EducationNone:       0,
	EducationHighSchool: 1,
	EducationBachelor:   2,
	EducationMaster:     3,
	EducationPhD:        4,
}

// ParseEducationLevel converts a raw string to an EducationLevel, returning an
// error for unknown values.
func ParseEducationLevel(s string) (EducationLevel, error) {
	l := EducationLevel(s)
	if _, ok := educationRanks[l]; !ok {
		return "", fmt.Errorf("unknown education level %q", s)
	}
	return l, nil
}

// Rank returns the numeric rank of the level (None=0 .. PhD=4).
func (l EducationLevel) Rank() int {
	return educationRanks[l]
}

// CandidateSkill is one skill a candidate claims, with a proficiency level.
type CandidateSkill struct {
	Name  string     `json:"name" validate:"required"`
	Level SkillLevel `json:"level" validate:"oneof=Beginner Intermediate Advanced"`
}

// VacancySkill is one skill a vacancy asks for. Weight (1-5) encodes employer
// priority; required and good-to-have entries differ only by weight.
type VacancySkill struct {
	Name   string     `json:"name" validate:"required"`
	Level  SkillLevel `json:"level" validate:"oneof=Beginner Intermediate Advanced"`
	Weight int        `json:"weight" validate:"min=1,max=5"`
}

// CandidateProfile is an immutable snapshot of a candidate used per scoring
// call. The engine never mutates a profile.
type CandidateProfile struct {
	ID                uuid.UUID        `json:"id"`
	LocationCityID    string           `json:"location_city_id" validate:"required"`
	SalaryMin         int              `json:"salary_min" validate:"min=0"`
	WillingToRelocate bool             `json:"willing_to_relocate"`
	ExperienceMonths  int              `json:"experience_months" validate:"min=0"`
	EducationLevel    EducationLevel   `json:"education_level" validate:"oneof=None HighSchool Bachelor Master PhD"`
	WorkTypes         []string         `json:"work_types,omitempty"`
	Skills            []CandidateSkill `json:"skills,omitempty" validate:"dive"`
}

// SkillByName looks up a candidate skill by case-insensitive name.
// Duplicate names resolve first-match-wins.
func (p *CandidateProfile) SkillByName(name string) (CandidateSkill, bool) {
	for _, s := range p.Skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return CandidateSkill{}, false
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// VacancyProfile is an immutable snapshot of a vacancy used per scoring call.
type VacancyProfile struct {
	ID                       uuid.UUID      `json:"id"`
	CompanyID                uuid.UUID      `json:"company_id"`
	Title                    string         `json:"title,omitempty"`
	LocationCityID           string         `json:"location_city_id" validate:"required"`
	IsRemote                 bool           `json:"is_remote"`
	SalaryMax                int            `json:"salary_max" validate:"min=0"`
	RequiredExperienceMonths int            `json:"required_experience_months" validate:"min=0"`
	RequiredEducationLevel   EducationLevel `json:"required_education_level" validate:"oneof=None HighSchool Bachelor Master PhD"`
	WorkType                 string         `json:"work_type,omitempty"`
	Skills                   []VacancySkill `json:"skills,omitempty" validate:"dive"`
}

// Validate validates the VacancyProfile using the validator.
func (p *VacancyProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
