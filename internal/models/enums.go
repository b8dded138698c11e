package models

// RelationshipPhase is the fixed set of phases a partner relationship can be
// in. The set is closed; adding or removing a value is a schema version bump.
type RelationshipPhase string

const (
	PhaseBeginning RelationshipPhase = "beginning"
	PhaseCourting  RelationshipPhase = "courting"
	PhaseExclusive RelationshipPhase = "exclusive"
	PhaseCasual    RelationshipPhase = "casual"
	PhasePatching  RelationshipPhase = "patching"
)

// RelationshipPhases lists every valid phase in presentation order.
var RelationshipPhases = []RelationshipPhase{
	PhaseBeginning,
	PhaseCourting,
	PhaseExclusive,
	PhaseCasual,
	PhasePatching,
}

// Valid reports whether p is one of the fixed phases.
func (p RelationshipPhase) Valid() bool {
	for _, v := range RelationshipPhases {
		if p == v {
			return true
		}
	}
	return false
}

// DateExperience is the fixed set of experiences the planner lets a user pick.
type DateExperience string

const (
	ExperienceRomantic   DateExperience = "Romantic"
	ExperienceFunNight   DateExperience = "Fun Night"
	ExperienceDeepTalk   DateExperience = "Deep Talk"
	ExperienceImpress    DateExperience = "Impress"
	ExperienceSurpriseMe DateExperience = "Surprise Me"
	ExperienceOutdoors   DateExperience = "Outdoors"
	ExperienceLowKey     DateExperience = "Low-key"
)

// DateExperiences lists every valid experience in presentation order.
var DateExperiences = []DateExperience{
	ExperienceRomantic,
	ExperienceFunNight,
	ExperienceDeepTalk,
	ExperienceImpress,
	ExperienceSurpriseMe,
	ExperienceOutdoors,
	ExperienceLowKey,
}

// Valid reports whether e is one of the fixed experiences.
func (e DateExperience) Valid() bool {
	for _, v := range DateExperiences {
		if e == v {
			return true
		}
	}
	return false
}
