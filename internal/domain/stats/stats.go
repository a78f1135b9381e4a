// Package stats defines the closed vocabulary of player attributes and
// their grouping into display categories.
package stats

import "strings"

// Value bounds for every attribute.
const (
	MinValue = 0
	MaxValue = 100
)

// Stat identifies one player attribute.
type Stat uint8

// Technical attributes.
const (
	BallControl Stat = iota
	Crossing
	Dribbling
	Finishing
	FirstTouch
	Heading
	LongShots
	Passing
	Tackling
	ShotStopping
	Handling

	// Tactical attributes.
	Positioning
	OffTheBall
	Marking
	Interceptions
	Vision
	WorkRate

	// Mental attributes.
	Anticipation
	Composure
	Decisions
	Bravery
	Leadership

	// Physical attributes.
	Acceleration
	Agility
	Jumping
	Pace
	Stamina
	Strength

	numStats
)

// Count is the number of attributes in the vocabulary.
const Count = int(numStats)

// Category groups attributes for summary averages. Categories never feed
// position scoring.
type Category uint8

// Attribute categories.
const (
	Technical Category = iota
	Tactical
	Mental
	Physical

	numCategories
)

// NumCategories is the number of attribute categories.
const NumCategories = int(numCategories)

type statInfo struct {
	name     string
	category Category
}

var statTable = [Count]statInfo{
	BallControl:   {"ball_control", Technical},
	Crossing:      {"crossing", Technical},
	Dribbling:     {"dribbling", Technical},
	Finishing:     {"finishing", Technical},
	FirstTouch:    {"first_touch", Technical},
	Heading:       {"heading", Technical},
	LongShots:     {"long_shots", Technical},
	Passing:       {"passing", Technical},
	Tackling:      {"tackling", Technical},
	ShotStopping:  {"shot_stopping", Technical},
	Handling:      {"handling", Technical},
	Positioning:   {"positioning", Tactical},
	OffTheBall:    {"off_the_ball", Tactical},
	Marking:       {"marking", Tactical},
	Interceptions: {"interceptions", Tactical},
	Vision:        {"vision", Tactical},
	WorkRate:      {"work_rate", Tactical},
	Anticipation:  {"anticipation", Mental},
	Composure:     {"composure", Mental},
	Decisions:     {"decisions", Mental},
	Bravery:       {"bravery", Mental},
	Leadership:    {"leadership", Mental},
	Acceleration:  {"acceleration", Physical},
	Agility:       {"agility", Physical},
	Jumping:       {"jumping", Physical},
	Pace:          {"pace", Physical},
	Stamina:       {"stamina", Physical},
	Strength:      {"strength", Physical},
}

var categoryNames = [NumCategories]string{
	Technical: "technical",
	Tactical:  "tactical",
	Mental:    "mental",
	Physical:  "physical",
}

var byName = func() map[string]Stat {
	m := make(map[string]Stat, Count)
	for i, info := range statTable {
		m[info.name] = Stat(i)
	}
	return m
}()

// String returns the attribute's key, e.g. "first_touch".
func (s Stat) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return statTable[s].name
}

// Valid reports whether s belongs to the vocabulary.
func (s Stat) Valid() bool { return s < numStats }

// Category returns the display category of s.
func (s Stat) Category() Category {
	if !s.Valid() {
		return Technical
	}
	return statTable[s].category
}

// All returns every attribute in declaration order.
func All() []Stat {
	out := make([]Stat, Count)
	for i := range out {
		out[i] = Stat(i)
	}
	return out
}

// Parse resolves an attribute key. Matching ignores case and surrounding
// space and treats '-' and ' ' like '_'.
func Parse(name string) (Stat, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	s, ok := byName[key]
	return s, ok
}

// String returns the category name.
func (c Category) String() string {
	if c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Technical, Tactical, Mental, Physical}
}

// Members returns the attributes belonging to c in declaration order.
func Members(c Category) []Stat {
	var out []Stat
	for i, info := range statTable {
		if info.category == c {
			out = append(out, Stat(i))
		}
	}
	return out
}
