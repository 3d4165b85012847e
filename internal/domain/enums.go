package domain

// Difficulty is the declared difficulty of a vocabulary list.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Score maps the difficulty onto the per-word difficulty_score column:
// beginner 1, intermediate 3, advanced 5. Unknown values score 0.
func (d Difficulty) Score() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 3
	case DifficultyAdvanced:
		return 5
	}
	return 0
}

// CardType identifies which prompt template produced a flashcard.
type CardType string

const (
	CardTypeDefinition CardType = "definition"
	CardTypeExample    CardType = "example"
	CardTypeSynonym    CardType = "synonym"
	CardTypeAntonym    CardType = "antonym"
)

func (c CardType) String() string { return string(c) }

func (c CardType) IsValid() bool {
	switch c {
	case CardTypeDefinition, CardTypeExample, CardTypeSynonym, CardTypeAntonym:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
