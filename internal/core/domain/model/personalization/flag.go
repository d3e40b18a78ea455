package personalization

// FlagType names the kind of rule violation.
type FlagType string

const (
	MissingPersonalization FlagType = "MissingPersonalization"
	InvalidPersonalization FlagType = "InvalidPersonalization"
	BadCharacter           FlagType = "BadCharacter"
)

// Flag is a diagnostic about one property. Value is set for
// InvalidPersonalization and Pattern for BadCharacter.
type Flag struct {
	Type     FlagType
	Property string
	Value    string
	Pattern  string
}

func NewMissingFlag(property string) Flag {
	return Flag{Type: MissingPersonalization, Property: property}
}

func NewInvalidFlag(property, value string) Flag {
	return Flag{Type: InvalidPersonalization, Property: property, Value: value}
}

func NewBadCharacterFlag(property, pattern string) Flag {
	return Flag{Type: BadCharacter, Property: property, Pattern: pattern}
}

func (f Flag) String() string {
	switch f.Type {
	case InvalidPersonalization:
		return string(f.Type) + " " + f.Property + "=" + f.Value
	case BadCharacter:
		return string(f.Type) + " " + f.Property + " !~ " + f.Pattern
	default:
		return string(f.Type) + " " + f.Property
	}
}
