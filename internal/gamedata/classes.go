package gamedata

import "github.com/samdwyer/hexband/internal/entity"

// ClassDef defines a unit class loaded from JSON.
type ClassDef struct {
	ID             string `json:"id"`             // Unique identifier (e.g., "tank")
	Name           string `json:"name"`           // Display name (e.g., "Tank")
	Integrity      int    `json:"integrity"`      // Starting health
	Damage         int    `json:"damage"`         // Base attack power
	Armor          int    `json:"armor"`          // Flat damage reduction
	Mobility       int    `json:"mobility"`       // Cells per turn
	MinAttackRange int    `json:"minAttackRange"` // Nearest attackable distance
	MaxAttackRange int    `json:"maxAttackRange"` // Farthest attackable distance
}

// Unit returns a fresh unit of this class.
func (c *ClassDef) Unit() entity.Unit {
	return entity.NewUnit(c.Integrity, c.Damage, c.Armor, c.Mobility, c.MinAttackRange, c.MaxAttackRange)
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadClasses loads class definitions, panicking on error.
func MustLoadClasses() []ClassDef {
	classes, err := LoadClasses()
	if err != nil {
		panic(err)
	}
	return classes
}
