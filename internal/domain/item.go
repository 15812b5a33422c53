package domain

// Item is a recurring medication or supplement definition.
type Item struct {
	ID          int64
	UserID      int64
	Name        string
	Type        ItemType
	DosesPerDay int
	Schedule    WeekdaySet
	Notes       string
	Active      bool
}

// ItemType distinguishes medications from supplements.
type ItemType string

const (
	ItemMedication ItemType = "medication"
	ItemSupplement ItemType = "supplement"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemMedication || t == ItemSupplement
}
