package model

// Category groups tasks by area (work, health, study, etc.). The set is
// closed and not user-extensible.
type Category string

const (
	CategoryWork     Category = "Работа"
	CategoryPersonal Category = "Личное"
	CategoryStudy    Category = "Учеба"
	CategoryHealth   Category = "Здоровье"
	CategoryShopping Category = "Покупки"
)

// Categories lists all known categories in menu order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryShopping}
}

// IsValid reports whether c belongs to the fixed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryShopping:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Icon returns the emoji shown next to the category name.
func (c Category) Icon() string {
	switch c {
	case CategoryStudy:
		return "🎓"
	case CategoryWork:
		return "💼"
	case CategoryShopping:
		return "🛒"
	case CategoryHealth:
		return "🩺"
	case CategoryPersonal:
		return "🧩"
	default:
		return "🏷️"
	}
}
