package goal

type Category string

const (
	CategoryHealth   Category = "health"
	CategoryCareer   Category = "career"
	CategoryPersonal Category = "personal"
	CategoryHobby    Category = "hobby"
)

var AllCategories = []Category{
	CategoryHealth,
	CategoryCareer,
	CategoryPersonal,
	CategoryHobby,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unknown values to the catch-all personal category.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if c.IsValid() {
		return c
	}
	return CategoryPersonal
}
