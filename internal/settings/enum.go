package settings

type Theme string

const (
	ThemePastel   Theme = "pastel"
	ThemeLavender Theme = "lavender"
	ThemeMint     Theme = "mint"
	ThemePeach    Theme = "peach"
)

var AllThemes = []Theme{
	ThemePastel,
	ThemeLavender,
	ThemeMint,
	ThemePeach,
}

func (t Theme) IsValid() bool {
	for _, v := range AllThemes {
		if t == v {
			return true
		}
	}
	return false
}
