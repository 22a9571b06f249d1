package format

// Grade is the colour category of a score
type Grade string

const (
	GradeGreen  Grade = "green"
	GradeYellow Grade = "yellow"
	GradeOrange Grade = "orange"
	GradeRed    Grade = "red"
)

// GradeOf classifies score: >=80 green, >=60 yellow, >=40 orange, else red.
func GradeOf(score float64) Grade {
	switch {
	case score >= 80:
		return GradeGreen
	case score >= 60:
		return GradeYellow
	case score >= 40:
		return GradeOrange
	default:
		return GradeRed
	}
}

// ScoreColor returns the text colour class for score
func ScoreColor(score float64) string {
	return "text-" + string(GradeOf(score)) + "-600"
}

// ScoreBgColor returns the background colour class for score
func ScoreBgColor(score float64) string {
	return "bg-" + string(GradeOf(score)) + "-100"
}

var gradeColors = map[Grade]string{
	GradeGreen:  Green,
	GradeYellow: Yellow,
	GradeOrange: Orange,
	GradeRed:    Red,
}

// ANSI returns the terminal colour escape for score
func ANSI(score float64) string {
	return gradeColors[GradeOf(score)]
}
