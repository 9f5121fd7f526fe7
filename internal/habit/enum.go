package habit

type Category string

const (
	CategoryHealth       Category = "HEALTH"
	CategoryFitness      Category = "FITNESS"
	CategoryNutrition    Category = "NUTRITION"
	CategorySleep        Category = "SLEEP"
	CategoryMindfulness  Category = "MINDFULNESS"
	CategoryProductivity Category = "PRODUCTIVITY"
	CategorySocial       Category = "SOCIAL"
	CategoryOther        Category = "OTHER"
)

var AllCategories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryNutrition,
	CategorySleep,
	CategoryMindfulness,
	CategoryProductivity,
	CategorySocial,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

var AllFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
}

func (f Frequency) IsValid() bool {
	for _, v := range AllFrequencies {
		if f == v {
			return true
		}
	}
	return false
}
