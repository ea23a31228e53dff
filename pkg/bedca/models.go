package bedca

import (
	"fmt"
	"strconv"
)

// FoodValue is one nutrient measurement.
//
// When Trace is true the source reported the nutrient as present but below
// its quantification threshold; Value is meaningless in that case and the
// measurement renders as "trace". Otherwise Value holds the source's best
// estimate, defaulting to zero when the estimate was absent or unparsable.
//
// A zero FoodValue (Component unset, Value 0, empty Unit) is the placeholder
// for nutrients the source never reported.
type FoodValue struct {
	Component Component `json:"component,omitempty"`
	Value     float64   `json:"value"`
	Trace     bool      `json:"trace,omitempty"`
	Unit      string    `json:"unit,omitempty"`
}

// String renders the measurement for display: "trace" for trace readings,
// otherwise the numeric value followed by the unit (if any).
func (v FoodValue) String() string {
	if v.Trace {
		return "trace"
	}
	s := strconv.FormatFloat(v.Value, 'f', -1, 64)
	if v.Unit == "" {
		return s
	}
	return fmt.Sprintf("%s %s", s, v.Unit)
}

// FoodNutrients holds every nutrient the vocabulary knows, per 100 g of
// edible portion. The record is total: fields for nutrients the source did
// not report keep the zero FoodValue rather than being absent, so the struct
// is safe to consume without nil checks. Whether a zero means "measured as
// zero" or "not reported" can only be told apart by checking Component.
type FoodNutrients struct {
	// Proximals
	Alcohol FoodValue `json:"alcohol"`
	Energy  FoodValue `json:"energy"`
	Fat     FoodValue `json:"fat"`
	Protein FoodValue `json:"protein"`
	Water   FoodValue `json:"water"`

	// Carbohydrates
	Carbohydrate FoodValue `json:"carbohydrate"`
	Fiber        FoodValue `json:"fiber"`

	// Fats
	MonounsaturatedFat FoodValue `json:"monounsaturated_fat"`
	PolyunsaturatedFat FoodValue `json:"polyunsaturated_fat"`
	SaturatedFat       FoodValue `json:"saturated_fat"`
	Cholesterol        FoodValue `json:"cholesterol"`

	// Vitamins
	VitaminA   FoodValue `json:"vitamin_a"`
	VitaminD   FoodValue `json:"vitamin_d"`
	VitaminE   FoodValue `json:"vitamin_e"`
	Folate     FoodValue `json:"folate"`
	Niacin     FoodValue `json:"niacin"`
	Riboflavin FoodValue `json:"riboflavin"`
	Thiamin    FoodValue `json:"thiamin"`
	VitaminB12 FoodValue `json:"vitamin_b12"`
	VitaminB6  FoodValue `json:"vitamin_b6"`
	VitaminC   FoodValue `json:"vitamin_c"`

	// Minerals
	Calcium    FoodValue `json:"calcium"`
	Iron       FoodValue `json:"iron"`
	Potassium  FoodValue `json:"potassium"`
	Magnesium  FoodValue `json:"magnesium"`
	Sodium     FoodValue `json:"sodium"`
	Phosphorus FoodValue `json:"phosphorus"`
	Iodide     FoodValue `json:"iodide"`
	Selenium   FoodValue `json:"selenium"`
	Zinc       FoodValue `json:"zinc"`
}

// FoodPreview is the lightweight food record returned by list and search
// queries. Fields may be empty when the source record is incomplete.
type FoodPreview struct {
	ID     string `json:"id"`
	NameES string `json:"name_es"`
	NameEN string `json:"name_en"`
}

// Food is a complete food record with its full nutrient profile.
// ScientificName is empty for foods that don't have one.
type Food struct {
	ID             string        `json:"id"`
	NameES         string        `json:"name_es"`
	NameEN         string        `json:"name_en"`
	ScientificName string        `json:"scientific_name,omitempty"`
	Nutrients      FoodNutrients `json:"nutrients"`
}
