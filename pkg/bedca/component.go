package bedca

import "strings"

// Component identifies one nutrient or measurement kind in the upstream
// vocabulary. The value of each constant is the English component name
// (c_eng_name) the upstream source reports, which is the key the parser
// resolves foodvalue nodes against.
//
// The set is closed: adding a nutrient means adding a constant here, a field
// on [FoodNutrients], and an arm in the field accessor below.
type Component string

const (
	ComponentAlcohol         Component = "alcohol (ethanol)"
	ComponentEnergy          Component = "energy, total metabolisable calculated from energy-producing food components"
	ComponentFat             Component = "fat, total (total lipid)"
	ComponentProtein         Component = "protein, total"
	ComponentWater           Component = "water (moisture)"
	ComponentCarbohydrate    Component = "carbohydrate"
	ComponentFiber           Component = "fibre, total dietary"
	ComponentMonounsaturated Component = "fatty acids, total monounsaturated"
	ComponentPolyunsaturated Component = "fatty acids, total polyunsaturated"
	ComponentSaturated       Component = "fatty acids, total saturated"
	ComponentCholesterol     Component = "cholesterol"
	ComponentVitaminA        Component = "vitamin A retinol equiv. from retinol and carotenoid activities"
	ComponentVitaminD        Component = "vitamin D"
	ComponentVitaminE        Component = "vitamin E alpha-tocopherol equiv. from E vitamer activities"
	ComponentFolate          Component = "folate, total"
	ComponentNiacin          Component = "niacin equivalents, total"
	ComponentRiboflavin      Component = "riboflavin"
	ComponentThiamin         Component = "thiamin"
	ComponentVitaminB12      Component = "vitamin B-12"
	ComponentVitaminB6       Component = "vitamin B-6, total"
	ComponentVitaminC        Component = "vitamin C (ascorbic acid)"
	ComponentCalcium         Component = "calcium"
	ComponentIron            Component = "iron, total"
	ComponentPotassium       Component = "potassium"
	ComponentMagnesium       Component = "magnesium"
	ComponentSodium          Component = "sodium"
	ComponentPhosphorus      Component = "phosphorus"
	ComponentIodide          Component = "iodide"
	ComponentSelenium        Component = "selenium, total"
	ComponentZinc            Component = "zinc"
)

var components = map[string]Component{}

func init() {
	for _, c := range []Component{
		ComponentAlcohol, ComponentEnergy, ComponentFat, ComponentProtein,
		ComponentWater, ComponentCarbohydrate, ComponentFiber,
		ComponentMonounsaturated, ComponentPolyunsaturated, ComponentSaturated,
		ComponentCholesterol, ComponentVitaminA, ComponentVitaminD,
		ComponentVitaminE, ComponentFolate, ComponentNiacin,
		ComponentRiboflavin, ComponentThiamin, ComponentVitaminB12,
		ComponentVitaminB6, ComponentVitaminC, ComponentCalcium,
		ComponentIron, ComponentPotassium, ComponentMagnesium,
		ComponentSodium, ComponentPhosphorus, ComponentIodide,
		ComponentSelenium, ComponentZinc,
	} {
		components[string(c)] = c
	}
}

// lookupComponent resolves a raw c_eng_name against the known vocabulary.
// Unrecognized names return ok=false; the parser skips those values so that
// upstream additions don't break existing consumers.
func lookupComponent(name string) (Component, bool) {
	c, ok := components[strings.TrimSpace(name)]
	return c, ok
}

// field returns a pointer to the FoodNutrients field a component is recorded
// in, or nil for components outside the record.
func (n *FoodNutrients) field(c Component) *FoodValue {
	switch c {
	case ComponentAlcohol:
		return &n.Alcohol
	case ComponentEnergy:
		return &n.Energy
	case ComponentFat:
		return &n.Fat
	case ComponentProtein:
		return &n.Protein
	case ComponentWater:
		return &n.Water
	case ComponentCarbohydrate:
		return &n.Carbohydrate
	case ComponentFiber:
		return &n.Fiber
	case ComponentMonounsaturated:
		return &n.MonounsaturatedFat
	case ComponentPolyunsaturated:
		return &n.PolyunsaturatedFat
	case ComponentSaturated:
		return &n.SaturatedFat
	case ComponentCholesterol:
		return &n.Cholesterol
	case ComponentVitaminA:
		return &n.VitaminA
	case ComponentVitaminD:
		return &n.VitaminD
	case ComponentVitaminE:
		return &n.VitaminE
	case ComponentFolate:
		return &n.Folate
	case ComponentNiacin:
		return &n.Niacin
	case ComponentRiboflavin:
		return &n.Riboflavin
	case ComponentThiamin:
		return &n.Thiamin
	case ComponentVitaminB12:
		return &n.VitaminB12
	case ComponentVitaminB6:
		return &n.VitaminB6
	case ComponentVitaminC:
		return &n.VitaminC
	case ComponentCalcium:
		return &n.Calcium
	case ComponentIron:
		return &n.Iron
	case ComponentPotassium:
		return &n.Potassium
	case ComponentMagnesium:
		return &n.Magnesium
	case ComponentSodium:
		return &n.Sodium
	case ComponentPhosphorus:
		return &n.Phosphorus
	case ComponentIodide:
		return &n.Iodide
	case ComponentSelenium:
		return &n.Selenium
	case ComponentZinc:
		return &n.Zinc
	}
	return nil
}
