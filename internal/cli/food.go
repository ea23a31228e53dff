package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gobedca/gobedca/pkg/bedca"
	errs "github.com/gobedca/gobedca/pkg/errors"
)

// foodCommand creates the "food" command showing one full nutrient profile.
func (c *CLI) foodCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "food <id>",
		Short: "Show the full nutrient profile of one food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := errs.ValidateFoodID(args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			client := c.newClient(cmd)

			prog := newProgress(logger)
			sp := newSpinner(cmd.Context(), fmt.Sprintf("Fetching food %d...", id))
			sp.Start()
			food, err := client.GetFoodByID(cmd.Context(), id)
			sp.Stop()
			if err != nil {
				return describeError(err)
			}
			prog.done(fmt.Sprintf("Fetched %s", food.NameES))

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), food)
			}
			renderFood(food)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

// nutrientRow is one display row of the profile table.
type nutrientRow struct {
	group string
	label string
	value bedca.FoodValue
}

// nutrientRows flattens the total nutrient record for display, preserving
// the record's grouping.
func nutrientRows(n bedca.FoodNutrients) []nutrientRow {
	return []nutrientRow{
		{"Proximals", "Alcohol", n.Alcohol},
		{"Proximals", "Energy", n.Energy},
		{"Proximals", "Fat", n.Fat},
		{"Proximals", "Protein", n.Protein},
		{"Proximals", "Water", n.Water},
		{"Carbohydrates", "Carbohydrate", n.Carbohydrate},
		{"Carbohydrates", "Fiber", n.Fiber},
		{"Fats", "Monounsaturated fat", n.MonounsaturatedFat},
		{"Fats", "Polyunsaturated fat", n.PolyunsaturatedFat},
		{"Fats", "Saturated fat", n.SaturatedFat},
		{"Fats", "Cholesterol", n.Cholesterol},
		{"Vitamins", "Vitamin A", n.VitaminA},
		{"Vitamins", "Vitamin D", n.VitaminD},
		{"Vitamins", "Vitamin E", n.VitaminE},
		{"Vitamins", "Folate", n.Folate},
		{"Vitamins", "Niacin", n.Niacin},
		{"Vitamins", "Riboflavin", n.Riboflavin},
		{"Vitamins", "Thiamin", n.Thiamin},
		{"Vitamins", "Vitamin B12", n.VitaminB12},
		{"Vitamins", "Vitamin B6", n.VitaminB6},
		{"Vitamins", "Vitamin C", n.VitaminC},
		{"Minerals", "Calcium", n.Calcium},
		{"Minerals", "Iron", n.Iron},
		{"Minerals", "Potassium", n.Potassium},
		{"Minerals", "Magnesium", n.Magnesium},
		{"Minerals", "Sodium", n.Sodium},
		{"Minerals", "Phosphorus", n.Phosphorus},
		{"Minerals", "Iodide", n.Iodide},
		{"Minerals", "Selenium", n.Selenium},
		{"Minerals", "Zinc", n.Zinc},
	}
}

// formatValue renders a measurement for the table. Nutrients the source
// never reported (unset component) show as a dash rather than a fake zero.
func formatValue(v bedca.FoodValue) string {
	if v.Component == "" {
		return "—"
	}
	return v.String()
}

// renderFood prints the food header and its grouped nutrient table.
func renderFood(food *bedca.Food) {
	fmt.Println(StyleTitle.Render(food.NameES))
	printKeyValue("English name", food.NameEN)
	if food.ScientificName != "" {
		printKeyValue("Scientific name", food.ScientificName)
	}
	printKeyValue("BEDCA id", food.ID)
	fmt.Println()

	rows := nutrientRows(food.Nutrients)
	data := make([][]string, 0, len(rows))
	lastGroup := ""
	for _, r := range rows {
		group := ""
		if r.group != lastGroup {
			group = r.group
			lastGroup = r.group
		}
		data = append(data, []string{group, r.label, formatValue(r.value)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Group", "Nutrient", "Per 100 g").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleDim
			case 2:
				return StyleValue
			}
			return lipgloss.NewStyle()
		})
	fmt.Println(t.Render())
	printDetail("Values per 100 g of edible portion · — not reported by the source")
}
