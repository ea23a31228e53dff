package bedca

import (
	"errors"
	"strings"
	"testing"
)

const previewListResponse = `<?xml version="1.0" encoding="utf-8"?>
<foodresponse>
  <food>
    <f_id>2346</f_id>
    <f_ori_name>Manzana</f_ori_name>
    <f_eng_name>Apple</f_eng_name>
    <f_origen>BEDCA</f_origen>
  </food>
  <food>
    <f_id>2391</f_id>
    <f_ori_name>Manzana, zumo</f_ori_name>
    <f_eng_name>Apple juice</f_eng_name>
    <f_origen>BEDCA</f_origen>
  </food>
</foodresponse>`

func TestParsePreviewList(t *testing.T) {
	previews, err := ParsePreviewList(previewListResponse)
	if err != nil {
		t.Fatalf("ParsePreviewList failed: %v", err)
	}
	if len(previews) != 2 {
		t.Fatalf("expected 2 previews, got %d", len(previews))
	}

	want := []FoodPreview{
		{ID: "2346", NameES: "Manzana", NameEN: "Apple"},
		{ID: "2391", NameES: "Manzana, zumo", NameEN: "Apple juice"},
	}
	for i := range want {
		if previews[i] != want[i] {
			t.Errorf("preview[%d]: expected %+v, got %+v", i, want[i], previews[i])
		}
	}
}

func TestParsePreviewList_MissingFields(t *testing.T) {
	body := `<foodresponse><food><f_ori_name>Manzana</f_ori_name></food></foodresponse>`

	previews, err := ParsePreviewList(body)
	if err != nil {
		t.Fatalf("ParsePreviewList failed: %v", err)
	}
	if len(previews) != 1 {
		t.Fatalf("expected 1 preview, got %d", len(previews))
	}
	if previews[0].ID != "" || previews[0].NameEN != "" {
		t.Errorf("expected empty missing fields, got %+v", previews[0])
	}
	if previews[0].NameES != "Manzana" {
		t.Errorf("expected NameES Manzana, got %q", previews[0].NameES)
	}
}

func TestParsePreviewList_Empty(t *testing.T) {
	previews, err := ParsePreviewList(`<foodresponse></foodresponse>`)
	if err != nil {
		t.Fatalf("expected no error for empty list, got %v", err)
	}
	if len(previews) != 0 {
		t.Errorf("expected empty slice, got %d previews", len(previews))
	}
}

func TestParsePreviewList_Malformed(t *testing.T) {
	_, err := ParsePreviewList(`<foodresponse><food>`)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

// foodDetailResponse reports energy numerically, iron as a trace reading
// that also carries a numeric best estimate, and one component outside the
// vocabulary. Everything else is unreported.
const foodDetailResponse = `<?xml version="1.0" encoding="utf-8"?>
<foodresponse>
  <food>
    <f_id>2346</f_id>
    <f_ori_name>Manzana</f_ori_name>
    <f_eng_name>Apple</f_eng_name>
    <sci_name>Malus domestica</sci_name>
    <foodvalue>
      <c_eng_name>energy, total metabolisable calculated from energy-producing food components</c_eng_name>
      <best_location>198</best_location>
      <v_unit>kJ</v_unit>
      <value_type>BE</value_type>
    </foodvalue>
    <foodvalue>
      <c_eng_name>iron, total</c_eng_name>
      <best_location>0.05</best_location>
      <v_unit>mg</v_unit>
      <value_type>TR</value_type>
    </foodvalue>
    <foodvalue>
      <c_eng_name>some future component</c_eng_name>
      <best_location>12</best_location>
      <v_unit>mg</v_unit>
    </foodvalue>
  </food>
</foodresponse>`

func TestParseFood(t *testing.T) {
	food, err := ParseFood(foodDetailResponse)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}

	if food.ID != "2346" {
		t.Errorf("expected id 2346, got %q", food.ID)
	}
	if food.NameES != "Manzana" || food.NameEN != "Apple" {
		t.Errorf("unexpected names: %q / %q", food.NameES, food.NameEN)
	}
	if food.ScientificName != "Malus domestica" {
		t.Errorf("expected scientific name, got %q", food.ScientificName)
	}

	energy := food.Nutrients.Energy
	if energy.Component != ComponentEnergy {
		t.Errorf("expected energy component set, got %q", energy.Component)
	}
	if energy.Value != 198 || energy.Trace {
		t.Errorf("expected energy 198 non-trace, got %+v", energy)
	}
	if energy.Unit != "kJ" {
		t.Errorf("expected unit kJ, got %q", energy.Unit)
	}
}

func TestParseFood_TraceWinsOverBestEstimate(t *testing.T) {
	food, err := ParseFood(foodDetailResponse)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}

	iron := food.Nutrients.Iron
	if !iron.Trace {
		t.Fatal("expected iron to be a trace reading")
	}
	if iron.Value != 0 {
		t.Errorf("trace reading must not carry the numeric estimate, got %v", iron.Value)
	}
	if iron.String() != "trace" {
		t.Errorf("expected trace rendering, got %q", iron.String())
	}
}

func TestParseFood_UnreportedNutrientKeepsDefault(t *testing.T) {
	food, err := ParseFood(foodDetailResponse)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}

	zinc := food.Nutrients.Zinc
	if zinc != (FoodValue{}) {
		t.Errorf("expected zero placeholder for unreported zinc, got %+v", zinc)
	}
}

func TestParseFood_UnknownComponentSkipped(t *testing.T) {
	// Must not fail, and the unknown value must not leak into any field.
	food, err := ParseFood(foodDetailResponse)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}
	for _, v := range []FoodValue{food.Nutrients.Energy, food.Nutrients.Iron} {
		if v.Value == 12 {
			t.Errorf("unknown component leaked into a known field: %+v", v)
		}
	}
}

func TestParseFood_NotFound(t *testing.T) {
	_, err := ParseFood(`<foodresponse></foodresponse>`)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseFood_Malformed(t *testing.T) {
	_, err := ParseFood(`not xml at all <<<`)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestParseFood_MissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", `<r><food><f_ori_name>Manzana</f_ori_name><f_eng_name>Apple</f_eng_name></food></r>`},
		{"missing spanish name", `<r><food><f_id>1</f_id><f_eng_name>Apple</f_eng_name></food></r>`},
		{"missing english name", `<r><food><f_id>1</f_id><f_ori_name>Manzana</f_ori_name></food></r>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFood(tt.body)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestParseFood_OptionalScientificName(t *testing.T) {
	body := `<r><food><f_id>1</f_id><f_ori_name>Sal</f_ori_name><f_eng_name>Salt</f_eng_name></food></r>`

	food, err := ParseFood(body)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}
	if food.ScientificName != "" {
		t.Errorf("expected empty scientific name, got %q", food.ScientificName)
	}
}

func TestParseFood_UnparsableBestEstimateDefaultsToZero(t *testing.T) {
	body := `<r><food><f_id>1</f_id><f_ori_name>Sal</f_ori_name><f_eng_name>Salt</f_eng_name>
	  <foodvalue><c_eng_name>sodium</c_eng_name><best_location>n/a</best_location><v_unit>mg</v_unit></foodvalue>
	</food></r>`

	food, err := ParseFood(body)
	if err != nil {
		t.Fatalf("ParseFood failed: %v", err)
	}
	sodium := food.Nutrients.Sodium
	if sodium.Component != ComponentSodium {
		t.Fatalf("expected sodium component set, got %+v", sodium)
	}
	if sodium.Value != 0 || sodium.Trace {
		t.Errorf("expected zero value for unparsable estimate, got %+v", sodium)
	}
	if sodium.Unit != "mg" {
		t.Errorf("expected unit preserved, got %q", sodium.Unit)
	}
}

func TestFoodValue_String(t *testing.T) {
	tests := []struct {
		value FoodValue
		want  string
	}{
		{FoodValue{Trace: true, Unit: "mg"}, "trace"},
		{FoodValue{Value: 198, Unit: "kJ"}, "198 kJ"},
		{FoodValue{Value: 0.05, Unit: "mg"}, "0.05 mg"},
		{FoodValue{}, "0"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String(%+v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestLookupComponent_TrimsWhitespace(t *testing.T) {
	c, ok := lookupComponent("  zinc\n")
	if !ok || c != ComponentZinc {
		t.Errorf("expected zinc, got %q ok=%v", c, ok)
	}
	if _, ok := lookupComponent(strings.ToUpper("zinc!")); ok {
		t.Error("expected unknown component to miss")
	}
}
