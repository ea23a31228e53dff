package bedca

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Sentinel errors returned by parsing and client operations.
var (
	// ErrNotFound is returned when a detail query matches no food record.
	// It means "unknown id", not protocol breakage.
	ErrNotFound = errors.New("food not found")

	// ErrMalformedResponse is returned when a response body is not
	// well-formed XML or a record is missing mandatory fields.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNetwork is returned for HTTP failures and non-2xx responses.
	ErrNetwork = errors.New("network error")
)

// traceValueType is the upstream value-type flag marking a reading as
// present but below the quantification threshold.
const traceValueType = "TR"

// ParsePreviewList parses a list-query response into food previews, in
// document order. Records with missing fields still yield a preview with the
// corresponding fields empty; an empty response yields an empty slice.
func ParsePreviewList(body string) ([]FoodPreview, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}

	records := root.SelectElements("food")
	previews := make([]FoodPreview, 0, len(records))
	for _, rec := range records {
		previews = append(previews, FoodPreview{
			ID:     childText(rec, AttrID),
			NameES: childText(rec, AttrSpanishName),
			NameEN: childText(rec, AttrEnglishName),
		})
	}
	return previews, nil
}

// ParseFood parses a detail-query response into a complete Food.
//
// It returns [ErrNotFound] when the response contains no food record, and
// [ErrMalformedResponse] when the document cannot be parsed or the record is
// missing its identifier or either name. A missing scientific name is fine.
//
// Nutrient values whose component name is not in the known vocabulary are
// skipped silently, keeping the parser forward-compatible with upstream
// additions. Known nutrients that never appear keep their zero placeholder,
// so the returned record is always total.
func ParseFood(body string) (*Food, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}

	rec := root.SelectElement("food")
	if rec == nil {
		return nil, ErrNotFound
	}

	food := &Food{
		ID:             childText(rec, AttrID),
		NameES:         childText(rec, AttrSpanishName),
		NameEN:         childText(rec, AttrEnglishName),
		ScientificName: childText(rec, AttrScientificName),
	}
	if food.ID == "" || food.NameES == "" || food.NameEN == "" {
		return nil, fmt.Errorf("%w: food record missing id or name", ErrMalformedResponse)
	}

	for _, node := range rec.SelectElements("foodvalue") {
		component, ok := lookupComponent(childText(node, AttrComponentNameEN))
		if !ok {
			continue
		}
		if target := food.Nutrients.field(component); target != nil {
			*target = parseFoodValue(node, component)
		}
	}
	return food, nil
}

// parseFoodValue extracts one nutrient measurement. The trace flag wins over
// any numeric best-estimate; otherwise the estimate is parsed, defaulting to
// zero when absent or unparsable.
func parseFoodValue(node *etree.Element, component Component) FoodValue {
	v := FoodValue{
		Component: component,
		Unit:      childText(node, AttrValueUnit),
	}
	if childText(node, AttrValueType) == traceValueType {
		v.Trace = true
		return v
	}
	if f, err := strconv.ParseFloat(childText(node, AttrBestLocation), 64); err == nil {
		v.Value = f
	}
	return v
}

func parseRoot(body string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedResponse)
	}
	return root, nil
}

func childText(el *etree.Element, attr Attribute) string {
	if c := el.SelectElement(string(attr)); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
