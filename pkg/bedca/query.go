package bedca

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Level selects the response shape of a query.
type Level int

const (
	// LevelPreview returns only the selected food-level scalars.
	LevelPreview Level = 1
	// LevelDetail returns full food records including all nutrient values.
	LevelDetail Level = 2
)

// publicFlagValue marks records released for public consumption. The
// upstream protocol requires detail queries to filter on it.
const publicFlagValue = "1"

// QueryBuilder assembles one foodquery request document. The upstream
// service has no query language; it accepts a fixed XML grammar of sibling
// type/selection/condition/order elements, and the builder exists to emit
// that grammar well-formed and correctly ordered.
//
// Builders are single-use: build a fresh one per request. Selections and
// conditions serialize in call order; a later Order replaces an earlier one.
type QueryBuilder struct {
	doc       *etree.Document
	root      *etree.Element
	selection *etree.Element
	order     *etree.Element
	err       error
}

// NewQuery starts a query at the given detail level.
//
// For [LevelDetail] the builder unconditionally adds the mandatory condition
// restricting results to publicly released records; the upstream protocol
// rejects detail queries without it.
func NewQuery(level Level) *QueryBuilder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("foodquery")
	root.CreateElement("type").CreateAttr("level", strconv.Itoa(int(level)))

	q := &QueryBuilder{
		doc:       doc,
		root:      root,
		selection: root.CreateElement("selection"),
	}
	if level != LevelPreview && level != LevelDetail {
		q.err = fmt.Errorf("invalid query level %d", level)
		return q
	}
	if level == LevelDetail {
		q.Where(AttrPublic, RelationEqual, publicFlagValue)
	}
	return q
}

// Select appends attributes to the selection list in the given order.
// Duplicates are kept as-is; the upstream tolerates repeated fields.
func (q *QueryBuilder) Select(attrs ...Attribute) *QueryBuilder {
	for _, attr := range attrs {
		q.selection.CreateElement("atribute").CreateAttr("name", string(attr))
	}
	return q
}

// Where appends one filter condition. Conditions accumulate conjunctively
// and serialize in the order they were added.
func (q *QueryBuilder) Where(attr Attribute, rel Relation, value string) *QueryBuilder {
	cond := q.root.CreateElement("condition")
	cond.CreateElement("cond1").CreateElement("atribute1").CreateAttr("name", string(attr))
	cond.CreateElement("relation").CreateAttr("type", string(rel))
	cond.CreateElement("cond3").SetText(value)
	return q
}

// Order sets the sort specification, replacing any previously set one.
func (q *QueryBuilder) Order(attr Attribute, ascending bool) *QueryBuilder {
	if q.order != nil {
		q.root.RemoveChild(q.order)
	}
	dir := "ASC"
	if !ascending {
		dir = "DESC"
	}
	q.order = q.root.CreateElement("order")
	q.order.CreateAttr("ordtype", dir)
	q.order.CreateElement("atribute3").CreateAttr("name", string(attr))
	return q
}

// Build serializes the accumulated query to its wire form. The builder is
// not reusable afterwards.
func (q *QueryBuilder) Build() (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.doc.Indent(2)
	return q.doc.WriteToString()
}
