package bedca

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// buildDoc builds the query and re-parses it so tests can make structural
// assertions instead of byte comparisons.
func buildDoc(t *testing.T, q *QueryBuilder) *etree.Element {
	t.Helper()
	out, err := q.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("built query is not well-formed XML: %v", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "foodquery" {
		t.Fatalf("expected foodquery root, got %v", root)
	}
	return root
}

func selectionNames(root *etree.Element) []string {
	var names []string
	if sel := root.SelectElement("selection"); sel != nil {
		for _, a := range sel.SelectElements("atribute") {
			names = append(names, a.SelectAttrValue("name", ""))
		}
	}
	return names
}

type condition struct {
	attr, relation, value string
}

func conditions(root *etree.Element) []condition {
	var conds []condition
	for _, c := range root.SelectElements("condition") {
		var cond condition
		if c1 := c.SelectElement("cond1"); c1 != nil {
			if a := c1.SelectElement("atribute1"); a != nil {
				cond.attr = a.SelectAttrValue("name", "")
			}
		}
		if rel := c.SelectElement("relation"); rel != nil {
			cond.relation = rel.SelectAttrValue("type", "")
		}
		if c3 := c.SelectElement("cond3"); c3 != nil {
			cond.value = strings.TrimSpace(c3.Text())
		}
		conds = append(conds, cond)
	}
	return conds
}

func TestNewQuery_Level(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview))

	typ := root.SelectElement("type")
	if typ == nil {
		t.Fatal("missing type element")
	}
	if got := typ.SelectAttrValue("level", ""); got != "1" {
		t.Errorf("expected level 1, got %q", got)
	}
}

func TestNewQuery_InvalidLevel(t *testing.T) {
	if _, err := NewQuery(Level(3)).Build(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestQueryBuilder_SelectPreservesOrder(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview).
		Select(AttrID, AttrSpanishName).
		Select(AttrEnglishName, AttrID)) // duplicates are kept

	want := []string{"f_id", "f_ori_name", "f_eng_name", "f_id"}
	got := selectionNames(root)
	if len(got) != len(want) {
		t.Fatalf("expected %d selected attributes, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selection[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestQueryBuilder_WherePreservesOrder(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview).
		Where(AttrSpanishName, RelationLike, "manzana").
		Where(AttrOrigin, RelationEqual, "BEDCA").
		Where(AttrEnglishName, RelationBeginsWith, "app"))

	want := []condition{
		{"f_ori_name", "LIKE", "manzana"},
		{"f_origen", "EQUAL", "BEDCA"},
		{"f_eng_name", "BEGINW", "app"},
	}
	got := conditions(root)
	if len(got) != len(want) {
		t.Fatalf("expected %d conditions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("condition[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestQueryBuilder_DetailLevelInjectsPublicCondition(t *testing.T) {
	tests := []struct {
		name  string
		query *QueryBuilder
	}{
		{"no other conditions", NewQuery(LevelDetail)},
		{"with other conditions", NewQuery(LevelDetail).
			Where(AttrID, RelationEqual, "2346").
			Where(AttrOrigin, RelationEqual, "BEDCA")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			public := 0
			for _, c := range conditions(buildDoc(t, tt.query)) {
				if c.attr == "publico" {
					public++
					if c.relation != "EQUAL" || c.value != "1" {
						t.Errorf("public condition malformed: %+v", c)
					}
				}
			}
			if public != 1 {
				t.Errorf("expected exactly one public condition, got %d", public)
			}
		})
	}
}

func TestQueryBuilder_PreviewLevelHasNoPublicCondition(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview).Where(AttrOrigin, RelationEqual, "BEDCA"))
	for _, c := range conditions(root) {
		if c.attr == "publico" {
			t.Errorf("preview query must not carry the public condition, got %+v", c)
		}
	}
}

func TestQueryBuilder_OrderReplacesPrior(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview).
		Order(AttrSpanishName, true).
		Order(AttrEnglishName, false))

	orders := root.SelectElements("order")
	if len(orders) != 1 {
		t.Fatalf("expected exactly one order element, got %d", len(orders))
	}
	if got := orders[0].SelectAttrValue("ordtype", ""); got != "DESC" {
		t.Errorf("expected DESC, got %q", got)
	}
	a := orders[0].SelectElement("atribute3")
	if a == nil {
		t.Fatal("missing atribute3")
	}
	if got := a.SelectAttrValue("name", ""); got != "f_eng_name" {
		t.Errorf("expected f_eng_name, got %q", got)
	}
}

func TestQueryBuilder_OrderDirections(t *testing.T) {
	tests := []struct {
		ascending bool
		want      string
	}{
		{true, "ASC"},
		{false, "DESC"},
	}

	for _, tt := range tests {
		root := buildDoc(t, NewQuery(LevelPreview).Order(AttrSpanishName, tt.ascending))
		order := root.SelectElement("order")
		if order == nil {
			t.Fatal("missing order element")
		}
		if got := order.SelectAttrValue("ordtype", ""); got != tt.want {
			t.Errorf("ascending=%v: expected %s, got %q", tt.ascending, tt.want, got)
		}
	}
}

func TestQueryBuilder_RoundTrip(t *testing.T) {
	root := buildDoc(t, NewQuery(LevelPreview).
		Select(AttrID, AttrSpanishName, AttrEnglishName, AttrOrigin).
		Where(AttrSpanishName, RelationLike, "manzana").
		Where(AttrOrigin, RelationEqual, "BEDCA").
		Order(AttrSpanishName, true))

	sel := selectionNames(root)
	wantSel := []string{"f_id", "f_ori_name", "f_eng_name", "f_origen"}
	for i := range wantSel {
		if sel[i] != wantSel[i] {
			t.Errorf("selection[%d]: expected %q, got %q", i, wantSel[i], sel[i])
		}
	}

	conds := conditions(root)
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0] != (condition{"f_ori_name", "LIKE", "manzana"}) {
		t.Errorf("unexpected first condition: %+v", conds[0])
	}
	if conds[1] != (condition{"f_origen", "EQUAL", "BEDCA"}) {
		t.Errorf("unexpected second condition: %+v", conds[1])
	}

	order := root.SelectElement("order")
	if order == nil {
		t.Fatal("missing order element")
	}
	if got := order.SelectAttrValue("ordtype", ""); got != "ASC" {
		t.Errorf("expected ASC order, got %q", got)
	}
}
