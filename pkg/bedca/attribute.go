package bedca

// Attribute names a queryable field in the upstream BEDCA schema. The value
// of each constant is the literal field token the wire protocol expects.
// The set is closed: the upstream schema is fixed and attributes are never
// constructed dynamically.
type Attribute string

// Food-level attributes.
const (
	AttrID             Attribute = "f_id"
	AttrSpanishName    Attribute = "f_ori_name"
	AttrEnglishName    Attribute = "f_eng_name"
	AttrScientificName Attribute = "sci_name"
	AttrLangual        Attribute = "langual"
	AttrFoodExCode     Attribute = "foodexcode"
	AttrMainLevelCode  Attribute = "mainlevelcode"
	AttrCodeLevel1     Attribute = "codlevel1"
	AttrNameLevel1     Attribute = "namelevel1"
	AttrCodeSublevel   Attribute = "codsublevel"
	AttrCodeLevel2     Attribute = "codlevel2"
	AttrNameLevel2     Attribute = "namelevel2"
	AttrDescriptionES  Attribute = "f_des_esp"
	AttrDescriptionEN  Attribute = "f_des_ing"
	AttrPhoto          Attribute = "photo"
	AttrEdiblePortion  Attribute = "edible_portion"
	AttrOrigin         Attribute = "f_origen"
	AttrPublic         Attribute = "publico"
)

// Component and measurement attributes.
const (
	AttrComponentID       Attribute = "c_id"
	AttrComponentNameES   Attribute = "c_ori_name"
	AttrComponentNameEN   Attribute = "c_eng_name"
	AttrEurName           Attribute = "eur_name"
	AttrComponentGroupID  Attribute = "componentgroup_id"
	AttrGlossaryES        Attribute = "glos_esp"
	AttrGlossaryEN        Attribute = "glos_ing"
	AttrGroupNameES       Attribute = "cg_descripcion"
	AttrGroupNameEN       Attribute = "cg_description"
	AttrBestLocation      Attribute = "best_location"
	AttrValueUnit         Attribute = "v_unit"
	AttrMoex              Attribute = "moex"
	AttrStandardDeviation Attribute = "stdv"
	AttrMinValue          Attribute = "min"
	AttrMaxValue          Attribute = "max"
	AttrNValue            Attribute = "v_n"
	AttrUnitID            Attribute = "u_id"
	AttrUnitNameES        Attribute = "u_descripcion"
	AttrUnitNameEN        Attribute = "u_description"
	AttrValueType         Attribute = "value_type"
	AttrValueTypeDescES   Attribute = "vt_descripcion"
	AttrValueTypeDescEN   Attribute = "vt_description"
	AttrMeasureUnitID     Attribute = "mu_id"
	AttrMeasureUnitDescES Attribute = "mu_descripcion"
	AttrMeasureUnitDescEN Attribute = "mu_description"
	AttrReferenceID       Attribute = "ref_id"
	AttrCitation          Attribute = "citation"
	AttrAcquisitionTypeES Attribute = "at_descripcion"
	AttrAcquisitionTypeEN Attribute = "at_description"
	AttrPublicationTypeES Attribute = "pt_descripcion"
	AttrPublicationTypeEN Attribute = "pt_description"
	AttrMethodID          Attribute = "method_id"
	AttrMethodTypeES      Attribute = "mt_descripcion"
	AttrMethodTypeEN      Attribute = "mt_description"
	AttrMethodDescES      Attribute = "m_descripcion"
	AttrMethodDescEN      Attribute = "m_description"
	AttrMethodNameES      Attribute = "m_nom_esp"
	AttrMethodNameEN      Attribute = "m_nom_ing"
	AttrMethodHeaderES    Attribute = "mhd_descripcion"
	AttrMethodHeaderEN    Attribute = "mhd_description"
)

// AllAttributes returns every attribute in the vocabulary, in declaration
// order. Detail queries select the full set so that the response carries all
// food scalars and every nutrient-value field.
func AllAttributes() []Attribute {
	return []Attribute{
		AttrID, AttrSpanishName, AttrEnglishName, AttrScientificName,
		AttrLangual, AttrFoodExCode, AttrMainLevelCode,
		AttrCodeLevel1, AttrNameLevel1, AttrCodeSublevel, AttrCodeLevel2, AttrNameLevel2,
		AttrDescriptionES, AttrDescriptionEN, AttrPhoto, AttrEdiblePortion,
		AttrOrigin, AttrPublic,
		AttrComponentID, AttrComponentNameES, AttrComponentNameEN, AttrEurName,
		AttrComponentGroupID, AttrGlossaryES, AttrGlossaryEN,
		AttrGroupNameES, AttrGroupNameEN,
		AttrBestLocation, AttrValueUnit, AttrMoex, AttrStandardDeviation,
		AttrMinValue, AttrMaxValue, AttrNValue,
		AttrUnitID, AttrUnitNameES, AttrUnitNameEN,
		AttrValueType, AttrValueTypeDescES, AttrValueTypeDescEN,
		AttrMeasureUnitID, AttrMeasureUnitDescES, AttrMeasureUnitDescEN,
		AttrReferenceID, AttrCitation,
		AttrAcquisitionTypeES, AttrAcquisitionTypeEN,
		AttrPublicationTypeES, AttrPublicationTypeEN,
		AttrMethodID, AttrMethodTypeES, AttrMethodTypeEN,
		AttrMethodDescES, AttrMethodDescEN,
		AttrMethodNameES, AttrMethodNameEN,
		AttrMethodHeaderES, AttrMethodHeaderEN,
	}
}

// Relation is a comparison operator usable in query conditions.
type Relation string

// Relations supported by the upstream query grammar.
const (
	RelationEqual      Relation = "EQUAL"  // exact match
	RelationLike       Relation = "LIKE"   // substring match
	RelationBeginsWith Relation = "BEGINW" // prefix match
)

// Language selects which food name a search matches against.
type Language string

// Languages the database carries names in.
const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// nameAttribute maps a language to the food-name attribute searched and
// sorted on for that language. ok is false for unknown languages.
func (l Language) nameAttribute() (Attribute, bool) {
	switch l {
	case LanguageES:
		return AttrSpanishName, true
	case LanguageEN:
		return AttrEnglishName, true
	}
	return "", false
}
