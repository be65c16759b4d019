package domain

// TypeGroup is the backend classification of a location. The set is open: backends
// may report codes beyond the three known ones.
type TypeGroup string

const (
	TypeGroupBranch      TypeGroup = "FILIALE"
	TypeGroupATM         TypeGroup = "GELDAUTOMAT"
	TypeGroupSelfService TypeGroup = "SB_FILIALE"
)

// PublicType is the caller-facing type filter.
type PublicType string

const (
	PublicTypeATM         PublicType = "ATM"
	PublicTypeBranch      PublicType = "BRANCH"
	PublicTypeSelfService PublicType = "SELF_SERVICE"
)

var publicToBackend = map[PublicType]TypeGroup{
	PublicTypeATM:         TypeGroupATM,
	PublicTypeBranch:      TypeGroupBranch,
	PublicTypeSelfService: TypeGroupSelfService,
}

// PublicTypes lists the accepted public type filters in display order.
func PublicTypes() []PublicType {
	return []PublicType{PublicTypeATM, PublicTypeBranch, PublicTypeSelfService}
}

// BackendTypeGroup translates a public type into the backend code. ok is false for an
// empty or unknown type, meaning no type filter applies.
func BackendTypeGroup(t PublicType) (TypeGroup, bool) {
	tg, ok := publicToBackend[t]
	return tg, ok
}
