// Package inspection holds the inspection state model: default constructors, the
// copy-on-write mutation API, room lifecycle and the wizard step controller.
package inspection

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"rentinspect/internal/utils"
	"rentinspect/pkg/types"
)

const DateLayout = "2006-01-02"

var newID = utils.NanoID

func NewInspectionData(now time.Time) types.InspectionData {
	return types.InspectionData{
		InspectionDate:     now.Format(DateLayout),
		InspectionType:     types.InspectionTypeAnnual,
		ProgramType:        []types.ProgramType{},
		Bedrooms:           1,
		Bathrooms:          1,
		HasKitchen:         true,
		HasLivingRoom:      true,
		ComplianceAccepted: true,
	}
}

// DeriveInitial returns the uppercase first character of a first name.
func DeriveInitial(firstName string) string {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(firstName)
	return string(unicode.ToUpper(r))
}

// NewRoom builds a room with a default item for every topic that applies to its type.
func NewRoom(roomType types.RoomType, name string) *types.Room {
	items := make(map[types.Topic]types.Item)
	for _, def := range types.Topics {
		if !def.AppliesTo(roomType) {
			continue
		}
		items[def.Key] = defaultItem(def)
	}

	return &types.Room{
		ID:         newID(),
		Type:       roomType,
		Name:       name,
		Items:      items,
		Appliances: []*types.Appliance{},
	}
}

func defaultItem(def types.TopicDef) types.Item {
	item := types.Item{
		Photos:      []*types.Photo{},
		NeedsAction: types.NeedsActionNone,
	}
	if def.Kind == types.KindCondition {
		item.Condition = types.ConditionGood
	}
	return item
}

func NewAppliance(applianceType types.ApplianceType, brand string) *types.Appliance {
	return &types.Appliance{
		ID:          newID(),
		Type:        applianceType,
		Brand:       brand,
		Condition:   types.ConditionGood,
		NeedsAction: types.NeedsActionNone,
		Photos:      []*types.Photo{},
		Details:     VariantDefaults(applianceType),
	}
}

// VariantDefaults returns the type-specific fields for an appliance type, or an
// empty map when the type has none.
func VariantDefaults(applianceType types.ApplianceType) map[string]string {
	fields := types.ApplianceVariants[applianceType]
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Default
	}
	return out
}
