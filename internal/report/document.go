package report

import (
	"html/template"
	"strings"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

const ComplianceText = "The undersigned inspector certifies that this unit was inspected on the date above " +
	"using the NSPIRE-modeled checklist. Items marked for work orders must be remediated " +
	"within the timeframe set by the applicable program. This statement is advisory and " +
	"does not replace a regulatory inspection."

type PhotoView struct {
	Src      template.URL
	FileName string
	Comment  string
	Captured string
}

type ItemSection struct {
	Label       string
	Status      string
	NeedsAction string
	Notes       string
	WorkOrder   bool
	Requirement string
	Photos      []PhotoView
}

type ApplianceSection struct {
	Title     string
	Fields    []Field
	WorkOrder bool
	Photos    []PhotoView
}

type RoomSection struct {
	Name       string
	Fields     []Field
	Items      []ItemSection
	Appliances []ApplianceSection
	Violations []Violation
}

// Document is the structured report handed to the printable renderer.
type Document struct {
	Title       string
	Filename    string
	GeneratedAt string
	BrandName   string
	BrandImage  template.URL
	AutoPrint   bool

	Header     []Field
	Systems    []Field
	Rooms      []RoomSection
	Violations []Violation
	WorkOrders WorkOrderSummary

	PassStatement      string
	ComplianceAccepted bool
	ComplianceText     string
	Notes              string
	InspectorSignature string
	TenantSignature    string

	// Pairs is set instead of the structured sections when the report was built
	// from scraped form values.
	Pairs []Field
}

type Options struct {
	BrandName string
	AutoPrint bool
	Now       time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Build walks the inspection state into a printable document.
func Build(data types.InspectionData, rooms []*types.Room, opts Options) *Document {
	doc := &Document{
		Title:       "Unit Inspection Report",
		Filename:    Filename(data),
		GeneratedAt: opts.now().Format("January 2, 2006 3:04 PM"),
		BrandName:   opts.BrandName,
		BrandImage:  brandImage(),
		AutoPrint:   opts.AutoPrint,

		Header:     HeaderFields(data),
		Systems:    SystemFields(data),
		Rooms:      make([]RoomSection, 0, len(rooms)),
		Violations: AllViolations(data, rooms),
		WorkOrders: WorkOrders(data, rooms),

		PassStatement:      PassStatement,
		ComplianceAccepted: data.ComplianceAccepted,
		ComplianceText:     ComplianceText,
		Notes:              strings.TrimSpace(data.ReportNotes),
		InspectorSignature: data.InspectorSignature,
		TenantSignature:    data.TenantSignature,
	}

	for _, room := range rooms {
		doc.Rooms = append(doc.Rooms, buildRoom(data, room))
	}

	return doc
}

// BuildFromPairs wraps scraped label/value pairs in a printable document.
func BuildFromPairs(title string, pairs []Field, opts Options) *Document {
	return &Document{
		Title:       title,
		Filename:    SafeFilename(title),
		GeneratedAt: opts.now().Format("January 2, 2006 3:04 PM"),
		BrandName:   opts.BrandName,
		BrandImage:  brandImage(),
		AutoPrint:   opts.AutoPrint,
		Pairs:       pairs,
	}
}

func buildRoom(data types.InspectionData, room *types.Room) RoomSection {
	section := RoomSection{
		Name:       room.Name,
		Fields:     roomFields(room),
		Items:      make([]ItemSection, 0),
		Appliances: make([]ApplianceSection, 0, len(room.Appliances)),
		Violations: RoomViolations(data, room),
	}

	for _, def := range inspection.RelevantTopics(data, room) {
		item := room.Item(def.Key)
		is := ItemSection{
			Label:       def.Label,
			Status:      itemStatus(def, item),
			Notes:       strings.TrimSpace(item.Notes),
			WorkOrder:   item.WorkOrder,
			Requirement: def.Requirement,
			Photos:      photoViews(item.Photos),
		}
		if item.NeedsAction != types.NeedsActionNone {
			is.NeedsAction = string(item.NeedsAction)
		}
		section.Items = append(section.Items, is)
	}

	for _, a := range room.Appliances {
		section.Appliances = append(section.Appliances, ApplianceSection{
			Title:     applianceTitle(a),
			Fields:    ApplianceFields(a),
			WorkOrder: a.WorkOrder,
			Photos:    photoViews(a.Photos),
		})
	}

	return section
}

func photoViews(photos []*types.Photo) []PhotoView {
	out := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		// Only image data URIs are trusted as img sources.
		if !strings.HasPrefix(p.DataURI, "data:image/") {
			continue
		}
		pv := PhotoView{
			Src:      template.URL(p.DataURI),
			FileName: p.FileName,
			Comment:  p.Comment,
		}
		if !p.CapturedAt.IsZero() {
			pv.Captured = p.CapturedAt.Format("Jan 2, 2006 3:04 PM")
		}
		out = append(out, pv)
	}
	return out
}
