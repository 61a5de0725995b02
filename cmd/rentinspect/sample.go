package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var sampleCommand = &cli.Command{
	Name:  "sample",
	Usage: "Print a filled-in sample inspection state for use with report --in",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty print instead of writing JSON",
		},
	},
	Action: func(c *cli.Context) error {
		sess, err := sampleSession(time.Now())
		if err != nil {
			return err
		}

		if c.Bool("pretty") {
			_, err = pp.Println(sess)
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	},
}

func sampleSession(now time.Time) (*inspection.Session, error) {
	sess := inspection.NewSession("sample", now)

	fields := []struct {
		name   string
		values []string
	}{
		{"propertyName", []string{"Park Village"}},
		{"propertyAddress", []string{"100 Park Village Dr"}},
		{"unitNumber", []string{"101"}},
		{"tenantFirstName", []string{"Jane"}},
		{"tenantLastName", []string{"Doe"}},
		{"inspectorName", []string{"Site Manager"}},
		{"programType", []string{string(types.ProgramHUD), string(types.ProgramLIHTC)}},
		{"bedrooms", []string{"2"}},
		{"stairways", []string{"1"}},
		{"heatingType", []string{string(types.HeatingCentralFurnace)}},
		{"fuelType", []string{string(types.FuelNaturalGas)}},
		{"hasWaterHeater", []string{"true"}},
		{"waterHeaterLocation", []string{"Utility Closet"}},
		{"waterHeaterInstallDate", []string{"5-10 years"}},
	}

	var err error
	for _, f := range fields {
		sess.Data, err = inspection.UpdateInspectionData(sess.Data, f.name, f.values...)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", f.name, err)
		}
	}

	if err := sess.GoTo(types.StepRoomInspection); err != nil {
		return nil, err
	}

	edits := []struct {
		room  types.RoomType
		field string
		value string
	}{
		{types.RoomBedroom, "flooringCondition", string(types.ConditionPoor)},
		{types.RoomBedroom, "flooringWorkOrder", "true"},
		{types.RoomBedroom, "flooringNeedsAction", string(types.NeedsActionReplace)},
		{types.RoomBedroom, "flooringNotes", "Carpet torn at doorway"},
		{types.RoomBedroom, "smokeAlarmPresent", string(types.PresenceYes)},
		{types.RoomBathroom, "gfiPresent", string(types.PresenceNo)},
		{types.RoomStairway, "riseCount", "4"},
		{types.RoomStairway, "railingPresent", string(types.PresenceYes)},
	}

	for _, e := range edits {
		room := firstRoom(sess.Rooms, e.room)
		if room == nil {
			continue
		}
		sess.Rooms, err = inspection.UpdateRoom(sess.Rooms, room.ID, e.field, e.value)
		if err != nil {
			return nil, fmt.Errorf("sample %s %s: %w", room.Name, e.field, err)
		}
	}

	if kitchen := firstRoom(sess.Rooms, types.RoomKitchen); kitchen != nil {
		sess.Rooms, err = inspection.AddAppliance(sess.Rooms, kitchen.ID, types.ApplianceRefrigerator)
		if err != nil {
			return nil, err
		}
		kitchen, _ = inspection.FindRoom(sess.Rooms, kitchen.ID)
		fridge := kitchen.Appliances[len(kitchen.Appliances)-1]
		for field, value := range map[string]string{"brand": "Frigidaire", "temperature": "38", "brokenShelves": "1"} {
			sess.Rooms, err = inspection.UpdateAppliance(sess.Rooms, kitchen.ID, fridge.ID, field, value)
			if err != nil {
				return nil, err
			}
		}
	}

	return sess, nil
}

func firstRoom(rooms []*types.Room, t types.RoomType) *types.Room {
	for _, r := range rooms {
		if r.Type == t {
			return r
		}
	}
	return nil
}
