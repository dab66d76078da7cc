package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"shortform-preprod/types"
)

// BreakdownCSV renders the breakdown as a crew-facing spreadsheet, one row
// per scene. List columns are joined with "; ", elements rendered as
// "<description> (<quantity>)".
func BreakdownCSV(b *types.Breakdown) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Scene Number", "Location", "Location Type", "Time of Day",
		"Characters", "Props", "Wardrobe", "Makeup",
		"Special Requirements", "Setup Time (min)", "Description",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range b.Entries {
		setup := ""
		if e.EstimatedSetupTimeMinutes > 0 {
			setup = strconv.Itoa(e.EstimatedSetupTimeMinutes)
		}
		row := []string{
			strconv.Itoa(e.SceneNumber),
			e.Location,
			string(e.LocationType),
			string(e.TimeOfDay),
			strings.Join(e.Characters, "; "),
			joinElements(e.Props, true),
			joinElements(e.Wardrobe, true),
			joinElements(e.Makeup, true),
			joinElements(e.SpecialRequirements, false),
			setup,
			e.SceneDescription,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShotListCSV renders the storyboard as a shot list, one row per shot
func ShotListCSV(sb *types.Storyboard) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Shot ID", "Scene", "Shot Size", "Camera Position",
		"Camera Movement", "Duration (s)", "Visual Description", "Audio Notes",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, shot := range sb.Shots {
		row := []string{
			shot.ShotID,
			strconv.Itoa(shot.SceneNumber),
			string(shot.ShotSize),
			shot.CameraPosition,
			string(shot.CameraMovement),
			strconv.Itoa(shot.SuggestedDurationSeconds),
			shot.VisualDescription,
			shot.AudioNotes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// joinElements renders production elements for one CSV cell. Quantities are
// shown for the countable columns; special requirements list descriptions
// only.
func joinElements(elements []types.ProductionElement, withQuantity bool) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		if withQuantity {
			parts[i] = fmt.Sprintf("%s (%d)", e.Description, e.Quantity)
		} else {
			parts[i] = e.Description
		}
	}
	return strings.Join(parts, "; ")
}
