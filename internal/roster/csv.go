package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stratosfear/internal/models"
)

// Paths points at optional CSV overrides; empty paths keep the default section
type Paths struct {
	Crew     string
	Fleet    string
	Missions string
}

// Load starts from base and replaces each section that has a CSV path
func Load(base Catalog, paths Paths) (Catalog, error) {
	c := base
	if paths.Crew != "" {
		crew, err := LoadCrewCSV(paths.Crew)
		if err != nil {
			return Catalog{}, err
		}
		c.Crew = crew
	}
	if paths.Fleet != "" {
		fleet, err := LoadFleetCSV(paths.Fleet)
		if err != nil {
			return Catalog{}, err
		}
		c.Fleet = fleet
	}
	if paths.Missions != "" {
		missions, err := LoadMissionsCSV(paths.Missions)
		if err != nil {
			return Catalog{}, err
		}
		c.Missions = missions
	}
	return c, nil
}

// LoadCrewCSV reads name,role,experience rows
func LoadCrewCSV(path string) ([]CrewSpec, error) {
	var crew []CrewSpec
	err := readCSV(path, []string{"name", "role", "experience"}, func(line int, get func(string) string) error {
		role, err := models.ParseRole(get("role"))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		xp, err := parseInt(get("experience"), "experience", line)
		if err != nil {
			return err
		}
		crew = append(crew, CrewSpec{Name: get("name"), Role: role, Experience: xp})
		return nil
	})
	return crew, err
}

// LoadFleetCSV reads name,seats,fuel_capacity rows
func LoadFleetCSV(path string) ([]SpacecraftSpec, error) {
	var fleet []SpacecraftSpec
	err := readCSV(path, []string{"name", "seats", "fuel_capacity"}, func(line int, get func(string) string) error {
		seats, err := parseInt(get("seats"), "seats", line)
		if err != nil {
			return err
		}
		capacity, err := parseInt(get("fuel_capacity"), "fuel_capacity", line)
		if err != nil {
			return err
		}
		fleet = append(fleet, SpacecraftSpec{Name: get("name"), Seats: seats, FuelCapacity: capacity})
		return nil
	})
	return fleet, err
}

// LoadMissionsCSV reads name,destination,fuel_required rows
func LoadMissionsCSV(path string) ([]MissionSpec, error) {
	var missions []MissionSpec
	err := readCSV(path, []string{"name", "destination", "fuel_required"}, func(line int, get func(string) string) error {
		fuel, err := parseInt(get("fuel_required"), "fuel_required", line)
		if err != nil {
			return err
		}
		missions = append(missions, MissionSpec{Name: get("name"), Destination: get("destination"), FuelRequired: fuel})
		return nil
	})
	return missions, err
}

// readCSV maps the header row to column indexes, checks required columns,
// and calls row for every record that has a name
func readCSV(path string, required []string, row func(line int, get func(string) string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header from %s: %w", path, err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[strings.ToLower(strings.Trim(strings.TrimSpace(h), "'\""))] = i
	}
	for _, col := range required {
		if _, ok := headerMap[col]; !ok {
			return fmt.Errorf("CSV file %s is missing column %q", path, col)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("failed to read CSV record from %s: %w", path, err)
		}

		get := func(name string) string {
			return getField(record, headerMap, name)
		}
		// Skip rows without a name
		if get("name") == "" {
			continue
		}
		if err := row(line, get); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// getField safely retrieves a field from a CSV record by header name
func getField(record []string, headerMap map[string]int, fieldName string) string {
	if idx, ok := headerMap[fieldName]; ok && idx < len(record) {
		return strings.Trim(strings.TrimSpace(record[idx]), "'\"")
	}
	return ""
}

func parseInt(raw, field string, line int) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q: %w", line, field, raw, err)
	}
	return v, nil
}
