package roster

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"stratosfear/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Len(t, c.Crew, 20)
	assert.Len(t, c.Fleet, 5)
	assert.Len(t, c.Missions, 3)
	assert.Len(t, c.Passengers, 10)
}

func TestBuild(t *testing.T) {
	r, err := Default().Build()
	require.NoError(t, err)

	for _, role := range models.Roles {
		assert.Len(t, r.Crew[role], 5, "role %s", role)
		for _, m := range r.Crew[role] {
			assert.Equal(t, role, m.Role)
			assert.False(t, m.Assigned())
		}
	}
	assert.Equal(t, "Nostromo", r.Fleet[4].Name)
	assert.Equal(t, 10000, r.Fleet[4].FuelCapacity)
	assert.Equal(t, models.StatusPlanning, r.Missions[2].Status)
}

func TestBuild_FreshEntitiesPerRun(t *testing.T) {
	c := Default()
	first, err := c.Build()
	require.NoError(t, err)
	second, err := c.Build()
	require.NoError(t, err)

	first.Fleet[0].CurrentFuel = 900
	first.Passengers[0] = "Mallory"

	assert.Equal(t, 0, second.Fleet[0].CurrentFuel)
	assert.Equal(t, "Alex", second.Passengers[0])
	assert.Equal(t, "Alex", c.Passengers[0])
}

func TestBuild_InvalidSpec(t *testing.T) {
	c := Catalog{Fleet: []SpacecraftSpec{{"Brick", 0, 100}}}
	_, err := c.Build()
	assert.ErrorIs(t, err, models.ErrInvalidSpacecraft)

	c = Catalog{Crew: []CrewSpec{{"Rook", models.RoleCopilot, -3}}}
	_, err = c.Build()
	assert.ErrorIs(t, err, models.ErrInvalidExperience)
}

func TestLoadCrewCSV(t *testing.T) {
	path := writeFile(t, "crew.csv", `"name","role","experience"
# standby crew
"Amos Burton",captain,22
Naomi Nagata,flight ops,28
,copilot,5
Alex Kamal,copilot,14
`)

	crew, err := LoadCrewCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []CrewSpec{
		{"Amos Burton", models.RoleCaptain, 22},
		{"Naomi Nagata", models.RoleFlightOps, 28},
		{"Alex Kamal", models.RoleCopilot, 14},
	}, crew)
}

func TestLoadCrewCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown role", content: "name,role,experience\nBob,janitor,3\n", wantErr: models.ErrUnknownRole},
		{name: "bad experience", content: "name,role,experience\nBob,captain,lots\n"},
		{name: "missing column", content: "name,role\nBob,captain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCrewCSV(writeFile(t, "crew.csv", tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := LoadCrewCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadFleetCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "bad seats", content: "name,seats,fuel_capacity\nRocinante,six,3000\n", wantErr: strconv.ErrSyntax},
		{name: "bad fuel capacity", content: "name,seats,fuel_capacity\nRocinante,6,3k\n", wantErr: strconv.ErrSyntax},
		{name: "missing column", content: "name,seats\nRocinante,6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFleetCSV(writeFile(t, "fleet.csv", tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := LoadFleetCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadFleetCSV_ZeroSeatsFailsBuild(t *testing.T) {
	fleet, err := LoadFleetCSV(writeFile(t, "fleet.csv", "name,seats,fuel_capacity\nBrick,0,3000\n"))
	require.NoError(t, err)
	require.Equal(t, []SpacecraftSpec{{"Brick", 0, 3000}}, fleet)

	_, err = Catalog{Fleet: fleet}.Build()
	assert.ErrorIs(t, err, models.ErrInvalidSpacecraft)
}

func TestLoadMissionsCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "bad fuel required", content: "name,destination,fuel_required\nBelt Run,Ceres,plenty\n", wantErr: strconv.ErrSyntax},
		{name: "missing column", content: "name,fuel_required\nBelt Run,2800\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMissionsCSV(writeFile(t, "missions.csv", tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := LoadMissionsCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	fleet := writeFile(t, "fleet.csv", "name,seats,fuel_capacity\nRocinante,6,3000\n")
	missions := writeFile(t, "missions.csv", "destination,name,fuel_required\nCeres,Belt Run,2800\n")

	c, err := Load(Default(), Paths{Fleet: fleet, Missions: missions})
	require.NoError(t, err)

	assert.Len(t, c.Crew, 20)
	assert.Equal(t, []SpacecraftSpec{{"Rocinante", 6, 3000}}, c.Fleet)
	assert.Equal(t, []MissionSpec{{"Belt Run", "Ceres", 2800}}, c.Missions)
}
