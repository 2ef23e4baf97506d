package datasets

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Areas is the local authority code list. It is always loaded first so
// that every area has its English and Welsh names before any measure data
// arrives.
var Areas = Dataset{
	Code:   "areas",
	Name:   "Local authority codes",
	File:   "areas.csv",
	Format: AuthorityCodeCSV,
	Cols: ColumnMapping{
		AuthCode:    "Local authority code",
		AuthNameEng: "Name (eng)",
		AuthNameCym: "Name (cym)",
	},
}

// Default is the built-in registry of StatsWales datasets.
var Default = []Dataset{
	{
		Code:   "popden",
		Name:   "Population density",
		File:   "popu1009.json",
		Format: StatsJSON,
		Cols: ColumnMapping{
			AuthCode:    "Localauthority_Code",
			AuthNameEng: "Localauthority_ItemName_ENG",
			MeasureCode: "Measure_Code",
			MeasureName: "Measure_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code:   "biz",
		Name:   "Active businesses",
		File:   "econ0080.json",
		Format: StatsJSON,
		Cols: ColumnMapping{
			AuthCode:          "Area_Code",
			AuthNameEng:       "Area_ItemName_ENG",
			SingleMeasureCode: "a",
			SingleMeasureName: "Active Businesses",
			Year:              "Year_Code",
			Value:             "Data",
		},
	},
	{
		Code:   "aqi",
		Name:   "Air quality indicators",
		File:   "envi0201.json",
		Format: StatsJSON,
		Cols: ColumnMapping{
			AuthCode:    "Area_Code",
			AuthNameEng: "Area_ItemName_ENG",
			MeasureCode: "Pollutant_ItemName_ENG",
			MeasureName: "Pollutant_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code:   "trains",
		Name:   "Rail passenger journeys",
		File:   "tran0152.json",
		Format: StatsJSON,
		Cols: ColumnMapping{
			AuthCode:          "Area_Code",
			AuthNameEng:       "Area_ItemName_ENG",
			SingleMeasureCode: "rail",
			SingleMeasureName: "Rail passenger journeys",
			Year:              "Year_Code",
			Value:             "Data",
		},
	},
	{
		Code:   "complete-popden",
		Name:   "Population density (complete)",
		File:   "complete-popu1009-popden.csv",
		Format: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "dens",
			SingleMeasureName: "Population density",
		},
	},
	{
		Code:   "complete-pop",
		Name:   "Population (complete)",
		File:   "complete-popu1009-pop.csv",
		Format: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "pop",
			SingleMeasureName: "Population",
		},
	},
	{
		Code:   "complete-area",
		Name:   "Land area (complete)",
		File:   "complete-popu1009-area.csv",
		Format: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "area",
			SingleMeasureName: "Land area",
		},
	},
}

// ReadRegistry parses a YAML registry, so datasets can be declared as data
// instead of being compiled in.
func ReadRegistry(r io.Reader) ([]Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading dataset registry")
	}

	var result []Dataset

	err = yaml.Unmarshal(content, &result)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing dataset registry")
	}

	for _, d := range result {
		if d.Code == "" || d.File == "" || d.Format == "" {
			return nil, errors.Errorf("dataset %+v is missing code, file or format", d)
		}
	}

	return result, nil
}

// LoadRegistry reads a YAML registry file, falling back to the built-in
// registry when path is empty.
func LoadRegistry(path string) ([]Dataset, error) {
	if path == "" {
		return Default, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening dataset registry %v", path)
	}
	defer f.Close()

	return ReadRegistry(f)
}
