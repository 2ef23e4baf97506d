package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pescuma/statscymru/lib/model"
	"github.com/pescuma/statscymru/lib/utils"
)

// JSON exports the container as a nested document keyed by authority
// code, each entry carrying a "names" and a "measures" sub-document. An
// empty container exports as {}, not as an error or a null.
func JSON(areas *model.Areas) (string, error) {
	type jsonArea struct {
		Names    map[string]string             `json:"names"`
		Measures map[string]map[string]float64 `json:"measures,omitempty"`
	}

	result := map[string]jsonArea{}

	for _, area := range areas.List() {
		ja := jsonArea{
			Names:    area.Names(),
			Measures: map[string]map[string]float64{},
		}

		for codename, measure := range area.Measures() {
			values := map[string]float64{}
			for year, value := range measure.Values() {
				values[strconv.Itoa(year)] = value
			}

			if len(values) > 0 {
				ja.Measures[codename] = values
			}
		}

		result[area.Code()] = ja
	}

	marshaled, err := json.Marshal(result)
	if err != nil {
		return "", err
	}

	return string(marshaled), nil
}

// WriteText renders the container as human-readable tables: areas in
// ascending code order, measures in ascending codename order, years in
// ascending order followed by the computed summary columns.
func WriteText(w io.Writer, areas *model.Areas) error {
	if areas.Size() == 0 {
		_, err := fmt.Fprintln(w, "<no areas>")
		return err
	}

	for _, area := range areas.List() {
		err := writeArea(w, area)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeArea(w io.Writer, area *model.Area) error {
	_, err := fmt.Fprintf(w, "%v (%v)\n", displayName(area), area.Code())
	if err != nil {
		return err
	}

	measures := area.Measures()

	if len(measures) == 0 {
		_, err = fmt.Fprintln(w, "<no measures>")
		return err
	}

	codenames := make([]string, 0, len(measures))
	for codename := range measures {
		codenames = append(codenames, codename)
	}
	sort.Strings(codenames)

	for _, codename := range codenames {
		err = writeMeasure(w, measures[codename])
		if err != nil {
			return err
		}
	}

	return nil
}

func displayName(area *model.Area) string {
	eng, engErr := area.Name("eng")
	cym, cymErr := area.Name("cym")

	switch {
	case engErr == nil && cymErr == nil:
		return eng + " / " + cym

	case engErr == nil:
		return eng

	case cymErr == nil:
		return cym

	default:
		return "Unnamed"
	}
}

func writeMeasure(w io.Writer, measure *model.Measure) error {
	_, err := fmt.Fprintf(w, "%v (%v)\n", measure.Label(), measure.Codename())
	if err != nil {
		return err
	}

	if measure.Size() == 0 {
		_, err = fmt.Fprintln(w, "<no data>")
		return err
	}

	type column struct {
		header string
		value  string
	}

	var columns []column

	for _, year := range measure.Years() {
		value, _ := measure.Value(year)
		columns = append(columns, column{strconv.Itoa(year), formatValue(value)})
	}

	columns = append(columns,
		column{"Average", formatValue(measure.Average())},
		column{"Diff.", formatValue(measure.Difference())},
		column{"% Diff.", formatValue(measure.DifferenceAsPercentage())},
	)

	headers := make([]string, len(columns))
	values := make([]string, len(columns))

	for i, c := range columns {
		width := utils.Max(len(c.header), len(c.value))
		headers[i] = rightAlign(c.header, width)
		values[i] = rightAlign(c.value, width)
	}

	_, err = fmt.Fprintf(w, "%v\n%v\n", strings.Join(headers, " "), strings.Join(values, " "))

	return err
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

func rightAlign(text string, width int) string {
	if len(text) >= width {
		return text
	}

	return strings.Repeat(" ", width-len(text)) + text
}
