package stopdirectory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/campusvvs/navigator/pkg/ctdf"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type stopRecord struct {
	Name     string `csv:"Name"`
	GlobalID string `csv:"Globale ID"`
	Suffix   string `csv:"Zusatz"`
}

// DisplayName adds the suffix used to tell apart stops that share a name, eg. "Ortsmitte (Vaihingen)"
func (r stopRecord) DisplayName() string {
	name := strings.TrimSpace(r.Name)
	suffix := strings.TrimSpace(r.Suffix)

	if suffix == "" {
		return name
	}

	return fmt.Sprintf("%s (%s)", name, suffix)
}

// Parse reads the semicolon separated stop list with the columns Name, Globale ID and optionally Zusatz
func Parse(reader io.Reader) ([]ctdf.Stop, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read stop list: %w", err)
	}
	body = bytes.TrimPrefix(body, utf8BOM)

	csvReader := csv.NewReader(bytes.NewReader(body))
	csvReader.Comma = ';'
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	var records []stopRecord
	if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
		return nil, fmt.Errorf("parse stop list: %w", err)
	}

	stops := make([]ctdf.Stop, 0, len(records))
	for _, record := range records {
		stops = append(stops, ctdf.Stop{
			Name: record.DisplayName(),
			ID:   strings.TrimSpace(record.GlobalID),
		})
	}

	return stops, nil
}

// LoadFile builds a Directory from the stop list at path.
// When the file is missing or broken and required is false an empty Directory is returned instead.
func LoadFile(path string, required bool) (*Directory, error) {
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()

		var stops []ctdf.Stop
		stops, err = Parse(file)
		if err == nil {
			directory := New(stops)
			log.Info().Str("file", path).Int("stops", directory.Len()).Msg("Loaded stop directory")

			return directory, nil
		}
	}

	if required {
		return nil, fmt.Errorf("load stop directory %s: %w", path, err)
	}

	log.Error().Err(err).Str("file", path).Msg("Failed to load stop directory, continuing without stops")

	return New(nil), nil
}
