package config

import (
	"fmt"
	"os"
)

// Template returns an example dataset definition.
func Template() string {
	return datasetTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(datasetTemplate), 0o600)
}

const datasetTemplate = `name = "station"

[[variables]]
name = "id"
type = "String"
value = "KSEA"

[[variables]]
name = "source"
type = "URL"
value = "http://example.com/station/KSEA"

[[variables]]
name = "location"
type = "Structure"

  [[variables.variables]]
  name = "lat"
  type = "Float64"
  value = 47.449

  [[variables.variables]]
  name = "lon"
  type = "Float64"
  value = -122.309

  [[variables.variables]]
  name = "elevation"
  type = "Int16"
  value = 131

[[variables]]
name = "reading"
type = "Structure"

  [[variables.variables]]
  name = "temperature"
  type = "Float32"
  value = 12.5

  [[variables.variables]]
  name = "pressure"
  type = "UInt32"
  value = 101325

  [[variables.variables]]
  name = "quality"
  type = "Byte"
  value = 3
`
