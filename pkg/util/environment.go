package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the whole process environment
func GetEnvironmentVariables() map[string]string {
	return GetPrefixedEnvironmentVariables("")
}

// GetPrefixedEnvironmentVariables only returns the variables whose name starts with prefix, eg. "NAVIGATOR_"
func GetPrefixedEnvironmentVariables(prefix string) map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, found := strings.Cut(variable, "=")
		if !found || !strings.HasPrefix(name, prefix) {
			continue
		}

		environmentVariables[name] = value
	}

	return environmentVariables
}
