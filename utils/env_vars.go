package utils

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv reads an environment variable into a string, int or bool, falling
// back to the default value when the variable is unset or empty.
func GetEnv[T string | int | bool](name string, defaultValue T) T {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		return defaultValue
	}

	var result any
	switch any(defaultValue).(type) {
	case string:
		result = envValue
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", name, envValue))
		}
		result = intValue
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", name, envValue))
		}
		result = boolValue
	}
	return result.(T)
}

func GetRequiredEnv[T string | int | bool](name string) T {
	if _, ok := os.LookupEnv(name); !ok {
		panic(fmt.Sprintf("%s environment variable is required", name))
	}
	var zero T
	return GetEnv(name, zero)
}
