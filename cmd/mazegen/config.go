package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
)

// envDefaults holds flag defaults read from MAZEGEN_* environment variables.
type envDefaults struct {
	Shape     string // cell shape
	Width     int    // planar width in cells
	Height    int    // planar height in cells
	Layers    int    // circle rings
	Algorithm string // registered algorithm name
	Exits     string // exit policy
	Output    string // .svg or .png path
	Size      int    // image edge in pixels
	LogLevel  string // logrus level name
}

// loadEnv reads an optional .env file and returns the defaults it provides.
func loadEnv(log logrus.FieldLogger, files ...string) envDefaults {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}
	return envDefaults{
		Shape:     getEnvWithDefault("MAZEGEN_SHAPE", string(grid.ShapeSquare)),
		Width:     getEnvAsIntWithDefault(log, "MAZEGEN_WIDTH", 10),
		Height:    getEnvAsIntWithDefault(log, "MAZEGEN_HEIGHT", 10),
		Layers:    getEnvAsIntWithDefault(log, "MAZEGEN_LAYERS", 6),
		Algorithm: getEnvWithDefault("MAZEGEN_ALGORITHM", "recursiveBacktrack"),
		Exits:     getEnvWithDefault("MAZEGEN_EXITS", string(grid.ExitsVertical)),
		Output:    getEnvWithDefault("MAZEGEN_OUTPUT", "maze.svg"),
		Size:      getEnvAsIntWithDefault(log, "MAZEGEN_SIZE", 800),
		LogLevel:  getEnvWithDefault("MAZEGEN_LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers; unparsable values are logged and ignored.
func getEnvAsIntWithDefault(log logrus.FieldLogger, key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.WithField("key", key).WithError(err).Warn("environment variable must be an integer")
		return defaultValue
	}
	return value
}

// parseMask reads "x,y;x,y;..." into mask coordinates.
func parseMask(s string) ([][2]int, error) {
	var mask [][2]int
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := grid.ParseCoords(part)
		if err != nil {
			return nil, err
		}
		mask = append(mask, c)
	}
	return mask, nil
}
