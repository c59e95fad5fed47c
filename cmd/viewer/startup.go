package main

import (
	"fmt"

	"triangle-viewer/internal/coords"
	"triangle-viewer/internal/logger"
)

// loadTriangle resolves and loads the coordinates file. An incomplete triangle is logged and returned
// as an error; main exits on it before a window is opened.
func loadTriangle(name string, log *logger.Logger) (coords.Points, error) {
	pts, n := coords.Load(coords.Resolve(name), log)
	if n < coords.Count {
		err := fmt.Errorf("triangle coordinates were not loaded correctly (%d of %d points)", n, coords.Count)
		log.Log(err.Error())
		return pts, err
	}
	return pts, nil
}
