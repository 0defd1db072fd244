package write

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/rangelp/engine"
	"github.com/optakt/rangelp/position"
)

// CurvePoints builds one point per price sample of the result. Samples are
// told apart by their "sample" tag and share the timestamp of the run.
func CurvePoints(timestamp time.Time, measurement string, name string, params position.Params, result engine.Result) []*write.Point {

	variant := "normal"
	if _, ok := result.(engine.Degenerate); ok {
		variant = "degenerate"
	}

	curves := result.Samples()
	line := result.Line().Values
	points := make([]*write.Point, 0, len(curves.Prices))
	for i, price := range curves.Prices {

		labels := tags(name, params, variant)
		labels["sample"] = strconv.Itoa(i)

		fields := map[string]interface{}{
			"price":   price,
			"base":    curves.Base[i],
			"quote":   curves.Quote[i],
			"value":   curves.Value[i],
			"hold":    curves.Hold[i],
			"loss":    curves.Loss[i],
			"tangent": line[i],
		}

		points = append(points, write.NewPoint(measurement, labels, fields, timestamp))
	}

	return points
}

// Curves writes the sample points of the result to the outbound API.
func Curves(timestamp time.Time, measurement string, name string, params position.Params, result engine.Result, outbound api.WriteAPI) {
	for _, point := range CurvePoints(timestamp, measurement, name, params, result) {
		outbound.WritePoint(point)
	}
}
