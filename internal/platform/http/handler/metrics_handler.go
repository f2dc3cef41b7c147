package handler

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricPointCount is the number of synthetic points per response.
const metricPointCount = 12

// MetricPoint is one synthetic sample in the mocked metrics feed.
type MetricPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Metrics handles GET /api/v1/metrics with random development-stub data.
// The values have no relation to real load; the endpoint exists so the
// frontend has something to render until real collection lands.
func Metrics(c *gin.Context) {
	points := make([]MetricPoint, 0, metricPointCount)
	for i := 0; i < metricPointCount; i++ {
		points = append(points, MetricPoint{
			Time:  fmt.Sprintf("%d:00", i),
			Value: math.Round((20+rand.Float64()*80)*100) / 100,
		})
	}
	c.JSON(http.StatusOK, points)
}
