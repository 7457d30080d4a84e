package models

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// NoData is what a Reading without a value renders as.
const NoData = "데이터 없음"

// Reading is an optional measurement. The zero value is "no data".
type Reading struct {
	value *float64
}

// NewReading wraps v; NaN and infinities become no data.
func NewReading(v *float64) Reading {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Reading{}
	}
	f := *v
	return Reading{value: &f}
}

func ReadingOf(v float64) Reading {
	return NewReading(&v)
}

func (r Reading) Valid() bool {
	return r.value != nil
}

func (r Reading) Float64() (float64, bool) {
	if r.value == nil {
		return 0, false
	}
	return *r.value, true
}

func (r Reading) String() string {
	if r.value == nil {
		return NoData
	}
	return fmt.Sprintf("%g", *r.value)
}

func (r Reading) MarshalJSON() ([]byte, error) {
	if r.value == nil {
		return json.Marshal(NoData)
	}
	return json.Marshal(*r.value)
}

func (r *Reading) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*r = ReadingOf(t)
	case string, nil:
		*r = Reading{}
	default:
		return fmt.Errorf("reading: unexpected JSON value %s", data)
	}
	return nil
}

// Prediction is the seasonal average for one region on one calendar day.
type Prediction struct {
	Region        string  `json:"region" example:"buyeo"`
	PredictDate   string  `json:"predict_date" example:"04월 18일 예측"`
	Temperature   Reading `json:"temperature" swaggertype:"primitive,string" example:"13.45"`
	Precipitation Reading `json:"precipitation" swaggertype:"primitive,string" example:"데이터 없음"`
	WindSpeed     Reading `json:"windspeed" swaggertype:"primitive,string" example:"8.1"`
}

// PredictDateLabel renders e.g. "04월 18일 예측".
func PredictDateLabel(now time.Time) string {
	return now.Format("01월 02일 예측")
}

func (p *Prediction) RequestParams() string {
	return fmt.Sprintf("region: %s date: %s", p.Region, p.PredictDate)
}
