package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"hypokit/domain/core"
)

// Interval is a closed confidence interval with Lower <= Upper
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns Upper - Lower
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Contains reports whether v lies inside the interval, bounds included
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

func (i Interval) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", i.Lower, i.Upper)
}

// PowerDecision is the outcome of a combined significance-and-power test.
// When the null is rejected PowerAdequate is always false.
type PowerDecision struct {
	PowerAdequate bool `json:"power_adequate"`
	NullRejected  bool `json:"null_rejected"`
}

// Tail selects the direction of a research hypothesis
type Tail string

const (
	TailRight Tail = "right"
	TailLeft  Tail = "left"
	TailTwin  Tail = "twin"
)

// Tails lists every tail in reporting order
var Tails = []Tail{TailRight, TailLeft, TailTwin}

// ParseTail converts user input into a Tail
func ParseTail(s string) (Tail, error) {
	switch Tail(s) {
	case TailRight, TailLeft, TailTwin:
		return Tail(s), nil
	}
	return "", core.NewInvalidArgumentError("tail", fmt.Sprintf("%q is not one of right, left, twin", s))
}

// Report is the serializable summary the CLI prints for one analysis
type Report struct {
	RunID           core.RunID             `json:"run_id"`
	Analysis        string                 `json:"analysis"`
	SampleSizes     []int                  `json:"sample_sizes"`
	SampleHashes    []core.Hash            `json:"sample_hashes,omitempty"`
	Estimate        float64                `json:"estimate"`
	ConfidenceLevel float64                `json:"confidence_level"`
	Interval        Interval               `json:"interval"`
	NullValue       *float64               `json:"null_value,omitempty"`
	TestStatistic   *Value                 `json:"test_statistic,omitempty"`
	Decisions       map[Tail]bool          `json:"decisions,omitempty"`
	PValues         map[Tail]float64       `json:"p_values,omitempty"`
	Power           map[Tail]PowerDecision `json:"power,omitempty"`
	Extras          map[string]float64     `json:"extras,omitempty"`
}

// Standardize returns diff/spread. A zero spread gives 0 when diff is 0 and
// an infinity of diff's sign otherwise, so a statistic is never NaN.
func Standardize(diff, spread float64) float64 {
	if spread == 0 {
		switch {
		case diff > 0:
			return math.Inf(1)
		case diff < 0:
			return math.Inf(-1)
		}
		return 0
	}
	return diff / spread
}

// Value is a float64 whose JSON form spells non-finite values as the strings
// "+Inf", "-Inf" and "NaN"
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(f)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return core.NewInvalidArgumentError("value", fmt.Sprintf("%q is not a number", s))
		}
		*v = Value(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}
