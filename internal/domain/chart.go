package domain

import "encoding/json"

// ChartSeriesPoint holds one date of a chart series with a value per
// platform key. It marshals flat: {"date": "...", "naver": 1, ...}.
type ChartSeriesPoint struct {
	Date   string
	Values map[string]float64
}

func (p ChartSeriesPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Values)+1)
	for k, v := range p.Values {
		flat[k] = v
	}
	flat["date"] = p.Date
	return json.Marshal(flat)
}

func (p *ChartSeriesPoint) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	p.Values = make(map[string]float64, len(flat))
	for k, v := range flat {
		switch val := v.(type) {
		case string:
			if k == "date" {
				p.Date = val
			}
		case float64:
			p.Values[k] = val
		}
	}
	return nil
}

// PlatformTotal is one slice of the proportional (pie) breakdown.
type PlatformTotal struct {
	Platform string  `json:"platform"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}
